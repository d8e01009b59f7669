package eda

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/vdobler/eda/stat"
)

// OutlierBounds computes Tukey's fences Q1-1.5*IQR and Q3+1.5*IQR of
// column in df. Quartiles are linearly interpolated.
func OutlierBounds(df *DataFrame, column string) (stat.Bounds, error) {
	return outlierBounds(df, column, stat.Whisker)
}

func outlierBounds(df *DataFrame, column string, k float64) (stat.Bounds, error) {
	values, err := df.Float(column)
	if err != nil {
		return stat.Bounds{}, err
	}
	b, err := stat.Fences(values, k)
	if err != nil {
		return stat.Bounds{}, fmt.Errorf("eda: outlier bounds of %q in %s: %w", column, df.Name, err)
	}
	return b, nil
}

// Describe summarizes column of df.
func Describe(df *DataFrame, column string) (stat.Description, error) {
	values, err := df.Float(column)
	if err != nil {
		return stat.Description{}, err
	}
	d, err := stat.Describe(values)
	if err != nil {
		return d, fmt.Errorf("eda: describing %q in %s: %w", column, df.Name, err)
	}
	return d, nil
}

// GroupDescription is the description of one group of rows sharing the
// same key values.
type GroupDescription struct {
	Keys []string
	stat.Description
}

// GroupDescribe groups the rows of df by the values of the columns in by
// and describes column for every group. Groups are ordered ascending by
// their keys, the first key being the most significant.
func GroupDescribe(df *DataFrame, column string, by ...string) ([]GroupDescription, error) {
	values, err := df.Float(column)
	if err != nil {
		return nil, err
	}
	keys := make([]Field, len(by))
	for k, name := range by {
		if keys[k], err = df.Column(name); err != nil {
			return nil, err
		}
	}

	type group struct {
		key    []float64
		values []float64
	}
	groups := make(map[string]*group)
	var order []*group
	for i := 0; i < df.N; i++ {
		key := make([]float64, len(keys))
		var sb strings.Builder
		for k, f := range keys {
			key[k] = f.Data[i]
			fmt.Fprintf(&sb, "%x|", math.Float64bits(f.Data[i]))
		}
		g, ok := groups[sb.String()]
		if !ok {
			g = &group{key: key}
			groups[sb.String()] = g
			order = append(order, g)
		}
		g.values = append(g.values, values[i])
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i].key, order[j].key
		for k, f := range keys {
			if f.Less(a[k], b[k]) {
				return true
			}
			if f.Less(b[k], a[k]) {
				return false
			}
		}
		return false
	})

	result := make([]GroupDescription, len(order))
	for i, g := range order {
		d, err := stat.Describe(g.values)
		if err != nil {
			return nil, err
		}
		result[i].Description = d
		result[i].Keys = make([]string, len(keys))
		for k, f := range keys {
			result[i].Keys[k] = f.Format(g.key[k])
		}
	}
	return result, nil
}

var descriptionLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func descriptionValues(d stat.Description) []float64 {
	return []float64{float64(d.Count), d.Mean, d.Std, d.Min, d.Q1, d.Median, d.Q3, d.Max}
}

// WriteDescription prints d as a labeled list, one statistic per line.
func WriteDescription(w io.Writer, name string, d stat.Description) {
	for i, x := range descriptionValues(d) {
		fmt.Fprintf(w, "%-8s%14.6f\n", descriptionLabels[i], x)
	}
	fmt.Fprintf(w, "Name: %s\n", name)
}

// WriteGroups prints groups as a table keyed by the columns in by.
func WriteGroups(w io.Writer, by []string, groups []GroupDescription) {
	tw := tabwriter.NewWriter(w, 4, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t\n", strings.Join(by, "\t"), strings.Join(descriptionLabels, "\t"))
	for _, g := range groups {
		cells := make([]string, 0, len(descriptionLabels))
		for _, x := range descriptionValues(g.Description) {
			cells = append(cells, fmt.Sprintf("%.6f", x))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", strings.Join(g.Keys, "\t"), strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func writeBounds(w io.Writer, column string, b stat.Bounds, share float64) {
	fmt.Fprintf(w, "Outlier bounds for '%s':\n", column)
	fmt.Fprintf(w, "  Lower Bound: %v\n", b.Lower)
	fmt.Fprintf(w, "  Upper Bound: %v\n", b.Upper)
	fmt.Fprintln(w, "  Outliers:")
	fmt.Fprintf(w, "  Percentage of outliers: %.2f%%\n\n", share)
}
