package eda

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/stat"
)

// Explorer prints exploratory summaries of data frames to Out and shows
// the accompanying figures on Display.
//
// Every method creates its own figures, so sequential calls never share
// drawing state. An Explorer may be used from several goroutines if its
// Out and Display are safe for concurrent use.
//
// Use NewExplorer to create one. A literal Explorer must set Out and
// Display; a zero Options.Whisker falls back to stat.Whisker.
type Explorer struct {
	Out     io.Writer
	Display Display
	Logger  zerolog.Logger
	Options Options
}

// NewExplorer returns an explorer writing to out (os.Stdout if nil) and
// showing figures on display (dropped if nil).
func NewExplorer(out io.Writer, display Display, opts ...Option) *Explorer {
	if out == nil {
		out = os.Stdout
	}
	if display == nil {
		display = DiscardDisplay{}
	}
	e := &Explorer{
		Out:     out,
		Display: display,
		Logger:  zerolog.Nop(),
		Options: DefaultOptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Correlation is a Pearson correlation coefficient and its classification.
type Correlation struct {
	R        float64
	Strength stat.Strength
}

func (e *Explorer) bounds(df *DataFrame, column string) (stat.Bounds, error) {
	k := e.Options.Whisker
	if k <= 0 {
		k = stat.Whisker
	}
	b, err := outlierBounds(df, column, k)
	if err != nil {
		return b, err
	}
	e.Logger.Debug().
		Str("frame", df.Name).
		Str("column", column).
		Float64("lower", b.Lower).
		Float64("upper", b.Upper).
		Msg("outlier bounds")
	return b, nil
}

func (e *Explorer) newFigure(title string, size Size, rows, cols int) *Figure {
	fig := NewFigure(title, size.Width, size.Height, rows, cols)
	fig.Padding = vg.Length(e.Options.Padding) * fontSize
	return fig
}

// fontSize is the reference for the figure padding.
const fontSize = vg.Length(10)

func (e *Explorer) show(fig *Figure) error {
	if err := e.Display.Show(fig); err != nil {
		return fmt.Errorf("eda: showing figure %q: %w", fig.Title, err)
	}
	e.Logger.Debug().
		Str("figure", fig.Title).
		Int("rows", fig.Rows()).
		Int("cols", fig.Cols()).
		Msg("figure shown")
	return nil
}

// AnalyzeColumn prints the description, median, mode and outliers of
// column and shows its boxplot.
func (e *Explorer) AnalyzeColumn(df *DataFrame, column string) error {
	values, err := df.Float(column)
	if err != nil {
		return err
	}
	d, err := Describe(df, column)
	if err != nil {
		return err
	}
	modes, err := stat.Mode(values)
	if err != nil {
		return err
	}
	b, err := e.bounds(df, column)
	if err != nil {
		return err
	}
	outliers := stat.Outliers(values, b)

	WriteDescription(e.Out, column, d)
	fmt.Fprintln(e.Out)
	fmt.Fprintf(e.Out, "median: %v\n\n", d.Median)
	fmt.Fprintf(e.Out, "mode: %v\n", modes)
	fmt.Fprintf(e.Out, "Outliers amount: %d\n", len(outliers))
	fmt.Fprintf(e.Out, "Outliers: %v\n", outliers)

	fig := e.newFigure("Boxplot for "+column, e.Options.ColumnFigure, 1, 1)
	if err := DrawColumnBoxplot(fig.Panel(0, 0), column, values, fig.Title, e.Options.Theme); err != nil {
		return err
	}
	return e.show(fig)
}

// AnalyzeThreeColumns prints the description of continuous grouped by
// categorical and categorical2 for the dataset without difficulties
// (df0) and the one with difficulties (df1). Then both datasets are
// compared in a pair of boxplots. The difficulty panel is cut at the
// upper outlier bound of df0 and the on-time panel at the one of df1,
// unless Options.SeparateCutoffs cuts each dataset at its own bound.
func (e *Explorer) AnalyzeThreeColumns(df0, df1 *DataFrame, categorical, categorical2, continuous string) error {
	parts := []struct {
		head string
		df   *DataFrame
	}{
		{"Without difficulties:", df0},
		{"With difficulties:", df1},
	}
	by := []string{categorical, categorical2}
	for _, part := range parts {
		groups, err := GroupDescribe(part.df, continuous, by...)
		if err != nil {
			return err
		}
		if limit := e.Options.GroupLimit; limit > 0 && len(groups) > limit {
			groups = groups[:limit]
		}
		fmt.Fprintln(e.Out, part.head)
		WriteGroups(e.Out, by, groups)
		fmt.Fprint(e.Out, "\n\n\n\n")
	}

	b0, err := e.bounds(df0, continuous)
	if err != nil {
		return err
	}
	b1, err := e.bounds(df1, continuous)
	if err != nil {
		return err
	}
	cutDifficulty, cutOnTime := b0.Upper, b1.Upper
	if e.Options.SeparateCutoffs {
		cutDifficulty, cutOnTime = b1.Upper, b0.Upper
	}
	return e.BiBoxplot(df1, df0, categorical, continuous, cutDifficulty, cutOnTime, categorical2)
}

// BiBoxplot shows the boxplots of continuous by categorical and hue for
// the difficulty dataset (left, cut at difficultyCutoff) and the on-time
// dataset (right, cut at onTimeCutoff) side by side.
func (e *Explorer) BiBoxplot(difficulty, onTime *DataFrame, categorical, continuous string,
	difficultyCutoff, onTimeCutoff float64, hue string) error {

	fig := e.newFigure(continuous+" by "+categorical, e.Options.BiBoxFigure, 1, 2)
	panels := []struct {
		df     *DataFrame
		cutoff float64
		title  string
	}{
		{difficulty, difficultyCutoff, "Payment Difficulties"},
		{onTime, onTimeCutoff, "On-Time Payments"},
	}
	for i, panel := range panels {
		n, err := DrawBoxplot(fig.Panel(0, i), panel.df, categorical, continuous,
			panel.cutoff, panel.title, hue, e.Options.Theme)
		if err != nil {
			return err
		}
		e.Logger.Debug().
			Str("panel", panel.title).
			Float64("cutoff", panel.cutoff).
			Int("rows", panel.df.N).
			Int("drawn", n).
			Msg("boxplot")
	}
	return e.show(fig)
}

// AnalyzePearsonCorrelation prints the Pearson correlation of column1
// and column2 and its classification.
func (e *Explorer) AnalyzePearsonCorrelation(df *DataFrame, column1, column2 string) (Correlation, error) {
	x, err := df.Float(column1)
	if err != nil {
		return Correlation{}, err
	}
	y, err := df.Float(column2)
	if err != nil {
		return Correlation{}, err
	}
	r, err := stat.Pearson(x, y)
	if err != nil {
		return Correlation{}, fmt.Errorf("eda: correlation of %q and %q: %w", column1, column2, err)
	}
	c := Correlation{R: r, Strength: stat.Classify(r)}

	fmt.Fprintf(e.Out, "Pearson Correlation between '%s' and '%s': %.4f\n", column1, column2, r)
	fmt.Fprintf(e.Out, "Conclusion: %s\n", c.Strength)
	return c, nil
}

// AnalyzeCorrelation prints the outlier bounds and outlier share of
// column1 and column2 and their correlation, then shows their scatterplot
// cut at both upper bounds.
func (e *Explorer) AnalyzeCorrelation(df *DataFrame, column1, column2, title string) error {
	columns := []string{column1, column2}
	bounds := make([]stat.Bounds, len(columns))
	shares := make([]float64, len(columns))
	for i, column := range columns {
		b, err := e.bounds(df, column)
		if err != nil {
			return err
		}
		values, err := df.Float(column)
		if err != nil {
			return err
		}
		if shares[i], err = stat.OutlierShare(values, b); err != nil {
			return err
		}
		bounds[i] = b
	}

	fmt.Fprintln(e.Out, title)
	fmt.Fprintln(e.Out, strings.Repeat("-", 50))
	for i, column := range columns {
		writeBounds(e.Out, column, bounds[i], shares[i])
	}

	if _, err := e.AnalyzePearsonCorrelation(df, column1, column2); err != nil {
		return err
	}
	return e.ScatterComparison(df, column1, column2, bounds[0].Upper, bounds[1].Upper, title)
}

// ScatterComparison shows the scatterplot of yColumn over xColumn,
// restricted to xColumn < xCutoff and yColumn < yCutoff.
func (e *Explorer) ScatterComparison(df *DataFrame, xColumn, yColumn string,
	xCutoff, yCutoff float64, title string) error {

	fig := e.newFigure(title, e.Options.ScatterFigure, 1, 1)
	n, err := DrawScatter(fig.Panel(0, 0), df, xColumn, yColumn, xCutoff, yCutoff, title, e.Options.Theme)
	if err != nil {
		return err
	}
	e.Logger.Debug().Str("x", xColumn).Str("y", yColumn).Int("rows", df.N).Int("drawn", n).Msg("scatter")
	return e.show(fig)
}

// KDEWithoutOutliers overlays the density estimates of column in df1
// and df0, each without the values outside its own outlier bounds.
// A dataset whose remaining values have no spread is skipped with a
// warning; the other curve is still drawn.
func (e *Explorer) KDEWithoutOutliers(df0, df1 *DataFrame, column, label0, label1 string) error {
	fig := e.newFigure(column+" density", e.Options.KDEFigure, 1, 1)
	panel := fig.Panel(0, 0)

	curves := []struct {
		df    *DataFrame
		label string
	}{
		{df1, label1},
		{df0, label0},
	}
	for i, c := range curves {
		b, err := e.bounds(c.df, column)
		if err != nil {
			return err
		}
		values, err := c.df.Float(column)
		if err != nil {
			return err
		}
		within := stat.Within(values, b)
		e.Logger.Debug().Str("label", c.label).Int("rows", len(values)).Int("within", len(within)).Msg("density")
		err = DrawDensity(panel, within, c.label, i, e.Options.KDEPoints, e.Options.KDECut, e.Options.Theme)
		if errors.Is(err, stat.ErrZeroBandwidth) {
			e.Logger.Warn().
				Str("label", c.label).
				Str("column", column).
				Int("within", len(within)).
				Msg("dataset has zero variance, density skipped")
			continue
		}
		if err != nil {
			return err
		}
	}

	p := panel.Plot
	p.X.Label.Text = column
	p.Y.Label.Text = "Density"
	p.X.Tick.Marker = PlainTicks{}
	rotateTickLabels(&p.X, 45)
	return e.show(fig)
}
