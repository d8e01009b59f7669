package eda

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/eda/geom"
	"github.com/vdobler/eda/stat"
)

func (t Theme) boxes(hues int) geom.Boxes {
	width := t.BoxWidth
	if width <= 0 {
		width = DefaultTheme.BoxWidth
	}
	fills := make([]color.Color, hues)
	for h := range fills {
		fills[h] = t.Color(h)
	}
	return geom.Boxes{
		Hues:     hues,
		Width:    width,
		Fills:    fills,
		BoxStyle: LineStyle(MergeStyles(t.BoxStyle, DefaultTheme.BoxStyle)),
		Outliers: GlyphStyle(MergeStyles(t.OutlierStyle, DefaultTheme.OutlierStyle)),
	}
}

// DrawBoxplot draws boxplots of continuous for each level of categorical,
// split by the levels of hue, into panel. Only rows with a continuous
// value strictly below cutoff are drawn. Categories and hue levels are
// ordered descending. It returns the number of rows drawn.
func DrawBoxplot(panel *Panel, df *DataFrame, categorical, continuous string,
	cutoff float64, title, hue string, theme Theme) (int, error) {

	catField, err := df.Column(categorical)
	if err != nil {
		return 0, err
	}
	hueField, err := df.Column(hue)
	if err != nil {
		return 0, err
	}
	values, err := df.Float(continuous)
	if err != nil {
		return 0, err
	}

	cats := catField.SortedLevels(true)
	hues := hueField.SortedLevels(true)
	catIdx := make(map[float64]int, len(cats))
	for i, x := range cats {
		catIdx[x] = i
	}
	hueIdx := make(map[float64]int, len(hues))
	for i, x := range hues {
		hueIdx[x] = i
	}

	cells := make([]geom.Cell, len(cats)*len(hues))
	for c := range cats {
		for h := range hues {
			cells[c*len(hues)+h] = geom.Cell{Category: c, Hue: h}
		}
	}
	drawn := 0
	for i, v := range values {
		if !(v < cutoff) {
			continue
		}
		c, h := catIdx[catField.Data[i]], hueIdx[hueField.Data[i]]
		cell := &cells[c*len(hues)+h]
		cell.Values = append(cell.Values, v)
		drawn++
	}

	boxes := theme.boxes(len(hues))
	plotters, err := boxes.Plotters(cells)
	if err != nil {
		return 0, fmt.Errorf("eda: boxplot of %s by %s: %w", continuous, categorical, err)
	}

	p := panel.Plot
	p.Title.Text = title
	p.Add(plotters...)

	labels := make([]string, len(cats))
	for i, x := range cats {
		labels[i] = catField.Format(x)
	}
	if len(labels) > 0 {
		p.NominalX(labels...)
	}
	p.X.Min, p.X.Max = -0.5, float64(len(cats))-0.5
	p.X.Label.Text = categorical
	rotateTickLabels(&p.X, 90)
	p.Y.Label.Text = continuous
	p.Y.Tick.Marker = PlainTicks{}

	for h, x := range hues {
		p.Legend.Add(hueField.Format(x), geom.Swatch{Color: boxes.Fills[h]})
	}
	p.Legend.Top = true
	p.Legend.Left = false

	return drawn, nil
}

// DrawColumnBoxplot draws a single horizontal boxplot of values into
// panel. The x axis carries the values and is labeled name.
func DrawColumnBoxplot(panel *Panel, name string, values []float64, title string, theme Theme) error {
	boxes := theme.boxes(1)
	boxes.Horizontal = true
	plotters, err := boxes.Plotters([]geom.Cell{{Values: plotter.Values(values)}})
	if err != nil {
		return fmt.Errorf("eda: boxplot of %s: %w", name, err)
	}

	p := panel.Plot
	p.Title.Text = title
	p.Add(plotters...)
	p.X.Label.Text = name
	p.X.Tick.Marker = PlainTicks{}
	p.HideY()
	return nil
}

// DrawScatter draws y over x into panel, restricted to the rows where
// x < xCutoff and y < yCutoff. It returns the number of points drawn.
func DrawScatter(panel *Panel, df *DataFrame, x, y string, xCutoff, yCutoff float64,
	title string, theme Theme) (int, error) {

	xs, err := df.Float(x)
	if err != nil {
		return 0, err
	}
	ys, err := df.Float(y)
	if err != nil {
		return 0, err
	}
	var px, py []float64
	for i := range xs {
		if xs[i] < xCutoff && ys[i] < yCutoff {
			px = append(px, xs[i])
			py = append(py, ys[i])
		}
	}

	style := GlyphStyle(MergeStyles(theme.PointStyle, DefaultTheme.PointStyle))
	points, err := geom.Points(px, py, style)
	if err != nil {
		return 0, fmt.Errorf("eda: scatter of %s over %s: %w", y, x, err)
	}

	p := panel.Plot
	p.Title.Text = title
	p.Add(points)
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.X.Tick.Marker = PlainTicks{}
	p.Y.Tick.Marker = PlainTicks{}
	return len(px), nil
}

// DrawDensity adds the kernel density estimate of values as the i'th
// labeled curve of panel.
func DrawDensity(panel *Panel, values []float64, label string, i int,
	points int, cut float64, theme Theme) error {

	curve, err := stat.KDE(values, points, cut)
	if err != nil {
		return fmt.Errorf("eda: density of %s: %w", label, err)
	}
	line, err := geom.Curve(curve.X, curve.Y, LineStyle(theme.LineStyleFor(i)))
	if err != nil {
		return err
	}

	p := panel.Plot
	p.Add(line)
	p.Legend.Add(label, line)
	p.Legend.Top = true
	return nil
}
