package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Cell is the sample of one category and one hue level of a boxplot.
type Cell struct {
	Category int // Position on the category axis.
	Hue      int // Index of the hue level, 0 <= Hue < Boxes.Hues.
	Values   plotter.Values
}

// Boxes draws grouped boxplots: the hue levels of one category are
// dodged side by side around the position of the category.
// Horizontal boxes put the values on the x axis and the categories on
// the y axis.
type Boxes struct {
	Hues       int
	Horizontal bool
	Width    vg.Length // Width of all boxes of one category together.
	Fills    []color.Color
	BoxStyle draw.LineStyle
	Outliers draw.GlyphStyle
}

// Plotters returns one box plot per non-empty cell.
func (b Boxes) Plotters(cells []Cell) ([]plot.Plotter, error) {
	hues := b.Hues
	if hues < 1 {
		hues = 1
	}
	w := b.Width / vg.Length(hues)

	var plotters []plot.Plotter
	for _, c := range cells {
		if len(c.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(w, float64(c.Category), c.Values)
		if err != nil {
			return nil, err
		}
		box.Offset = (vg.Length(c.Hue) - vg.Length(hues-1)/2) * w
		box.Horizontal = b.Horizontal
		if len(b.Fills) > 0 {
			box.FillColor = b.Fills[c.Hue%len(b.Fills)]
		}
		box.BoxStyle = b.BoxStyle
		box.WhiskerStyle = b.BoxStyle
		box.GlyphStyle = b.Outliers
		plotters = append(plotters, box)
	}
	return plotters, nil
}
