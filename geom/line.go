package geom

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Curve returns a line through the points (xs[i], ys[i]).
func Curve(xs, ys []float64, style draw.LineStyle) (*plotter.Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("geom: %d x values but %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle = style
	return line, nil
}

// Points returns a scatter of the points (xs[i], ys[i]).
func Points(xs, ys []float64, style draw.GlyphStyle) (*plotter.Scatter, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("geom: %d x values but %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = style
	return s, nil
}
