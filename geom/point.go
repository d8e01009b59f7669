// Package geom contains the gonum/plot plotters, glyphs and thumbnails
// used to draw exploratory charts.
package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SolidDiamond is a filled diamond glyph.
type SolidDiamond struct{}

func (SolidDiamond) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// Blank draws nothing.
type Blank struct{}

func (Blank) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

// Swatch is a legend thumbnail filling its whole area with one color.
type Swatch struct {
	Color color.Color
}

func (s Swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, c.ClipPolygonY(pts))
}
