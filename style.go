package eda

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/eda/geom"
)

// AesMapping holds fixed (non-mapped) aesthetics like
//
//	"color": "#aa0000", "shape": "solid-diamond", "size": "3"
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, v := range m {
		c[a] = v
	}
	return c
}

// MergeStyles merges the set values of all ams. Earlier mappings take
// precedence over later ones.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for i := len(ams) - 1; i >= 0; i-- {
		for a, v := range ams[i] {
			if v == "" {
				continue
			}
			merged[a] = v
		}
	}
	return merged
}

// String2Float parses s as a number clamped to [low,high]. Values with a
// trailing "%" are percentages. Malformed input yields 0.5.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.5
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets the alpha channel of c to a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a * 0xff)}
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	if n, err := strconv.Atoi(s); err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "delta":
		return DeltaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "solid-diamond":
		return SolidDiamondPoint
	case "solid-delta":
		return SolidDeltaPoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

// Glyph returns the glyph drawer for shape. BlankPoint draws nothing.
func (shape PointShape) Glyph() draw.GlyphDrawer {
	switch shape {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint, SolidDeltaPoint:
		return draw.TriangleGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDiamondPoint:
		return geom.SolidDiamond{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return geom.Blank{}
}

// String2PointSize parses the glyph radius in points; default 3.
func String2PointSize(s string) vg.Length {
	if n, err := strconv.ParseFloat(s, 64); err == nil && n > 0 {
		return vg.Points(n)
	}
	return vg.Points(3)
}

// GlyphStyle converts the "color", "alpha", "shape" and "size" aesthetics.
func GlyphStyle(am AesMapping) draw.GlyphStyle {
	alpha := 1.0
	if a, ok := am["alpha"]; ok {
		alpha = String2Float(a, 0, 1)
	}
	return draw.GlyphStyle{
		Color:  SetAlpha(String2Color(am["color"]), alpha),
		Radius: String2PointSize(am["size"]),
		Shape:  String2PointShape(am["shape"]).Glyph(),
	}
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
)

func String2LineType(s string) LineType {
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	}
	return BlankLine
}

// Dashes returns the dash pattern of lt.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

// LineStyle converts the "color", "alpha", "size" and "linetype" aesthetics.
// A blank line has zero width.
func LineStyle(am AesMapping) draw.LineStyle {
	alpha := 1.0
	if a, ok := am["alpha"]; ok {
		alpha = String2Float(a, 0, 1)
	}
	lt := String2LineType(am["linetype"])
	width := vg.Points(1)
	if s, err := strconv.ParseFloat(am["size"], 64); err == nil {
		width = vg.Points(s)
	}
	if lt == BlankLine {
		width = 0
	}
	return draw.LineStyle{
		Color:  SetAlpha(String2Color(am["color"]), alpha),
		Width:  width,
		Dashes: lt.Dashes(),
	}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// Unknown colors are a translucent pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}
	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
