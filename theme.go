package eda

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme collects the fixed aesthetics used when drawing figures.
type Theme struct {
	BoxStyle, OutlierStyle, PointStyle, LineStyle AesMapping

	// Palette colors hue levels and overlaid curves in order.
	Palette []string

	// BoxWidth is the width of all boxes drawn at one category.
	BoxWidth vg.Length
}

var DefaultTheme = Theme{
	BoxStyle: AesMapping{
		"size":     "1",
		"linetype": "solid",
		"color":    "gray20",
		"alpha":    "1",
	},
	OutlierStyle: AesMapping{
		"color": "red",
		"shape": "solid-diamond",
		"size":  "3",
		"alpha": "1",
	},
	PointStyle: AesMapping{
		"size":  "2.5",
		"shape": "solid-circle",
		"color": "#4c72b0",
		"alpha": "0.8",
	},
	LineStyle: AesMapping{
		"size":     "1.5",
		"linetype": "solid",
		"alpha":    "1",
	},
	Palette: []string{
		"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
		"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
	},
	BoxWidth: vg.Points(40),
}

// Color returns the i'th palette color, cycling through the palette.
func (t Theme) Color(i int) color.Color {
	p := t.Palette
	if len(p) == 0 {
		p = DefaultTheme.Palette
	}
	return String2Color(p[i%len(p)])
}

// LineStyleFor returns the line style of the i'th overlaid curve.
func (t Theme) LineStyleFor(i int) AesMapping {
	am := MergeStyles(t.LineStyle, DefaultTheme.LineStyle)
	if _, ok := am["color"]; !ok {
		p := t.Palette
		if len(p) == 0 {
			p = DefaultTheme.Palette
		}
		am["color"] = p[i%len(p)]
	}
	return am
}
