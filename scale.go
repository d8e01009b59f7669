package eda

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// PlainTicks labels the ticks produced by Marker as plain decimal
// numbers, never in scientific notation. A nil Marker uses
// plot.DefaultTicks.
type PlainTicks struct {
	Marker plot.Ticker
}

var _ plot.Ticker = PlainTicks{}

func (t PlainTicks) Ticks(min, max float64) []plot.Tick {
	marker := t.Marker
	if marker == nil {
		marker = plot.DefaultTicks{}
	}
	ticks := marker.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = PlainFormat(ticks[i].Value)
	}
	return ticks
}

// PlainFormat formats x without exponent. Float noise below 1e-9 is
// rounded away.
func PlainFormat(x float64) string {
	if math.Abs(x) < 1e12 {
		x = math.Round(x*1e9) / 1e9
	}
	if x == 0 {
		x = 0 // no "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// rotateTickLabels rotates the tick labels of a counterclockwise by
// degrees, anchoring them at their right end.
func rotateTickLabels(a *plot.Axis, degrees float64) {
	a.Tick.Label.Rotation = degrees * math.Pi / 180
	a.Tick.Label.XAlign = draw.XRight
	a.Tick.Label.YAlign = draw.YCenter
}
