package eda

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/stat"
)

// Size is the size of a figure.
type Size struct {
	Width, Height vg.Length
}

// Options control the output of an Explorer.
type Options struct {
	// GroupLimit is the number of groups printed per dataset by
	// AnalyzeThreeColumns. Zero prints all groups.
	GroupLimit int

	// Whisker is the IQR multiplier of the outlier bounds.
	Whisker float64

	// SeparateCutoffs makes AnalyzeThreeColumns cut each dataset at its
	// own upper outlier bound. By default the difficulty panel is cut at
	// the on-time bound and vice versa.
	SeparateCutoffs bool

	// KDEPoints is the number of grid points a density is evaluated
	// at; KDECut is how many bandwidths the grid extends beyond the data.
	KDEPoints int
	KDECut    float64

	// Padding around and between panels in multiples of the font size.
	Padding float64

	ColumnFigure  Size
	BiBoxFigure   Size
	ScatterFigure Size
	KDEFigure     Size

	Theme Theme
}

func DefaultOptions() Options {
	return Options{
		GroupLimit:    5,
		Whisker:       stat.Whisker,
		KDEPoints:     200,
		KDECut:        3,
		Padding:       4,
		ColumnFigure:  Size{8 * vg.Inch, 6 * vg.Inch},
		BiBoxFigure:   Size{16 * vg.Inch, 10 * vg.Inch},
		ScatterFigure: Size{14 * vg.Inch, 6 * vg.Inch},
		KDEFigure:     Size{14 * vg.Inch, 6 * vg.Inch},
		Theme:         DefaultTheme,
	}
}

// Option configures an Explorer.
type Option func(*Explorer)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Explorer) { e.Logger = logger }
}

func WithOptions(opts Options) Option {
	return func(e *Explorer) { e.Options = opts }
}
