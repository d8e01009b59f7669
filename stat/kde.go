package stat

import (
	"errors"
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// ErrZeroBandwidth is returned by KDE for samples without spread.
var ErrZeroBandwidth = errors.New("stat: zero bandwidth")

// Curve is a function sampled at the points X.
type Curve struct {
	X, Y []float64
}

// ScottBandwidth is Scott's rule of thumb n^(-1/5) * s for the
// bandwidth of a Gaussian kernel.
func ScottBandwidth(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	return math.Pow(float64(len(x)), -0.2) * gstat.StdDev(x, nil)
}

// KDE estimates the density of x with a Gaussian kernel. The estimate
// is evaluated on an equidistant grid of the given number of points
// which extends cut bandwidths beyond the extreme values of x.
func KDE(x []float64, points int, cut float64) (Curve, error) {
	if len(x) == 0 {
		return Curve{}, ErrEmptyInput
	}
	bw := ScottBandwidth(x)
	if bw == 0 || math.IsNaN(bw) {
		return Curve{}, ErrZeroBandwidth
	}
	if points < 2 {
		points = 2
	}

	kde := mstats.KDE{
		Sample:    mstats.Sample{Xs: x},
		Kernel:    mstats.GaussianKernel,
		Bandwidth: bw,
	}
	lo := floats.Min(x) - cut*bw
	hi := floats.Max(x) + cut*bw
	c := Curve{
		X: floats.Span(make([]float64, points), lo, hi),
		Y: make([]float64, points),
	}
	for i, v := range c.X {
		c.Y[i] = kde.PDF(v)
	}
	return c, nil
}
