// Package stat provides the numerical routines behind the exploratory
// helpers in package eda. All functions work on plain float64 slices
// and never modify their input.
package stat

import (
	"errors"
	"math"
	"sort"

	gstat "gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput is returned for statistics which are undefined on
	// an empty sample.
	ErrEmptyInput = errors.New("stat: empty input")

	// ErrLengthMismatch is returned if paired samples differ in length.
	ErrLengthMismatch = errors.New("stat: length mismatch")
)

// Whisker is the conventional IQR multiplier of Tukey's fences.
const Whisker = 1.5

func sortedCopy(x []float64) []float64 {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	return s
}

// Quantile returns the p-quantile of x. Non-integral ranks are linearly
// interpolated between the two closest order statistics, i.e. the rank
// of p is (n-1)*p.
func Quantile(p float64, x []float64) (float64, error) {
	if len(x) == 0 {
		return math.NaN(), ErrEmptyInput
	}
	return quantileSorted(p, sortedCopy(x)), nil
}

func quantileSorted(p float64, s []float64) float64 {
	h := float64(len(s)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(s) {
		return s[len(s)-1]
	}
	return s[i] + (h-lo)*(s[i+1]-s[i])
}

// Median is the 0.5 quantile of x.
func Median(x []float64) (float64, error) {
	return Quantile(0.5, x)
}

// Mode returns the most frequent values of x in ascending order.
// Several values are returned if they are tied.
func Mode(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	s := sortedCopy(x)

	var modes []float64
	best := 0
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		switch n := j - i; {
		case n > best:
			best = n
			modes = append(modes[:0], s[i])
		case n == best:
			modes = append(modes, s[i])
		}
		i = j
	}
	return modes, nil
}

// Description is the usual summary of a sample.
type Description struct {
	Count  int
	Mean   float64
	Std    float64 // Sample standard deviation (n-1 in the denominator).
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes x. The standard deviation of a single value is NaN.
func Describe(x []float64) (Description, error) {
	if len(x) == 0 {
		return Description{}, ErrEmptyInput
	}
	s := sortedCopy(x)
	d := Description{
		Count:  len(s),
		Mean:   gstat.Mean(s, nil),
		Std:    math.NaN(),
		Min:    s[0],
		Q1:     quantileSorted(0.25, s),
		Median: quantileSorted(0.5, s),
		Q3:     quantileSorted(0.75, s),
		Max:    s[len(s)-1],
	}
	if len(s) > 1 {
		d.Std = gstat.StdDev(s, nil)
	}
	return d, nil
}
