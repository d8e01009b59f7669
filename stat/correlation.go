package stat

import (
	gstat "gonum.org/v1/gonum/stat"
)

// Pearson returns the linear correlation coefficient of the paired
// samples x and y. Constant samples yield NaN.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	return gstat.Correlation(x, y, nil), nil
}

// Strength is the verbal classification of a correlation coefficient.
type Strength int

const (
	NoCorrelation Strength = iota
	PerfectPositive
	PerfectNegative
	StrongPositive
	ModeratePositive
	WeakPositive
	StrongNegative
	ModerateNegative
	WeakNegative
)

var strengthNames = []string{
	NoCorrelation:    "No correlation",
	PerfectPositive:  "Perfect positive correlation (+1)",
	PerfectNegative:  "Perfect negative correlation (-1)",
	StrongPositive:   "Strong positive correlation",
	ModeratePositive: "Moderate positive correlation",
	WeakPositive:     "Weak positive correlation",
	StrongNegative:   "Strong negative correlation",
	ModerateNegative: "Moderate negative correlation",
	WeakNegative:     "Weak negative correlation",
}

func (s Strength) String() string {
	if s < 0 || int(s) >= len(strengthNames) {
		return "Strength(?)"
	}
	return strengthNames[s]
}

// Classify maps r to its Strength. The first matching rule wins and all
// thresholds are exclusive, so 0.7 is a moderate correlation. NaN is
// classified as NoCorrelation.
func Classify(r float64) Strength {
	switch {
	case r == 1:
		return PerfectPositive
	case r == -1:
		return PerfectNegative
	case r > 0.7:
		return StrongPositive
	case r > 0.3:
		return ModeratePositive
	case r > 0:
		return WeakPositive
	case r < -0.7:
		return StrongNegative
	case r < -0.3:
		return ModerateNegative
	case r < 0:
		return WeakNegative
	}
	return NoCorrelation
}
