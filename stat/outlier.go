package stat

// Bounds are Tukey's fences of a sample: values below Lower or above
// Upper are outliers.
type Bounds struct {
	Q1, Q3       float64
	Lower, Upper float64
}

// IQR is the interquartile range Q3-Q1.
func (b Bounds) IQR() float64 { return b.Q3 - b.Q1 }

// Contains reports whether v lies within the closed interval [Lower,Upper].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// Fences computes the outlier bounds Q1-k*IQR and Q3+k*IQR of x.
// A zero IQR yields Lower == Q1 and Upper == Q3.
func Fences(x []float64, k float64) (Bounds, error) {
	if len(x) == 0 {
		return Bounds{}, ErrEmptyInput
	}
	s := sortedCopy(x)
	b := Bounds{
		Q1: quantileSorted(0.25, s),
		Q3: quantileSorted(0.75, s),
	}
	iqr := b.IQR()
	b.Lower = b.Q1 - k*iqr
	b.Upper = b.Q3 + k*iqr
	return b, nil
}

// Outliers returns the values of x outside b in their original order.
func Outliers(x []float64, b Bounds) []float64 {
	var out []float64
	for _, v := range x {
		if !b.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Within returns the values of x inside b in their original order.
func Within(x []float64, b Bounds) []float64 {
	in := make([]float64, 0, len(x))
	for _, v := range x {
		if b.Contains(v) {
			in = append(in, v)
		}
	}
	return in
}

// OutlierShare is the percentage of values of x outside b.
func OutlierShare(x []float64, b Bounds) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	return float64(len(Outliers(x, b))) * 100 / float64(len(x)), nil
}
