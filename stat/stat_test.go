package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

var oneToTen = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

func TestQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		x    []float64
		want float64
	}{
		{0.25, oneToTen, 3.25},
		{0.5, oneToTen, 5.5},
		{0.75, oneToTen, 7.75},
		{0, oneToTen, 1},
		{1, oneToTen, 10},
		{0.5, []float64{7}, 7},
		{0.25, []float64{10, 1, 4, 3, 2}, 2},
		{0.9, []float64{0, 10}, 9},
	}
	for i, tc := range tests {
		got, err := Quantile(tc.p, tc.x)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "case %d", i)
	}

	_, err := Quantile(0.5, nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestQuantileKeepsInput(t *testing.T) {
	x := []float64{3, 1, 2}
	_, err := Quantile(0.5, x)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, x)
}

func TestFences(t *testing.T) {
	b, err := Fences(oneToTen, Whisker)
	require.NoError(t, err)
	require.Equal(t, 3.25, b.Q1)
	require.Equal(t, 7.75, b.Q3)
	require.Equal(t, 4.5, b.IQR())
	require.Equal(t, -3.5, b.Lower)
	require.Equal(t, 14.5, b.Upper)
	require.Empty(t, Outliers(oneToTen, b))

	again, err := Fences(oneToTen, Whisker)
	require.NoError(t, err)
	require.Equal(t, b, again)

	_, err = Fences(nil, Whisker)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestFencesOrdering(t *testing.T) {
	samples := [][]float64{
		{1, 1, 1, 1},
		{-5, 100, 3, 3, 2, 7, 0.5},
		{1e6, 2e6, 3e6, 4e7},
		{42},
	}
	for i, x := range samples {
		b, err := Fences(x, Whisker)
		require.NoError(t, err)
		require.LessOrEqual(t, b.Lower, b.Q1, "sample %d", i)
		require.LessOrEqual(t, b.Q1, b.Q3, "sample %d", i)
		require.LessOrEqual(t, b.Q3, b.Upper, "sample %d", i)
		if b.IQR() > 0 {
			require.InDelta(t, 4*b.IQR(), b.Upper-b.Lower, 1e-9, "sample %d", i)
		}
		out, in := Outliers(x, b), Within(x, b)
		require.Equal(t, len(x), len(out)+len(in), "sample %d", i)
	}
}

func TestOutliers(t *testing.T) {
	x := append([]float64{-100}, oneToTen...)
	x = append(x, 100)
	b, err := Fences(x, Whisker)
	require.NoError(t, err)
	require.Equal(t, []float64{-100, 100}, Outliers(x, b))
	require.Equal(t, oneToTen, Within(x, b))
}

func TestOutlierShare(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		x[i] = float64(i % 10)
	}
	for i := 0; i < 10; i++ {
		x[i*20] = 1000
	}
	b := Bounds{Lower: -1, Upper: 100}
	share, err := OutlierShare(x, b)
	require.NoError(t, err)
	require.Equal(t, 5.0, share)

	_, err = OutlierShare(nil, b)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestMode(t *testing.T) {
	m, err := Mode([]float64{3, 2, 4, 3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, m)

	m, err = Mode([]float64{5})
	require.NoError(t, err)
	require.Equal(t, []float64{5}, m)

	m, err = Mode([]float64{9, 8, 9})
	require.NoError(t, err)
	require.Equal(t, []float64{9}, m)

	_, err = Mode(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestDescribe(t *testing.T) {
	d, err := Describe(oneToTen)
	require.NoError(t, err)
	require.Equal(t, 10, d.Count)
	require.InDelta(t, 5.5, d.Mean, 1e-12)
	require.InDelta(t, 3.0276503540974917, d.Std, 1e-12)
	require.Equal(t, 1.0, d.Min)
	require.Equal(t, 3.25, d.Q1)
	require.Equal(t, 5.5, d.Median)
	require.Equal(t, 7.75, d.Q3)
	require.Equal(t, 10.0, d.Max)

	d, err = Describe([]float64{4})
	require.NoError(t, err)
	require.True(t, math.IsNaN(d.Std))

	_, err = Describe(nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestPearson(t *testing.T) {
	neg := make([]float64, len(oneToTen))
	for i, v := range oneToTen {
		neg[i] = -v
	}

	r, err := Pearson(oneToTen, oneToTen)
	require.NoError(t, err)
	require.Equal(t, 1.0, r)
	require.Equal(t, PerfectPositive, Classify(r))

	r, err = Pearson(oneToTen, neg)
	require.NoError(t, err)
	require.Equal(t, -1.0, r)
	require.Equal(t, PerfectNegative, Classify(r))

	_, err = Pearson(oneToTen, neg[1:])
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Pearson(nil, nil)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    float64
		want string
	}{
		{1, "Perfect positive correlation (+1)"},
		{-1, "Perfect negative correlation (-1)"},
		{0.95, "Strong positive correlation"},
		{0.7, "Moderate positive correlation"},
		{0.7000001, "Strong positive correlation"},
		{0.5, "Moderate positive correlation"},
		{0.3, "Weak positive correlation"},
		{0.01, "Weak positive correlation"},
		{0, "No correlation"},
		{-0.01, "Weak negative correlation"},
		{-0.3, "Weak negative correlation"},
		{-0.31, "Moderate negative correlation"},
		{-0.7, "Moderate negative correlation"},
		{-0.71, "Strong negative correlation"},
		{math.NaN(), "No correlation"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Classify(tc.r).String(), "r=%v", tc.r)
	}
}

func TestKDE(t *testing.T) {
	x := []float64{1, 2, 2.5, 3, 3, 3.5, 4, 6}
	c, err := KDE(x, 200, 3)
	require.NoError(t, err)
	require.Len(t, c.X, 200)
	require.Len(t, c.Y, 200)

	bw := ScottBandwidth(x)
	require.InDelta(t, 1.0-3*bw, c.X[0], 1e-9)
	require.InDelta(t, 6.0+3*bw, c.X[199], 1e-9)

	// Compare against a sum of normal densities and check the
	// estimate is (almost) a probability density.
	area := 0.0
	for i := range c.X {
		want := 0.0
		for _, xi := range x {
			want += distuv.Normal{Mu: xi, Sigma: bw}.Prob(c.X[i])
		}
		want /= float64(len(x))
		require.InDelta(t, want, c.Y[i], 1e-9)
		if i > 0 {
			area += (c.X[i] - c.X[i-1]) * (c.Y[i] + c.Y[i-1]) / 2
		}
	}
	require.InDelta(t, 1, area, 0.01)

	_, err = KDE([]float64{2, 2, 2}, 10, 3)
	require.ErrorIs(t, err, ErrZeroBandwidth)
	_, err = KDE(nil, 10, 3)
	require.ErrorIs(t, err, ErrEmptyInput)
}
