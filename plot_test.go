package eda

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// recordingDisplay keeps every shown figure after rendering it, so that
// tests catch figures which cannot be drawn.
type recordingDisplay struct {
	mu      sync.Mutex
	figures []*Figure
}

func (d *recordingDisplay) Show(fig *Figure) error {
	w, err := fig.WriterTo("png")
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.figures = append(d.figures, fig)
	return nil
}

func TestFigure(t *testing.T) {
	fig := NewFigure("two panels", 8*vg.Inch, 4*vg.Inch, 1, 2)
	assert.Equal(t, 1, fig.Rows())
	assert.Equal(t, 2, fig.Cols())

	right := fig.Panel(0, 1)
	require.NotNil(t, right)
	assert.Equal(t, 1, right.Col)
	assert.Same(t, fig, right.Figure)
	assert.NotSame(t, fig.Panel(0, 0).Plot, right.Plot)
	assert.Nil(t, fig.Panel(1, 0))
	assert.Nil(t, fig.Panel(0, -1))

	degenerate := NewFigure("", vg.Inch, vg.Inch, 0, 0)
	assert.Equal(t, 1, degenerate.Rows())
	assert.Equal(t, 1, degenerate.Cols())
}

func TestFigureWriterTo(t *testing.T) {
	fig := NewFigure("Boxplot for x", 4*vg.Inch, 3*vg.Inch, 1, 1)
	require.NoError(t, DrawColumnBoxplot(fig.Panel(0, 0), "x",
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 100}, fig.Title, DefaultTheme))

	for _, format := range []string{"png", "svg"} {
		w, err := fig.WriterTo(format)
		require.NoError(t, err, format)
		var buf bytes.Buffer
		_, err = w.WriteTo(&buf)
		require.NoError(t, err, format)
		assert.NotZero(t, buf.Len(), format)
	}

	_, err := fig.WriterTo("bmp")
	assert.Error(t, err)
}

func TestFileDisplay(t *testing.T) {
	dir := t.TempDir()
	d := NewFileDisplay(dir, "svg")

	for _, title := range []string{"Boxplot for AMT_INCOME", "", "Age / Income"} {
		fig := NewFigure(title, 3*vg.Inch, 2*vg.Inch, 1, 1)
		require.NoError(t, d.Show(fig))
	}

	written := d.Written()
	require.Len(t, written, 3)
	assert.Equal(t, filepath.Join(dir, "001-boxplot-for-amt-income.svg"), written[0])
	assert.Equal(t, filepath.Join(dir, "002-figure.svg"), written[1])
	assert.Equal(t, filepath.Join(dir, "003-age-income.svg"), written[2])
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	bad := NewFileDisplay(filepath.Join(dir, "missing"), "png")
	assert.Error(t, bad.Show(NewFigure("x", vg.Inch, vg.Inch, 1, 1)))
	assert.Empty(t, bad.Written())
}

func TestPlainTicks(t *testing.T) {
	ticks := PlainTicks{}.Ticks(0, 2.5e6)
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.NotContains(t, tick.Label, "e+")
		assert.NotContains(t, tick.Label, "e-")
	}

	ticks = PlainTicks{Marker: plot.ConstantTicks{{Value: 1e7, Label: "1e+07"}, {Value: 5}}}.Ticks(0, 1e7)
	assert.Equal(t, "10000000", ticks[0].Label)
	assert.Equal(t, "", ticks[1].Label, "minor ticks stay unlabeled")

	assert.Equal(t, "0.3", PlainFormat(0.1+0.2))
	assert.Equal(t, "0", PlainFormat(-0.0000000000001))
	assert.Equal(t, "-1250", PlainFormat(-1250))
	assert.False(t, strings.Contains(PlainFormat(1e21), "e"))
}
