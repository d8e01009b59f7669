package eda

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a grid of panels which are drawn and shown together.
//
// There is no implicit "current figure": a figure is created with
// NewFigure, every drawing function is handed the Panel to draw into
// and the finished figure is passed to a Display.
type Figure struct {
	Title         string
	Width, Height vg.Length

	// Padding is the space around the figure and between its panels.
	Padding vg.Length

	// Panels are indexed as Panels[row][col].
	Panels [][]*Panel
}

// Panel is one cell of a figure.
type Panel struct {
	Figure   *Figure
	Row, Col int

	// Plot is the underlying gonum plot the panel draws into.
	Plot *plot.Plot
}

// NewFigure creates a figure of the given size with rows x cols empty panels.
func NewFigure(title string, width, height vg.Length, rows, cols int) *Figure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	fig := &Figure{
		Title:  title,
		Width:  width,
		Height: height,
		Panels: make([][]*Panel, rows),
	}
	for r := range fig.Panels {
		fig.Panels[r] = make([]*Panel, cols)
		for c := range fig.Panels[r] {
			fig.Panels[r][c] = &Panel{
				Figure: fig,
				Row:    r,
				Col:    c,
				Plot:   plot.New(),
			}
		}
	}
	return fig
}

func (f *Figure) Rows() int { return len(f.Panels) }
func (f *Figure) Cols() int { return len(f.Panels[0]) }

// Panel returns the panel at row and col or nil if there is no such panel.
func (f *Figure) Panel(row, col int) *Panel {
	if row < 0 || row >= f.Rows() || col < 0 || col >= f.Cols() {
		return nil
	}
	return f.Panels[row][col]
}

// Draw lays out all panels on dc. Axes of panels in the same row or
// column are aligned.
func (f *Figure) Draw(dc draw.Canvas) {
	plots := make([][]*plot.Plot, f.Rows())
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols())
		for c := range plots[r] {
			plots[r][c] = f.Panels[r][c].Plot
		}
	}

	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadTop:    f.Padding,
		PadBottom: f.Padding,
		PadLeft:   f.Padding,
		PadRight:  f.Padding,
		PadX:      f.Padding,
		PadY:      f.Padding,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
}

// WriterTo renders f in the given image format (png, svg, pdf, eps,
// jpg, tif).
func (f *Figure) WriterTo(format string) (vg.CanvasWriterTo, error) {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, err
	}
	f.Draw(draw.New(c))
	return c, nil
}
