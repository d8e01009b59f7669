// Package eda provides exploratory data analysis helpers for tabular
// data: descriptive statistics, outlier bounds, correlation summaries
// and the matching boxplots, scatterplots and density charts.
//
// # Data Frames
//
// Data is held in a column oriented DataFrame. It can be built column
// by column
//
//	df := eda.NewDataFrame("loans", nil)
//	df.AddStrings("Gender", gender)
//	df.AddFloats("Income", income)
//
// or from a slice of structs:
//
//	type Loan struct {
//	    Gender string
//	    Income float64
//	    Age    int
//	}
//	df, err := eda.NewDataFrameFrom(loans)
//
// Exported fields of integer, float or string kind become columns.
// Methods without parameters returning such a kind are computed columns:
//
//	func (l Loan) Decade() int { return 10 * (l.Age / 10) }
//
// All values are stored as float64. String values are indices into a
// StringPool shared by all frames derived from the same data.
//
// # Analyses
//
// An Explorer prints its findings to an io.Writer and hands each finished
// Figure to a Display:
//
//	ex := eda.NewExplorer(os.Stdout, eda.NewFileDisplay("out", "png"),
//	    eda.WithLogger(logger))
//	err := ex.AnalyzeColumn(df, "Income")
//
// The two-dataset analyses (AnalyzeThreeColumns, BiBoxplot,
// KDEWithoutOutliers) compare the rows with payment difficulties to the
// rows with on-time payments. Values beyond an outlier bound are cut
// from the charts.
//
// # Figures
//
// Figures are grids of gonum plots. No drawing state is shared between
// calls: every analysis creates its own Figure, and the Draw* functions
// draw into an explicit Panel.
package eda
