// Package powerplot renders a sequence of precomputed values against its
// index as two stacked scatter plots, log-log on top and linear below, each
// with the identity line y = x for reference.
//
// # Example
//
//	values, _ := dataset.Load("power_values.txt")
//	index := dataset.IndexAxis(len(values))
//	err := powerplot.Render(values, index, powerplot.DefaultFigure(), "/tmp/power_plot.png")
//
// [Run] wraps loading, console output and rendering the way the
// `euler powerplot` command uses them.
package powerplot
