package powerplot

import (
	"github.com/guptarohit/asciigraph"
)

// Preview renders the values as a terminal line chart. Long sequences are
// reduced to width columns, each column keeping its bucket maximum.
func Preview(values []uint64, width, height int) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	data := bucketMax(values, width)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(len(data)),
		asciigraph.Caption("values by index (max per column)"),
	)
}

func bucketMax(values []uint64, width int) []float64 {
	if len(values) <= width {
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = float64(v)
		}
		return out
	}

	out := make([]float64, width)
	for col := range out {
		start := col * len(values) / width
		end := (col + 1) * len(values) / width
		m := values[start]
		for _, v := range values[start:end] {
			m = max(m, v)
		}
		out[col] = float64(m)
	}
	return out
}
