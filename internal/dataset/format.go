package dataset

import (
	"strconv"
	"strings"
)

const (
	summaryThreshold = 1000
	edgeItems        = 3
	lineWidth        = 75
)

// Format renders values as a bracketed, right-aligned list wrapped at 75
// columns, continuation lines indented by one space. Sequences longer than
// 1000 elements are summarised by their first and last three values.
func Format(values Values) string {
	if len(values) == 0 {
		return "[]"
	}

	shown := values
	summarised := len(values) > summaryThreshold
	if summarised {
		shown = append(append(Values{}, values[:edgeItems]...), values[len(values)-edgeItems:]...)
	}

	width := 0
	for _, v := range shown {
		width = max(width, len(strconv.FormatUint(v, 10)))
	}

	words := make([]string, 0, len(shown)+1)
	for i, v := range shown {
		if summarised && i == edgeItems {
			words = append(words, "...")
		}
		s := strconv.FormatUint(v, 10)
		words = append(words, strings.Repeat(" ", width-len(s))+s)
	}

	// The leading space stands in for the opening bracket; one column is
	// kept free for the closing one.
	var sb strings.Builder
	line := " "
	for i, w := range words {
		if len(line)+len(w) > lineWidth-1 && len(line) > 1 {
			sb.WriteString(strings.TrimRight(line, " "))
			sb.WriteByte('\n')
			line = " "
		}
		line += w
		if i < len(words)-1 {
			line += " "
		}
	}
	sb.WriteString(line)

	return "[" + sb.String()[1:] + "]"
}
