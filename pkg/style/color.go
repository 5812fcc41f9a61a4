package style

import (
	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
)

// Cell colors the candle and cloud colors and dims the cells without a value.
func Cell(s string) string {
	switch s {
	case "green":
		return green(s)
	case "red":
		return red(s)
	case "-":
		return faint(s)
	}
	return s
}

// Cells returns a colored copy of row.
func Cells(row []string) []string {
	out := make([]string, len(row))
	for i, s := range row {
		out[i] = Cell(s)
	}
	return out
}
