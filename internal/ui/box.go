// Package ui renders fixed-width boxed lists for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most max display cells, appending "..."
// when it was cut. Widths are measured in terminal cells, not bytes, so
// Thai and other wide text truncates cleanly.
func Truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "...")
}

// RenderList draws the rows inside a box sized to the widest line, with
// the title in a header section.
func RenderList(w io.Writer, title string, rows []string) {
	width := runewidth.StringWidth(title)
	for _, row := range rows {
		if rw := runewidth.StringWidth(row); rw > width {
			width = rw
		}
	}

	bar := strings.Repeat("─", width+2)
	fmt.Fprintf(w, "┌%s┐\n", bar)
	fmt.Fprintf(w, "│ %s │\n", pad(title, width))
	fmt.Fprintf(w, "├%s┤\n", bar)
	for _, row := range rows {
		fmt.Fprintf(w, "│ %s │\n", pad(row, width))
	}
	fmt.Fprintf(w, "└%s┘\n", bar)
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
