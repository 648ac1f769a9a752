// Package format renders boards as aligned text tables for printing.
package format

import (
	"fmt"
	"strings"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

// LongestCell returns the length of the longest cell in the grid, used as
// the column width when rendering. A grid with no cells at all returns -1.
func LongestCell(g *codenames.Grid) int {
	longest := -1
	for _, row := range g.Rows() {
		for _, cell := range row {
			if len(cell) > longest {
				longest = len(cell)
			}
		}
	}
	return longest
}

// FormatCell renders a word with its key marker for the combined view.
// Bystander tiles show the bare word.
func FormatCell(word string, marker codenames.Marker) string {
	if marker == codenames.NoMarker {
		return word
	}
	return fmt.Sprintf("%s (%s)", word, marker.Code())
}

// Combined derives a new grid annotating each word with its key marker. The
// inputs are not modified. Fails if the grids disagree on size or the key
// holds something that isn't a marker code.
func Combined(words, key *codenames.Grid) (*codenames.Grid, error) {
	if words.Size() != key.Size() {
		return nil, fmt.Errorf("format: word board is %dx%d, key is %dx%d",
			words.Size(), words.Size(), key.Size(), key.Size())
	}
	out := codenames.NewGrid(words.Size())
	for row := 0; row < words.Size(); row++ {
		for col := 0; col < words.Size(); col++ {
			m, ok := codenames.ParseMarker(key.At(row, col))
			if !ok {
				return nil, fmt.Errorf("format: bad marker code %q at row %d, column %d", key.At(row, col), row, col)
			}
			out.Set(row, col, FormatCell(words.At(row, col), m))
		}
	}
	return out, nil
}

// Render lays the grid out as a text table. Every cell is left-justified to
// the width of the longest cell, cells are separated by " | ", and each row
// is fenced with a leading and trailing "| ". Rows are newline-separated.
// The grid is not modified.
func Render(g *codenames.Grid) string {
	width := LongestCell(g)

	var rows []string
	for _, row := range g.Rows() {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%-*s", width, cell)
		}
		rows = append(rows, "| "+strings.Join(cells, " | ")+" | ")
	}
	return strings.Join(rows, "\n")
}
