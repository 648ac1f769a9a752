package format

import (
	"fmt"
	"io"

	codenames "github.com/hbiede/Codenames-Board-Generator"
	"github.com/olekukonko/tablewriter"
)

// RenderColor writes the word board to w as a bordered table with each word
// colored by its key marker, for terminals that support ANSI colors. Pass a
// nil key to print the words uncolored.
func RenderColor(w io.Writer, words, key *codenames.Grid) error {
	if key != nil && words.Size() != key.Size() {
		return fmt.Errorf("format: word board is %dx%d, key is %dx%d",
			words.Size(), words.Size(), key.Size(), key.Size())
	}

	table := tablewriter.NewWriter(w)
	for row := 0; row < words.Size(); row++ {
		var cells []string
		var colors []tablewriter.Colors
		for col := 0; col < words.Size(); col++ {
			var c tablewriter.Colors
			if key != nil {
				m, ok := codenames.ParseMarker(key.At(row, col))
				if !ok {
					return fmt.Errorf("format: bad marker code %q at row %d, column %d", key.At(row, col), row, col)
				}
				switch m {
				case codenames.BlueAgent:
					c = append(c, tablewriter.FgBlueColor)
				case codenames.RedAgent:
					c = append(c, tablewriter.FgHiRedColor)
				case codenames.Assassin:
					c = append(c, tablewriter.BgHiRedColor)
				}
			}
			colors = append(colors, c)
			cells = append(cells, words.At(row, col))
		}
		table.Rich(cells, colors)
	}
	table.Render()
	return nil
}
