package format

import (
	"fmt"
	"strings"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

var agentNames = map[codenames.Marker]string{
	codenames.NoMarker:  "bystander",
	codenames.BlueAgent: "blue",
	codenames.RedAgent:  "red",
	codenames.Assassin:  "assassin",
}

// Porcelain renders the board as a single comma-separated line of
// word:affiliation pairs, in row-major order, for scripts to consume.
func Porcelain(words, key *codenames.Grid) (string, error) {
	if words.Size() != key.Size() {
		return "", fmt.Errorf("format: word board is %dx%d, key is %dx%d",
			words.Size(), words.Size(), key.Size(), key.Size())
	}
	var sb strings.Builder
	for row := 0; row < words.Size(); row++ {
		for col := 0; col < words.Size(); col++ {
			m, ok := codenames.ParseMarker(key.At(row, col))
			if !ok {
				return "", fmt.Errorf("format: bad marker code %q at row %d, column %d", key.At(row, col), row, col)
			}
			if sb.Len() > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(words.At(row, col) + ":" + agentNames[m])
		}
	}
	return sb.String(), nil
}
