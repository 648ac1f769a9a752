// Package boardgen builds the two halves of a printable Codenames game: the
// public 5x5 word board and the spymaster's secret key board.
package boardgen

import (
	"math/rand"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

// Assign scatters count copies of marker's code across unfilled cells of g,
// chosen uniformly at random. Filled cells are never overwritten.
//
// Placement is rejection sampling: draw a cell index, skip it if the cell is
// taken, redraw. The number of draws isn't fixed, but capacity is verified
// up front so the loop always terminates; on a failed capacity check the
// grid is left untouched.
func Assign(g *codenames.Grid, marker codenames.Marker, count int, r *rand.Rand) error {
	if err := g.EnsureCapacity(count); err != nil {
		return err
	}

	size := g.Size()
	placed := 0
	for placed < count {
		i := r.Intn(size * size)
		row, col := i/size, i%size
		if g.At(row, col) != "" {
			continue
		}
		g.Set(row, col, marker.Code())
		placed++
	}
	return nil
}
