package boardgen

import (
	"math/rand"

	codenames "github.com/hbiede/Codenames-Board-Generator"
)

// FromPool builds the public word board from a candidate pool. Duplicates
// are dropped (first occurrence wins), the survivors are shuffled, and the
// first 25 land on the grid row by row. Fails with an
// *InsufficientWordsError if fewer than 25 unique words remain.
func FromPool(words []string, r *rand.Rand) (*codenames.Grid, error) {
	used := make(map[string]struct{}, len(words))
	var pool []string
	for _, w := range words {
		if _, ok := used[w]; ok {
			continue
		}
		used[w] = struct{}{}
		pool = append(pool, w)
	}
	if len(pool) < codenames.Size {
		return nil, &codenames.InsufficientWordsError{Need: codenames.Size, Have: len(pool)}
	}

	selected := make([]string, codenames.Size)
	for i, idx := range r.Perm(len(pool))[:codenames.Size] {
		selected[i] = pool[idx]
	}
	return fill(selected), nil
}

// FromExact builds the public word board from exactly 25 words, preserving
// the caller's order: word i lands at row i/5, column i%5. No shuffling, no
// deduplication.
func FromExact(words []string) (*codenames.Grid, error) {
	if len(words) != codenames.Size {
		return nil, &codenames.InsufficientWordsError{Need: codenames.Size, Have: len(words)}
	}
	return fill(words), nil
}

func fill(words []string) *codenames.Grid {
	g := codenames.NewGrid(codenames.Rows)
	for i, w := range words {
		g.Set(i/codenames.Columns, i%codenames.Columns, w)
	}
	return g
}
