package boardgen

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	codenames "github.com/hbiede/Codenames-Board-Generator"
)

func markerCounts(g *codenames.Grid) map[string]int {
	counts := make(map[string]int)
	for _, row := range g.Rows() {
		for _, cell := range row {
			counts[cell]++
		}
	}
	return counts
}

func TestAssign(t *testing.T) {
	tests := []struct {
		desc   string
		size   int
		counts []int
	}{
		{desc: "full board", size: 5, counts: []int{9, 8, 1}},
		{desc: "small board", size: 3, counts: []int{4, 3}},
		{desc: "to the brim", size: 2, counts: []int{2, 2}},
		{desc: "single tile", size: 1, counts: []int{1}},
	}

	markers := []codenames.Marker{codenames.BlueAgent, codenames.RedAgent, codenames.Assassin}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			r := rand.New(rand.NewSource(0))
			g := codenames.NewGrid(test.size)

			total := 0
			for i, count := range test.counts {
				if err := Assign(g, markers[i], count, r); err != nil {
					t.Fatalf("Assign(%v, %d) = %v", markers[i], count, err)
				}
				total += count
			}

			counts := markerCounts(g)
			for i, count := range test.counts {
				if got := counts[markers[i].Code()]; got != count {
					t.Errorf("placed %d %v tiles, want %d", got, markers[i], count)
				}
			}
			if got, want := g.EmptyCount(), test.size*test.size-total; got != want {
				t.Errorf("EmptyCount() = %d, want %d", got, want)
			}
		})
	}
}

func TestAssignDoesNotDisturbFilledCells(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := codenames.NewGrid(5)
	if err := Assign(g, codenames.BlueAgent, 9, r); err != nil {
		t.Fatalf("Assign(BlueAgent, 9) = %v", err)
	}

	before := g.Rows()
	if err := Assign(g, codenames.RedAgent, 8, r); err != nil {
		t.Fatalf("Assign(RedAgent, 8) = %v", err)
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if before[row][col] != "" && g.At(row, col) != before[row][col] {
				t.Errorf("cell (%d, %d) was overwritten: %q -> %q", row, col, before[row][col], g.At(row, col))
			}
		}
	}
}

func TestAssignCapacityError(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	g := codenames.NewGrid(2)
	if err := Assign(g, codenames.BlueAgent, 3, r); err != nil {
		t.Fatalf("Assign(BlueAgent, 3) = %v", err)
	}

	snapshot := g.Clone()
	err := Assign(g, codenames.RedAgent, 2, r)

	var capErr *codenames.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Assign(RedAgent, 2) = %v, want *CapacityError", err)
	}
	if capErr.Requested != 2 || capErr.Empty != 1 {
		t.Errorf("CapacityError = {Requested: %d, Empty: %d}, want {Requested: 2, Empty: 1}", capErr.Requested, capErr.Empty)
	}
	if !g.Equal(snapshot) {
		t.Errorf("failed Assign modified the grid (-want +got)\n%s", cmp.Diff(snapshot.Rows(), g.Rows()))
	}
}

func TestNewKeyCounts(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		key, starter, err := NewKey(r)
		if err != nil {
			t.Fatalf("NewKey() = %v", err)
		}
		if starter != codenames.BlueTeam && starter != codenames.RedTeam {
			t.Fatalf("NewKey() starter = %v", starter)
		}

		counts := markerCounts(key)
		if got := counts[starter.Marker().Code()]; got != codenames.FirstMoverTiles {
			t.Errorf("starter %v has %d tiles, want %d", starter, got, codenames.FirstMoverTiles)
		}
		if got := counts[starter.Other().Marker().Code()]; got != codenames.SecondMoverTiles {
			t.Errorf("team %v has %d tiles, want %d", starter.Other(), got, codenames.SecondMoverTiles)
		}
		if got := counts[codenames.Assassin.Code()]; got != codenames.AssassinTiles {
			t.Errorf("board has %d assassins, want %d", got, codenames.AssassinTiles)
		}
		if got, want := counts[""], codenames.Size-codenames.FirstMoverTiles-codenames.SecondMoverTiles-codenames.AssassinTiles; got != want {
			t.Errorf("board has %d bystanders, want %d", got, want)
		}
	}
}

// The coin flip is uniform, so over a big sample both teams should start a
// healthy share of games. The bounds are loose enough that a fair coin
// basically can't fail them.
func TestNewKeyStarterDistribution(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	const runs = 500
	blueStarts := 0
	for i := 0; i < runs; i++ {
		_, starter, err := NewKey(r)
		if err != nil {
			t.Fatalf("NewKey() = %v", err)
		}
		if starter == codenames.BlueTeam {
			blueStarts++
		}
	}

	if blueStarts < 150 || blueStarts > 350 {
		t.Errorf("blue started %d of %d games, suspiciously far from half", blueStarts, runs)
	}
}

func TestFromPool(t *testing.T) {
	pool := []string{"drill", "drill", "button"}
	for i := 0; i < 30; i++ {
		pool = append(pool, "word"+string(rune('a'+i)))
	}

	r := rand.New(rand.NewSource(3))
	g, err := FromPool(pool, r)
	if err != nil {
		t.Fatalf("FromPool() = %v", err)
	}

	seen := make(map[string]bool)
	inPool := make(map[string]bool)
	for _, w := range pool {
		inPool[w] = true
	}
	for _, row := range g.Rows() {
		for _, cell := range row {
			if cell == "" {
				t.Errorf("board has an unfilled cell")
			}
			if seen[cell] {
				t.Errorf("word %q appears twice on the board", cell)
			}
			seen[cell] = true
			if !inPool[cell] {
				t.Errorf("word %q isn't in the pool", cell)
			}
		}
	}
	if got, want := len(seen), codenames.Size; got != want {
		t.Errorf("board has %d distinct words, want %d", got, want)
	}
}

// Fifty draws from a pool of 32 words should not all pick the identical
// board. If they do, the shuffle isn't shuffling.
func TestFromPoolShuffles(t *testing.T) {
	var pool []string
	for i := 0; i < 32; i++ {
		pool = append(pool, "word"+string(rune('a'+i)))
	}

	r := rand.New(rand.NewSource(5))
	boards := make(map[string]bool)
	for i := 0; i < 50; i++ {
		g, err := FromPool(pool, r)
		if err != nil {
			t.Fatalf("FromPool() = %v", err)
		}
		var words []string
		for _, row := range g.Rows() {
			words = append(words, row...)
		}
		boards[strings.Join(words, "|")] = true
	}

	if len(boards) == 1 {
		t.Errorf("50 draws produced a single board, want variety")
	}
}

func TestFromPoolExactSize(t *testing.T) {
	var pool []string
	for i := 0; i < codenames.Size; i++ {
		pool = append(pool, "word"+string(rune('a'+i)))
	}

	r := rand.New(rand.NewSource(9))
	g, err := FromPool(pool, r)
	if err != nil {
		t.Fatalf("FromPool() = %v", err)
	}

	var got []string
	for _, row := range g.Rows() {
		got = append(got, row...)
	}
	sort.Strings(got)

	want := append([]string(nil), pool...)
	sort.Strings(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("board should hold exactly the pool (-want +got)\n%s", diff)
	}
}

func TestFromPoolInsufficientWords(t *testing.T) {
	var pool []string
	for i := 0; i < 24; i++ {
		pool = append(pool, "word"+string(rune('a'+i)))
	}
	// Duplicates don't help the count.
	pool = append(pool, "worda", "wordb")

	_, err := FromPool(pool, rand.New(rand.NewSource(0)))
	var wordsErr *codenames.InsufficientWordsError
	if !errors.As(err, &wordsErr) {
		t.Fatalf("FromPool() = %v, want *InsufficientWordsError", err)
	}
	if wordsErr.Need != codenames.Size || wordsErr.Have != 24 {
		t.Errorf("InsufficientWordsError = {Need: %d, Have: %d}, want {Need: %d, Have: 24}", wordsErr.Need, wordsErr.Have, codenames.Size)
	}
}

func TestFromExactPreservesOrder(t *testing.T) {
	var words []string
	for i := 0; i < codenames.Size; i++ {
		words = append(words, "word"+string(rune('a'+i)))
	}

	g, err := FromExact(words)
	if err != nil {
		t.Fatalf("FromExact() = %v", err)
	}

	for i, w := range words {
		if got := g.At(i/codenames.Columns, i%codenames.Columns); got != w {
			t.Errorf("word %d = %q, want %q", i, got, w)
		}
	}
	// Spot-check the row-major mapping.
	if got, want := g.At(2, 3), words[13]; got != want {
		t.Errorf("At(2, 3) = %q, want %q", got, want)
	}
}

func TestFromExactWrongCount(t *testing.T) {
	_, err := FromExact([]string{"drill", "button"})
	var wordsErr *codenames.InsufficientWordsError
	if !errors.As(err, &wordsErr) {
		t.Fatalf("FromExact() = %v, want *InsufficientWordsError", err)
	}
	if wordsErr.Have != 2 {
		t.Errorf("InsufficientWordsError.Have = %d, want 2", wordsErr.Have)
	}
}
