package codenames

import "fmt"

// CapacityError means a placement asked for more tiles than the grid has
// unfilled cells. It indicates a caller bug, so nothing recovers from it.
type CapacityError struct {
	Requested int
	Empty     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("codenames: requested %d tiles, only %d empty cells", e.Requested, e.Empty)
}

// InsufficientWordsError means the word pool came up short of a full board
// after cleaning and deduplication.
type InsufficientWordsError struct {
	Need int
	Have int
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("codenames: need %d unique words, have %d", e.Need, e.Have)
}
