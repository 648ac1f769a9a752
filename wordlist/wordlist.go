// Package wordlist supplies candidate word pools to the board builder. It
// owns all the file and argument handling so the generation core only ever
// sees a cleaned, deduplicated slice of words.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// FromFile reads candidate words from a file, one per line or several per
// line separated by commas. Blank entries are dropped, surrounding
// whitespace is trimmed, and duplicates are removed keeping the first
// occurrence, so callers see the file's original order.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %q: %w", path, err)
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw = append(raw, strings.Split(sc.Text(), ",")...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %q: %w", path, err)
	}
	return clean(raw), nil
}

// FromArgs cleans a word list given directly on the command line. Order is
// preserved, which matters when the caller is supplying an exact board.
func FromArgs(args []string) []string {
	return clean(args)
}

func clean(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	var words []string
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
