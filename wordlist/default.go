package wordlist

import (
	_ "embed"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in word pool, used when no word source is given.
func Default() []string {
	return clean(strings.Split(defaultWords, "\n"))
}
