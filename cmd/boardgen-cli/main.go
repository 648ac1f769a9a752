// The boardgen-cli command prints a fresh Codenames board: the public word
// grid, and optionally the spymaster's key. Words come from a file, from
// exactly 25 command-line arguments, or from the built-in pool.
package main

import (
	"fmt"
	"math/rand"
	"os"

	codenames "github.com/hbiede/Codenames-Board-Generator"
	"github.com/hbiede/Codenames-Board-Generator/boardgen"
	"github.com/hbiede/Codenames-Board-Generator/cryptorand"
	"github.com/hbiede/Codenames-Board-Generator/format"
	"github.com/hbiede/Codenames-Board-Generator/wordlist"
	"github.com/namsral/flag"
)

func main() {
	var (
		wordsFile = flag.String("words_file", "", "File of candidate words, one per line or comma-separated.")
		showKey   = flag.Bool("key", false, "Print the spymaster's key board after the word board.")
		combined  = flag.Bool("combined", false, "Print a single board with each word annotated by its key marker.")
		color     = flag.Bool("color", false, "Print the board as a color table instead of plain text.")
		porcelain = flag.Bool("porcelain", false, "Print a machine-readable word:agent list and nothing else.")
		seed      = flag.Int64("seed", 0, "Seed for board generation. Zero means use OS entropy.")
	)
	flag.Parse()

	if n := flag.NArg(); n != 0 && n != codenames.Size {
		fmt.Fprintf(os.Stderr, "expected no words or exactly %d, got %d\n", codenames.Size, flag.NArg())
		flag.Usage()
		os.Exit(2)
	}

	r := cryptorand.New()
	if *seed != 0 {
		r = rand.New(rand.NewSource(*seed))
	}

	words, err := wordBoard(flag.Args(), *wordsFile, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	key, starter, err := boardgen.NewKey(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := printBoards(words, key, starter, *showKey, *combined, *color, *porcelain); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// wordBoard picks the word source: 25 literal arguments win, then a words
// file, then the built-in pool. Only the literal form keeps caller order.
func wordBoard(args []string, wordsFile string, r *rand.Rand) (*codenames.Grid, error) {
	if len(args) > 0 {
		return boardgen.FromExact(wordlist.FromArgs(args))
	}
	if wordsFile != "" {
		pool, err := wordlist.FromFile(wordsFile)
		if err != nil {
			return nil, err
		}
		return boardgen.FromPool(pool, r)
	}
	return boardgen.FromPool(wordlist.Default(), r)
}

func printBoards(words, key *codenames.Grid, starter codenames.Team, showKey, combined, color, porcelain bool) error {
	if porcelain {
		out, err := format.Porcelain(words, key)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if color {
		keyForColor := key
		if !showKey && !combined {
			keyForColor = nil
		}
		if err := format.RenderColor(os.Stdout, words, keyForColor); err != nil {
			return err
		}
		fmt.Printf("%s goes first\n", starter)
		return nil
	}

	switch {
	case combined:
		grid, err := format.Combined(words, key)
		if err != nil {
			return err
		}
		fmt.Println(format.Render(grid))
	case showKey:
		fmt.Println(format.Render(words))
		fmt.Println()
		fmt.Println(format.Render(key))
	default:
		fmt.Println(format.Render(words))
		return nil
	}

	fmt.Printf("%s goes first\n", starter)
	return nil
}
