// Command unidiff parses a unified diff from stdin or a file and pages
// through it, re-renders it, or extracts a single hunk as a standalone patch.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/unidiff/bubbletea"
	"github.com/fwojciec/unidiff/chroma"
	"github.com/fwojciec/unidiff/grammar"
	"github.com/spf13/pflag"
)

func main() {
	var (
		filePath    string
		delta       int
		hunk        int
		printDiff   bool
		noHighlight bool
	)

	pflag.StringVarP(&filePath, "file", "f", "", "Read the diff from a file instead of stdin.")
	pflag.IntVarP(&delta, "delta", "d", 1, "Delta (file) to select when extracting a hunk.")
	pflag.IntVar(&hunk, "hunk", 0, "Extract this hunk of the selected delta as a standalone patch.")
	pflag.BoolVarP(&printDiff, "print", "p", false, "Re-render the parsed diff to stdout instead of opening the pager.")
	pflag.BoolVar(&noHighlight, "no-highlight", false, "Disable syntax highlighting in the pager.")

	pflag.Usage = func() {
		fmt.Println("Usage: unidiff [flags]")
		fmt.Println("\nParse a unified diff from stdin (pipe) or a file and page through it.")
		fmt.Println("\nExample: git diff | unidiff")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	var opts []bubbletea.Option
	if !noHighlight {
		opts = append(opts,
			bubbletea.WithTokenizer(chroma.NewTokenizer()),
			bubbletea.WithLanguageDetector(chroma.NewDetector()),
		)
	}

	app := &App{
		Input:    os.Stdin,
		FilePath: filePath,
		Output:   os.Stdout,
		Parser:   grammar.NewParser(),
		Viewer:   bubbletea.NewViewer(opts...),
		Print:    printDiff,
		Delta:    delta,
		Hunk:     hunk,
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
