package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/unidiff"
)

// App wires the parser to its input source and output sink. Fields are
// exported so tests can assemble an App around test doubles.
type App struct {
	Input    io.Reader // Used when FilePath is empty
	FilePath string
	Output   io.Writer
	Parser   unidiff.Parser
	Viewer   unidiff.Viewer

	Print bool // Re-render the parsed diff to Output instead of viewing
	Delta int  // 1-based delta selector for hunk extraction
	Hunk  int  // 1-based hunk selector; 0 disables extraction
}

// Run parses the input and performs the selected action: hunk extraction,
// re-rendering, or interactive viewing.
func (a *App) Run(ctx context.Context) error {
	input := a.Input
	if a.FilePath != "" {
		f, err := os.Open(a.FilePath)
		if err != nil {
			return fmt.Errorf("opening %s: %w", a.FilePath, err)
		}
		defer f.Close()
		input = f
	}

	diff, err := a.Parser.Parse(input)
	if err != nil {
		return err
	}

	switch {
	case a.Hunk > 0:
		patch, err := extractHunk(diff, a.Delta, a.Hunk)
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.Output, patch)
		return err
	case a.Print:
		_, err := io.WriteString(a.Output, diff.Render())
		return err
	default:
		return a.Viewer.View(ctx, diff)
	}
}

func extractHunk(diff *unidiff.Diff, deltaNum, hunkNum int) (string, error) {
	if deltaNum < 1 || deltaNum > len(diff.Deltas) {
		return "", fmt.Errorf("no delta %d: diff has %d", deltaNum, len(diff.Deltas))
	}
	delta := diff.Deltas[deltaNum-1]
	if hunkNum < 1 || hunkNum > len(delta.Hunks) {
		return "", fmt.Errorf("no hunk %d: delta %d has %d", hunkNum, deltaNum, len(delta.Hunks))
	}
	return delta.Hunks[hunkNum-1].Patch(), nil
}
