package unidiff

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Parser parses unified-diff content into domain types.
type Parser interface {
	// Parse reads diff content and returns the parsed result.
	Parse(r io.Reader) (*Diff, error)
}

// ParseAll parses each input with p and returns the results in input order.
// Inputs are parsed concurrently; each parse owns its input and its result,
// so no synchronization beyond the errgroup is needed. The first error
// cancels the remaining work and is returned wrapped with the input's index.
func ParseAll(ctx context.Context, p Parser, inputs []string) ([]*Diff, error) {
	g, ctx := errgroup.WithContext(ctx)
	diffs := make([]*Diff, len(inputs))
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := p.Parse(strings.NewReader(input))
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			diffs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return diffs, nil
}
