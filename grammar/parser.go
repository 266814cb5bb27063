package grammar

import (
	"fmt"
	"io"

	"github.com/fwojciec/unidiff"
)

// Compile-time interface verification.
var _ unidiff.Parser = (*Parser)(nil)

// Parser parses unified-diff text in a single linear pass over the input.
type Parser struct{}

// NewParser creates a new grammar-based parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads all of r and parses it as a complete unified diff. On failure
// no partial result is returned: the error is a *unidiff.SyntaxError when the
// input does not match the grammar, a *unidiff.InvariantError when the parser
// itself is inconsistent, or a wrapped read error from r.
func (p *Parser) Parse(r io.Reader) (*unidiff.Diff, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading diff: %w", err)
	}
	nodes, err := parse(string(data))
	if err != nil {
		return nil, err
	}
	return walk(nodes)
}
