// Package mock provides function-field test doubles for the unidiff ports.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/unidiff"
)

// Compile-time interface verification.
var (
	_ unidiff.Parser           = (*Parser)(nil)
	_ unidiff.Viewer           = (*Viewer)(nil)
	_ unidiff.Tokenizer        = (*Tokenizer)(nil)
	_ unidiff.LanguageDetector = (*LanguageDetector)(nil)
)

// Parser implements unidiff.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*unidiff.Diff, error)
}

func (m *Parser) Parse(r io.Reader) (*unidiff.Diff, error) {
	return m.ParseFn(r)
}

// Viewer implements unidiff.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, diff *unidiff.Diff) error
}

func (m *Viewer) View(ctx context.Context, diff *unidiff.Diff) error {
	return m.ViewFn(ctx, diff)
}

// Tokenizer implements unidiff.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []unidiff.Token
}

func (m *Tokenizer) Tokenize(language, source string) []unidiff.Token {
	return m.TokenizeFn(language, source)
}

// LanguageDetector implements unidiff.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (m *LanguageDetector) DetectFromPath(path string) string {
	return m.DetectFromPathFn(path)
}
