package chroma

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/unidiff"
)

// Compile-time interface verification.
var _ unidiff.LanguageDetector = (*Detector)(nil)

// Detector maps file paths to chroma language names.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath returns the language for the file at path, or "" when no
// lexer matches. The result is usable as the language argument to Tokenize.
func (d *Detector) DetectFromPath(path string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
