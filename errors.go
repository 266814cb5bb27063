package unidiff

import "fmt"

// SyntaxError reports input that does not match the unified-diff grammar.
// Parsing is all-or-nothing: a SyntaxError means no Diff was produced.
type SyntaxError struct {
	Line int // 1-based line where matching failed
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unidiff: line %d: %s", e.Line, e.Msg)
}

// InvariantError reports an internal inconsistency between the grammar and
// the tree walker, such as an unrecognized node kind or a digit span that
// failed numeric conversion. It indicates a parser defect, not malformed
// input, and is kept distinct from SyntaxError so the two are separable
// with errors.As.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "unidiff: internal: " + e.Msg
}
