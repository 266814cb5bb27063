package unidiff_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/unidiff"
	"github.com/stretchr/testify/assert"
)

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	err := &unidiff.SyntaxError{Line: 14, Msg: `malformed hunk header: missing closing "@@"`}
	assert.Equal(t, `unidiff: line 14: malformed hunk header: missing closing "@@"`, err.Error())

	// Wrapped errors stay distinguishable by type.
	wrapped := fmt.Errorf("loading patch: %w", err)
	var syntaxErr *unidiff.SyntaxError
	assert.True(t, errors.As(wrapped, &syntaxErr))
	assert.Equal(t, 14, syntaxErr.Line)

	var invariantErr *unidiff.InvariantError
	assert.False(t, errors.As(wrapped, &invariantErr))
}

func TestInvariantError(t *testing.T) {
	t.Parallel()

	err := &unidiff.InvariantError{Msg: "unexpected hunk child start"}
	assert.Equal(t, "unidiff: internal: unexpected hunk child start", err.Error())

	var syntaxErr *unidiff.SyntaxError
	assert.False(t, errors.As(err, &syntaxErr))
}
