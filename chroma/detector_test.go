package chroma_test

import (
	"testing"

	"github.com/fwojciec/unidiff/chroma"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	detector := chroma.NewDetector()

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"internal/server/server.go", "Go"},
		{"script.py", "Python"},
		{"index.js", "JavaScript"},
		{"README.unknownext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, detector.DetectFromPath(tt.path))
		})
	}
}

func TestDetector_RoundTripsThroughTokenizer(t *testing.T) {
	t.Parallel()

	// The detected name must be usable as a Tokenize language.
	detector := chroma.NewDetector()
	tokenizer := chroma.NewTokenizer()

	lang := detector.DetectFromPath("main.go")
	tokens := tokenizer.Tokenize(lang, "package main")

	assert.NotEmpty(t, tokens)
}
