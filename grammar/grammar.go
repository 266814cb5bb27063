// Package grammar implements a unified-diff parser as two phases: a grammar
// that recognizes the structure of the input as a tree of nodes, and a tree
// walker that converts recognized nodes into unidiff domain entities. The
// grammar captures header blocks and hunk bodies verbatim so the result can
// be rendered back to the original bytes.
package grammar

import (
	"fmt"
	"strings"

	"github.com/fwojciec/unidiff"
)

// Header prefixes recognized at structural positions. A prefix opens a node
// only where the grammar expects a line to begin; the same bytes inside a
// hunk body are plain content. Body lines of a well-formed hunk always start
// with ' ', '+', '-' or '\', so a header lookalike cannot sit at column 0
// within a body.
const (
	diffPrefix    = "diff --git "
	oldFilePrefix = "--- "
	newFilePrefix = "+++ "
	hunkPrefix    = "@@ -"
)

// kind identifies a node produced by the grammar. The walker dispatches
// exhaustively over this closed set.
type kind int

const (
	kindCommit kind = iota
	kindDiff
	kindDiffHeader
	kindOldFile
	kindNewFile
	kindHeaderExtra
	kindHunk
	kindOldRange
	kindNewRange
	kindContext
	kindHunkBody
	kindStart
	kindLines
)

var kindNames = [...]string{
	kindCommit:      "commit",
	kindDiff:        "diff",
	kindDiffHeader:  "diff_header",
	kindOldFile:     "old_file",
	kindNewFile:     "new_file",
	kindHeaderExtra: "header_extra",
	kindHunk:        "hunk",
	kindOldRange:    "old_range",
	kindNewRange:    "new_range",
	kindContext:     "context",
	kindHunkBody:    "hunk_body",
	kindStart:       "start",
	kindLines:       "lines",
}

func (k kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// node is one recognized grammar production. text carries the verbatim span
// for productions that are captured rather than decomposed.
type node struct {
	kind     kind
	text     string
	children []node
}

// parse recognizes the top rule, diffs = commit? diff*, and returns the
// top-level nodes. Any input that does not match the grammar fails the whole
// parse with a *unidiff.SyntaxError.
func parse(input string) ([]node, error) {
	s := newScanner(input)
	var nodes []node
	if !s.eof() && !s.hasPrefix(diffPrefix) {
		text, _ := s.nextLine()
		nodes = append(nodes, node{kind: kindCommit, text: text})
	}
	for !s.eof() {
		d, err := s.diff()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, d)
	}
	return nodes, nil
}

// diff = diff_header hunk*
func (s *scanner) diff() (node, error) {
	header, err := s.diffHeader()
	if err != nil {
		return node{}, err
	}
	children := []node{header}
	for !s.eof() && s.hasPrefix(hunkPrefix) {
		h, err := s.hunk()
		if err != nil {
			return node{}, err
		}
		children = append(children, h)
	}
	return node{kind: kindDiff, children: children}, nil
}

// diffHeader recognizes a "diff --git" line, any metadata lines before the
// old-file marker (captured opaquely as header_extra), and the "---"/"+++"
// marker lines. The whole block is captured verbatim as the node text while
// the path tokens are extracted as children.
func (s *scanner) diffHeader() (node, error) {
	start := s.pos
	if !s.hasPrefix(diffPrefix) {
		return node{}, s.syntaxErrf("expected %q", diffPrefix)
	}
	s.nextLine()
	extraStart := s.pos
	for !s.eof() && !s.hasPrefix(oldFilePrefix) {
		if s.hasPrefix(diffPrefix) || s.hasPrefix(hunkPrefix) {
			return node{}, s.syntaxErrf("expected old-file marker %q", oldFilePrefix)
		}
		s.nextLine()
	}
	extra := s.input[extraStart:s.pos]
	if s.eof() {
		return node{}, s.syntaxErrf("missing old-file marker %q", oldFilePrefix)
	}
	oldLine, _ := s.nextLine()
	if !s.hasPrefix(newFilePrefix) {
		return node{}, s.syntaxErrf("expected new-file marker %q", newFilePrefix)
	}
	newLine, _ := s.nextLine()

	var children []node
	if extra != "" {
		children = append(children, node{kind: kindHeaderExtra, text: extra})
	}
	children = append(children,
		node{kind: kindOldFile, text: oldLine[len(oldFilePrefix):]},
		node{kind: kindNewFile, text: newLine[len(newFilePrefix):]},
	)
	return node{kind: kindDiffHeader, text: s.input[start:s.pos], children: children}, nil
}

// hunk recognizes a range header line and the body that follows it. The body
// runs to the next structural header at a line start, or end of input, and is
// captured verbatim. The header line (without its terminator) is kept as the
// node text for exact reconstruction.
func (s *scanner) hunk() (node, error) {
	headerLine := s.line
	header, terminated := s.nextLine()
	if !terminated {
		return node{}, &unidiff.SyntaxError{Line: headerLine, Msg: "unterminated hunk header"}
	}
	rest := header[len(hunkPrefix):]
	oldText, rest, ok := strings.Cut(rest, " +")
	if !ok {
		return node{}, &unidiff.SyntaxError{Line: headerLine, Msg: `malformed hunk header: missing " +" separator`}
	}
	newText, context, ok := strings.Cut(rest, " @@")
	if !ok {
		return node{}, &unidiff.SyntaxError{Line: headerLine, Msg: `malformed hunk header: missing closing "@@"`}
	}
	oldRange, err := rangeNode(kindOldRange, oldText, headerLine)
	if err != nil {
		return node{}, err
	}
	newRange, err := rangeNode(kindNewRange, newText, headerLine)
	if err != nil {
		return node{}, err
	}

	bodyStart := s.pos
	for !s.eof() && !s.hasPrefix(diffPrefix) && !s.hasPrefix(hunkPrefix) {
		s.nextLine()
	}

	children := []node{
		oldRange,
		newRange,
		{kind: kindContext, text: context},
		{kind: kindHunkBody, text: s.input[bodyStart:s.pos]},
	}
	return node{kind: kindHunk, text: header, children: children}, nil
}

// rangeNode recognizes range = start ["," lines]. Both components must be
// all digits; the lines child is absent when the count was elided.
func rangeNode(k kind, text string, line int) (node, error) {
	startText, linesText, hasLines := strings.Cut(text, ",")
	if !isDigits(startText) || (hasLines && !isDigits(linesText)) {
		return node{}, &unidiff.SyntaxError{Line: line, Msg: fmt.Sprintf("malformed range %q", text)}
	}
	children := []node{{kind: kindStart, text: startText}}
	if hasLines {
		children = append(children, node{kind: kindLines, text: linesText})
	}
	return node{kind: k, children: children}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// scanner advances through the input a whole line at a time, so prefix tests
// only ever see line starts.
type scanner struct {
	input string
	pos   int
	line  int // 1-based, for error reporting
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// hasPrefix reports whether the current line starts with p.
func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.input[s.pos:], p)
}

// nextLine consumes the current line and returns its text without the
// terminator, along with whether a terminator was present.
func (s *scanner) nextLine() (string, bool) {
	start := s.pos
	idx := strings.IndexByte(s.input[s.pos:], '\n')
	if idx < 0 {
		s.pos = len(s.input)
		return s.input[start:], false
	}
	s.pos += idx + 1
	s.line++
	return s.input[start : start+idx], true
}

func (s *scanner) syntaxErrf(format string, args ...any) error {
	return &unidiff.SyntaxError{Line: s.line, Msg: fmt.Sprintf(format, args...)}
}
