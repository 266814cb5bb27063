package grammar

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/unidiff"
)

// walk converts the top-level nodes into a Diff. Dispatch is exhaustive over
// the kinds the grammar produces; anything else means the grammar and walker
// have drifted apart and surfaces as an InvariantError rather than a syntax
// error, since the input itself already matched.
func walk(nodes []node) (*unidiff.Diff, error) {
	diff := &unidiff.Diff{}
	for _, n := range nodes {
		switch n.kind {
		case kindCommit:
			diff.Commit = n.text
		case kindDiff:
			delta, err := walkDiff(n)
			if err != nil {
				return nil, err
			}
			diff.Deltas = append(diff.Deltas, delta)
		default:
			return nil, invariantf("unexpected top-level node %s", n.kind)
		}
	}
	return diff, nil
}

func walkDiff(n node) (unidiff.Delta, error) {
	var delta unidiff.Delta
	for _, c := range n.children {
		switch c.kind {
		case kindDiffHeader:
			delta.FileHeader = c.text
			oldFile, newFile, err := walkDiffHeader(c)
			if err != nil {
				return unidiff.Delta{}, err
			}
			delta.OldFile = oldFile
			delta.NewFile = newFile
		case kindHunk:
			if delta.FileHeader == "" {
				return unidiff.Delta{}, invariantf("hunk node before diff header")
			}
			hunk, err := walkHunk(c, delta)
			if err != nil {
				return unidiff.Delta{}, err
			}
			delta.Hunks = append(delta.Hunks, hunk)
		default:
			return unidiff.Delta{}, invariantf("unexpected diff child %s", c.kind)
		}
	}
	return delta, nil
}

func walkDiffHeader(n node) (oldFile, newFile string, err error) {
	for _, c := range n.children {
		switch c.kind {
		case kindOldFile:
			oldFile = c.text
		case kindNewFile:
			newFile = c.text
		case kindHeaderExtra:
			// Opaque metadata; it survives through the verbatim header text.
		default:
			return "", "", invariantf("unexpected diff header child %s", c.kind)
		}
	}
	return oldFile, newFile, nil
}

func walkHunk(n node, delta unidiff.Delta) (unidiff.Hunk, error) {
	hunk := unidiff.Hunk{
		FileHeader: delta.FileHeader,
		OldFile:    delta.OldFile,
		NewFile:    delta.NewFile,
		Header:     n.text,
	}
	var haveOld, haveNew bool
	for _, c := range n.children {
		switch c.kind {
		case kindOldRange:
			start, lines, err := walkRange(c)
			if err != nil {
				return unidiff.Hunk{}, err
			}
			hunk.OldStart, hunk.OldLines = start, lines
			haveOld = true
		case kindNewRange:
			start, lines, err := walkRange(c)
			if err != nil {
				return unidiff.Hunk{}, err
			}
			hunk.NewStart, hunk.NewLines = start, lines
			haveNew = true
		case kindContext:
			hunk.HeaderSuffix = c.text
		case kindHunkBody:
			hunk.Content = c.text
		default:
			return unidiff.Hunk{}, invariantf("unexpected hunk child %s", c.kind)
		}
	}
	if !haveOld || !haveNew {
		return unidiff.Hunk{}, invariantf("hunk node missing a range")
	}
	return hunk, nil
}

// walkRange returns a range's start and line count. The count defaults to 1
// when the input elided it, following the single-line range convention.
func walkRange(n node) (start, lines int, err error) {
	lines = 1
	var haveStart bool
	for _, c := range n.children {
		switch c.kind {
		case kindStart:
			v, convErr := strconv.Atoi(c.text)
			if convErr != nil {
				return 0, 0, invariantf("range start %q: %v", c.text, convErr)
			}
			start = v
			haveStart = true
		case kindLines:
			v, convErr := strconv.Atoi(c.text)
			if convErr != nil {
				return 0, 0, invariantf("range lines %q: %v", c.text, convErr)
			}
			lines = v
		default:
			return 0, 0, invariantf("unexpected range child %s", c.kind)
		}
	}
	if !haveStart {
		return 0, 0, invariantf("range node missing start")
	}
	return start, lines, nil
}

func invariantf(format string, args ...any) error {
	return &unidiff.InvariantError{Msg: fmt.Sprintf(format, args...)}
}
