package unidiff

import (
	"fmt"
	"strings"
)

// Render reconstructs the diff body byte-for-byte by concatenating each
// delta's rendering in order. The commit line, if any, is not included.
func (d *Diff) Render() string {
	var b strings.Builder
	for _, delta := range d.Deltas {
		b.WriteString(delta.Render())
	}
	return b.String()
}

// Render reconstructs this delta's portion of the diff: the file header
// followed by each hunk's header line and body.
func (d Delta) Render() string {
	var b strings.Builder
	b.WriteString(d.FileHeader)
	for _, h := range d.Hunks {
		b.WriteString(h.Header)
		b.WriteByte('\n')
		b.WriteString(h.Content)
	}
	return b.String()
}

// Patch renders the hunk as a standalone patch: the owning file header, the
// hunk header line, and the hunk body. The result parses back to a one-delta,
// one-hunk diff.
func (h Hunk) Patch() string {
	return h.FileHeader + h.Header + "\n" + h.Content
}

// RangeHeader returns the canonical range header without any trailing
// context, e.g. "@@ -37,13 +37,12 @@".
func (h Hunk) RangeHeader() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}
