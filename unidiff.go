// Package unidiff provides domain types for parsing and rendering unified diffs.
package unidiff

// Diff is the parse result for a complete unified diff.
type Diff struct {
	Commit string  // Leading revision line, empty when absent
	Deltas []Delta // One per changed file, in input order
}

// Delta represents the changes to a single file.
type Delta struct {
	FileHeader string // Verbatim header block, "diff --git" through the "+++" line
	OldFile    string // Path token from the "---" line, e.g. "a/main.go" or "/dev/null"
	NewFile    string // Path token from the "+++" line, e.g. "b/main.go"
	Hunks      []Hunk // Changed regions in input order
}

// Hunk is a contiguous block of changes within a file. It carries a copy of
// the owning delta's header fields so it can be rendered as a standalone patch.
type Hunk struct {
	FileHeader   string // Copy of the owning delta's FileHeader
	OldFile      string
	NewFile      string
	OldStart     int    // From @@ -X,...
	OldLines     int    // From @@ -X,Y; 1 when the count was elided
	NewStart     int    // From @@ ...,+X
	NewLines     int    // From @@ ...,+X,Y; 1 when the count was elided
	HeaderSuffix string // Trailing text after the closing @@, e.g. function context
	Header       string // Raw hunk header line (no terminator) for passthrough
	Content      string // Verbatim body lines with their markers and terminators
}
