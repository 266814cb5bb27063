// Package jsonl loads patch corpora stored as JSON Lines, one case per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Case pairs a name with raw unified-diff text.
type Case struct {
	Name  string `json:"name"`
	Patch string `json:"patch"`
}

// Loader reads corpus files in JSONL format.
type Loader struct{}

// NewLoader creates a new JSONL corpus loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all cases from the file at path. Blank lines are skipped; a
// malformed line fails the whole load with its line number.
func (l *Loader) Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	var cases []Case
	scanner := bufio.NewScanner(f)
	// Patches routinely exceed the default 64KB token limit.
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		var c Case
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			return nil, fmt.Errorf("parsing corpus line %d: %w", lineNum, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return cases, nil
}
