// Package srctext provides an in-process text search over a loaded TeX source
// file. Two diagnostic categories need to re-locate log fragments in the
// original source; loading the file once into an immutable buffer avoids
// shelling out to an external line locator for every lookup.
package srctext

import (
	"fmt"
	"os"
	"strings"
)

// Buffer holds the lines of a source file. It is immutable after creation and
// safe to share across categories.
type Buffer struct {
	path  string
	lines []string
}

// Load reads the source file at path. A missing or unreadable file is fatal
// for the categories that depend on it, so the error propagates.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified sources
	if err != nil {
		return nil, fmt.Errorf("loading source %s: %w", path, err)
	}

	buf := FromString(string(data))
	buf.path = path

	return buf, nil
}

// FromString builds a buffer from in-memory source text.
func FromString(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// Path returns the file the buffer was loaded from, or "" for in-memory text.
func (b *Buffer) Path() string {
	return b.path
}

// FindAll returns the 1-based numbers of every line containing fragment.
func (b *Buffer) FindAll(fragment string) []int {
	if fragment == "" {
		return nil
	}

	var found []int

	for i, line := range b.lines {
		if strings.Contains(line, fragment) {
			found = append(found, i+1)
		}
	}

	return found
}

// FindLabel returns the 1-based numbers of every line defining \label{name}.
func (b *Buffer) FindLabel(name string) []int {
	return b.FindAll(`\label{` + name + `}`)
}
