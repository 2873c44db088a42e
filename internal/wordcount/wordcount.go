// Package wordcount reports prose word counts for a TeX document and its
// \input/\include graph, with summary statistics across the files.
package wordcount

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// FileCount is the word count of one file in the include graph.
type FileCount struct {
	Path  string
	Words int
}

// Summary aggregates the counts of the whole document.
type Summary struct {
	Files  []FileCount
	Total  int
	Mean   float64
	StdDev float64
}

var (
	// comment strips % to end of line, leaving escaped \% alone.
	comment = regexp.MustCompile(`(?m)(^|[^\\])%.*`)

	includeDirective = regexp.MustCompile(`\\(?:input|include)\{([^}]+)\}`)

	// controlWord removes command tokens; their arguments stay, which is the
	// right call for prose-heavy commands like \emph{...}.
	controlWord = regexp.MustCompile(`\\[a-zA-Z@]+\*?`)

	mathSpan = regexp.MustCompile(`\$[^$]*\$`)
)

// Count walks the document rooted at rootPath, counting prose words per file
// in traversal order. Include cycles are broken at the first repeat.
func Count(rootPath string) (*Summary, error) {
	summary := &Summary{}
	visited := make(map[string]struct{})

	if err := countFile(rootPath, summary, visited); err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(summary.Files))
	for _, fc := range summary.Files {
		summary.Total += fc.Words
		values = append(values, float64(fc.Words))
	}

	if len(values) > 0 {
		summary.Mean = stat.Mean(values, nil)
	}

	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}

	return summary, nil
}

func countFile(path string, summary *Summary, visited map[string]struct{}) error {
	if _, seen := visited[path]; seen {
		return nil
	}

	visited[path] = struct{}{}

	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified sources
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	text := comment.ReplaceAllString(string(data), "$1")

	includes := includeDirective.FindAllStringSubmatch(text, -1)

	summary.Files = append(summary.Files, FileCount{
		Path:  path,
		Words: countWords(text),
	})

	dir := filepath.Dir(path)

	for _, m := range includes {
		target := m[1]
		if filepath.Ext(target) == "" {
			target += ".tex"
		}

		if err := countFile(filepath.Join(dir, target), summary, visited); err != nil {
			return err
		}
	}

	return nil
}

func countWords(text string) int {
	text = includeDirective.ReplaceAllString(text, " ")
	text = mathSpan.ReplaceAllString(text, " ")
	text = controlWord.ReplaceAllString(text, " ")
	text = strings.NewReplacer("{", " ", "}", " ", "[", " ", "]", " ", "~", " ").Replace(text)

	words := 0

	for _, field := range strings.Fields(text) {
		if strings.ContainsFunc(field, isLetterOrDigit) {
			words++
		}
	}

	return words
}

func isLetterOrDigit(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r > 127
}
