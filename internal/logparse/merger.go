// Package logparse reassembles the soft-wrapped lines of a TeX engine
// transcript into logical lines. The engine hard-wraps its log at 79 columns,
// so a physical line of exactly that width continues on the next one.
package logparse

import (
	"iter"
	"strings"
)

const (
	// wrapColumn is the width at which TeX engines wrap their transcript.
	wrapColumn = 79

	// undefinedPrefix marks multi-line "undefined control sequence" reports,
	// which wrap irregularly: the source context follows on the next physical
	// line regardless of the current line's width.
	undefinedPrefix = "! Undefined"
)

// Lines yields the logical lines of a raw transcript. A physical line of
// exactly 79 characters is concatenated, without separator, with the following
// physical lines until one of a different width is reached. A physical line
// beginning with "! Undefined" continues as well, whatever its width.
//
// The sequence is finite, preserves order, and can be ranged over any number
// of times.
func Lines(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var buf strings.Builder

		pending := false

		for line := range strings.SplitSeq(raw, "\n") {
			line = strings.TrimSuffix(line, "\r")

			buf.WriteString(line)
			pending = true

			if len(line) == wrapColumn || strings.HasPrefix(line, undefinedPrefix) {
				continue
			}

			if !yield(buf.String()) {
				return
			}

			buf.Reset()
			pending = false
		}

		if pending && buf.Len() > 0 {
			yield(buf.String())
		}
	}
}

// Collect materializes the logical lines of a transcript.
func Collect(raw string) []string {
	var lines []string

	for line := range Lines(raw) {
		lines = append(lines, line)
	}

	return lines
}
