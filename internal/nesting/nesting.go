// Package nesting tracks which input files the TeX engine currently has open.
// The engine brackets its transcript with "(file" and ")" tokens as it enters
// and leaves included files; the tracker maintains that stack so diagnostics
// can be annotated with the include file they came from.
package nesting

import (
	"regexp"
	"strings"
)

// Tracker owns a stack of open file-name tokens. It is mutated only through
// Handle and is valid for a single classification pass.
type Tracker struct {
	stack []string
}

var (
	// gate accepts lines that can carry file bracket notation: an opening
	// "(name" token, a "[page" marker, or a closing ")".
	gate = regexp.MustCompile(`^(\([^()\[\]\s]|\[[^\]]|\))`)

	pageToken = regexp.MustCompile(`^\[[^\]]*\]`)
	closeRun  = regexp.MustCompile(`^\)+`)
	openToken = regexp.MustCompile(`^\(([^()\[]+)`)
)

func New() *Tracker {
	return &Tracker{}
}

// Handle consumes a logical line of bracket notation. It declines lines that
// do not open with a file token, a page marker, or a close paren. Accepted
// lines are parsed token by token, left to right: page markers are skipped,
// runs of ")" pop, "(name" pushes. Parsing stops at the first unrecognized
// token. Handle always claims accepted lines; the tracker never renders.
func (t *Tracker) Handle(line string, _ int, _ []string) bool {
	if !gate.MatchString(line) {
		return false
	}

	rest := line

	for rest != "" {
		rest = strings.TrimLeft(rest, " ")

		if m := pageToken.FindString(rest); m != "" {
			rest = rest[len(m):]

			continue
		}

		if m := closeRun.FindString(rest); m != "" {
			n := min(len(m), len(t.stack))
			t.stack = t.stack[:len(t.stack)-n]
			rest = rest[len(m):]

			continue
		}

		if m := openToken.FindStringSubmatch(rest); m != nil {
			t.stack = append(t.stack, strings.TrimSpace(m[1]))
			rest = rest[len(m[0]):]

			continue
		}

		break
	}

	return true
}

// State returns the current file-context label: the empty string while only
// the root document is open, otherwise the open files past the root joined
// with "|" and terminated by ": ". The label is prefixed to diagnostic line
// references so readers can tell which include a message came from.
func (t *Tracker) State() string {
	if len(t.stack) <= 1 {
		return ""
	}

	return strings.Join(t.stack[1:], "|") + ": "
}

// Depth reports how many files are currently open.
func (t *Tracker) Depth() int {
	return len(t.stack)
}
