// Package rules defines the diagnostic categories that classify TeX engine
// transcripts. Each category pairs a match pattern with pluggable reference
// extraction and message formatting strategies; the category set and its
// order live in categories.go.
package rules

import (
	"regexp"
	"strings"

	"github.com/texsieve/texsieve/internal/nesting"
	"github.com/texsieve/texsieve/internal/srctext"
)

// NoLimit marks a category that renders every diagnostic it collected.
const NoLimit = -1

// Kind distinguishes error categories from warning categories for rendering.
type Kind int

const (
	KindWarning Kind = iota
	KindError
)

// Diagnostic is one classified message extracted from the transcript.
// Identity for deduplication is the (Ref, Message) pair; FileContext is
// display annotation only.
type Diagnostic struct {
	Ref         string // "-" when unknown, digits, or a comma-joined digit list
	Message     string
	FileContext string // nesting state label captured at record time
}

// DisplayRef is the reference as rendered: the file-context label prefixed to
// the line reference, except for unknown references.
func (d Diagnostic) DisplayRef() string {
	if d.Ref == unknownRef {
		return unknownRef
	}

	return d.FileContext + d.Ref
}

// refFunc extracts a line reference from an (expanded) logical line. idx and
// all give access to the surrounding logical lines for strategies that scan
// forward.
type refFunc func(c *Category, expanded string, idx int, all []string) string

// msgFunc formats the display message for an (expanded) logical line.
type msgFunc func(c *Category, expanded string) string

// Category is one named classification rule. Its diagnostic list is append
// only during the classification pass and read only afterwards.
type Category struct {
	Name         string
	Kind         Kind
	DisplayLimit int
	Interesting  bool // quiet mode suppresses these; verbose raises the rest

	match        *regexp.Regexp
	print        *regexp.Regexp // nil means match-everything
	extraContext int
	refFn        refFunc
	msgFn        msgFunc

	tracker *nesting.Tracker
	source  *srctext.Buffer

	diags    []Diagnostic
	seen     map[string]struct{}
	maxWidth int
}

const unknownRef = "-"

// defaultRef matches the engine's "line N", "lines N-M" and "l.N" forms.
var defaultRef = regexp.MustCompile(`lines? (\d+)|l[^0-9](\d+)`)

// Handle tests a logical line against the category. It declines empty and
// non-matching lines; on a match it expands the line with any configured
// context, extracts a reference, deduplicates, records, and claims the line.
func (c *Category) Handle(line string, idx int, all []string) bool {
	if line == "" || !c.match.MatchString(line) {
		return false
	}

	expanded := line
	if c.extraContext > 0 {
		end := min(idx+1+c.extraContext, len(all))
		expanded = strings.Join(all[idx:end], "\n")
	}

	ref := c.extractRef(expanded, idx, all)
	msg := c.formatMessage(expanded)

	c.record(ref, msg)

	return true
}

func (c *Category) extractRef(expanded string, idx int, all []string) string {
	if c.refFn != nil {
		return c.refFn(c, expanded, idx, all)
	}

	return scanRef(expanded)
}

// scanRef applies the default reference pattern, degrading to "-".
func scanRef(text string) string {
	m := defaultRef.FindStringSubmatch(text)
	if m == nil {
		return unknownRef
	}

	if m[1] != "" {
		return m[1]
	}

	return m[2]
}

func (c *Category) formatMessage(expanded string) string {
	if c.msgFn != nil {
		return c.msgFn(c, expanded)
	}

	if c.print == nil {
		return expanded
	}

	m := c.print.FindStringSubmatch(expanded)

	switch {
	case m == nil:
		return expanded
	case len(m) > 1:
		return m[1]
	default:
		return m[0]
	}
}

// record appends a diagnostic unless the same (ref, message) pair was already
// seen, annotating new entries with the current nesting state and tracking
// the widest rendered reference for column alignment.
func (c *Category) record(ref, msg string) {
	key := ref + "\x00" + msg
	if _, dup := c.seen[key]; dup {
		return
	}

	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}

	c.seen[key] = struct{}{}

	diag := Diagnostic{Ref: ref, Message: msg}
	if ref != unknownRef && c.tracker != nil {
		diag.FileContext = c.tracker.State()
	}

	c.diags = append(c.diags, diag)

	if w := len(diag.DisplayRef()); w > c.maxWidth {
		c.maxWidth = w
	}
}

// Diagnostics returns the collected diagnostics in classification order.
func (c *Category) Diagnostics() []Diagnostic {
	return c.diags
}

func (c *Category) Count() int {
	return len(c.diags)
}

// MaxRefWidth is the widest rendered reference recorded so far.
func (c *Category) MaxRefWidth() int {
	return c.maxWidth
}
