package rules

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/texsieve/texsieve/internal/nesting"
	"github.com/texsieve/texsieve/internal/srctext"
)

// Category names, in report vocabulary.
const (
	PDFVersionMismatches = "PDF version mismatches"
	TooManyErrors        = "Too many errors"
	RepeatedPageNumbers  = "Repeated page numbers"
	FontShapes           = "Font shape substitutions"
	Citations            = "Citations undefined"
	References           = "References undefined"
	MissingParens        = "Missing parentheses"
	MultiplyDefined      = "Multiply-defined labels"
	UndefinedSequences   = "Undefined control sequences"
	LatexErrors          = "LaTeX errors"
	Errors               = "Errors"
	UnderfullBoxes       = "Underfull boxes"
	OverfullBoxes        = "Overfull boxes"
	FloatWarnings        = "Float warnings"
	PackageWarnings      = "Package warnings"
	OtherWarnings        = "Other warnings"
)

// Params carries the shared collaborators categories consult while recording:
// the nesting tracker for file-context labels and the loaded source buffer
// for the two categories that re-locate log fragments in the original source.
type Params struct {
	Tracker *nesting.Tracker
	Source  *srctext.Buffer // may be nil; source-dependent refs degrade to "-"
}

// Patterns are conservative and anchored where the transcript allows it; the
// goal is extracting the most helpful reference without false positives
// taking over.
var (
	pdfVersionFile  = regexp.MustCompile(`([^\s(]+)\):`)
	pdfVersionPairs = regexp.MustCompile(`<([0-9.]+)>`)

	// contextMarker is the engine's "l.<N> <source remainder>" context line.
	contextMarker = regexp.MustCompile(`(?m)^l\.(\d+) ?(.*)$`)

	citationDetail  = regexp.MustCompile("Citation [`']?([^'`]+)' on page (\\d+|\\?)")
	fontShapeBoiler = regexp.MustCompile(`\n\(Font\)\s*`)
	scanningTrigger = regexp.MustCompile(`scanning (?:use|text|definition) of (.+?)\.?$`)
	labelName       = regexp.MustCompile("Label `([^']+)' multiply defined")
)

// Categories returns the full category set in priority order: specific and
// rare diagnostics first, the generic "!" catch-all and the bulk warning
// categories last, so that first-match-wins classification never lets a
// catch-all steal a line a specific category understands.
func Categories(p Params) []*Category {
	return []*Category{
		{
			Name:         PDFVersionMismatches,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`PDF version`),
			refFn:        pdfVersionRef,
			msgFn:        pdfVersionMsg,
			tracker:      p.Tracker,
		},
		{
			Name:         TooManyErrors,
			Kind:         KindError,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`Too many `),
			extraContext: 10,
			refFn:        contextMarkerRef,
			msgFn:        contextMarkerMsg,
			tracker:      p.Tracker,
		},
		{
			Name:         RepeatedPageNumbers,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`has been already used, duplicate ignored`),
			extraContext: 4,
			msgFn:        repeatedPageMsg,
			tracker:      p.Tracker,
		},
		{
			Name:         FontShapes,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`Font Warning: Font shape`),
			extraContext: 1,
			msgFn:        fontShapeMsg,
			tracker:      p.Tracker,
		},
		{
			Name:         Citations,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`Warning: Citation`),
			msgFn:        citationMsg,
			tracker:      p.Tracker,
		},
		{
			Name:         References,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`Warning: Reference`),
			tracker:      p.Tracker,
		},
		{
			Name:         MissingParens,
			Kind:         KindError,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`File ended`),
			refFn:        fileEndedRef,
			tracker:      p.Tracker,
			source:       p.Source,
		},
		{
			Name:         MultiplyDefined,
			Kind:         KindWarning,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`multiply defined`),
			refFn:        labelRef,
			msgFn:        labelMsg,
			tracker:      p.Tracker,
			source:       p.Source,
		},
		{
			Name:         UndefinedSequences,
			Kind:         KindError,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`^! Undefined control sequence`),
			refFn:        forwardScanRef,
			tracker:      p.Tracker,
		},
		{
			Name:         LatexErrors,
			Kind:         KindError,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`^! LaTeX Error`),
			refFn:        forwardScanRef,
			tracker:      p.Tracker,
		},
		{
			Name:         Errors,
			Kind:         KindError,
			Interesting:  true,
			DisplayLimit: NoLimit,
			match:        regexp.MustCompile(`^!`),
			refFn:        forwardScanRef,
			tracker:      p.Tracker,
		},
		{
			Name:    UnderfullBoxes,
			Kind:    KindWarning,
			match:   regexp.MustCompile(`^Underfull`),
			tracker: p.Tracker,
		},
		{
			Name:    OverfullBoxes,
			Kind:    KindWarning,
			match:   regexp.MustCompile(`^Overfull`),
			tracker: p.Tracker,
		},
		{
			Name:    FloatWarnings,
			Kind:    KindWarning,
			match:   regexp.MustCompile(`float specifier|Float too large`),
			tracker: p.Tracker,
		},
		{
			Name:    PackageWarnings,
			Kind:    KindWarning,
			match:   regexp.MustCompile(`Package [^ ]+ Warning`),
			tracker: p.Tracker,
		},
		{
			Name:    OtherWarnings,
			Kind:    KindWarning,
			match:   regexp.MustCompile(`Warning`),
			tracker: p.Tracker,
		},
	}
}

// pdfVersionRef names the offending file instead of a line number: the
// transcript reports "(file <name>): PDF inclusion: found PDF version <X>,
// but at most version <Y> allowed".
func pdfVersionRef(_ *Category, expanded string, _ int, _ []string) string {
	m := pdfVersionFile.FindStringSubmatch(expanded)
	if m == nil {
		return unknownRef
	}

	return m[1]
}

func pdfVersionMsg(_ *Category, expanded string) string {
	pairs := pdfVersionPairs.FindAllStringSubmatch(expanded, 2)
	if len(pairs) < 2 {
		return expanded
	}

	return fmt.Sprintf("found %s instead of %s", pairs[0][1], pairs[1][1])
}

// contextMarkerRef and contextMarkerMsg split the first "l.<N> <rest>" marker
// in the expanded block into reference and message.
func contextMarkerRef(_ *Category, expanded string, _ int, _ []string) string {
	m := contextMarker.FindStringSubmatch(expanded)
	if m == nil {
		return unknownRef
	}

	return m[1]
}

func contextMarkerMsg(_ *Category, expanded string) string {
	m := contextMarker.FindStringSubmatch(expanded)
	if m == nil || m[2] == "" {
		first, _, _ := strings.Cut(expanded, "\n")

		return first
	}

	return m[2]
}

const repeatedPageHint = "page numbers are not unique; " +
	`consider \hypersetup{plainpages=false,pdfpagelabels} ` +
	"(see https://tex.stackexchange.com/questions/18924)"

// repeatedPageMsg keeps the multi-line transcript snippet, indenting the
// continuation lines by the digit width of the line number so the snippet
// lines up under its reference, and appends the remediation hint.
func repeatedPageMsg(_ *Category, expanded string) string {
	indent := 0
	if n, err := strconv.Atoi(scanRef(expanded)); err == nil && n > 0 {
		indent = int(math.Floor(math.Log10(float64(n))))
	}

	pad := strings.Repeat(" ", indent)
	snippet := strings.ReplaceAll(expanded, "\n", "\n"+pad)

	return snippet + "\n" + pad + repeatedPageHint
}

// fontShapeMsg strips the "LaTeX Font Warning:" and "(Font)" boilerplate and
// cuts the message at " on input", leaving the shape substitution itself.
func fontShapeMsg(_ *Category, expanded string) string {
	s := expanded
	if i := strings.Index(s, "Font shape"); i >= 0 {
		s = s[i:]
	}

	s = fontShapeBoiler.ReplaceAllString(s, " ")

	if i := strings.Index(s, " on input"); i >= 0 {
		s = s[:i]
	}

	return strings.Join(strings.Fields(s), " ")
}

func citationMsg(_ *Category, expanded string) string {
	m := citationDetail.FindStringSubmatch(expanded)
	if m == nil {
		return expanded
	}

	return fmt.Sprintf("%s (output page %s)", strings.Trim(m[1], "{}"), m[2])
}

// fileEndedRef re-locates the truncated source text the engine was scanning
// when input ran out, reporting every source line that contains it.
func fileEndedRef(c *Category, expanded string, _ int, _ []string) string {
	if c.source == nil {
		return unknownRef
	}

	m := scanningTrigger.FindStringSubmatch(expanded)
	if m == nil {
		return unknownRef
	}

	return joinLineNumbers(c.source.FindAll(m[1]))
}

func labelRef(c *Category, expanded string, _ int, _ []string) string {
	if c.source == nil {
		return unknownRef
	}

	m := labelName.FindStringSubmatch(expanded)
	if m == nil {
		return unknownRef
	}

	return joinLineNumbers(c.source.FindLabel(m[1]))
}

func labelMsg(_ *Category, expanded string) string {
	m := labelName.FindStringSubmatch(expanded)
	if m == nil {
		return expanded
	}

	return m[1]
}

// forwardScanRef walks the logical lines from the triggering one, applying
// the default reference pattern to each, and gives up at the next "!" line:
// past that point any line number belongs to a different error.
func forwardScanRef(_ *Category, _ string, idx int, all []string) string {
	for i := idx; i < len(all); i++ {
		if i > idx && strings.HasPrefix(all[i], "!") {
			break
		}

		if ref := scanRef(all[i]); ref != unknownRef {
			return ref
		}
	}

	return unknownRef
}

func joinLineNumbers(nums []int) string {
	if len(nums) == 0 {
		return unknownRef
	}

	parts := make([]string, 0, len(nums))
	for _, n := range nums {
		parts = append(parts, strconv.Itoa(n))
	}

	return strings.Join(parts, ",")
}

// InsertTracker builds the classification handler chain: the nesting tracker
// slots in right before the generic error catch-all, late enough that every
// specific category sees the line first.
func InsertTracker(cats []*Category, tracker *nesting.Tracker) []Handler {
	handlers := make([]Handler, 0, len(cats)+1)

	for _, c := range cats {
		if c.Name == Errors {
			handlers = append(handlers, tracker)
		}

		handlers = append(handlers, c)
	}

	return handlers
}

// Handler is the negotiation contract shared by categories and the nesting
// tracker: report whether the logical line was claimed.
type Handler interface {
	Handle(line string, idx int, all []string) bool
}

var (
	_ Handler = (*Category)(nil)
	_ Handler = (*nesting.Tracker)(nil)
)
