// Package render serializes classified diagnostics into the final report:
// one bounded, aligned, optionally colorized block per non-empty category.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/texsieve/texsieve/internal/rules"
)

// Options is the explicit rendering configuration. Color enablement is
// threaded through here rather than toggled process-wide.
type Options struct {
	Color bool
}

const ellipsis = "..."

// Report renders every non-empty category, in configured order, as a header
// line "<Name> [<count>]:" followed by one aligned row per shown diagnostic.
// Diagnostics are sorted with a natural numeric-aware comparator so that line
// reference "9" precedes "10". A display limit of zero shows the header and
// count only; rules.NoLimit shows everything; a truncated block ends with an
// ellipsis row padded to the alignment width. An empty report renders "".
func Report(cats []*rules.Category, opts Options) string {
	var b strings.Builder

	col := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)

	for _, cat := range cats {
		if cat.Count() == 0 {
			continue
		}

		writeCategory(&b, cat, col, opts)
	}

	return b.String()
}

func writeCategory(b *strings.Builder, cat *rules.Category, col *collate.Collator, opts Options) {
	diags := append([]rules.Diagnostic(nil), cat.Diagnostics()...)

	slices.SortStableFunc(diags, func(a, b rules.Diagnostic) int {
		return col.CompareString(key(a), key(b))
	})

	fmt.Fprintf(b, "%s [%d]:\n", headerColor(cat, opts).Sprint(cat.Name), cat.Count())

	limit := cat.DisplayLimit

	shown := diags
	truncated := false

	if limit != rules.NoLimit && limit < len(diags) {
		shown = diags[:limit]
		truncated = true
	}

	width := cat.MaxRefWidth()
	refc := refColor(opts)

	for _, d := range shown {
		ref := d.DisplayRef()
		pad := strings.Repeat(" ", max(0, width-len(ref)))
		fmt.Fprintf(b, "%s%s %s\n", refc.Sprint(ref), pad, d.Message)
	}

	if truncated {
		fmt.Fprintf(b, "%-*s\n", width, ellipsis)
	}
}

// key is the natural-sort key: the "(ref, message)" string form, compared
// with numeric runs as numbers and the rest case-insensitively.
func key(d rules.Diagnostic) string {
	return d.DisplayRef() + " " + d.Message
}

func headerColor(cat *rules.Category, opts Options) *color.Color {
	c := color.New(color.Bold, color.FgYellow)
	if cat.Kind == rules.KindError {
		c = color.New(color.Bold, color.FgRed)
	}

	return enable(c, opts)
}

func refColor(opts Options) *color.Color {
	return enable(color.New(color.FgCyan), opts)
}

// enable forces the per-instance color state so rendering never depends on
// the package-global NoColor toggle.
func enable(c *color.Color, opts Options) *color.Color {
	if opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}
