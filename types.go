package texsieve

import (
	"github.com/texsieve/texsieve/internal/pipeline"
	"github.com/texsieve/texsieve/internal/render"
	"github.com/texsieve/texsieve/internal/rules"
)

// Options configures one classification pass.
type Options struct {
	// Quiet suppresses the rows of the interesting categories (counts still
	// render). Verbose raises the bulk warning categories to a display limit
	// of 50 instead of counts-only.
	Quiet   bool
	Verbose bool

	// SourcePath names the root .tex file. When set, it is loaded once and
	// shared by the categories that re-locate log fragments in the source;
	// an unreadable file is a fatal error. When empty, those categories
	// degrade their references to "-".
	SourcePath string

	// Limits overrides display limits per category name. 0 means counts
	// only; rules.NoLimit removes the bound.
	Limits map[string]int
}

// Report is the classified outcome of one engine run. It is read-only:
// render it, or query it to decide whether another engine run is needed.
type Report struct {
	pipe *pipeline.Pipeline
}

// Render serializes the report; an all-empty report renders "".
func (r *Report) Render(opts render.Options) string {
	return render.Report(r.pipe.Categories(), opts)
}

// HasCitationWarnings reports unresolved citations, which usually means the
// engine must run again (or bibtex must).
func (r *Report) HasCitationWarnings() bool {
	return r.pipe.HasDiagnostics(rules.Citations)
}

// HasReferenceWarnings reports unresolved cross-references, which clear up
// on a re-run once the .aux file is current.
func (r *Report) HasReferenceWarnings() bool {
	return r.pipe.HasDiagnostics(rules.References)
}

// Count returns the number of diagnostics collected under the named category.
func (r *Report) Count(name string) int {
	c := r.pipe.Category(name)
	if c == nil {
		return 0
	}

	return c.Count()
}

// Categories exposes the classified categories in configured order.
func (r *Report) Categories() []*rules.Category {
	return r.pipe.Categories()
}
