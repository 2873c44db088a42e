// Package texsieve classifies the transcript of a TeX engine run into named
// diagnostic categories and renders a compact, bounded report.
package texsieve

/*
Usage:

	out, _ := tex.Run(ctx, "pdflatex", "thesis.tex")

	report, err := texsieve.Classify(out, texsieve.Options{SourcePath: "thesis.tex"})
	if err != nil {
	    return err
	}

	fmt.Print(report.Render(render.Options{Color: true}))

	if report.HasCitationWarnings() || report.HasReferenceWarnings() {
	    // run the engine again
	}
*/

import (
	"github.com/texsieve/texsieve/internal/nesting"
	"github.com/texsieve/texsieve/internal/pipeline"
	"github.com/texsieve/texsieve/internal/rules"
	"github.com/texsieve/texsieve/internal/srctext"
)

// verboseLimit is the display limit granted to the bulk warning categories
// under --verbose; they default to counts-only.
const verboseLimit = 50

// Classify runs one classification pass over a raw engine transcript. The
// pass is synchronous and single-owner: a fresh pipeline, tracker and
// category set per call, diagnostics append-only during the pass and
// read-only in the returned Report. Transcript content never fails
// classification; only a configured-but-unreadable source file does.
func Classify(transcript string, opts Options) (*Report, error) {
	var (
		src *srctext.Buffer
		err error
	)

	if opts.SourcePath != "" {
		src, err = srctext.Load(opts.SourcePath)
		if err != nil {
			return nil, err
		}
	}

	tracker := nesting.New()

	cats := rules.Categories(rules.Params{Tracker: tracker, Source: src})
	applyLimits(cats, opts)

	pipe := pipeline.New(rules.InsertTracker(cats, tracker))
	pipe.Run(transcript)

	return &Report{pipe: pipe}, nil
}

func applyLimits(cats []*rules.Category, opts Options) {
	for _, c := range cats {
		switch {
		case opts.Quiet && c.Interesting:
			c.DisplayLimit = 0
		case opts.Verbose && !c.Interesting:
			c.DisplayLimit = verboseLimit
		}

		if limit, ok := opts.Limits[c.Name]; ok {
			c.DisplayLimit = limit
		}
	}
}
