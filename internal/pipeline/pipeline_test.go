package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texsieve/texsieve/internal/nesting"
	"github.com/texsieve/texsieve/internal/pipeline"
	"github.com/texsieve/texsieve/internal/rules"
)

func newPipeline() *pipeline.Pipeline {
	tracker := nesting.New()
	cats := rules.Categories(rules.Params{Tracker: tracker})

	return pipeline.New(rules.InsertTracker(cats, tracker))
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"! Undefined control sequence.",
		`l.5 \foo`,
	}, "\n")

	pipe := newPipeline()
	pipe.Run(raw)

	// The specific category claims the line; the generic catch-all never
	// sees it even though its pattern also matches.
	require.Equal(t, 1, pipe.Category(rules.UndefinedSequences).Count())
	require.Zero(t, pipe.Category(rules.Errors).Count())

	diag := pipe.Category(rules.UndefinedSequences).Diagnostics()[0]
	require.Equal(t, "5", diag.Ref)
}

func TestLatexErrorBeatsGenericError(t *testing.T) {
	t.Parallel()

	pipe := newPipeline()
	pipe.Run("! LaTeX Error: Environment itemize undefined.")

	require.Equal(t, 1, pipe.Category(rules.LatexErrors).Count())
	require.Zero(t, pipe.Category(rules.Errors).Count())
}

func TestGenericErrorCatchesUnknownSignatures(t *testing.T) {
	t.Parallel()

	pipe := newPipeline()
	pipe.Run("! Totally novel failure phrasing nobody anticipated.")

	require.Equal(t, 1, pipe.Category(rules.Errors).Count())
}

func TestNestingContextFlowsIntoDiagnostics(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"(main.tex",
		"(chapter1.tex",
		"LaTeX Warning: Reference `X' on page 2 undefined on input line 7.",
		")",
		")",
	}, "\n")

	pipe := newPipeline()
	pipe.Run(raw)

	refs := pipe.Category(rules.References)
	require.Equal(t, 1, refs.Count())
	require.Equal(t, "chapter1.tex: 7", refs.Diagnostics()[0].DisplayRef())
}

func TestHasDiagnostics(t *testing.T) {
	t.Parallel()

	pipe := newPipeline()
	pipe.Run("LaTeX Warning: Citation `foo' on page 3 undefined on input line 2.")

	require.True(t, pipe.HasDiagnostics(rules.Citations))
	require.False(t, pipe.HasDiagnostics(rules.References))
	require.False(t, pipe.HasDiagnostics("no such category"))
}

func TestCategoriesKeepConfiguredOrder(t *testing.T) {
	t.Parallel()

	pipe := newPipeline()
	cats := pipe.Categories()

	require.Equal(t, rules.PDFVersionMismatches, cats[0].Name)
	require.Equal(t, rules.OtherWarnings, cats[len(cats)-1].Name)
}

func TestWrappedCitationLineIsClassified(t *testing.T) {
	t.Parallel()

	// The warning is split across two physical lines at exactly 79 columns;
	// only the merged logical line matches the citation pattern.
	prefix := "LaTeX Warning: Citation `"
	head := prefix + strings.Repeat("x", 79-len(prefix))
	require.Len(t, head, 79)

	raw := head + "\n' on page 3 undefined on input line 12."

	pipe := newPipeline()
	pipe.Run(raw)

	require.Equal(t, 1, pipe.Category(rules.Citations).Count())
	require.Zero(t, pipe.Category(rules.OtherWarnings).Count())
}
