// Package output provides shared report serialization for texsieve JSON and
// markdown output.
package output

import (
	"github.com/texsieve/texsieve"
)

// ReportToMap converts a classified report into the canonical map structure
// used by the non-console formatters.
func ReportToMap(report *texsieve.Report) map[string]any {
	cats := report.Categories()

	total := 0
	categories := make([]any, 0, len(cats))

	for _, cat := range cats {
		if cat.Count() == 0 {
			continue
		}

		total += cat.Count()

		diags := make([]any, 0, cat.Count())
		for _, d := range cat.Diagnostics() {
			diags = append(diags, map[string]any{
				"ref":          d.Ref,
				"message":      d.Message,
				"file_context": d.FileContext,
			})
		}

		categories = append(categories, map[string]any{
			"name":          cat.Name,
			"count":         cat.Count(),
			"display_limit": cat.DisplayLimit,
			"diagnostics":   diags,
		})
	}

	return map[string]any{
		"summary": map[string]any{
			"diagnostic_count":      total,
			"citations_unresolved":  report.HasCitationWarnings(),
			"references_unresolved": report.HasReferenceWarnings(),
		},
		"categories": categories,
	}
}
