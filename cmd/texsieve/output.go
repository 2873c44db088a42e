//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/texsieve/texsieve"
	"github.com/texsieve/texsieve/internal/output"
	"github.com/texsieve/texsieve/internal/render"
)

// outputReport prints the classified report. The console path uses the
// renderer's own layout; the structured formats go through the shared
// formatter registry.
func outputReport(path string, report *texsieve.Report, formatName string, colorOn bool) error {
	if formatName == "console" {
		fmt.Print(report.Render(render.Options{Color: colorOn}))

		return nil
	}

	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := &format.Data{
		Object: path,
		Meta:   output.ReportToMap(report),
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}
