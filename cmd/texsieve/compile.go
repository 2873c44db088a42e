//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/texsieve/texsieve"
	"github.com/texsieve/texsieve/internal/config"
	"github.com/texsieve/texsieve/internal/integration/tex"
)

var errCompileArgs = errors.New("expected exactly one argument: path to the root .tex file")

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:      "compile",
		Usage:     "Compile a document and summarize the engine transcript",
		ArgsUsage: "<file.tex>",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "engine",
				Aliases: []string{"e"},
				Usage:   "TeX engine binary: pdflatex, lualatex, xelatex, ... (default: config file, then pdflatex)",
			},
			&cli.IntFlag{
				Name:  "max-runs",
				Usage: "Maximum engine runs while citations or references stay unresolved",
				Value: 3,
			},
		}, reportFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errCompileArgs, cmd.NArg())
			}

			path := cmd.Args().First()

			cfg, err := config.Load(filepath.Join(filepath.Dir(path), config.FileName))
			if err != nil {
				return err
			}

			engine := cmd.String("engine")
			if engine == "" {
				engine = cfg.Engine
			}

			if engine == "" {
				engine = tex.DefaultEngine
			}

			opts := texsieve.Options{
				Quiet:      cmd.Bool("quiet"),
				Verbose:    cmd.Bool("verbose"),
				SourcePath: path,
				Limits:     cfg.Limits,
			}

			maxRuns := cmd.Int("max-runs")

			var report *texsieve.Report

			for run := 1; ; run++ {
				transcript, runErr := tex.Run(ctx, engine, path)
				if runErr != nil {
					return fmt.Errorf("engine run %d: %w", run, runErr)
				}

				report, err = texsieve.Classify(transcript, opts)
				if err != nil {
					return fmt.Errorf("classification failed: %w", err)
				}

				if run >= maxRuns || !(report.HasCitationWarnings() || report.HasReferenceWarnings()) {
					break
				}

				slog.Debug("compile", "run", run, "stage", "rerun",
					"citations", report.HasCitationWarnings(),
					"references", report.HasReferenceWarnings())
			}

			return outputReport(path, report, cmd.String("format"), colorEnabled(cmd, cfg))
		},
	}
}

// reportFlags are shared by every command that renders a report.
func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: console, json, markdown",
			Value:   "console",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable ANSI colors in console output",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Show only counts for the interesting categories",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Show up to 50 rows for the bulk warning categories",
		},
	}
}

func colorEnabled(cmd *cli.Command, cfg *config.Config) bool {
	if cmd.Bool("no-color") {
		return false
	}

	if cfg != nil && cfg.Color != nil {
		return *cfg.Color
	}

	return true
}
