//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/texsieve/texsieve/internal/wordcount"
)

var errWordsArgs = errors.New("expected exactly one argument: path to the root .tex file")

func wordsCommand() *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "Count prose words across the document and its includes",
		ArgsUsage: "<file.tex>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errWordsArgs, cmd.NArg())
			}

			path := cmd.Args().First()

			summary, err := wordcount.Count(path)
			if err != nil {
				return err
			}

			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			data := &format.Data{
				Object: path,
				Meta:   summaryToMap(summary),
			}

			return formatter.PrintAll([]*format.Data{data}, os.Stdout)
		},
	}
}

func summaryToMap(summary *wordcount.Summary) map[string]any {
	files := make([]any, 0, len(summary.Files))
	for _, fc := range summary.Files {
		files = append(files, fmt.Sprintf("%s: %d words", fc.Path, fc.Words))
	}

	return map[string]any{
		"total":        summary.Total,
		"files":        files,
		"mean_words":   fmt.Sprintf("%.1f", summary.Mean),
		"stddev_words": fmt.Sprintf("%.1f", summary.StdDev),
	}
}
