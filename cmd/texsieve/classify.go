//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/texsieve/texsieve"
)

var errClassifyArgs = errors.New("expected exactly one argument: transcript path or \"-\" for stdin")

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Classify a captured engine transcript without running the engine",
		ArgsUsage: "<file.log | ->",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "Root .tex file, enabling source re-scan for missing parentheses and duplicate labels",
			},
		}, reportFlags()...),
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errClassifyArgs, cmd.NArg())
			}

			transcript, err := readTranscript(cmd.Args().First())
			if err != nil {
				return err
			}

			report, err := texsieve.Classify(transcript, texsieve.Options{
				Quiet:      cmd.Bool("quiet"),
				Verbose:    cmd.Bool("verbose"),
				SourcePath: cmd.String("source"),
			})
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}

			return outputReport(cmd.Args().First(), report, cmd.String("format"), colorEnabled(cmd, nil))
		},
	}
}

// readTranscript loads the whole transcript up front. Classification is a
// single pass over an in-memory blob, stdin included.
func readTranscript(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(source) //nolint:gosec // CLI tool reads user-specified transcripts
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", source, err)
	}

	return string(data), nil
}
