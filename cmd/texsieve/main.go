package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/texsieve/texsieve/version"
)

func main() {
	ctx := context.Background()

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "TeX compiler wrapper that sieves the transcript into a compact report",
		Version: version.Version() + " " + version.Commit(),
		Commands: []*cli.Command{
			compileCommand(),
			classifyCommand(),
			wordsCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
