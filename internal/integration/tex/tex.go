// Package tex runs the external TeX engine and captures its transcript for
// classification.
package tex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/farcloser/primordium/fault"

	"github.com/texsieve/texsieve/internal/integration/binary"
)

// Run compiles the document at path with the given engine in nonstop mode and
// returns the combined stdout+stderr transcript. A nonzero engine exit is not
// an error here: the engine exits nonzero on any TeX error, and the
// transcript is exactly what classification wants.
func Run(ctx context.Context, engine, path string) (string, error) {
	slog.Debug("tex.Run", "engine", engine, "path", path, "stage", "start")

	enginePath, found := binary.Available(engine)
	if !found {
		return "", fmt.Errorf("%w: %s", fault.ErrMissingRequirements, engine)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, enginePath,
		"-interaction=nonstopmode",
		filepath.Base(path),
	)
	cmd.Dir = filepath.Dir(path)

	var out bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Debug("tex.Run", "engine", engine, "stage", "timeout")

			return out.String(), fmt.Errorf("%w: after %v", fault.ErrTimeout, timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("tex.Run", "engine", engine, "stage", "nonzero exit", "code", exitErr.ExitCode())

			return out.String(), nil
		}

		slog.Debug("tex.Run", "engine", engine, "stage", "error")

		return out.String(), fmt.Errorf("%w: %s: %w", fault.ErrCommandFailure, out.String(), err)
	}

	return out.String(), nil
}
