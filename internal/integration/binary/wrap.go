package binary

import (
	"os/exec"
)

// Available resolves binName on the PATH, reporting whether it can be run.
func Available(binName string) (string, bool) {
	path, err := exec.LookPath(binName)

	return path, err == nil
}
