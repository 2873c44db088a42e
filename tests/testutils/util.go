// Package testutils provides test infrastructure for texsieve integration tests.
package testutils

import (
	"path/filepath"
	"runtime"
)

// Binary returns the path of the texsieve binary under test, expected at
// bin/texsieve in the project root.
func Binary() string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))

	return filepath.Join(projectRoot, "bin", "texsieve")
}

// Testdata returns the absolute path of a fixture under tests/testdata.
func Testdata(name string) string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	testsDir := filepath.Dir(filepath.Dir(thisFile))

	return filepath.Join(testsDir, "testdata", name)
}
