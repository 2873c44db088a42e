package srctext_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsieve/texsieve/internal/srctext"
)

const sample = `\documentclass{article}
\begin{document}
\section{Intro}\label{sec:intro}
Some text.
\section{Intro again}\label{sec:intro}
\end{document}`

func TestFindAllReturnsOneBasedLines(t *testing.T) {
	t.Parallel()

	buf := srctext.FromString(sample)

	assert.Equal(t, []int{1}, buf.FindAll(`\documentclass`))
	assert.Equal(t, []int{3, 5}, buf.FindAll(`\section`))
	assert.Nil(t, buf.FindAll("no such fragment"))
}

func TestFindAllEmptyFragment(t *testing.T) {
	t.Parallel()

	buf := srctext.FromString(sample)

	assert.Nil(t, buf.FindAll(""))
}

func TestFindLabel(t *testing.T) {
	t.Parallel()

	buf := srctext.FromString(sample)

	assert.Equal(t, []int{3, 5}, buf.FindLabel("sec:intro"))
	assert.Nil(t, buf.FindLabel("sec:missing"))
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.tex")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	buf, err := srctext.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, buf.Path())
	assert.Equal(t, []int{3, 5}, buf.FindLabel("sec:intro"))
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := srctext.Load(filepath.Join(t.TempDir(), "absent.tex"))

	require.Error(t, err)
}
