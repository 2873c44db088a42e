package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texsieve/texsieve/internal/config"
)

func write(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFullFile(t *testing.T) {
	t.Parallel()

	path := write(t, `
engine = "lualatex"
color = false

[limits]
"Underfull boxes" = 0
"Overfull boxes" = -1
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lualatex", cfg.Engine)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
	assert.Equal(t, 0, cfg.Limits["Underfull boxes"])
	assert.Equal(t, -1, cfg.Limits["Overfull boxes"])
}

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	require.NoError(t, err)

	assert.Empty(t, cfg.Engine)
	assert.Nil(t, cfg.Color)
	assert.Empty(t, cfg.Limits)
}

func TestLoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	_, err := config.Load(write(t, `engine = [broken`))

	require.Error(t, err)
}
