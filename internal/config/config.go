// Package config loads the optional texsieve.toml run-control file: engine
// selection, color preference, and per-category display-limit overrides.
// Flags always win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// FileName is looked up next to the document being compiled.
const FileName = "texsieve.toml"

type Config struct {
	// Engine overrides the TeX engine binary, e.g. "pdflatex" or "lualatex".
	Engine string `toml:"engine"`

	// Color switches ANSI output; nil means "not set".
	Color *bool `toml:"color"`

	// Limits maps category display names to display limits. 0 suppresses
	// rows (counts still render); -1 removes the bound.
	Limits map[string]int `toml:"limits"`
}

// Load parses the file at path. A missing file is not an error: flags and
// defaults cover everything the file can set.
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &cfg, nil
}
