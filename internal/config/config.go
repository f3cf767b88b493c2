// Package config loads user configuration from a TOML file.
//
// The only configurable surface is key bindings. A [bindings] table
// maps operation names to key sequence specs; each entry replaces all
// default bindings for that operation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/ped/internal/input/keymap"
)

// Config is the parsed user configuration.
type Config struct {
	// Bindings maps an operation name to the key sequence spec bound
	// to it, for example "quit" = "C-x C-c".
	Bindings map[string]string `toml:"bindings"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/ped/config.toml, falling back to
// ~/.config/ped/config.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ped", "config.toml")
}

// Load reads and parses the config file at path. A missing file is not
// an error; the zero Config is returned.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Overrides converts the configured bindings into keymap overrides,
// ordered by operation name so compilation errors are deterministic.
func (c Config) Overrides() []keymap.Binding {
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]keymap.Binding, 0, len(names))
	for _, name := range names {
		out = append(out, keymap.Binding{Keys: c.Bindings[name], Op: name})
	}
	return out
}
