package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Options holds host configuration.
type Options struct {
	// Script is the path to a Lua script run against the upcase module.
	Script string `toml:"script"`

	// Watch re-runs the script when it changes on disk.
	Watch bool `toml:"watch"`

	// Write rewrites the input file in place instead of printing to stdout.
	Write bool `toml:"write"`
}

// Default returns the default options.
func Default() Options {
	return Options{}
}

// Load reads options from a TOML file.
// A missing file is not an error; defaults are returned.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return opts, nil
}
