// Package config loads host options from a TOML file.
//
// Configuration is optional: a missing file yields the defaults, and every
// option can also be set from the command line, which takes precedence.
package config
