package extension

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Manifest describes an extension's metadata.
type Manifest struct {
	Name        string `json:"name"`        // Unique identifier (e.g., "upcase")
	Version     string `json:"version"`     // Semver (e.g., "1.0.0")
	DisplayName string `json:"displayName"` // Human-readable name
	Description string `json:"description"` // Short description
	Author      string `json:"author"`      // Author name or org
	Main        string `json:"main"`        // Relative path to main Lua file

	// Commands the extension contributes.
	Commands []CommandContribution `json:"commands"`
}

// CommandContribution declares a command the extension provides.
type CommandContribution struct {
	ID    string `json:"id"`    // Command ID (e.g., "text.to_uppercase")
	Title string `json:"title"` // Display title
}

// Validation errors.
var (
	ErrMissingName      = errors.New("manifest: name is required")
	ErrInvalidName      = errors.New("manifest: name must be alphanumeric with hyphens")
	ErrMissingVersion   = errors.New("manifest: version is required")
	ErrInvalidVersion   = errors.New("manifest: version must be valid semver")
	ErrInvalidMain      = errors.New("manifest: main must be a .lua file")
	ErrMissingCommandID = errors.New("manifest: command id is required")
)

// namePattern validates extension names.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$|^[a-z]$`)

// semverPattern validates version strings (simplified semver).
var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?$`)

// Validate checks the manifest for required fields and formats.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, m.Name)
	}
	if m.Version == "" {
		return ErrMissingVersion
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, m.Version)
	}
	if m.Main != "" && !strings.HasSuffix(m.Main, ".lua") {
		return fmt.Errorf("%w: %q", ErrInvalidMain, m.Main)
	}
	for _, cmd := range m.Commands {
		if cmd.ID == "" {
			return ErrMissingCommandID
		}
	}
	return nil
}

// LoadManifest reads and validates a manifest from a JSON file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
