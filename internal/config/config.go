// Package config handles user configuration loading and resolution.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Export formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatText     = "text"
)

// ValidColors lists the accepted color values.
var ValidColors = []string{ColorAuto, ColorAlways, ColorNever}

// ValidFormats lists the accepted export formats.
var ValidFormats = []string{FormatMarkdown, FormatJSON, FormatText}

// ExportConfig controls the export command.
type ExportConfig struct {
	Format string `yaml:"format"` // "markdown" | "json" | "text"
}

// Config is the user configuration. It never holds the database path: that
// is always derived from the working directory.
type Config struct {
	Color  string       `yaml:"color"`  // "auto" | "always" | "never"
	Header bool         `yaml:"header"` // print the banner bars around output
	Export ExportConfig `yaml:"export"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Color:  ColorAuto,
		Header: false,
		Export: ExportConfig{Format: FormatMarkdown},
	}
}

// Load reads a config.yaml from path and applies environment overrides.
// If the file does not exist it returns Default() with no error.
// Missing or invalid keys retain their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if err == nil {
		// Unmarshal into a plain map so we can apply only the keys that are present.
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}

		if v, ok := raw["color"].(string); ok && slices.Contains(ValidColors, v) {
			cfg.Color = v
		}
		if v, ok := raw["header"].(bool); ok {
			cfg.Header = v
		}
		if exp, ok := raw["export"].(map[string]any); ok {
			if v, ok := exp["format"].(string); ok && slices.Contains(ValidFormats, v) {
				cfg.Export.Format = v
			}
		}
	}

	if v := strings.ToLower(strings.TrimSpace(os.Getenv("TODO_COLOR"))); slices.Contains(ValidColors, v) {
		cfg.Color = v
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Path resolution
// ---------------------------------------------------------------------------

// ResolvePath returns the config file path and the source of the resolution.
// Priority: TODO_CONFIG env → ~/.config/todovault/config.yaml.
// source is one of "env" or "default".
func ResolvePath() (path, source string) {
	if env := os.Getenv("TODO_CONFIG"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "todovault", "config.yaml"), "default"
}

// LoadDefault loads the config from the resolved path.
func LoadDefault() (*Config, error) {
	path, _ := ResolvePath()
	return Load(path)
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}
