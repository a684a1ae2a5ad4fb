// Package config loads the optional toonctl YAML configuration file:
// named filter-pattern presets and a default free-slot search window,
// parsed the same way the teacher's database.ParseGeneratorConfig loads
// its YAML generator config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the parsed contents of a toonctl config file.
type Config struct {
	FilterPresets     map[string][]string `yaml:"filter_presets"`
	DefaultWindowDays int                  `yaml:"default_window_days"`
}

// Load reads and parses the YAML config file at path. An empty path
// returns a zero Config with no error, matching the teacher's convention
// that a config file is optional.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(buf)
}

// Parse parses YAML bytes into a Config.
func Parse(buf []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(buf, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// ResolvePreset returns the fixed pattern list for the built-in "google"
// preset, or a user-defined preset from c.FilterPresets, in that search
// order. The bool result reports whether name was found at all.
func (c Config) ResolvePreset(name string) ([]string, bool) {
	if name == GooglePresetName {
		return GooglePreset, true
	}
	patterns, ok := c.FilterPresets[name]
	return patterns, ok
}

// GooglePresetName is the one built-in preset name spec.md §6 defines.
const GooglePresetName = "google"

// GooglePreset is the fixed pattern list for GooglePresetName.
var GooglePreset = []string{
	"etag", "kind", "htmlLink", "iCalUID", "sequence",
	"reminders.useDefault", "creator.self", "organizer.self",
	"*.etag", "*.kind", "*.htmlLink", "*.iCalUID", "*.sequence",
}
