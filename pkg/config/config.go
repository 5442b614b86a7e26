// Package config loads the termpaint CLI configuration from the
// user's XDG config directory. All settings are optional; a missing
// config file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds user preferences from config.toml.
type Config struct {
	// Color is the styling mode: "auto", "always", or "never".
	Color string `toml:"color"`
	// Theme is an optional path to a theme file, overriding the user
	// theme in the XDG config directory.
	Theme string `toml:"theme"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{Color: "auto"}
}

// Path returns the location of the user config file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "termpaint", "config.toml")
}

// Load reads the user config file. A missing file is not an error and
// yields the defaults; an unreadable or malformed file is.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return config, nil
}
