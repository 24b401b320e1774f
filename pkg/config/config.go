// Package config loads stromschlag's application configuration.
// Configuration is layered: embedded defaults first, then the user's
// config file when one exists. Project descriptors are not handled
// here; see pkg/project.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the user configuration file looked up under the
// XDG config home.
const ConfigFileName = "stromschlag.toml"

// Config is the unmarshalled application configuration.
type Config struct {
	Seed SeedConfig `koanf:"seed"`
	Pack PackConfig `koanf:"pack"`
}

// SeedConfig controls how new projects are blueprinted from installed
// themes.
type SeedConfig struct {
	PreferredThemes  []string `koanf:"preferred_themes"`
	ExtraSearchPaths []string `koanf:"extra_search_paths"`
}

// PackConfig holds defaults applied to new pack settings.
type PackConfig struct {
	DefaultAuthor    string `koanf:"default_author"`
	DefaultInherits  string `koanf:"default_inherits"`
	DefaultSizes     []int  `koanf:"default_sizes"`
	DefaultOutputDir string `koanf:"default_output_dir"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// UserConfigPath returns the path of the user configuration file,
// whether or not it exists.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "stromschlag", ConfigFileName)
}

// Load returns the application configuration: embedded defaults merged
// with the user config file when present.
func Load() (*Config, error) {
	return loadFrom(UserConfigPath())
}

func loadFrom(userPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load user config from %s: %w", userPath, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
