// Package config loads poet settings from an optional YAML file and
// POET_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
	"github.com/indaco/poet/internal/search"
	"github.com/indaco/poet/internal/tui"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "POET_"

// Config holds the user settings for poet.
type Config struct {
	// SearchURL is the HTML search page queried for dependencies.
	SearchURL string `yaml:"search-url" env:"SEARCH_URL"`

	// Theme is the prompt theme, one of tui.ValidThemes.
	Theme string `yaml:"theme" env:"THEME"`

	// Debug enables diagnostic logging on stderr.
	Debug bool `yaml:"debug" env:"DEBUG"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SearchURL: search.DefaultURL,
		Theme:     "poet",
	}
}

// Loader resolves the configuration file path and the environment.
type Loader struct {
	// Path overrides the configuration file location. "" means DefaultPath.
	Path string

	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// LoadConfigFn is the loader used by the CLI. Tests may replace it.
var LoadConfigFn = func() (*Config, error) {
	return (&Loader{Path: os.Getenv(EnvPrefix + "CONFIG")}).Load()
}

// DefaultPath returns <user config dir>/poet/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "poet", "config.yaml"), nil
}

// Load applies defaults, then the YAML file if it exists, then the environment.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	path := l.Path
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if l.Environment != nil {
		opts.Environment = l.Environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		// an empty file decodes to EOF and keeps the defaults
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.SearchURL == "" {
		return errors.New("search-url must not be empty")
	}
	if !tui.IsValidTheme(c.Theme) {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, tui.ValidThemes)
	}
	return nil
}
