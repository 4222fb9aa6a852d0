// Package config provides configuration types and defaults for hecto.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/hecto/internal/log"
	"github.com/zjrosen/hecto/internal/row"
)

// Config holds all configuration options for hecto.
type Config struct {
	Debug    bool         `mapstructure:"debug" yaml:"debug"`
	LogFile  string       `mapstructure:"log_file" yaml:"log_file"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"` // debug (default), info, warn, error
	Search   SearchConfig `mapstructure:"search" yaml:"search"`
	Prompt   PromptConfig `mapstructure:"prompt" yaml:"prompt"`
}

// SearchConfig holds defaults for `hecto find` and the prompt's find keys.
type SearchConfig struct {
	Direction string `mapstructure:"direction" yaml:"direction"` // "forward" (default) or "backward"
	Query     string `mapstructure:"query" yaml:"query"`         // Initial prompt search query
}

// PromptConfig holds the interactive single-row prompt settings.
type PromptConfig struct {
	Width       int    `mapstructure:"width" yaml:"width"` // Visible cells
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
}

// ParsedDirection returns the configured search direction.
func (s SearchConfig) ParsedDirection() (row.Direction, error) {
	if s.Direction == "" {
		return row.Forward, nil
	}
	return row.ParseDirection(s.Direction)
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Debug:    false,
		LogFile:  "hecto.log",
		LogLevel: "debug",
		Search: SearchConfig{
			Direction: "forward",
		},
		Prompt: PromptConfig{
			Width:       60,
			Placeholder: "Type some text...",
		},
	}
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	if _, err := c.Search.ParsedDirection(); err != nil {
		return fmt.Errorf("search.direction: %w", err)
	}
	if c.Prompt.Width < 1 {
		return fmt.Errorf("prompt.width must be at least 1, got %d", c.Prompt.Width)
	}
	return nil
}

// SetDefaults registers every default on v so partial config files inherit them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("search.direction", d.Search.Direction)
	v.SetDefault("search.query", d.Search.Query)
	v.SetDefault("prompt.width", d.Prompt.Width)
	v.SetDefault("prompt.placeholder", d.Prompt.Placeholder)
}

// Load reads configuration into a fresh viper instance.
//
// Lookup order when path is empty:
//  1. .hecto/config.yaml (current directory)
//  2. ~/.config/hecto/config.yaml (user config)
//
// A missing file is not an error; defaults apply. The returned string is
// the file that was read, or "" when none was found.
func Load(path string) (Config, string, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(LocalConfigPath); err == nil {
		v.SetConfigFile(LocalConfigPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "hecto"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}

	log.Debug(log.CatConfig, "Loaded config", "file", v.ConfigFileUsed())
	return cfg, v.ConfigFileUsed(), nil
}

// LocalConfigPath is the project-local config location.
const LocalConfigPath = ".hecto/config.yaml"

// DefaultConfigTemplate returns a commented config file with every default.
func DefaultConfigTemplate() string {
	return `# hecto configuration

# Write a debug log (also enabled by --debug)
debug: false
log_file: hecto.log
log_level: debug          # debug, info, warn, error

# Search defaults
search:
  direction: forward      # forward or backward
  # query: "foo"          # initial query for the prompt's find keys

# Interactive prompt (hecto prompt)
prompt:
  width: 60               # visible cells
  placeholder: "Type some text..."
`
}

// WriteDefaultConfig creates the config file at configPath from the template.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// Save writes cfg to configPath as YAML, replacing any existing file.
func Save(configPath string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save config", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Info(log.CatConfig, "Saved config", "path", configPath)
	return nil
}
