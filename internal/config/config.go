package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pdxmph/feedbook/internal/ids"
	"github.com/pdxmph/feedbook/internal/state"
)

// Config holds the application configuration
type Config struct {
	Storage StorageConfig `toml:"storage"`
	IDs     IDsConfig     `toml:"ids"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig controls the optional session database. An empty path keeps
// the session in memory only.
type StorageConfig struct {
	Path string `toml:"path"`
}

// IDsConfig selects the contact id generator
type IDsConfig struct {
	Generator string `toml:"generator"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	StartView string `toml:"start_view"`
}

// LogConfig holds logging settings. An empty path discards logs.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		IDs: IDsConfig{Generator: "uuid"},
		UI:  UIConfig{StartView: state.ViewFeedback.String()},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the standard config file location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}
	return filepath.Join(homeDir, ".config", "feedbook", "config.toml"), nil
}

// Load loads configuration from the standard location
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if _, err := state.ParseView(c.UI.StartView); err != nil {
		return fmt.Errorf("ui.start_view: %w", err)
	}

	if !contains(ids.List(), c.IDs.Generator) {
		return fmt.Errorf("ids.generator: unknown generator %q (want one of %s)",
			c.IDs.Generator, strings.Join(ids.List(), ", "))
	}

	if !contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: unknown level %q (want one of %s)",
			c.Log.Level, strings.Join(logLevels, ", "))
	}

	return nil
}

// StartView returns the parsed start view
func (c *Config) StartView() state.View {
	v, err := state.ParseView(c.UI.StartView)
	if err != nil {
		return state.ViewFeedback
	}
	return v
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}

// Save saves the configuration to the standard location
func (c *Config) Save() error {
	configPath, err := DefaultPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}
