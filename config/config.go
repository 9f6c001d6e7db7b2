// Package config loads docdeck client configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// APIConfig contains connection details for the docdeck backend.
type APIConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// CacheConfig holds the staleness windows and autocomplete throttle.
type CacheConfig struct {
	ShortSecs   int     `yaml:"short_secs"`
	ListingSecs int     `yaml:"listing_secs"`
	LongSecs    int     `yaml:"long_secs"`
	SuggestRPS  float64 `yaml:"suggest_rps"`
}

// Config is the root client configuration structure.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Cache CacheConfig `yaml:"cache"`

	// DBPath is where the credential and history database lives.
	DBPath string `yaml:"db_path"`

	LogLevel string `yaml:"log_level"`
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// ShortWindow returns the short staleness window as a duration.
func (c *Config) ShortWindow() time.Duration {
	return time.Duration(c.Cache.ShortSecs) * time.Second
}

// ListingWindow returns the listing staleness window as a duration.
func (c *Config) ListingWindow() time.Duration {
	return time.Duration(c.Cache.ListingSecs) * time.Second
}

// LongWindow returns the long staleness window as a duration.
func (c *Config) LongWindow() time.Duration {
	return time.Duration(c.Cache.LongSecs) * time.Second
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults. The DOCDECK_API_URL environment variable overrides the
// configured base URL either way.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if url := os.Getenv("DOCDECK_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	return cfg, nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./docdeck.yaml first, then ~/.config/docdeck/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*Config, string, error) {
	cwdPath := "docdeck.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	if url := os.Getenv("DOCDECK_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docdeck", "config.yaml"), nil
}

// DefaultDBPath returns the default credential database location.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "docdeck", "docdeck.db"), nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}
	if cfg.API.TimeoutSecs == 0 {
		cfg.API.TimeoutSecs = 30
	}
	if cfg.API.MaxAttempts == 0 {
		cfg.API.MaxAttempts = 4
	}
	if cfg.Cache.ShortSecs == 0 {
		cfg.Cache.ShortSecs = 30
	}
	if cfg.Cache.ListingSecs == 0 {
		cfg.Cache.ListingSecs = 300
	}
	if cfg.Cache.LongSecs == 0 {
		cfg.Cache.LongSecs = 1200
	}
	if cfg.Cache.SuggestRPS == 0 {
		cfg.Cache.SuggestRPS = 5
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
