// Package config loads service settings from a .env file, an optional YAML
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ewilliams-labs/moodboard/internal/adapters/chain"
	"github.com/ewilliams-labs/moodboard/internal/adapters/music"
	"github.com/ewilliams-labs/moodboard/internal/adapters/palette"
	"github.com/ewilliams-labs/moodboard/internal/adapters/quotes"
)

const defaultConfigFile = "moodboard.yaml"

type Config struct {
	Addr            string        `yaml:"addr"`
	LogLevel        string        `yaml:"log_level"`
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	ZenQuotesURL    string `yaml:"zenquotes_url"`
	QuotableURL     string `yaml:"quotable_url"`
	JamendoURL      string `yaml:"jamendo_url"`
	JamendoClientID string `yaml:"jamendo_client_id"`
	DeezerURL       string `yaml:"deezer_url"`
	ColorAPIURL     string `yaml:"color_api_url"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		ProviderTimeout: chain.DefaultTimeout,
		ZenQuotesURL:    quotes.DefaultZenQuotesURL,
		QuotableURL:     quotes.DefaultQuotableURL,
		JamendoURL:      music.DefaultJamendoURL,
		JamendoClientID: music.DefaultJamendoClientID,
		DeezerURL:       music.DefaultDeezerURL,
		ColorAPIURL:     palette.DefaultColorAPIURL,
	}
}

// Load reads .env (if present), then the YAML file named by MOODBOARD_CONFIG
// or ./moodboard.yaml (if present), then environment overrides.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	path, explicit := os.LookupEnv("MOODBOARD_CONFIG")
	if !explicit {
		path = defaultConfigFile
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return Config{}, err
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Addr, "ADDR")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.ZenQuotesURL, "ZENQUOTES_URL")
	setString(&c.QuotableURL, "QUOTABLE_URL")
	setString(&c.JamendoURL, "JAMENDO_URL")
	setString(&c.JamendoClientID, "JAMENDO_CLIENT_ID")
	setString(&c.DeezerURL, "DEEZER_URL")
	setString(&c.ColorAPIURL, "COLOR_API_URL")

	if raw, ok := os.LookupEnv("PROVIDER_TIMEOUT"); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: PROVIDER_TIMEOUT: %w", err)
		}
		c.ProviderTimeout = d
	}
	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: ADDR is required")
	}
	if c.ProviderTimeout <= 0 {
		return errors.New("config: PROVIDER_TIMEOUT must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	for name, raw := range map[string]string{
		"ZENQUOTES_URL": c.ZenQuotesURL,
		"QUOTABLE_URL":  c.QuotableURL,
		"JAMENDO_URL":   c.JamendoURL,
		"DEEZER_URL":    c.DeezerURL,
		"COLOR_API_URL": c.ColorAPIURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: %s must be an absolute http(s) url, got %q", name, raw)
		}
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func (c Config) QuotesConfig() quotes.Config {
	return quotes.Config{ZenQuotesURL: c.ZenQuotesURL, QuotableURL: c.QuotableURL}
}

func (c Config) MusicConfig() music.Config {
	return music.Config{JamendoURL: c.JamendoURL, JamendoClientID: c.JamendoClientID, DeezerURL: c.DeezerURL}
}

func (c Config) PaletteConfig() palette.Config {
	return palette.Config{ColorAPIURL: c.ColorAPIURL}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
