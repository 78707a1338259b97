// Package config loads and writes castdeck configuration. Config is
// resolved from a project-local .castdeck/config.yaml first, then
// ~/.config/castdeck/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// localConfigPath is the project-local config location.
const localConfigPath = ".castdeck/config.yaml"

// Config is the application configuration.
type Config struct {
	// DebounceMS overrides the profile draft-write debounce.
	DebounceMS int `mapstructure:"debounce_ms" yaml:"debounce_ms"`

	Countdown  CountdownConfig  `mapstructure:"countdown" yaml:"countdown"`
	News       []string         `mapstructure:"news" yaml:"news"`
	Prediction PredictionConfig `mapstructure:"prediction" yaml:"prediction"`
	Defaults   ProfileDefaults  `mapstructure:"profile" yaml:"profile"`
}

// CountdownConfig configures the countdown widget.
type CountdownConfig struct {
	Label  string `mapstructure:"label" yaml:"label"`
	Target string `mapstructure:"target" yaml:"target"` // RFC 3339
}

// PredictionConfig configures the prediction card.
type PredictionConfig struct {
	Question   string `mapstructure:"question" yaml:"question"`
	Detail     string `mapstructure:"detail" yaml:"detail"`
	YesPercent int    `mapstructure:"yes_percent" yaml:"yes_percent"`
	Pool       string `mapstructure:"pool" yaml:"pool"`
}

// ProfileDefaults are the host-supplied initial editor values; a stored
// draft overlays them on open.
type ProfileDefaults struct {
	AvatarURL    string `mapstructure:"avatar_url" yaml:"avatar_url"`
	Name         string `mapstructure:"name" yaml:"name"`
	Bio          string `mapstructure:"bio" yaml:"bio"`
	TwitterLink  string `mapstructure:"twitter_link" yaml:"twitter_link"`
	StreamerMode bool   `mapstructure:"streamer_mode" yaml:"streamer_mode"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DebounceMS: 150,
		Countdown: CountdownConfig{
			Label:  "Next stream",
			Target: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		},
		News: []string{
			"Welcome to castdeck",
			"Press p to edit your profile",
		},
		Prediction: PredictionConfig{
			Question:   "Will the next stream hit 1k viewers?",
			YesPercent: 50,
			Pool:       "0 credits",
		},
	}
}

// Resolve returns the config path to use: an explicit flag value, the
// project-local file if it exists, the user-level file if it exists,
// else empty (built-in defaults).
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	userPath := filepath.Join(home, ".config", "castdeck", "config.yaml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// Load reads configuration from path. An empty path yields defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// CountdownTarget parses the configured countdown target, falling back
// to a day out when unset or malformed.
func (c Config) CountdownTarget() time.Time {
	t, err := time.Parse(time.RFC3339, c.Countdown.Target)
	if err != nil {
		return time.Now().Add(24 * time.Hour)
	}
	return t
}

// Debounce returns the configured debounce as a duration, or zero when
// unset so the controller applies its default.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 0
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// WriteDefault writes the default config file at path.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ProfilePath returns where the profile store lives. A project-local
// config keeps profile.json alongside it; otherwise it goes under
// ~/.config/castdeck/.
func ProfilePath(configPath string) string {
	if configPath != "" {
		clean := filepath.Clean(configPath)
		suffix := filepath.Join(".castdeck", "config.yaml")
		if strings.HasSuffix(clean, suffix) {
			return filepath.Join(filepath.Dir(clean), "profile.json")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// No home to fall back to; keep the draft in the working
		// directory rather than at filesystem root.
		return filepath.Join(".castdeck", "profile.json")
	}
	return filepath.Join(home, ".config", "castdeck", "profile.json")
}
