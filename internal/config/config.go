// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigDir is the default configuration directory
	DefaultConfigDir = ".munin/configs"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.json"
)

// DefaultCategories is the fixed, ordered category set used when the
// config does not override it.
var DefaultCategories = []string{"People", "Projects", "Ideas", "Admin"}

// Load reads configuration from ~/.munin/configs/config.json
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, DefaultConfigDir)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(configPath)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return loadFromDefaults(v)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	// Vault defaults
	v.SetDefault("vault.path", filepath.Join(homeDir, ".munin/vault"))
	v.SetDefault("vault.categories", DefaultCategories)

	// Capture defaults
	v.SetDefault("capture.confidence_threshold", 0.6)
	v.SetDefault("capture.pending_ttl_minutes", 0)

	// AI defaults
	v.SetDefault("ai.anthropic_model", "claude-sonnet-4-5-20250929")
	v.SetDefault("ai.whisper_model", "whisper-1")

	// Briefing defaults: 7 AM daily, Sunday 4 PM weekly
	v.SetDefault("briefing.enabled", false)
	v.SetDefault("briefing.morning_hour", 7)
	v.SetDefault("briefing.weekly_weekday", 0)
	v.SetDefault("briefing.weekly_hour", 16)
	v.SetDefault("briefing.timezone", "Local")

	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

// loadFromDefaults creates a config from default values
func loadFromDefaults(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Vault.Path == "" {
		return fmt.Errorf("vault.path is required")
	}

	if len(cfg.Vault.Categories) == 0 {
		return fmt.Errorf("vault.categories must name at least one category")
	}
	seen := make(map[string]bool, len(cfg.Vault.Categories))
	for _, category := range cfg.Vault.Categories {
		key := strings.ToLower(strings.TrimSpace(category))
		if key == "" {
			return fmt.Errorf("vault.categories must not contain empty names")
		}
		if seen[key] {
			return fmt.Errorf("vault.categories contains duplicate category %q", category)
		}
		seen[key] = true
	}

	if cfg.Capture.ConfidenceThreshold < 0 || cfg.Capture.ConfidenceThreshold > 1 {
		return fmt.Errorf("capture.confidence_threshold must be between 0.0 and 1.0, got %v", cfg.Capture.ConfidenceThreshold)
	}

	if cfg.Capture.PendingTTLMinutes < 0 {
		return fmt.Errorf("capture.pending_ttl_minutes must not be negative, got %d", cfg.Capture.PendingTTLMinutes)
	}

	if cfg.Briefing.MorningHour < 0 || cfg.Briefing.MorningHour > 23 {
		return fmt.Errorf("briefing.morning_hour must be between 0 and 23, got %d", cfg.Briefing.MorningHour)
	}
	if cfg.Briefing.WeeklyHour < 0 || cfg.Briefing.WeeklyHour > 23 {
		return fmt.Errorf("briefing.weekly_hour must be between 0 and 23, got %d", cfg.Briefing.WeeklyHour)
	}
	if cfg.Briefing.WeeklyWeekday < 0 || cfg.Briefing.WeeklyWeekday > 6 {
		return fmt.Errorf("briefing.weekly_weekday must be between 0 (Sunday) and 6, got %d", cfg.Briefing.WeeklyWeekday)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, DefaultConfigDir)
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Vault: VaultConfig{
			Path:       filepath.Join(homeDir, ".munin/vault"),
			Categories: DefaultCategories,
		},
		Capture: CaptureConfig{
			ConfidenceThreshold: 0.6,
		},
		AI: AIConfig{
			AnthropicModel: "claude-sonnet-4-5-20250929",
			WhisperModel:   "whisper-1",
		},
		Briefing: BriefingConfig{
			Enabled:       false,
			MorningHour:   7,
			WeeklyWeekday: 0,
			WeeklyHour:    16,
			Timezone:      "Local",
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}
