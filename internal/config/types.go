// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

// Config is the root configuration structure
type Config struct {
	Vault    VaultConfig    `mapstructure:"vault"`
	Capture  CaptureConfig  `mapstructure:"capture"`
	AI       AIConfig       `mapstructure:"ai"`
	Briefing BriefingConfig `mapstructure:"briefing"`
	Server   ServerConfig   `mapstructure:"server"`
}

// VaultConfig holds note store settings
type VaultConfig struct {
	Path string `mapstructure:"path"`
	// Categories is ordered; the order defines resolver search
	// precedence.
	Categories []string `mapstructure:"categories"`
}

// CaptureConfig holds classification gate settings
type CaptureConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	// PendingTTLMinutes bounds the lifetime of pending clarifications.
	// Zero keeps entries forever, matching the historical behavior.
	PendingTTLMinutes int `mapstructure:"pending_ttl_minutes"`
}

// AIConfig holds capability client settings. API keys come from the
// environment, never the config file.
type AIConfig struct {
	AnthropicModel string `mapstructure:"anthropic_model"`
	WhisperModel   string `mapstructure:"whisper_model"`
}

// BriefingConfig holds scheduled briefing settings
type BriefingConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	MorningHour   int    `mapstructure:"morning_hour"`
	WeeklyWeekday int    `mapstructure:"weekly_weekday"`
	WeeklyHour    int    `mapstructure:"weekly_hour"`
	Timezone      string `mapstructure:"timezone"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}
