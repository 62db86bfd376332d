// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultCategories, cfg.Vault.Categories)
	assert.Equal(t, 0.6, cfg.Capture.ConfidenceThreshold)
	assert.Equal(t, "whisper-1", cfg.AI.WhisperModel)
	assert.Equal(t, 7, cfg.Briefing.MorningHour)
	assert.Equal(t, 0, cfg.Briefing.WeeklyWeekday)
	assert.Equal(t, 16, cfg.Briefing.WeeklyHour)
	assert.False(t, cfg.Briefing.Enabled)
	assert.Equal(t, 8080, cfg.Server.Port)

	require.NoError(t, validate(cfg))
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "vault": {
    "path": "/tmp/test-vault",
    "categories": ["Work", "Home"]
  },
  "capture": {
    "confidence_threshold": 0.75,
    "pending_ttl_minutes": 30
  },
  "briefing": {
    "enabled": true,
    "morning_hour": 6
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test-vault", cfg.Vault.Path)
	assert.Equal(t, []string{"Work", "Home"}, cfg.Vault.Categories)
	assert.Equal(t, 0.75, cfg.Capture.ConfidenceThreshold)
	assert.Equal(t, 30, cfg.Capture.PendingTTLMinutes)
	assert.True(t, cfg.Briefing.Enabled)
	assert.Equal(t, 6, cfg.Briefing.MorningHour)

	// Defaults fill in what the file omits
	assert.Equal(t, "whisper-1", cfg.AI.WhisperModel)
	assert.Equal(t, 16, cfg.Briefing.WeeklyHour)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid defaults",
			mutate:  func(cfg *Config) {},
			wantErr: "",
		},
		{
			name:    "missing vault path",
			mutate:  func(cfg *Config) { cfg.Vault.Path = "" },
			wantErr: "vault.path",
		},
		{
			name:    "no categories",
			mutate:  func(cfg *Config) { cfg.Vault.Categories = nil },
			wantErr: "at least one category",
		},
		{
			name:    "duplicate categories",
			mutate:  func(cfg *Config) { cfg.Vault.Categories = []string{"Work", "work"} },
			wantErr: "duplicate category",
		},
		{
			name:    "empty category name",
			mutate:  func(cfg *Config) { cfg.Vault.Categories = []string{"Work", "  "} },
			wantErr: "empty names",
		},
		{
			name:    "threshold above one",
			mutate:  func(cfg *Config) { cfg.Capture.ConfidenceThreshold = 1.5 },
			wantErr: "confidence_threshold",
		},
		{
			name:    "negative ttl",
			mutate:  func(cfg *Config) { cfg.Capture.PendingTTLMinutes = -1 },
			wantErr: "pending_ttl_minutes",
		},
		{
			name:    "morning hour out of range",
			mutate:  func(cfg *Config) { cfg.Briefing.MorningHour = 24 },
			wantErr: "morning_hour",
		},
		{
			name:    "weekday out of range",
			mutate:  func(cfg *Config) { cfg.Briefing.WeeklyWeekday = 7 },
			wantErr: "weekly_weekday",
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *Config) { cfg.Server.Port = 0 },
			wantErr: "server.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
