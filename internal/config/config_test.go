package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "minimal",
			env:  map[string]string{"GG_NCFA": "secret"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.NCFA != "secret" {
					t.Errorf("NCFA = %q", cfg.NCFA)
				}
				if cfg.ChartPath != "xp_per_day.png" {
					t.Errorf("ChartPath default = %q", cfg.ChartPath)
				}
				if cfg.ReportPath != "inactivity.txt" {
					t.Errorf("ReportPath default = %q", cfg.ReportPath)
				}
				if cfg.DiscordEnabled() {
					t.Error("DiscordEnabled should be false without token")
				}
			},
		},
		{
			name:    "missing session cookie",
			env:     map[string]string{},
			wantErr: "GG_NCFA is required",
		},
		{
			name: "discord token without channel",
			env: map[string]string{
				"GG_NCFA":       "secret",
				"DISCORD_TOKEN": "tok",
			},
			wantErr: "must be set together",
		},
		{
			name: "discord channel without token",
			env: map[string]string{
				"GG_NCFA":            "secret",
				"DISCORD_CHANNEL_ID": "123",
			},
			wantErr: "must be set together",
		},
		{
			name: "full discord config",
			env: map[string]string{
				"GG_NCFA":            "secret",
				"DISCORD_TOKEN":      "tok",
				"DISCORD_CHANNEL_ID": "123",
				"CHART_PATH":         "/tmp/out.png",
			},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.DiscordEnabled() {
					t.Error("DiscordEnabled should be true")
				}
				if cfg.ChartPath != "/tmp/out.png" {
					t.Errorf("ChartPath override = %q", cfg.ChartPath)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"GG_NCFA", "DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "CHART_PATH", "REPORT_PATH"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
