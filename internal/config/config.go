package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// GeoGuessr session
	NCFA string

	// Optional Discord delivery
	DiscordToken     string
	DiscordChannelID string

	// Artifact paths
	ChartPath  string
	ReportPath string
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		NCFA:             os.Getenv("GG_NCFA"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		ChartPath:        getEnvDefault("CHART_PATH", "xp_per_day.png"),
		ReportPath:       getEnvDefault("REPORT_PATH", "inactivity.txt"),
	}

	if cfg.NCFA == "" {
		return nil, fmt.Errorf("GG_NCFA is required")
	}
	if (cfg.DiscordToken == "") != (cfg.DiscordChannelID == "") {
		return nil, fmt.Errorf("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}

	return cfg, nil
}

// DiscordEnabled reports whether artifacts should also be posted to Discord.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
