package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	TokenSecret string
	TokenTTL    time.Duration
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "Asia/Bangkok"),
		DBPath:      get("DB_PATH", "farmlink.db"),
		TokenSecret: get("TOKEN_SECRET", "dev-secret"),
		TokenTTL:    24 * time.Hour,
	}
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.TokenTTL = d
		}
	}
	return cfg
}

// Location resolves the configured timezone; the start-of-day boundary for
// report lookups depends on it.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("bad TZ, falling back to local", "tz", c.Timezone, "err", err)
		return time.Local
	}
	return loc
}
