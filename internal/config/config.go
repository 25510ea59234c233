package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr         string
	DBPath             string
	GeoBackend         string
	NominatimURL       string
	NominatimUserAgent string
	ClaudeAPIKey       string
	ClaudeModel        string
	UserTimeZone       string
	AutosaveDelay      time.Duration
	CORSOrigins        []string
	LogLevel           string
	LogFormat          string
	LogFile            string
	TestMode           bool
}

// Load reads configuration from the environment and, when CONFIG_FILE is
// set, from that file. Environment values win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_PATH", "/data/taptime.db")
	v.SetDefault("GEO_BACKEND", "offline")
	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("NOMINATIM_USER_AGENT", "taptime/1.0")
	v.SetDefault("CLAUDE_API_KEY", "")
	v.SetDefault("CLAUDE_MODEL", "claude-haiku-4-5")
	v.SetDefault("USER_TIME_ZONE", "UTC")
	v.SetDefault("AUTOSAVE_DELAY", "500ms")
	v.SetDefault("CORS_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("TAPTIME_TEST_MODE", false)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	delay, err := time.ParseDuration(v.GetString("AUTOSAVE_DELAY"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTOSAVE_DELAY: %w", err)
	}
	if delay <= 0 {
		return nil, fmt.Errorf("invalid AUTOSAVE_DELAY: must be positive")
	}

	zone := v.GetString("USER_TIME_ZONE")
	if _, err := time.LoadLocation(zone); err != nil {
		return nil, fmt.Errorf("invalid USER_TIME_ZONE %q: %w", zone, err)
	}

	backend := strings.ToLower(v.GetString("GEO_BACKEND"))
	switch backend {
	case "offline", "nominatim", "claude":
	default:
		return nil, fmt.Errorf("unknown GEO_BACKEND %q", backend)
	}

	return &Config{
		ListenAddr:         v.GetString("LISTEN_ADDR"),
		DBPath:             v.GetString("DB_PATH"),
		GeoBackend:         backend,
		NominatimURL:       v.GetString("NOMINATIM_URL"),
		NominatimUserAgent: v.GetString("NOMINATIM_USER_AGENT"),
		ClaudeAPIKey:       v.GetString("CLAUDE_API_KEY"),
		ClaudeModel:        v.GetString("CLAUDE_MODEL"),
		UserTimeZone:       zone,
		AutosaveDelay:      delay,
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		LogFile:            v.GetString("LOG_FILE"),
		TestMode:           v.GetBool("TAPTIME_TEST_MODE"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
