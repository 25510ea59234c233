package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "offline", cfg.GeoBackend)
	assert.Equal(t, 500*time.Millisecond, cfg.AutosaveDelay)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/db.sqlite")
	t.Setenv("GEO_BACKEND", "Claude")
	t.Setenv("CLAUDE_API_KEY", "sk-test123")
	t.Setenv("USER_TIME_ZONE", "Asia/Tokyo")
	t.Setenv("AUTOSAVE_DELAY", "2s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TAPTIME_TEST_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/db.sqlite", cfg.DBPath)
	assert.Equal(t, "claude", cfg.GeoBackend)
	assert.Equal(t, "sk-test123", cfg.ClaudeAPIKey)
	assert.Equal(t, "Asia/Tokyo", cfg.UserTimeZone)
	assert.Equal(t, 2*time.Second, cfg.AutosaveDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.TestMode)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taptime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("LISTEN_ADDR: \":7000\"\nLOG_FORMAT: text\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.ListenAddr)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"AUTOSAVE_DELAY", "soon"},
		{"AUTOSAVE_DELAY", "0s"},
		{"USER_TIME_ZONE", "Mars/Olympus_Mons"},
		{"GEO_BACKEND", "carrier-pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
