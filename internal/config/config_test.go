package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_TIMEOUT", "REPORT_PATH", "MAX_FILE_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 90*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "./reports", cfg.Storage.ReportPath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_API_KEY", "primary-key")
	t.Setenv("GOOGLE_API_KEY", "fallback-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "2m")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "primary-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 2*time.Minute, cfg.Gemini.Timeout)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
}

func TestFromEnvFallsBackToGoogleKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "fallback-key")

	assert.Equal(t, "fallback-key", FromEnv().Gemini.APIKey)
}

func TestFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "soon")
	t.Setenv("MAX_FILE_SIZE", "big")

	cfg := FromEnv()

	assert.Equal(t, 90*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}
