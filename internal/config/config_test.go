package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/does-not-exist.yaml")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 180*time.Second, cfg.Server.MiddlewareTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.weatherapi.com/v1", cfg.Weather.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Weather.Timeout)
	assert.Equal(t, "https://api.deepgram.com/v1", cfg.Speech.BaseURL)
	assert.Equal(t, "nova-2", cfg.Speech.Model)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Groq.Model)
	assert.Equal(t, 0.7, cfg.LLM.Groq.Temperature)
	assert.Equal(t, 1000, cfg.LLM.Groq.MaxTokens)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "testdata/does-not-exist.yaml")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WEATHER_API_KEY", "wk-123")
	t.Setenv("DEEPGRAM_API_KEY", "dg-456")
	t.Setenv("GROQ_API_KEY", "gsk-789")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/var/log/advisor.log")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "wk-123", cfg.Weather.APIKey)
	assert.Equal(t, "dg-456", cfg.Speech.APIKey)
	assert.Equal(t, "gsk-789", cfg.LLM.Groq.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/var/log/advisor.log", cfg.Logging.File)
}
