package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("FITCOACH_API_KEY", "")
	_, err := Load()
	assert.True(t, errors.Is(err, llm.ErrMissingAPIKey))
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FITCOACH_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.Model)
	assert.Equal(t, "fitcoach.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LLM.LogCalls)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FITCOACH_API_KEY", "k")
	t.Setenv("FITCOACH_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("FITCOACH_MODEL", "llama3")
	t.Setenv("FITCOACH_DB_PATH", "/tmp/coach.db")
	t.Setenv("FITCOACH_LOG_LLM_CALLS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "/tmp/coach.db", cfg.DBPath)
	assert.True(t, cfg.LLM.LogCalls)
}
