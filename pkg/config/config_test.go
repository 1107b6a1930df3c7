package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_TITLE", "GROQ_API_KEY", "GROQ_BASE_URL", "GROQ_MODEL",
		"LLM_TIMEOUT", "ADVISORS_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.GroqBaseURL)
	assert.Empty(t, cfg.GroqModel)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("ADVISORS_FILE", "advisors.yaml")
	t.Setenv("LOG_FORMAT", "console")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.GroqModel)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "advisors.yaml", cfg.AdvisorsFile)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("X_TIMEOUT", "30")
	assert.Equal(t, 30*time.Second, getEnvDuration("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "garbage")
	assert.Equal(t, time.Second, getEnvDuration("X_TIMEOUT", time.Second))

	t.Setenv("X_TIMEOUT", "-5s")
	assert.Equal(t, time.Second, getEnvDuration("X_TIMEOUT", time.Second))
}

