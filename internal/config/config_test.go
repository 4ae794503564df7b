package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AIBaseURL)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.AIModel)
	assert.Equal(t, "token.json", cfg.TokenFile)
	assert.Equal(t, "client_secret.json", cfg.ClientSecretFile)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CLASSMATE_AI_MODEL", "openai/gpt-4o")
	t.Setenv("CLASSMATE_AI_API_KEY", "sk-test")
	t.Setenv("CLASSMATE_TOKEN_FILE", "/tmp/tok.json")
	t.Setenv("CLASSMATE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4o", cfg.AIModel)
	assert.Equal(t, "sk-test", cfg.AIAPIKey)
	assert.Equal(t, "/tmp/tok.json", cfg.TokenFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}
