package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the classmate CLI.
type Config struct {
	AIBaseURL        string
	AIModel          string
	AIAPIKey         string
	TokenFile        string
	ClientSecretFile string
	LogLevel         string
}

// Load reads configuration values from environment variables and an
// optional .env file. All values have workable defaults except the AI
// API key, which is only needed once a summarization call is made.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CLASSMATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.model", "openai/gpt-4o-mini")
	v.SetDefault("token_file", "token.json")
	v.SetDefault("client_secret_file", "client_secret.json")
	v.SetDefault("log.level", "warn")

	cfg := Config{
		AIBaseURL:        v.GetString("ai.base_url"),
		AIModel:          v.GetString("ai.model"),
		AIAPIKey:         v.GetString("ai.api_key"),
		TokenFile:        v.GetString("token_file"),
		ClientSecretFile: v.GetString("client_secret_file"),
		LogLevel:         v.GetString("log.level"),
	}

	return cfg, nil
}
