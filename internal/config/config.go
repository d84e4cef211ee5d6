// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aldenmarsh/fitcoach/internal/llm"
)

type Config struct {
	DBPath string

	LLM llm.Config

	Server struct {
		Port string
	}

	LogLevel string
}

// Load reads configuration from environment variables, preloading a .env
// file when one is present. FITCOACH_API_KEY is the only required setting.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("fitcoach")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	llmDefaults := llm.DefaultConfig()
	v.SetDefault("db_path", "fitcoach.db")
	v.SetDefault("base_url", llmDefaults.BaseURL)
	v.SetDefault("model", llmDefaults.Model)
	v.SetDefault("embedding_model", llmDefaults.EmbeddingModel)
	v.SetDefault("server_port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_llm_calls", false)

	cfg := &Config{}
	cfg.DBPath = v.GetString("db_path")
	cfg.Server.Port = v.GetString("server_port")
	cfg.LogLevel = v.GetString("log_level")

	cfg.LLM = llm.DefaultConfig()
	cfg.LLM.APIKey = v.GetString("api_key")
	cfg.LLM.BaseURL = v.GetString("base_url")
	cfg.LLM.Model = v.GetString("model")
	cfg.LLM.EmbeddingModel = v.GetString("embedding_model")
	cfg.LLM.LogCalls = v.GetBool("log_llm_calls")

	if err := cfg.LLM.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
