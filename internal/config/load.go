package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables.
// Variables are prefixed with BRANDFORGE_ and nested keys use underscores
// (e.g. BRANDFORGE_SERVER_PORT, BRANDFORGE_LLM_GEMINI_API_KEY).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("BRANDFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every config key with its default so AutomaticEnv can
// pick the key up during Unmarshal. Provider API keys default to empty, which
// disables the provider rather than erroring at startup.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.url", "")

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.gemini_model", "gemini-2.0-flash-lite")
	v.SetDefault("llm.groq_api_key", "")
	v.SetDefault("llm.groq_model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.groq_whisper_model", "distil-whisper-large-v3-en")
	v.SetDefault("llm.timeout_seconds", 30)

	v.SetDefault("image.hf_api_key", "")
	v.SetDefault("image.fallback_enabled", true)
	v.SetDefault("image.timeout_seconds", 60)
	v.SetDefault("image.output_dir", "static/generated_logos")
}
