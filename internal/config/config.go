package config

// Config holds all application configuration.
// It is constructed once at process start and passed by reference into each
// component; nothing in the application mutates it afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Image    ImageConfig    `mapstructure:"image"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig contains the text-provider settings. API keys are optional: an
// absent key silently disables that provider in the fallback chain rather than
// failing at startup.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model" validate:"required"`

	GroqAPIKey       string `mapstructure:"groq_api_key"`
	GroqModel        string `mapstructure:"groq_model"         validate:"required"`
	GroqWhisperModel string `mapstructure:"groq_whisper_model" validate:"required"`

	// TimeoutSeconds bounds every outbound text-provider HTTP call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}

// ImageConfig contains the image-backend settings. The Hugging Face key is
// optional like the text keys; the keyless public fallback can be switched off
// independently.
type ImageConfig struct {
	HuggingFaceAPIKey string `mapstructure:"hf_api_key"`

	// FallbackEnabled controls the keyless public text-to-image fallback tier.
	FallbackEnabled bool `mapstructure:"fallback_enabled"`

	// TimeoutSeconds bounds each image backend call, including the fallback.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`

	// OutputDir is the directory generated logos are written to. Files in it
	// are served back under /static/generated_logos/.
	OutputDir string `mapstructure:"output_dir" validate:"required"`
}
