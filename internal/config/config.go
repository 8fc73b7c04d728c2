package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"    validate:"required"`
	Database DatabaseConfig `mapstructure:"database"  validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"      validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"       validate:"required"`
	ImageAPI ImageAPIConfig `mapstructure:"image_api" validate:"required"`
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

// AuthConfig contains all authentication and authorization settings.
// JWTSecret is never defaulted: startup fails when it is absent or short.
type AuthConfig struct {
	JWTSecret            string   `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int      `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	AllowlistPaths       []string `mapstructure:"allowlist_paths"`
}

// LLMConfig contains all text-model integration settings.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"      validate:"required"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// ImageAPIConfig contains all image-generation provider settings.
type ImageAPIConfig struct {
	Token            string `mapstructure:"token"             validate:"required"`
	BaseURL          string `mapstructure:"base_url"          validate:"required,url"`
	Provider         string `mapstructure:"provider"          validate:"required"`
	Model            string `mapstructure:"model"             validate:"required"`
	Size             string `mapstructure:"size"              validate:"required"`
	MaxConcurrent    int    `mapstructure:"max_concurrent"    validate:"required,gt=0"`
	MaxAttempts      int    `mapstructure:"max_attempts"      validate:"required,gt=0"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"   validate:"required,gt=0"`
	InlineGeneration bool   `mapstructure:"inline_generation"`
}
