package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
//
// The deployed variants of this service differ only in model name, token
// limits and prompt wording; all of those are configuration here, so a
// variant is a config file rather than a code change.
type LLMConfig struct {
	// GeminiAPIKey is the credential for the generation endpoint. It has no
	// default; a missing key fails validation at startup rather than at call
	// time.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName identifies the Gemini model to call.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the built-in prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// MaxRetries is the number of retries after the first attempt, so the
	// total number of attempts is MaxRetries+1.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1"`

	// MaxRetryDelaySeconds caps the backoff delay.
	MaxRetryDelaySeconds int `mapstructure:"max_retry_delay_seconds" validate:"gte=1"`

	// Sampling parameters passed to the generation endpoint.
	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	TopP            float32 `mapstructure:"top_p"             validate:"gte=0,lte=1"`
	TopK            float32 `mapstructure:"top_k"             validate:"gte=0"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"gt=0"`
}
