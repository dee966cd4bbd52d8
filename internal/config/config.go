package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	GitHub GitHubConfig `mapstructure:"github" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxInputChars caps the length of a project description accepted by the API.
	MaxInputChars int `mapstructure:"max_input_chars" validate:"required,gt=0"`

	ReadTimeoutSeconds  int `mapstructure:"read_timeout_seconds"  validate:"required,gt=0"`
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey may be empty, in which case every request uses the fallback template.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName  string `mapstructure:"model_name"  validate:"required"`
	APIVersion string `mapstructure:"api_version" validate:"required"`

	// FallbackModelName and FallbackAPIVersion are tried once when the primary
	// endpoint fails. Leave FallbackModelName empty to disable.
	FallbackModelName  string `mapstructure:"fallback_model_name"`
	FallbackAPIVersion string `mapstructure:"fallback_api_version" validate:"required_with=FallbackModelName"`

	// PromptTemplatePath overrides the embedded prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"gt=0"`

	// BaseURL overrides the Gemini endpoint, mostly for tests and proxies.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`

	// DegradedCooldownMinutes is how long the service skips Gemini after a
	// quota error. Zero disables the cooldown.
	DegradedCooldownMinutes int `mapstructure:"degraded_cooldown_minutes" validate:"gte=0"`
}

// GitHubConfig contains settings for repository metadata retrieval.
type GitHubConfig struct {
	// Token is optional; anonymous requests are heavily rate limited.
	Token       string `mapstructure:"token"`
	BaseURL     string `mapstructure:"base_url"     validate:"omitempty,url"`
	CommitLimit int    `mapstructure:"commit_limit" validate:"gte=0,lte=100"`
}
