package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	TTS    TTSConfig    `mapstructure:"tts"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StaticDir is the directory the front-end bundle is served from.
	// Static serving is disabled when empty.
	StaticDir string `mapstructure:"static_dir"`
}

// StoreConfig selects and configures the card store backend.
// Exactly one backend is active for the lifetime of the process.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory supabase"`

	// SupabaseURL and SupabaseKey are only consulted when Backend is
	// "supabase". The URL falls back to a built-in default endpoint so a
	// deployment can supply just the key.
	SupabaseURL string `mapstructure:"supabase_url" validate:"required,url"`
	SupabaseKey string `mapstructure:"supabase_key"`
	Table       string `mapstructure:"table"        validate:"required"`
}

// LLMConfig contains all lyric-generation related settings.
// An empty API key is allowed: generation requests then fail at call time.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
}

// TTSConfig contains all text-to-speech related settings.
type TTSConfig struct {
	OpenAIAPIKey string  `mapstructure:"openai_api_key"`
	Voice        string  `mapstructure:"voice" validate:"required"`
	Speed        float64 `mapstructure:"speed" validate:"required,gt=0"`
}
