package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultSupabaseURL is the built-in data-service endpoint used when no
// supabase URL is configured. Deployments with their own project override
// it via CAROL_STORE_SUPABASE_URL.
const DefaultSupabaseURL = "https://carol-cards.supabase.co"

// Load reads configuration from environment variables with the CAROL_
// prefix (e.g. CAROL_SERVER_PORT, CAROL_STORE_BACKEND). Returns a
// populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Every key needs one so AutomaticEnv can see it.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.supabase_url", DefaultSupabaseURL)
	v.SetDefault("store.supabase_key", "")
	v.SetDefault("store.table", "cards")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("tts.openai_api_key", "")
	v.SetDefault("tts.voice", "alloy")
	v.SetDefault("tts.speed", 0.85)

	v.SetEnvPrefix("CAROL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
