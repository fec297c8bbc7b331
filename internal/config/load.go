package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. NOTIFY_DATABASE_URL maps to the "database.url" key.
const envPrefix = "NOTIFY"

// Load reads configuration from environment variables and returns a
// validated Config. Defaults are applied for settings that have a sane
// fallback; required settings (database URL) cause an error when absent.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("reminder.mode", "daily")
	v.SetDefault("smtp.port", 587)

	// Environment variables take the form NOTIFY_SECTION_KEY.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal, so
	// every known key is bound explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"reminder.mode",
		"notification_service.url",
		"task_service.url",
		"task_service.api_key",
		"smtp.host",
		"smtp.port",
		"smtp.username",
		"smtp.password",
		"smtp.from",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
