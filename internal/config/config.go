package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database. Either a path to a SQLite file (optionally prefixed with
	// sqlite://) or a postgres:// / mysql:// URL.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Default page size applied when a list request omits ?limit=.
	DefaultPageSize int `mapstructure:"DEFAULT_PAGE_SIZE"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_URL", "./data/recipe_manager.db")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 100)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
