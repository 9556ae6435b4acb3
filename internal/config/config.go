package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all process-wide settings. It is built once at boot and never
// mutated afterwards; components receive it by injection instead of reading
// ambient state at call time.
type Config struct {
	Port          string
	LogLevel      string
	ClientOrigin  string
	DatabaseDSN   string
	SigningSecret string
}

// Load reads configs/config.yml (optional) plus environment overrides.
// The database DSN and signing secret have no defaults: a missing value is a
// boot error, not a request-time surprise.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("client_origin", "http://localhost:5173")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional environment names used by deployments.
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("client_origin", "CLIENT_ORIGIN")
	_ = v.BindEnv("db.dsn", "DATABASE_URL")
	_ = v.BindEnv("auth.signing_secret", "JWT_SECRET")

	cfg := &Config{
		Port:          v.GetString("port"),
		LogLevel:      v.GetString("log_level"),
		ClientOrigin:  v.GetString("client_origin"),
		DatabaseDSN:   v.GetString("db.dsn"),
		SigningSecret: v.GetString("auth.signing_secret"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set (db.dsn / DATABASE_URL)")
	}
	if cfg.SigningSecret == "" {
		return nil, errors.New("signing secret is not set (auth.signing_secret / JWT_SECRET)")
	}
	return cfg, nil
}
