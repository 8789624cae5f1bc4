package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	Driver      string
	DSN         string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// Load reads configuration from defaults, an optional minisignal.yaml in the
// working directory, and MINISIGNAL_* environment variables (highest
// precedence). Rotating the JWT secret invalidates all outstanding tokens.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("driver", "sqlite3")
	v.SetDefault("dsn", "minisignal.db")
	v.SetDefault("jwt_secret", "change-me-to-a-long-random-secret")
	v.SetDefault("token_ttl_hours", 24)
	v.SetDefault("cors_origins", []string{"*"})

	v.SetConfigName("minisignal")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("minisignal")
	v.AutomaticEnv()

	return &Config{
		Addr:        v.GetString("addr"),
		Driver:      v.GetString("driver"),
		DSN:         v.GetString("dsn"),
		JWTSecret:   v.GetString("jwt_secret"),
		TokenTTL:    time.Duration(v.GetInt("token_ttl_hours")) * time.Hour,
		CORSOrigins: v.GetStringSlice("cors_origins"),
	}, nil
}
