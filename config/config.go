// Package config loads process settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port       int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	DBDriver   string `mapstructure:"db_driver" validate:"required,oneof=mysql sqlite"`
	DSN        string `mapstructure:"dsn" validate:"required"`
	JWTSecret  string `mapstructure:"jwt_secret" validate:"required,min=32"`
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	CORSOrigin string `mapstructure:"cors_origin" validate:"required"`
}

// env var name for each config key
var bindings = map[string]string{
	"port":        "PORT",
	"db_driver":   "DB_DRIVER",
	"dsn":         "DSN",
	"jwt_secret":  "JWT_SECRET",
	"log_level":   "LOG_LEVEL",
	"cors_origin": "CORS_ORIGIN",
}

// Load reads the given dotenv files (".env" when none are given; a missing
// file is not an error), then the environment, applies defaults and validates.
// Variables already set in the environment win over dotenv values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("port", 3002)
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origin", "*")

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
