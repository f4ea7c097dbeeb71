package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load parses environment variables into the given struct based on its
// `env` field tags. A .env file in the working directory is applied first
// when present; its absence is not an error. Existing environment variables
// take precedence over file values.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// godotenv does not override variables already set in the environment.
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrFailedToParseConfig, err)
	}
	return nil
}

// LoadFrom is Load with explicit .env files. Unlike Load, a missing file is
// an error: naming a file that does not exist is a deployment bug.
func LoadFrom[T any](cfg *T, files ...string) error {
	if cfg == nil {
		return ErrNilConfig
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return errors.Join(ErrFailedToLoadEnvFile, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrFailedToParseConfig, err)
	}
	return nil
}

// MustLoad is Load but panics on failure. Intended for main(), where a
// misconfigured process should not start.
func MustLoad[T any]() T {
	var cfg T
	if err := Load(&cfg); err != nil {
		panic(err)
	}
	return cfg
}
