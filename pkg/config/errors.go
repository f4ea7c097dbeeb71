package config

import "errors"

var (
	// ErrFailedToLoadEnvFile is returned when an explicitly named .env file cannot be read.
	ErrFailedToLoadEnvFile = errors.New("config: failed to load env file")

	// ErrFailedToParseConfig is returned when the environment cannot be parsed into the struct.
	ErrFailedToParseConfig = errors.New("config: failed to parse config")

	// ErrNilConfig is returned when Load is called with a nil destination.
	ErrNilConfig = errors.New("config: nil config pointer")
)
