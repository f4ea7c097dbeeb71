// Package config loads application configuration from environment variables
// into tagged structs. It wraps github.com/joho/godotenv for optional .env
// files and github.com/caarlos0/env/v11 for struct parsing.
//
// # Usage
//
//	type AppConfig struct {
//	    SigningKey  string `env:"JWT_SIGNING_KEY,required"`
//	    MappingPath string `env:"ROLE_MAPPING_PATH" envDefault:"roles.yaml"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Load reads the default .env file when present; LoadFrom reads explicit
// files and fails when one is missing. MustLoad panics on failure for use in
// main() where misconfiguration should prevent startup.
package config
