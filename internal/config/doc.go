// Package config provides environment-based configuration for the
// reviewlens command.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env
// struct tags. Command-line flags override the loaded values.
package config
