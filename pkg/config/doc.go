// Package config loads typed configuration structs from environment
// variables (with optional .env bootstrap) and from YAML files with an
// environment overlay. Field mapping is tag-driven: `env` tags for
// environment variables, `yaml` tags for file keys.
//
// Environment variables always take precedence over file values, and a
// missing .env file is silently ignored so the same code runs in development
// and production.
package config
