// Package config loads environment variables into tagged structs using
// github.com/caarlos0/env, bootstrapping a local .env file once via
// godotenv when present.
//
// Configuration is env-only: every tunable is declared as a struct field
// with `env:"…"` and `envDefault:"…"` tags next to the component it
// configures, so values can be tuned per environment without code changes.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
package config
