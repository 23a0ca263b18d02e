package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	Log       Log
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	Dataset   Dataset
	Postgres  Postgres
	Dashboard Dashboard
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"launchdash"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"tint"`
	FieldMaxLen int    `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse(env.Options{})
}

// Parse builds the config from the environment described by opts; tests pass
// opts.Environment to avoid touching the process environment.
func Parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	return errors.Join(
		c.Dataset.validate(c.Postgres),
		c.Dashboard.validate(),
	)
}
