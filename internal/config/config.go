// SPDX-License-Identifier: MIT

// Package config loads CLI defaults from SPECTRA_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Prefix is prepended to every variable name.
const Prefix = "SPECTRA_"

// Config holds runtime defaults. Command-line flags override these values.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`

	// Reports
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"yaml" validate:"oneof=yaml json"`

	// Jacobi
	Tolerance float64 `env:"TOLERANCE" envDefault:"1e-12" validate:"gt=0"`
	MaxSweeps int     `env:"MAX_SWEEPS" envDefault:"100" validate:"gte=1"`

	// Power iteration
	PowerTolerance float64 `env:"POWER_TOLERANCE" envDefault:"1e-9" validate:"gt=0"`
	PowerMaxIter   int     `env:"POWER_MAX_ITER" envDefault:"256" validate:"gte=1"`
	Seed           int64   `env:"SEED" envDefault:"0"` // 0 draws a fresh seed per run

	// Spectral triple
	Epsilon float64 `env:"EPSILON" envDefault:"1e-3" validate:"gt=0"`
	Workers int     `env:"WORKERS" envDefault:"0" validate:"gte=0"` // 0 = GOMAXPROCS
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads configuration from environ, or from the process
// environment when environ is nil, then validates it.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: Prefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint; flag overrides call it again.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}
