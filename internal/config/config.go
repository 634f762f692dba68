// SPDX-License-Identifier: MIT

// Package config loads numkit CLI settings from the environment.
//
// Every field has a documented default and a NUMKIT_-prefixed variable; the
// CLI uses the loaded values as flag defaults, so flags override env.
package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/numkit/matrix"
)

// Prefix is prepended (with an underscore) to every variable name.
const Prefix = "NUMKIT"

// Output formats accepted by Config.Format.
const (
	FormatString = "string" // {{a,b},{c,d}}
	FormatDump   = "dump"   // [a,b;c,d];
)

// Config holds all CLI configuration.
type Config struct {
	MaxIterations  int     `envconfig:"MAX_ITERS" default:"10000"`
	Tolerance      float64 `envconfig:"TOLERANCE" default:"1e-6"`
	Epsilon        float64 `envconfig:"EPSILON" default:"1e-9"`
	Format         string  `envconfig:"FORMAT" default:"string"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"warn"`
	LogDevelopment bool    `envconfig:"LOG_DEV" default:"false"`
}

// Load reads configuration from NUMKIT_* environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		MaxIterations: matrix.DefaultMaxIterations,
		Tolerance:     matrix.DefaultTolerance,
		Epsilon:       matrix.DefaultEpsilon,
		Format:        FormatString,
		LogLevel:      "warn",
	}
}

// Validate rejects values the matrix options would panic on, and log levels
// zap does not know.
func (c *Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("config: max iterations must be > 0, got %d", c.MaxIterations)
	}
	if isNonFinite(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("config: tolerance must be finite and >= 0, got %g", c.Tolerance)
	}
	if isNonFinite(c.Epsilon) || c.Epsilon < 0 {
		return fmt.Errorf("config: epsilon must be finite and >= 0, got %g", c.Epsilon)
	}
	if c.Format != FormatString && c.Format != FormatDump {
		return fmt.Errorf("config: format must be %q or %q, got %q", FormatString, FormatDump, c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// MatrixOptions converts the numeric settings into matrix options.
// Call Validate first; invalid values make the option constructors panic.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithMaxIterations(c.MaxIterations),
		matrix.WithTolerance(c.Tolerance),
		matrix.WithEpsilon(c.Epsilon),
	}
}
