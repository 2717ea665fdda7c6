package cliconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig lists the MATCALC_* environment variables.
type EnvConfig struct {
	LogLevel  string `env:"MATCALC_LOG_LEVEL"`
	LogFormat string `env:"MATCALC_LOG_FORMAT"`
	Precision *int   `env:"MATCALC_PRECISION"`
	Output    string `env:"MATCALC_OUTPUT"`
	Debounce  string `env:"MATCALC_DEBOUNCE"`
}

// LoadEnvConfig reads MATCALC_* variables from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		return ec, fmt.Errorf("parse env: %w", err)
	}
	return ec, nil
}

// ApplyEnvConfig overlays environment values onto cfg, skipping anything
// whose flag is in changed.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	ec, err := LoadEnvConfig()
	if err != nil {
		return err
	}
	s := newConfigSetter(changed)

	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)
	s.setString("log-format", ec.LogFormat, &cfg.LogFormat)
	s.setString("output", ec.Output, &cfg.Output)
	s.setInt("precision", ec.Precision, &cfg.Precision)

	return s.setDuration("debounce", ec.Debounce, &cfg.Debounce)
}
