// Package cliconfig holds matcalc CLI configuration and its file and
// environment sources. Flags win over env, env over file, file over defaults.
package cliconfig

import (
	"fmt"
	"time"
)

// Output formats for evaluation results.
const (
	OutputText = "text"
	OutputTOML = "toml"
)

// Config holds CLI configuration for matcalc.
type Config struct {
	LogLevel  string
	LogFormat string

	// Precision is the number of decimals for float results; -1 prints the
	// shortest exact representation.
	Precision int
	Output    string

	// Debounce delays re-evaluation after a file change in watch mode.
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Precision: -1,
		Output:    OutputText,
		Debounce:  200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log-format must be console or json, got %q", c.LogFormat)
	}
	switch c.Output {
	case OutputText, OutputTOML:
	default:
		return fmt.Errorf("output must be %s or %s, got %q", OutputText, OutputTOML, c.Output)
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision must be >= -1, got %d", c.Precision)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	return nil
}

// configSetter applies values only when the corresponding flag has not been
// set explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// A pointer is used because zero is a meaningful precision.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
