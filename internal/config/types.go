package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the searchviz configuration document.
type Config struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	Settings Settings `yaml:"settings"`
	History  History  `yaml:"history"`
}

// Settings holds presenter and logging defaults.
type Settings struct {
	Algorithm string   `yaml:"algorithm" validate:"required,algorithm"`
	StepDelay Duration `yaml:"step_delay" validate:"step_delay"`
	LogLevel  string   `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	Unicode   bool     `yaml:"unicode"`
}

// History configures the run log.
type History struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"required_if=Enabled true"`
	Limit   int    `yaml:"limit" validate:"min=1,max=1000"`
}

// Duration is a time.Duration decoded from strings such as "500ms".
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in Go syntax.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
