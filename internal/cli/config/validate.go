package config

import (
	"fmt"

	"github.com/zauni/commitguard/pkg/lint"
)

var validOutputs = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid, including every rule tuple.
func (c *Config) Validate() error {
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q: expected auto, text, markdown or json", c.OutputFormat)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.BuildRunner(); err != nil {
		return err
	}
	return nil
}

// RulesTable returns the configured rules table, or the built-in defaults
// when none was configured.
func (c *Config) RulesTable() map[string][]any {
	if !c.HasRules() {
		return lint.DefaultTable()
	}
	return c.Rules
}

// BuildRunner decodes the rules table into a lint runner.
func (c *Config) BuildRunner() (*lint.Runner, error) {
	runner, err := lint.NewRunnerFromTable(c.RulesTable())
	if err != nil {
		return nil, fmt.Errorf("invalid rules configuration: %w", err)
	}
	return runner, nil
}
