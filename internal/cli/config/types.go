// Package config provides configuration management for the commitguard CLI.
//
// Configuration is layered with koanf: built-in defaults, then the commitlint
// config file, then COMMITGUARD_ environment variables, then explicitly set
// command line flags.
package config

// Default values for configuration.
const (
	DefaultOutput   = "auto"
	DefaultLogLevel = "warn"
)

// ConfigFileNames lists the config file names searched for, in priority order.
var ConfigFileNames = []string{
	"commitlint.config.toml",
	"commitlint.config.json",
	"commitlint.config.yaml",
	"commitlint.config.yml",
}

// Config holds all configuration for the CLI.
type Config struct {
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`
	DocsURL      string `koanf:"docs_url"`
	Parallel     bool   `koanf:"parallel"`

	// Rules maps rule IDs to option tuples, e.g. "scope-enum": [2, "always", ["api"]].
	// A nil table selects the built-in defaults.
	Rules map[string][]any `koanf:"rules"`

	// ConfigDir is the directory of the loaded config file, or the working
	// directory when none was found (resolved, not loaded from config).
	ConfigDir string `koanf:"-"`
}

// HasRules reports whether a rules table was configured.
func (c *Config) HasRules() bool {
	return c != nil && c.Rules != nil
}
