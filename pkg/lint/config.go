package lint

import "github.com/zauni/commitguard/pkg/core"

// Config layers run-time overrides on top of a decoded rule set, such as
// rules disabled from the command line.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the configured severity of rules
	SeverityOverrides map[string]core.Severity
}

// NewConfig creates an empty override set.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, configured core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return configured
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// Apply returns a copy of rule with overrides applied.
func (c *Config) Apply(rule Rule) Rule {
	if c.IsDisabled(rule.ID()) {
		rule.Options.Severity = core.SeverityOff
		return rule
	}
	rule.Options.Severity = c.GetSeverity(rule.ID(), rule.Options.Severity)
	return rule
}
