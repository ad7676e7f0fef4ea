package core

import "strings"

// =============================================================================
// Severity
// =============================================================================

// Severity indicates how a rule violation is reported.
type Severity int

// Severity levels for rules and diagnostics.
const (
	// SeverityOff disables a rule. It never produces a diagnostic.
	SeverityOff Severity = iota
	// SeverityWarning reports a violation without failing the lint run.
	SeverityWarning
	// SeverityError reports a violation that fails the lint run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityOff and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return SeverityOff, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityOff, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// =============================================================================
// Condition
// =============================================================================

// Condition selects the polarity of a rule: whether the checked property
// must never hold or must always hold.
type Condition int

// Conditions.
const (
	ConditionNever Condition = iota
	ConditionAlways
)

// String returns the string representation of the condition.
func (c Condition) String() string {
	switch c {
	case ConditionNever:
		return "never"
	case ConditionAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParseCondition converts a string to a Condition value.
func ParseCondition(s string) (Condition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return ConditionNever, true
	case "always":
		return ConditionAlways, true
	default:
		return ConditionNever, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Condition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
