package lint

import (
	"slices"

	"github.com/zauni/commitguard/pkg/core"
)

// Result holds the classified diagnostics of one lint pass.
type Result struct {
	errors   []Diagnostic
	warnings []Diagnostic
	all      []Diagnostic
}

// add classifies d by severity. Other severities are dropped.
func (r *Result) add(d Diagnostic) {
	switch d.Severity {
	case core.SeverityError:
		r.errors = append(r.errors, d)
	case core.SeverityWarning:
		r.warnings = append(r.warnings, d)
	default:
		return
	}
	r.all = append(r.all, d)
}

// Errors returns the error diagnostics in rule order.
func (r *Result) Errors() []Diagnostic { return slices.Clone(r.errors) }

// Warnings returns the warning diagnostics in rule order.
func (r *Result) Warnings() []Diagnostic { return slices.Clone(r.warnings) }

// All returns errors and warnings interleaved in rule order.
func (r *Result) All() []Diagnostic { return slices.Clone(r.all) }

// ErrorsLen returns the number of errors.
func (r *Result) ErrorsLen() int { return len(r.errors) }

// WarningsLen returns the number of warnings.
func (r *Result) WarningsLen() int { return len(r.warnings) }

// HasErrors reports whether any error was found.
func (r *Result) HasErrors() bool { return len(r.errors) > 0 }

// HasWarnings reports whether any warning was found.
func (r *Result) HasWarnings() bool { return len(r.warnings) > 0 }

// Passed reports whether the pass succeeded. Warnings do not fail a pass.
func (r *Result) Passed() bool { return !r.HasErrors() }
