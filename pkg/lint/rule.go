package lint

import (
	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/source"
)

// DefaultFullStop is the value subject-full-stop checks when none is configured.
const DefaultFullStop = "."

// Options is the decoded configuration of a single rule. Which fields are
// meaningful depends on the rule's Shape.
type Options struct {
	Severity  core.Severity
	Condition core.Condition  // condition, enum, case and full-stop shapes
	Values    []string        // enum shape
	MaxLength int             // length shape, counted in characters
	Case      core.TargetCase // case shape
	Value     string          // full-stop shape
}

// Rule is one configured rule.
type Rule struct {
	Kind    Kind
	Options Options
}

// ID returns the rule identifier.
func (r Rule) ID() string { return r.Kind.ID() }

// Enabled reports whether the rule can produce diagnostics.
func (r Rule) Enabled() bool { return r.Options.Severity != core.SeverityOff }

// Evaluate checks the commit against the rule and returns the violation,
// or nil. Evaluate is pure: it reads the commit and never modifies it.
func (r Rule) Evaluate(c *core.Commit) *Diagnostic {
	if !r.Enabled() || c == nil {
		return nil
	}

	switch r.Kind {
	case KindTypeEnum:
		return r.checkEnum(c, fieldType, &c.Type)
	case KindTypeCase:
		return r.checkCase(c, fieldType, &c.Type)
	case KindTypeMaxLength:
		return r.checkMaxLength(c, fieldType, &c.Type)
	case KindScopeEmpty:
		return r.checkEmpty(c, fieldScope, c.Scope)
	case KindScopeEnum:
		return r.checkEnum(c, fieldScope, c.Scope)
	case KindScopeCase:
		return r.checkCase(c, fieldScope, c.Scope)
	case KindScopeMaxLength:
		return r.checkMaxLength(c, fieldScope, c.Scope)
	case KindSubjectCase:
		return r.checkCase(c, fieldSubject, &c.Subject)
	case KindSubjectMaxLength:
		return r.checkMaxLength(c, fieldSubject, &c.Subject)
	case KindSubjectFullStop:
		return r.checkFullStop(c)
	case KindHeaderMaxLength:
		return r.checkMaxLength(c, fieldHeader, &c.Header)
	case KindBodyEmpty:
		return r.checkEmpty(c, fieldBody, c.Body)
	case KindBodyMaxLineLength:
		return r.checkMaxLineLength(c, fieldBody, c.Body)
	case KindFooterEmpty:
		return r.checkEmpty(c, fieldFooter, c.Footer)
	case KindFooterMaxLineLength:
		return r.checkMaxLineLength(c, fieldFooter, c.Footer)
	default:
		return nil
	}
}

// newDiagnostic fills the fields every rule diagnostic shares.
func (r Rule) newDiagnostic(c *core.Commit, message, help string, labels ...Label) *Diagnostic {
	return &Diagnostic{
		Severity:         r.Options.Severity,
		Code:             r.Kind.Code(),
		Message:          message,
		Help:             help,
		Labels:           labels,
		Source:           c.Raw,
		DocumentationURL: BuildDocURL(r.Kind.ID()),
	}
}

func label(span source.Span, text string) Label {
	return Label{Span: span, Text: text}
}
