package lint

import (
	"fmt"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/parser"
	"github.com/zauni/commitguard/pkg/source"
)

// CodeParseSyntax identifies diagnostics converted from parse errors.
const CodeParseSyntax = "parse/syntax"

// Label marks a span of the source with a short annotation.
type Label struct {
	Span source.Span
	Text string
}

// Diagnostic represents a lint finding.
type Diagnostic struct {
	Severity core.Severity
	Code     string // e.g. "rule/scope-enum"
	Message  string
	Help     string
	Labels   []Label

	// Source is the complete commit message the labels point into.
	Source string

	// DocumentationURL links to the rule documentation, e.g.
	// "https://commitguard.dev/rules/scope-enum".
	DocumentationURL string
}

// Error implements error so diagnostics can flow through error-returning APIs.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// RuleID returns the rule identifier without the "rule/" prefix, or the
// full code for non-rule diagnostics.
func (d Diagnostic) RuleID() string {
	const prefix = "rule/"
	if len(d.Code) > len(prefix) && d.Code[:len(prefix)] == prefix {
		return d.Code[len(prefix):]
	}
	return d.Code
}

// PrimarySpan returns the span of the first label.
func (d Diagnostic) PrimarySpan() (source.Span, bool) {
	if len(d.Labels) == 0 {
		return source.Span{}, false
	}
	return d.Labels[0].Span, true
}

// FromParseError converts a grammar violation into an error diagnostic with
// a zero-width label at the failing offset.
func FromParseError(err *parser.Error) Diagnostic {
	return Diagnostic{
		Severity: core.SeverityError,
		Code:     CodeParseSyntax,
		Message:  "Invalid commit message",
		Help:     `expected "type(scope): subject", then optionally a blank line and a body, then a blank line and a footer`,
		Labels: []Label{
			{Span: err.Span(), Text: err.Message},
		},
		Source:           err.Source,
		DocumentationURL: BuildDocURL("format"),
	}
}
