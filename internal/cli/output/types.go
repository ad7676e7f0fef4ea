package output

import (
	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
	"github.com/zauni/commitguard/pkg/source"
)

// LintOutput is the JSON document produced by `commitguard lint --format json`.
type LintOutput struct {
	Input       string           `json:"input"`
	Valid       bool             `json:"valid"`
	Summary     LintSummary      `json:"summary"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintSummary counts the outcome of one lint pass.
type LintSummary struct {
	RulesRun int `json:"rules_run"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// LintDiagnostic is the JSON form of a lint.Diagnostic.
type LintDiagnostic struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Help     string      `json:"help,omitempty"`
	Line     int         `json:"line,omitempty"`
	Column   int         `json:"column,omitempty"`
	Labels   []LintLabel `json:"labels,omitempty"`
	URL      string      `json:"url,omitempty"`
}

// LintLabel is a labelled byte range of the commit message.
type LintLabel struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// NewLintDiagnostic converts a diagnostic to its JSON form.
func NewLintDiagnostic(d lint.Diagnostic) LintDiagnostic {
	out := LintDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code,
		Message:  d.Message,
		Help:     d.Help,
		URL:      d.DocumentationURL,
	}
	if span, ok := d.PrimarySpan(); ok {
		pos := source.PositionOf(d.Source, span.Start)
		out.Line, out.Column = pos.Line, pos.Column
	}
	for _, l := range d.Labels {
		out.Labels = append(out.Labels, LintLabel{
			Start: l.Span.Start,
			End:   l.Span.End,
			Text:  l.Span.Text,
			Label: l.Text,
		})
	}
	return out
}

// NewLintOutput assembles the JSON document for a set of diagnostics.
func NewLintOutput(input string, rulesRun int, diags []lint.Diagnostic) LintOutput {
	out := LintOutput{
		Input:       input,
		Summary:     LintSummary{RulesRun: rulesRun},
		Diagnostics: make([]LintDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		switch d.Severity {
		case core.SeverityError:
			out.Summary.Errors++
		case core.SeverityWarning:
			out.Summary.Warnings++
		}
		out.Diagnostics = append(out.Diagnostics, NewLintDiagnostic(d))
	}
	out.Valid = out.Summary.Errors == 0
	return out
}
