package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
	"github.com/zauni/commitguard/pkg/parser"
)

func mustParse(t *testing.T, raw string) *core.Commit {
	t.Helper()
	c, err := parser.Parse(raw)
	require.NoError(t, err)
	return c
}

func errRule(k lint.Kind, opts lint.Options) lint.Rule {
	opts.Severity = core.SeverityError
	return lint.Rule{Kind: k, Options: opts}
}

func TestRule_Evaluate(t *testing.T) {
	never := core.ConditionNever
	always := core.ConditionAlways

	tests := []struct {
		name      string
		rule      lint.Rule
		commit    string
		wantMsg   string // empty: no diagnostic expected
		wantHelp  string
		wantLabel string // text of the labeled span; empty: no label
	}{
		// scope-empty
		{"scope-empty always, scope present", errRule(lint.KindScopeEmpty, lint.Options{Condition: always}),
			"feat(api): x", "Scope", "scope must be empty", "api"},
		{"scope-empty always, scope absent", errRule(lint.KindScopeEmpty, lint.Options{Condition: always}),
			"feat: x", "", "", ""},
		{"scope-empty never, scope absent", errRule(lint.KindScopeEmpty, lint.Options{Condition: never}),
			"feat: x", "Scope", "scope may not be empty", ""},
		{"scope-empty never, scope present", errRule(lint.KindScopeEmpty, lint.Options{Condition: never}),
			"feat(api): x", "", "", ""},

		// scope-enum
		{"scope-enum never, listed", errRule(lint.KindScopeEnum, lint.Options{Condition: never, Values: []string{"feat", "fix"}}),
			"feat(feat): x", "Scope not allowed", "scope must not be one of feat, fix", "feat"},
		{"scope-enum never, unlisted", errRule(lint.KindScopeEnum, lint.Options{Condition: never, Values: []string{"feat", "fix"}}),
			"feat(nice): x", "", "", ""},
		{"scope-enum always, unlisted", errRule(lint.KindScopeEnum, lint.Options{Condition: always, Values: []string{"api"}}),
			"feat(web): x", "Scope not allowed", "scope must be one of api", "web"},
		{"scope-enum always, listed", errRule(lint.KindScopeEnum, lint.Options{Condition: always, Values: []string{"api", "web"}}),
			"feat(web): x", "", "", ""},
		{"scope-enum empty list is a no-op", errRule(lint.KindScopeEnum, lint.Options{Condition: always}),
			"feat(anything): x", "", "", ""},
		{"scope-enum scope absent", errRule(lint.KindScopeEnum, lint.Options{Condition: always, Values: []string{"api"}}),
			"feat: x", "", "", ""},

		// scope-max-length
		{"scope-max-length too long", errRule(lint.KindScopeMaxLength, lint.Options{MaxLength: 5}),
			"feat(backend): x", "Scope too long", "scope must not be longer than 5 characters (current length: 7)", "backend"},
		{"scope-max-length short", errRule(lint.KindScopeMaxLength, lint.Options{MaxLength: 5}),
			"feat(api): x", "", "", ""},
		{"scope-max-length counts characters", errRule(lint.KindScopeMaxLength, lint.Options{MaxLength: 5}),
			"feat(ünïcö): x", "", "", ""},
		{"scope-max-length scope absent", errRule(lint.KindScopeMaxLength, lint.Options{MaxLength: 1}),
			"feat: x", "", "", ""},

		// scope-case
		{"scope-case always kebab, camel given", errRule(lint.KindScopeCase, lint.Options{Condition: always, Case: core.CaseKebab}),
			"feat(userService): x", "Scope case", "scope must be kebab-case", "userService"},
		{"scope-case always kebab, kebab given", errRule(lint.KindScopeCase, lint.Options{Condition: always, Case: core.CaseKebab}),
			"feat(user-service): x", "", "", ""},
		{"scope-case never upper, upper given", errRule(lint.KindScopeCase, lint.Options{Condition: never, Case: core.CaseUpper}),
			"feat(API): x", "Scope case", "scope must not be upper-case", "API"},

		// type
		{"type-enum always, unknown type", errRule(lint.KindTypeEnum, lint.Options{Condition: always, Values: lint.DefaultTypes}),
			"feature: x", "Type not allowed", "type must be one of build, chore, ci, docs, feat, fix, perf, refactor, revert, style, test", "feature"},
		{"type-enum always, known type", errRule(lint.KindTypeEnum, lint.Options{Condition: always, Values: lint.DefaultTypes}),
			"fix: x", "", "", ""},
		{"type-case always lower", errRule(lint.KindTypeCase, lint.Options{Condition: always, Case: core.CaseLower}),
			"Feat: x", "Type case", "type must be lower-case", "Feat"},
		{"type-max-length", errRule(lint.KindTypeMaxLength, lint.Options{MaxLength: 4}),
			"refactor: x", "Type too long", "type must not be longer than 4 characters (current length: 8)", "refactor"},

		// subject
		{"subject-case never sentence", errRule(lint.KindSubjectCase, lint.Options{Condition: never, Case: core.CaseSentence}),
			"feat: Add login", "Subject case", "subject must not be sentence-case", "Add login"},
		{"subject-case never sentence, lower given", errRule(lint.KindSubjectCase, lint.Options{Condition: never, Case: core.CaseSentence}),
			"feat: add login", "", "", ""},
		{"subject-max-length", errRule(lint.KindSubjectMaxLength, lint.Options{MaxLength: 3}),
			"feat: add login", "Subject too long", "subject must not be longer than 3 characters (current length: 9)", "add login"},
		{"subject-full-stop never", errRule(lint.KindSubjectFullStop, lint.Options{Condition: never, Value: "."}),
			"feat: add login.", "Subject full stop", `subject may not end with "."`, "."},
		{"subject-full-stop never, no stop", errRule(lint.KindSubjectFullStop, lint.Options{Condition: never, Value: "."}),
			"feat: add login", "", "", ""},
		{"subject-full-stop defaults to period", errRule(lint.KindSubjectFullStop, lint.Options{Condition: never}),
			"feat: add login.", "Subject full stop", `subject may not end with "."`, "."},
		{"subject-full-stop always", errRule(lint.KindSubjectFullStop, lint.Options{Condition: always, Value: "!"}),
			"feat: add login", "Subject full stop", `subject must end with "!"`, "add login"},

		// header
		{"header-max-length", errRule(lint.KindHeaderMaxLength, lint.Options{MaxLength: 10}),
			"feat: add feature", "Header too long", "header must not be longer than 10 characters (current length: 17)", "feat: add feature"},
		{"header-max-length at limit", errRule(lint.KindHeaderMaxLength, lint.Options{MaxLength: 17}),
			"feat: add feature", "", "", ""},

		// body
		{"body-empty never, body absent", errRule(lint.KindBodyEmpty, lint.Options{Condition: never}),
			"feat: x", "Body", "body may not be empty", ""},
		{"body-empty never, body present", errRule(lint.KindBodyEmpty, lint.Options{Condition: never}),
			"feat: x\n\nsome body", "", "", ""},
		{"body-empty always, body present", errRule(lint.KindBodyEmpty, lint.Options{Condition: always}),
			"feat: x\n\nsome body", "Body", "body must be empty", "some body"},
		{"body-max-line-length", errRule(lint.KindBodyMaxLineLength, lint.Options{MaxLength: 5}),
			"feat: x\n\nshort\ntoolong", "Body line too long", "body lines must not be longer than 5 characters (current length: 7)", "toolong"},
		{"body-max-line-length body absent", errRule(lint.KindBodyMaxLineLength, lint.Options{MaxLength: 1}),
			"feat: x", "", "", ""},

		// footer
		{"footer-empty never", errRule(lint.KindFooterEmpty, lint.Options{Condition: never}),
			"feat: x\n\nbody", "Footer", "footer may not be empty", ""},
		{"footer-empty always", errRule(lint.KindFooterEmpty, lint.Options{Condition: always}),
			"feat: x\n\nbody\n\nRefs: #1", "Footer", "footer must be empty", "Refs: #1"},
		{"footer-max-line-length crlf", errRule(lint.KindFooterMaxLineLength, lint.Options{MaxLength: 5}),
			"feat: x\r\n\r\nbody\r\n\r\nok\r\nRefs: #123\r\n", "Footer line too long", "footer lines must not be longer than 5 characters (current length: 10)", "Refs: #123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustParse(t, tt.commit)
			d := tt.rule.Evaluate(c)

			if tt.wantMsg == "" {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, tt.wantMsg, d.Message)
			assert.Equal(t, tt.wantHelp, d.Help)
			assert.Equal(t, core.SeverityError, d.Severity)
			assert.Equal(t, "rule/"+tt.rule.ID(), d.Code)
			assert.Equal(t, tt.commit, d.Source)
			assert.Equal(t, lint.BuildDocURL(tt.rule.ID()), d.DocumentationURL)

			if tt.wantLabel == "" {
				assert.Empty(t, d.Labels)
				return
			}
			require.Len(t, d.Labels, 1)
			span := d.Labels[0].Span
			assert.Equal(t, tt.wantLabel, span.Text)
			assert.Equal(t, tt.commit[span.Start:span.End], span.Text)
		})
	}
}

func TestRule_EvaluateLabels(t *testing.T) {
	c := mustParse(t, "feat(nice): add cool feature\n\nsome body")

	d := errRule(lint.KindScopeEnum, lint.Options{Condition: core.ConditionAlways, Values: []string{"api"}}).Evaluate(c)
	require.NotNil(t, d)
	assert.Equal(t, "not allowed scope", d.Labels[0].Text)
	assert.Equal(t, 5, d.Labels[0].Span.Start)
	assert.Equal(t, 9, d.Labels[0].Span.End)

	d = errRule(lint.KindBodyEmpty, lint.Options{Condition: core.ConditionAlways}).Evaluate(c)
	require.NotNil(t, d)
	assert.Equal(t, "not allowed body", d.Labels[0].Text)

	long := mustParse(t, "feat: x\n\nshort\ntoolong")
	d = errRule(lint.KindBodyMaxLineLength, lint.Options{MaxLength: 5}).Evaluate(long)
	require.NotNil(t, d)
	assert.Equal(t, 15, d.Labels[0].Span.Start)
	assert.Equal(t, 22, d.Labels[0].Span.End)
}

func TestRule_SeverityMirrored(t *testing.T) {
	c := mustParse(t, "feat(api): x")
	r := lint.Rule{Kind: lint.KindScopeEmpty, Options: lint.Options{
		Severity:  core.SeverityWarning,
		Condition: core.ConditionAlways,
	}}
	d := r.Evaluate(c)
	require.NotNil(t, d)
	assert.Equal(t, core.SeverityWarning, d.Severity)
}

func TestRule_OffNeverReports(t *testing.T) {
	// Every field is present and violates every configurable condition.
	c := mustParse(t, "Feature(Some_Scope): Add a very long subject.\n\nA body line that is long\n\nA footer line that is long")

	optionSets := []lint.Options{
		{Condition: core.ConditionAlways, Values: []string{"none"}, MaxLength: 0, Case: core.CaseUpper, Value: "?"},
		{Condition: core.ConditionNever, Values: []string{"Feature", "Some_Scope"}, MaxLength: 0, Case: core.CasePascal, Value: "."},
	}

	for _, k := range lint.Kinds() {
		for _, opts := range optionSets {
			opts.Severity = core.SeverityOff
			r := lint.Rule{Kind: k, Options: opts}
			assert.False(t, r.Enabled())
			assert.Nil(t, r.Evaluate(c), "%s with severity off", k)
		}
	}
}

func TestRule_OffRulesWouldOtherwiseReport(t *testing.T) {
	c := mustParse(t, "Feature(Some_Scope): Add a very long subject.\n\nA body line that is long\n\nA footer line that is long")

	for _, k := range lint.Kinds() {
		opts := []lint.Options{
			{Severity: core.SeverityError, Condition: core.ConditionAlways, Values: []string{"none"}, MaxLength: 0, Case: core.CaseUpper, Value: "?"},
			{Severity: core.SeverityError, Condition: core.ConditionNever, Values: []string{"Feature", "Some_Scope"}, MaxLength: 0, Case: core.CasePascal, Value: "."},
		}
		reported := false
		for _, o := range opts {
			if (lint.Rule{Kind: k, Options: o}).Evaluate(c) != nil {
				reported = true
			}
		}
		assert.True(t, reported, "%s should report when enabled", k)
	}
}

func TestRule_UnknownKindAndNilCommit(t *testing.T) {
	r := lint.Rule{Kind: lint.Kind(99), Options: lint.Options{Severity: core.SeverityError}}
	assert.Nil(t, r.Evaluate(mustParse(t, "feat: x")))

	r = errRule(lint.KindBodyEmpty, lint.Options{Condition: core.ConditionNever})
	assert.Nil(t, r.Evaluate(nil))
}

func TestRule_Pure(t *testing.T) {
	c := mustParse(t, "feat(api): x")
	before := *c
	r := errRule(lint.KindScopeEmpty, lint.Options{Condition: core.ConditionAlways})

	first := r.Evaluate(c)
	second := r.Evaluate(c)
	assert.Equal(t, first, second)
	assert.Equal(t, before, *c)
}
