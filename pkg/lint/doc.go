// Package lint evaluates commit-message policy rules against a parsed
// core.Commit.
//
// # Architecture
//
// The set of rules is closed and known at compile time. Each rule is a Kind
// paired with its Options; Rule.Evaluate dispatches on the Kind through a
// single switch. A Runner holds an ordered rule set and classifies the
// resulting diagnostics into a Result.
//
//	commit, err := parser.Parse(raw)
//	runner := lint.NewRunner(
//		lint.Rule{Kind: lint.KindScopeEmpty, Options: lint.Options{
//			Severity:  core.SeverityError,
//			Condition: core.ConditionNever,
//		}},
//	)
//	result := runner.Run(commit)
//	if result.HasErrors() { ... }
//
// # Rule Shapes
//
// Rules are configured with tuples from the config file's rules table:
//
//	condition  [severity, condition]             scope-empty, body-empty, footer-empty
//	enum       [severity, condition, [values]]   scope-enum, type-enum
//	length     [severity, max]                   *-max-length, *-max-line-length
//	case       [severity, condition, case]       scope-case, type-case, subject-case
//	full-stop  [severity, condition, value?]     subject-full-stop
//
// Any rule accepts [off] alone. Use ParseRule or NewRunnerFromTable to decode
// tuples.
//
// # Severity
//
// A rule configured as core.SeverityOff never produces a diagnostic,
// whatever the commit contains.
package lint
