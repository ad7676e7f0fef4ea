package lint

import (
	"context"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/parser"
)

// Lint parses raw and runs the rule set over it. A parse failure is
// returned as a *parser.Error and no rules run.
func Lint(raw string, r *Runner) (*core.Commit, *Result, error) {
	commit, err := parser.Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	return commit, r.Run(commit), nil
}

// LintParallel is Lint with concurrent rule evaluation.
func LintParallel(ctx context.Context, raw string, r *Runner) (*core.Commit, *Result, error) {
	commit, err := parser.Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	res, err := r.RunParallel(ctx, commit)
	if err != nil {
		return nil, nil, err
	}
	return commit, res, nil
}
