package lint

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/zauni/commitguard/pkg/core"
)

// Runner evaluates an ordered rule set against commits.
// A Runner is immutable and safe for concurrent use.
type Runner struct {
	rules []Rule
}

// NewRunner creates a runner evaluating rules in the given order.
func NewRunner(rules ...Rule) *Runner {
	return &Runner{rules: slices.Clone(rules)}
}

// Rules returns a copy of the rule set.
func (r *Runner) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Len returns the number of rules, enabled or not.
func (r *Runner) Len() int {
	return len(r.rules)
}

// Enabled returns the number of rules that can produce diagnostics.
func (r *Runner) Enabled() int {
	n := 0
	for _, rule := range r.rules {
		if rule.Enabled() {
			n++
		}
	}
	return n
}

// WithConfig returns a runner with the overrides in cfg applied.
func (r *Runner) WithConfig(cfg *Config) *Runner {
	rules := make([]Rule, len(r.rules))
	for i, rule := range r.rules {
		rules[i] = cfg.Apply(rule)
	}
	return &Runner{rules: rules}
}

// Run evaluates every rule in order and classifies the diagnostics.
func (r *Runner) Run(c *core.Commit) *Result {
	res := &Result{}
	for _, rule := range r.rules {
		if d := rule.Evaluate(c); d != nil {
			res.add(*d)
		}
	}
	return res
}

// RunParallel evaluates the rules concurrently. The result is identical to
// Run, including diagnostic order. Cancellation is observed between rules.
func (r *Runner) RunParallel(ctx context.Context, c *core.Commit) (*Result, error) {
	found := make([]*Diagnostic, len(r.rules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rule := range r.rules {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found[i] = rule.Evaluate(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, d := range found {
		if d != nil {
			res.add(*d)
		}
	}
	return res, nil
}
