package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/zauni/commitguard/internal/cli/output"
	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
	"github.com/zauni/commitguard/pkg/parser"
)

// ErrLintFailed is returned when the commit message has at least one error.
// The diagnostics have already been printed when it is returned.
var ErrLintFailed = errors.New("commit message has lint errors")

// stdinInput names the input in reports when the message is read from stdin.
const stdinInput = "stdin"

// watchDebounce coalesces the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// LintOptions holds options for the lint command.
type LintOptions struct {
	Path     string   // Commit message file, "" or "-" for stdin
	Format   string   // Output format: text, markdown, json
	Parallel bool     // Evaluate rules concurrently
	Watch    bool     // Re-lint whenever the file changes
	Disable  []string // Rule IDs to disable
	Warn     []string // Rule IDs downgraded to warnings
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Check a commit message",
		Long: `Parse a commit message and check it against the configured rules.

The message is read from the given file, or from stdin when no file or "-"
is given. Rules come from the "rules" table of commitlint.config.toml
(or .json/.yaml/.yml); without one the built-in defaults apply.

Exits with status 1 when any rule reports an error. Warnings are printed
but do not fail the check.`,
		Example: `  # Lint the message git is about to commit (commit-msg hook)
  commitguard lint "$1"

  # Lint from stdin
  echo "feat(api): add endpoint" | commitguard lint

  # Machine-readable output
  git log -1 --format=%B | commitguard lint --format json

  # Disable a rule for one run
  commitguard lint --disable header-max-length .git/COMMIT_EDITMSG

  # Re-lint on every save
  commitguard lint --watch .git/COMMIT_EDITMSG`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Parallel, "parallel", false, "Evaluate rules concurrently")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint the file whenever it changes")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Warn, "warn", nil, "Rule IDs to report as warnings instead of errors")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	completeRuleIDs := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var ids []string
		for _, k := range lint.Kinds() {
			ids = append(ids, k.ID())
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
	_ = cmd.RegisterFlagCompletionFunc("disable", completeRuleIDs)
	_ = cmd.RegisterFlagCompletionFunc("warn", completeRuleIDs)

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger

	runner, err := cfg.BuildRunner()
	if err != nil {
		return err
	}
	overrides, err := buildLintConfig(opts)
	if err != nil {
		return err
	}
	runner = runner.WithConfig(overrides)
	logger.Debug("rules built",
		slog.Int("configured", runner.Len()),
		slog.Int("enabled", runner.Enabled()),
		slog.Bool("defaults", !cfg.HasRules()),
	)

	l := &linter{
		r:        cmdCtx.Renderer,
		logger:   logger,
		runner:   runner,
		parallel: opts.Parallel || cfg.Parallel,
	}

	if opts.Watch {
		if opts.Path == "" || opts.Path == "-" {
			return fmt.Errorf("--watch requires a file argument")
		}
		return l.watch(cmd.Context(), opts.Path)
	}

	raw, input, err := readMessage(cmd.InOrStdin(), opts.Path)
	if err != nil {
		return err
	}
	passed, err := l.lint(cmd.Context(), raw, input)
	if err != nil {
		return err
	}
	if !passed {
		return ErrLintFailed
	}
	return nil
}

// buildLintConfig turns the command line overrides into a lint config.
func buildLintConfig(opts *LintOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	for _, id := range opts.Disable {
		id = strings.TrimSpace(id)
		if _, ok := lint.LookupKind(id); !ok {
			return nil, fmt.Errorf("--disable: %w: %q", lint.ErrUnknownRule, id)
		}
		lintCfg.Disable(id)
	}
	for _, id := range opts.Warn {
		id = strings.TrimSpace(id)
		if _, ok := lint.LookupKind(id); !ok {
			return nil, fmt.Errorf("--warn: %w: %q", lint.ErrUnknownRule, id)
		}
		lintCfg.SetSeverity(id, core.SeverityWarning)
	}

	return lintCfg, nil
}

// readMessage reads the commit message from path, or from in for "" and "-".
func readMessage(in io.Reader, path string) (raw, input string, err error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), stdinInput, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read commit message: %w", err)
	}
	return string(b), path, nil
}

// linter runs one lint pass and renders its outcome.
type linter struct {
	r        *output.Renderer
	logger   *slog.Logger
	runner   *lint.Runner
	parallel bool
}

// lint reports whether raw passed. Parse failures are rendered as a
// diagnostic and count as a failed check, not as an error.
func (l *linter) lint(ctx context.Context, raw, input string) (bool, error) {
	var (
		res *lint.Result
		err error
	)
	if l.parallel {
		_, res, err = lint.LintParallel(ctx, raw, l.runner)
	} else {
		_, res, err = lint.Lint(raw, l.runner)
	}

	var perr *parser.Error
	if errors.As(err, &perr) {
		l.logger.Debug("parse failed", slog.String("input", input), slog.String("error", perr.Error()))
		l.render(input, []lint.Diagnostic{lint.FromParseError(perr)})
		return false, nil
	}
	if err != nil {
		return false, err
	}

	l.logger.Debug("lint finished",
		slog.String("input", input),
		slog.Int("errors", res.ErrorsLen()),
		slog.Int("warnings", res.WarningsLen()),
	)
	l.render(input, res.All())
	return res.Passed(), nil
}

func (l *linter) render(input string, diags []lint.Diagnostic) {
	r := l.r
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(output.NewLintOutput(input, l.runner.Enabled(), diags))
		return
	}

	for _, d := range diags {
		r.Diagnostic(d)
	}

	var errCount, warnCount int
	for _, d := range diags {
		switch d.Severity {
		case core.SeverityError:
			errCount++
		case core.SeverityWarning:
			warnCount++
		}
	}

	if len(diags) == 0 {
		r.Success(fmt.Sprintf("%s: commit message is valid (%d rules checked)", input, l.runner.Enabled()))
		return
	}

	summary := fmt.Sprintf("%s: %s, %s", input, plural(errCount, "error"), plural(warnCount, "warning"))
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("")
		r.Println("**Summary:** " + summary)
		return
	}
	if errCount > 0 {
		r.Println(r.Styles().Error.Render("✗ " + summary))
		return
	}
	r.Println(r.Styles().Warning.Render("! " + summary))
}

// watch lints path once, then again on every change until ctx is done.
// The parent directory is watched since editors often replace the file.
func (l *linter) watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	lintFile := func() {
		raw, input, err := readMessage(nil, path)
		if err != nil {
			l.r.Error(err.Error())
			return
		}
		if _, err := l.lint(ctx, raw, input); err != nil {
			l.r.Error(err.Error())
		}
	}

	lintFile()
	l.logger.Info("watching for changes", slog.String("path", abs))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce = time.After(watchDebounce)
			}
		case <-debounce:
			debounce = nil
			l.logger.Debug("file changed", slog.String("path", abs))
			lintFile()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
