package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zauni/commitguard/internal/cli/commands"
	"github.com/zauni/commitguard/internal/cli/config"
	"github.com/zauni/commitguard/internal/cli/output"
	"github.com/zauni/commitguard/internal/cli/testutil"
	"github.com/zauni/commitguard/pkg/lint"
)

func execRoot(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		config.ResetConfig()
		lint.ResetDocsBaseURL()
	})
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"lint", "rules", "init", "version", "completion"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "verbose", "output", "log-level", "docs-url"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCommand_LintWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	testutil.WriteFile(t, dir, "commitlint.config.toml", `output = "json"
docs_url = "https://example.test/rules"

[rules]
type-enum = [2, "always", ["feat", "fix"]]
`)

	out, _, err := execRoot(t, "chore: tidy\n", "lint")
	require.ErrorIs(t, err, commands.ErrLintFailed)

	var doc output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Diagnostics, 1)
	assert.Equal(t, "rule/type-enum", doc.Diagnostics[0].Code)
	assert.Equal(t, "https://example.test/rules/type-enum", doc.Diagnostics[0].URL)
}

func TestRootCommand_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	path := testutil.WriteFile(t, dir, "custom.yaml", "output: json\n")

	out, _, err := execRoot(t, "feat: ok\n", "--config", path, "--output", "markdown", "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ stdin: commit message is valid")
}

func TestRootCommand_VerboseLogs(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)

	_, stderr, err := execRoot(t, "feat: ok\n", "--verbose", "lint")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no config file found")
	assert.Contains(t, stderr, "rules built")
	assert.Contains(t, stderr, "lint finished")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	testutil.WriteFile(t, dir, "commitlint.config.json", `{"rules": {"scope-enum": [2, "sometimes", []]}}`)

	_, _, err := execRoot(t, "feat: ok\n", "lint")
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrInvalidOptions)
	assert.Contains(t, err.Error(), "scope-enum")
}

func TestRootCommand_Completion(t *testing.T) {
	out, _, err := execRoot(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "commitguard")

	_, _, err = execRoot(t, "", "completion", "tcsh")
	require.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       int
		wantStderr string
	}{
		{"success", nil, 0, ""},
		{"lint failed", commands.ErrLintFailed, 1, ""},
		{"wrapped lint failure", errors.Join(errors.New("x"), commands.ErrLintFailed), 1, ""},
		{"other error", errors.New("boom"), 1, "Error: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, exitCode(&stderr, tt.err))
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig(t.Context())
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.NotNil(t, GetRenderer(t.Context()))
}
