package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zauni/commitguard/pkg/lint"
)

func readDoc(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateLintDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateLintDocs(dir))

	index := readDoc(t, filepath.Join(dir, "index.md"))
	assert.Contains(t, index, generatedMarker)
	assert.Contains(t, index, "## Subject {#subject}")
	assert.Contains(t, index, "[`scope-enum`](/rules/scope-enum)")

	for _, rule := range lint.AllRules() {
		page := readDoc(t, filepath.Join(dir, rule.ID+".md"))
		assert.Contains(t, page, "# "+rule.ID+"\n", rule.ID)
		assert.Contains(t, page, rule.Options, rule.ID)
	}

	format := readDoc(t, filepath.Join(dir, "format.md"))
	assert.Contains(t, format, "- expected a blank line after the header")
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index := readDoc(t, filepath.Join(dir, "index.md"))
	assert.Contains(t, index, "`COMMITGUARD_LOG_LEVEL`")
	assert.Contains(t, index, "[`lint`](/cli/lint)")

	lintPage := readDoc(t, filepath.Join(dir, "lint.md"))
	assert.Contains(t, lintPage, "commitguard lint [file]")
	assert.Contains(t, lintPage, "`--disable`")
	assert.Contains(t, lintPage, "## Global Options")
}

func TestGenerateSchemaDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateSchemaDocs(dir))

	doc := readDoc(t, filepath.Join(dir, "configuration.md"))
	assert.Contains(t, doc, "`commitlint.config.toml`")
	assert.Contains(t, doc, "`[severity, max]`")
	assert.Contains(t, doc, "header-max-length")
	assert.Contains(t, doc, lint.DefaultDocsBaseURL)
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Frontmatter("lint", "Check a\n  commit message")
	w.Header(2, "Usage")
	w.BulletList([]string{"a", "b"})
	w.CodeBlock("bash", "commitguard lint\n")

	assert.Equal(t, "---\ntitle: lint\ndescription: Check a commit message\n---\n\n"+
		"## Usage\n\n"+
		"- a\n- b\n\n"+
		"```bash\ncommitguard lint\n```\n\n", w.String())
}

func TestCleanExample(t *testing.T) {
	assert.Equal(t, "# a\ncommitguard lint\n\n# b\ncommitguard rules",
		cleanExample("  # a\n  commitguard lint\n\n  # b\n  commitguard rules"))
}
