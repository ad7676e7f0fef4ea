package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zauni/commitguard/internal/cli/config"
	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
)

// generateSchemaDocs generates the configuration reference.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration key.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Flag        string
	Env         string
	Description string
}

// getConfigSchema returns the configuration keys of config.Config.
func getConfigSchema() []ConfigField {
	env := func(key string) string { return config.EnvPrefix + strings.ToUpper(key) }
	return []ConfigField{
		{Name: "verbose", Type: "bool", Default: "false", Flag: "--verbose", Env: env("verbose"), Description: "Enable debug logging"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Flag: "--output", Env: env("output"), Description: "Output format: auto, text, markdown, json"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Flag: "--log-level", Env: env("log_level"), Description: "Log level: debug, info, warn, error"},
		{Name: "docs_url", Type: "string", Default: lint.DefaultDocsBaseURL, Flag: "--docs-url", Env: env("docs_url"), Description: "Base URL for rule documentation links"},
		{Name: "parallel", Type: "bool", Default: "false", Flag: "--parallel", Env: env("parallel"), Description: "Evaluate rules concurrently"},
		{Name: "rules", Type: "map[string][]any", Description: "Rule table mapping rule IDs to option tuples; replaces the defaults when present"},
	}
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "commitguard configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")

	var names []string
	for _, n := range config.ConfigFileNames {
		names = append(names, InlineCode(n))
	}
	w.Paragraph(fmt.Sprintf("commitguard reads the first of %s found in the working directory or one of its parents. Use `--config` to name a file explicitly.",
		strings.Join(names, ", ")))

	w.Header(2, "Settings")

	headers := []string{"Key", "Type", "Default", "Flag", "Environment", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{
			InlineCode(f.Name),
			f.Type,
			orDash(f.Default, InlineCode),
			orDash(f.Flag, InlineCode),
			orDash(f.Env, InlineCode),
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Rules")
	w.Paragraph("Each entry of the `rules` table maps a rule ID to a tuple whose first element is the severity. The remaining elements depend on the rule.")

	w.Header(3, "Severity")
	w.Table(
		[]string{"Value", "Alias", "Meaning"},
		[][]string{
			{InlineCode(core.SeverityOff.String()), InlineCode("0"), "Rule is not evaluated"},
			{InlineCode(core.SeverityWarning.String()), InlineCode("1"), "Reported without failing the check"},
			{InlineCode(core.SeverityError.String()), InlineCode("2"), "Reported and fails the check"},
		},
	)

	w.Header(3, "Condition")
	w.Paragraph("Rules taking a condition apply it as `always` (the property must hold) or `never` (it must not hold).")

	w.Header(3, "Option Layouts")
	var layouts []string
	byLayout := map[string][]string{}
	for _, k := range lint.Kinds() {
		layout := k.Shape().Layout()
		if _, ok := byLayout[layout]; !ok {
			layouts = append(layouts, layout)
		}
		byLayout[layout] = append(byLayout[layout], InlineCode(k.ID()))
	}
	var layoutRows [][]string
	for _, layout := range layouts {
		layoutRows = append(layoutRows, []string{InlineCode(layout), strings.Join(byLayout[layout], ", ")})
	}
	w.Table([]string{"Layout", "Rules"}, layoutRows)

	w.Header(2, "Defaults")
	w.Paragraph("Without a `rules` table the following defaults apply:")
	defaults, err := defaultRulesTOML()
	if err != nil {
		return err
	}
	w.CodeBlock("toml", defaults)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}

// defaultRulesTOML renders the default rule table.
func defaultRulesTOML() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(map[string]any{"rules": lint.DefaultTable()}); err != nil {
		return "", fmt.Errorf("failed to encode default rules: %w", err)
	}
	return b.String(), nil
}

func orDash(s string, wrap func(string) string) string {
	if s == "" {
		return "-"
	}
	return wrap(s)
}
