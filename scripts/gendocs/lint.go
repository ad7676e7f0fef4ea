package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
	"github.com/zauni/commitguard/pkg/parser"
)

// groupOrder lists rule groups in the order their fields appear in a message.
var groupOrder = []string{"type", "scope", "subject", "header", "body", "footer"}

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"type":    "Rules about the commit type before the optional scope.",
	"scope":   "Rules about the parenthesized scope.",
	"subject": "Rules about the description after the colon.",
	"header":  "Rules about the whole first line.",
	"body":    "Rules about the paragraph following the header.",
	"footer":  "Rules about the trailing paragraphs.",
}

// generateLintDocs writes the rule index, one page per rule and the page
// parse errors link to.
func generateLintDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.AllRules()

	if err := generateLintIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		if err := generateRulePage(outDir, rule); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", rule.ID, err)
		}
	}
	log.Printf("  Generated %d rule pages", len(rules))

	if err := generateFormatPage(outDir); err != nil {
		return err
	}
	log.Printf("  Generated format.md")

	return nil
}

// generateLintIndex generates the rules overview page.
func generateLintIndex(outDir string, rules []core.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Rules", "Commit message lint rules for commitguard")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("commitguard ships %d rules. A message that does not follow the commit grammar fails with a [format](/rules/format) error before any rule runs.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode(core.SeverityError.String()), "Fails the check"},
			{InlineCode(core.SeverityWarning.String()), "Reported without failing the check"},
			{InlineCode(core.SeverityOff.String()), "Not evaluated"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are configured in the `rules` table of `commitlint.config.toml`:")
	w.CodeBlock("toml", `[rules]
scope-enum = ["error", "always", ["api", "cli"]]
header-max-length = ["warning", 72]
subject-full-stop = ["off"]`)

	grouped := groupRules(rules)
	for _, group := range groupOrder {
		groupRules := grouped[group]
		if len(groupRules) == 0 {
			continue
		}

		w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(group), group))
		w.Newline()
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, rule := range groupRules {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](/rules/%s)", InlineCode(rule.ID), rule.ID),
				InlineCode(rule.Options),
				InlineCode(rule.Default.String()),
				cleanDescription(rule.Description),
			})
		}
		w.Table([]string{"Rule", "Options", "Default", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateRulePage writes <id>.md, the page a rule's DocURL points at.
func generateRulePage(outDir string, rule core.RuleInfo) error {
	w := NewMarkdownWriter()
	w.Frontmatter(rule.ID, rule.Description)
	w.GeneratedMarker()
	writeRuleDoc(w, rule)
	return os.WriteFile(filepath.Join(outDir, rule.ID+".md"), w.Bytes(), 0600)
}

// generateFormatPage documents the grammar errors reported as rule/format.
func generateFormatPage(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("format", "Commit message grammar errors")
	w.GeneratedMarker()

	w.Header(1, "format")
	w.Paragraph("Reported when the message does not follow the commit grammar. Parse errors always fail the check and cannot be configured.")

	w.Header(2, "Grammar")
	w.CodeBlock("text", `type(scope)!: subject

body

footer`)
	w.Paragraph("The scope, the `!` marker, the body and the footer are optional. Paragraphs are separated by exactly one blank line.")

	w.Header(2, "Errors")
	w.BulletList([]string{
		parser.ErrEmptyMessage,
		parser.ErrMissingType,
		parser.ErrUnclosedScope,
		parser.ErrEmptyScope,
		parser.ErrMissingColon,
		parser.ErrMissingSpace,
		parser.ErrEmptySubject,
		parser.ErrCarriageReturn,
		parser.ErrMissingBlankLine,
		parser.ErrMissingBody,
		parser.ErrExtraBlankLine,
		parser.ErrMissingFooter,
	})

	return os.WriteFile(filepath.Join(outDir, "format.md"), w.Bytes(), 0600)
}

// groupRules organizes rules by their Group field, keeping catalog order.
func groupRules(rules []core.RuleInfo) map[string][]core.RuleInfo {
	grouped := make(map[string][]core.RuleInfo)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	return grouped
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	w.Header(1, rule.ID)

	w.Line(fmt.Sprintf("%s %s | %s %s | %s %s",
		Bold("Group:"), rule.Group,
		Bold("Default:"), InlineCode(rule.Default.String()),
		Bold("Code:"), InlineCode(rule.Code)))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	w.Header(2, "Options")
	w.CodeBlock("toml", fmt.Sprintf("%s = %s", rule.ID, rule.Options))

	if rule.Rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("text", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("text", rule.GoodExample)
	}
}
