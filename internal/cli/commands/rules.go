package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/zauni/commitguard/internal/cli/output"
	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by the commit part they check (type, scope, subject,
header, body, footer). The "Configured" column shows the severity the rule
runs with under the current configuration.`,
		Example: `  # List all rules
  commitguard rules

  # Show details for a specific rule
  commitguard rules scope-enum

  # List rules checking the subject
  commitguard rules --group subject

  # Output as JSON
  commitguard rules --format json`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, k := range lint.Kinds() {
				ids = append(ids, k.ID())
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVar(&opts.Verbose, "rationale", false, "Show rationale for each rule")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// configuredSeverities maps rule IDs to the severity they run with under the
// current config. Rules absent from the table are off.
func configuredSeverities(cmdCtx *CommandContext) map[string]core.Severity {
	out := make(map[string]core.Severity)
	for _, k := range lint.Kinds() {
		out[k.ID()] = core.SeverityOff
	}
	runner, err := cmdCtx.Cfg.BuildRunner()
	if err != nil {
		cmdCtx.Logger.Warn("ignoring invalid rules configuration", "error", err)
		return out
	}
	for _, rule := range runner.Rules() {
		out[rule.ID()] = rule.Options.Severity
	}
	return out
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	rules := lint.AllRules()
	if opts.Group != "" {
		rules = lint.GetByGroup(opts.Group)
		if len(rules) == 0 {
			return fmt.Errorf("no rules in group %q", opts.Group)
		}
	}
	configured := configuredSeverities(cmdCtx)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: rules, Count: len(rules), Configured: severityNames(configured)})
	case output.ModeMarkdown:
		r.Println("# Lint Rules")
		r.Println("")
		r.Println(rulesTable(rules, configured, opts.Verbose).RenderMarkdown())
		return nil
	default:
		t := rulesTable(rules, configured, opts.Verbose)
		t.SetStyle(table.StyleLight)
		r.Println("")
		r.Println(r.Styles().Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
		r.Println("")
		r.Println(t.Render())
		r.Println("")
		r.Println(r.Styles().Muted.Render("Use 'commitguard rules <rule-id>' for detailed documentation"))
		return nil
	}
}

func rulesTable(rules []core.RuleInfo, configured map[string]core.Severity, verbose bool) table.Writer {
	t := table.NewWriter()
	header := table.Row{"Rule", "Group", "Options", "Default", "Configured", "Description"}
	if verbose {
		header = append(header, "Rationale")
	}
	t.AppendHeader(header)

	for _, rule := range rules {
		row := table.Row{
			rule.ID,
			rule.Group,
			rule.Options,
			rule.Default.String(),
			configured[rule.ID].String(),
			rule.Description,
		}
		if verbose {
			row = append(row, rule.Rationale)
		}
		t.AppendRow(row)
	}
	return t
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules      []core.RuleInfo   `json:"rules"`
	Count      int               `json:"count"`
	Configured map[string]string `json:"configured"`
}

func severityNames(m map[string]core.Severity) map[string]string {
	out := make(map[string]string, len(m))
	for id, sev := range m {
		out[id] = sev.String()
	}
	return out
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	kind, ok := lint.LookupKind(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	rule := lint.GetRuleInfo(kind)
	configured := configuredSeverities(cmdCtx)[rule.ID]

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		showRuleMarkdown(r, rule, configured)
	default:
		showRuleText(r, rule, configured)
	}
	return nil
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule core.RuleInfo, configured core.Severity) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(rule.ID))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Options"), rule.Options)
	r.Printf("  %s: %s\n", styles.Bold.Render("Default"), r.SeverityStyle(rule.Default).Render(rule.Default.String()))
	r.Printf("  %s: %s\n", styles.Bold.Render("Configured"), r.SeverityStyle(configured).Render(configured.String()))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Error.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.DocURL != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), styles.Link.Render(rule.DocURL))
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule core.RuleInfo, configured core.Severity) {
	r.Printf("# %s\n\n", rule.ID)
	r.Printf("**Group:** %s | **Default:** `%s` | **Configured:** `%s`\n\n", rule.Group, rule.Default, configured)
	r.Printf("**Options:** `%s`\n\n", rule.Options)
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.DocURL != "" {
		r.Printf("Docs: <%s>\n", rule.DocURL)
	}
}
