package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zauni/commitguard/pkg/lint"
)

const configHeader = `# commitguard configuration
#
# Each rule maps to [severity, ...options]. Severity is off, warning or
# error (or 0, 1, 2). Run "commitguard rules <rule-id>" for the options
# a rule accepts.
`

// InitOptions holds options for the init command.
type InitOptions struct {
	Format string // toml or yaml
	Force  bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default commitlint config",
		Long: `Write a commitlint.config.toml (or .yaml) containing the built-in
default rules, ready to be edited.`,
		Example: `  # Initialize in current directory
  commitguard init

  # Write YAML instead of TOML
  commitguard init --format yaml

  # Overwrite an existing config
  commitguard init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "toml", "Config format: toml, yaml")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts *InitOptions) error {
	cmdCtx := NewCommandContext(cmd, "")
	r := cmdCtx.Renderer

	var (
		name    string
		content []byte
		err     error
	)
	switch opts.Format {
	case "toml", "":
		name = "commitlint.config.toml"
		content, err = encodeTOML(lint.DefaultTable())
	case "yaml", "yml":
		name = "commitlint.config.yaml"
		content, err = encodeYAML(lint.DefaultTable())
	default:
		return fmt.Errorf("unsupported config format %q: expected toml or yaml", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmdCtx.Logger.Debug("config written", "path", path, "format", opts.Format)

	r.StatusLine(path, "success", "")
	r.Println("")
	r.Success("commitguard config initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit the rules table to match your conventions")
	r.Println("  2. Run 'commitguard rules' to see every available rule")
	r.Println(`  3. Add 'commitguard lint "$1"' to .git/hooks/commit-msg`)

	return nil
}

func encodeTOML(table map[string][]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")
	if err := toml.NewEncoder(&buf).Encode(map[string]any{"rules": table}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeYAML writes rules in catalog order with each tuple on one line.
func encodeYAML(table map[string][]any) ([]byte, error) {
	rules := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range lint.Kinds() {
		tuple, ok := table[k.ID()]
		if !ok {
			continue
		}
		var value yaml.Node
		if err := value.Encode(tuple); err != nil {
			return nil, err
		}
		value.Style = yaml.FlowStyle
		rules.Content = append(rules.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k.ID()},
			&value,
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "rules"},
		rules,
	}}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
