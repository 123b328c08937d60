package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/biome/internal/cli/output"
	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Recommended bool   // Only recommended rules
	Format      string // Output format: text, json
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [group | group/rule]",
		Short: "List the lint rules of the catalog",
		Long: `List the rules of the lint catalog with their group, default
recommendation and fix kind.

Pass a group name to list one group, or "group/rule" to show a single rule.
Rules marked as not implemented can be configured but never report.`,
		Example: `  # List all rules
  biome rules

  # List the rules of the suspicious group
  biome rules suspicious

  # Show a single rule
  biome rules style/noVar

  # Output as JSON
  biome rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && opts.Format != string(output.ModeText) && opts.Format != string(output.ModeJSON) {
				return fmt.Errorf("invalid value %q for --format: expected text or json", opts.Format)
			}
			ids, err := selectRules(args, opts)
			if err != nil {
				return err
			}
			cmdCtx := NewCommandContext(cmd, output.Mode(opts.Format))
			if cmdCtx.Renderer.EffectiveMode() == output.ModeJSON {
				return listRulesJSON(cmdCtx.Renderer, ids)
			}
			listRulesText(cmdCtx.Renderer, ids)
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return completeSelectors(nil, nil, toComplete)
		},
	}

	cmd.Flags().BoolVar(&opts.Recommended, "recommended", false, "Only list recommended rules")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func selectRules(args []string, opts *RulesOptions) ([]lint.RuleID, error) {
	var ids []lint.RuleID
	if len(args) == 0 {
		for _, g := range lint.Groups() {
			ids = append(ids, lint.RulesIn(g)...)
		}
	} else {
		sel, err := lint.ParseSelector(args[0])
		if err != nil {
			return nil, err
		}
		if sel.IsRule {
			ids = []lint.RuleID{sel.Rule}
		} else {
			ids = lint.RulesIn(sel.Group)
		}
	}

	if !opts.Recommended {
		return ids, nil
	}
	filtered := ids[:0]
	for _, id := range ids {
		if lint.Metadata(id).Recommended {
			filtered = append(filtered, id)
		}
	}
	return filtered, nil
}

// listRulesText renders the rules as a table.
func listRulesText(r *output.Renderer, ids []lint.RuleID) {
	styles := r.Styles()

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Recommended", "Fix", "Languages", "Status"})
	for _, id := range ids {
		m := lint.Metadata(id)
		t.AppendRow(table.Row{id.String(), yesNo(m.Recommended), m.FixKind.String(), languages(m.Languages), status(id, m)})
	}
	t.Render()

	r.Println(styles.Muted.Render(fmt.Sprintf("%d rules. Configure them under linter.rules in biome.json.", len(ids))))
}

// RuleJSON is the JSON form of a catalog entry.
type RuleJSON struct {
	Group       string   `json:"group"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Recommended bool     `json:"recommended"`
	Unstable    bool     `json:"unstable,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	FixKind     string   `json:"fixKind"`
	Languages   []string `json:"languages"`
	Implemented bool     `json:"implemented"`
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []RuleJSON `json:"rules"`
	Count int        `json:"count"`
}

func listRulesJSON(r *output.Renderer, ids []lint.RuleID) error {
	out := RulesJSONOutput{Rules: make([]RuleJSON, 0, len(ids)), Count: len(ids)}
	for _, id := range ids {
		m := lint.Metadata(id)
		out.Rules = append(out.Rules, RuleJSON{
			Group:       string(m.Group),
			Name:        m.Name,
			Category:    m.Category(),
			Recommended: m.Recommended,
			Unstable:    m.Unstable,
			Deprecated:  m.Deprecated,
			FixKind:     m.FixKind.String(),
			Languages:   languageNames(m.Languages),
			Implemented: lint.IsImplemented(id),
		})
	}
	return r.JSON(out)
}

var allLanguages = []parser.Language{parser.LanguageJavaScript, parser.LanguageTypeScript, parser.LanguageTSX}

func languageNames(set lint.LanguageSet) []string {
	names := []string{}
	for _, lang := range allLanguages {
		if set.Has(lang) {
			names = append(names, lang.String())
		}
	}
	return names
}

func languages(set lint.LanguageSet) string {
	names := languageNames(set)
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func status(id lint.RuleID, m lint.RuleMetadata) string {
	switch {
	case m.Deprecated:
		return "deprecated"
	case !lint.IsImplemented(id):
		return "not implemented"
	case m.Unstable:
		return "unstable"
	default:
		return "stable"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
