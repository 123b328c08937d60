package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[lint.Group]string{
	lint.GroupA11y:        "Rules that focus on preventing accessibility problems.",
	lint.GroupComplexity:  "Rules that focus on inspecting complex code that could be simplified.",
	lint.GroupCorrectness: "Rules that detect code that is guaranteed to be incorrect or useless.",
	lint.GroupNursery:     "New rules that are still under development. They only join presets in unstable mode.",
	lint.GroupPerformance: "Rules catching ways your code could be written to run faster.",
	lint.GroupSecurity:    "Rules that detect potential security flaws.",
	lint.GroupStyle:       "Rules enforcing a consistent and idiomatic way of writing your code.",
	lint.GroupSuspicious:  "Rules that detect code that is likely to be incorrect or useless.",
}

// generateLintDocs writes the linting overview and one page per group.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	pages := map[string][]byte{"index.md": renderLintIndex()}
	for _, g := range lint.Groups() {
		pages[string(g)+".md"] = renderGroupPage(g)
	}
	return writePages(outDir, pages)
}

// renderLintIndex renders the linting overview page.
func renderLintIndex() []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("Linting", "Lint rules for JavaScript and TypeScript")
	w.GeneratedMarker()

	w.Header(1, "Linting")
	w.Paragraph(fmt.Sprintf("Biome's catalog holds **%d rules** in %d groups; %d of them are implemented.",
		lint.RuleCount(), len(lint.Groups()), len(lint.ImplementedRules())))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Level", "Description"},
		[][]string{
			{InlineCode("error"), "Fails the run. Default for recommended rules."},
			{InlineCode("warn"), "Reported, fails only with " + InlineCode("--error-on-warnings") + ". Default for other rules."},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("off"), "Rule disabled"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules are configured in `biome.json`:")
	w.CodeBlock("json", `{
  "linter": {
    "rules": {
      "recommended": true,
      "suspicious": {
        "noDebugger": "warn"
      },
      "style": {
        "useNamingConvention": {
          "level": "error",
          "options": { "strictCase": false }
        }
      }
    }
  }
}`)

	w.Header(2, "Groups")
	var rows [][]string
	for _, g := range lint.Groups() {
		link := fmt.Sprintf("[%s](/linting/%s)", capitalizeFirst(string(g)), g)
		rows = append(rows, []string{link, fmt.Sprint(len(lint.RulesIn(g))), groupDescriptions[g]})
	}
	w.Table([]string{"Group", "Rules", "Description"}, rows)

	return w.Bytes()
}

// renderGroupPage renders the documentation page of one group.
func renderGroupPage(g lint.Group) []byte {
	w := NewMarkdownWriter()
	title := capitalizeFirst(string(g)) + " Rules"

	w.Frontmatter(title, groupDescriptions[g])
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[g]; ok {
		w.Paragraph(desc)
	}

	for _, id := range lint.RulesIn(g) {
		writeRuleDoc(w, id)
	}

	return w.Bytes()
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, id lint.RuleID) {
	meta := lint.Metadata(id)

	// Rule header with anchor: ### noDebugger {#noDebugger}
	w.Line(fmt.Sprintf("### %s {#%s}", meta.Name, meta.Name))
	w.Newline()

	badges := []string{
		fmt.Sprintf("**Category:** %s", InlineCode(meta.Category())),
		fmt.Sprintf("**Default:** %s", InlineCode(meta.DefaultSeverity().String())),
	}
	if meta.Recommended {
		badges = append(badges, "**Recommended**")
	}
	if meta.FixKind != lint.FixNone {
		badges = append(badges, fmt.Sprintf("**Fix:** %s", meta.FixKind))
	}
	if meta.Deprecated {
		badges = append(badges, "**Deprecated**")
	}
	w.Paragraph(strings.Join(badges, " · "))

	rule, ok := lint.GetRule(id)
	if !ok {
		w.Paragraph("_This rule can be configured but is not implemented yet._")
		w.Line("---")
		w.Newline()
		return
	}

	w.Paragraph(cleanDescription(rule.Description))

	if rule.BadExample != "" {
		w.Header(4, "Invalid")
		w.CodeBlock("js", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(4, "Valid")
		w.CodeBlock("js", rule.GoodExample)
	}

	if len(rule.ConfigKeys) > 0 {
		w.Header(4, "Options")
		w.Paragraph(fmt.Sprintf("This rule accepts the following options: %s",
			InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}

	// Horizontal rule between rules for readability
	w.Line("---")
	w.Newline()
}
