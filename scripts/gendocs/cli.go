package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/biome/internal/cli"
	"github.com/leapstack-labs/biome/internal/cli/config"
	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/pkg/lint"
)

// commandDoc is the documented surface of one command.
type commandDoc struct {
	Name        string
	Summary     string
	Description string
	Usage       string
	Aliases     []string
	Flags       []flagDoc
	Global      []flagDoc
	Example     string
}

// flagDoc is one row of a flags table.
type flagDoc struct {
	Name    string
	Short   string
	Kind    string
	Default string
	Usage   string
}

// generateCLIDocs writes an index page and one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": renderCLIIndex(root)}
	for _, cmd := range visibleCommands(root) {
		pages[cmd.Name()+".md"] = renderCommandPage(newCommandDoc(cmd))
	}
	return writePages(outDir, pages)
}

// writePages writes pages into outDir in name order.
func writePages(outDir string, pages map[string][]byte) error {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.IsAvailableCommand() {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func newCommandDoc(cmd *cobra.Command) commandDoc {
	doc := commandDoc{
		Name:        cmd.Name(),
		Summary:     cmd.Short,
		Description: cmd.Long,
		Usage:       cmd.UseLine(),
		Aliases:     cmd.Aliases,
		Flags:       flagDocs(cmd.LocalFlags()),
		Global:      flagDocs(cmd.InheritedFlags()),
		Example:     cleanExample(cmd.Example),
	}
	if doc.Description == "" {
		doc.Description = doc.Summary
	}
	if cmd.HasAvailableSubCommands() {
		doc.Usage = fmt.Sprintf("%s <subcommand> [flags]", cmd.CommandPath())
	}
	return doc
}

// flagDocs lists the visible flags of fs in name order.
func flagDocs(fs *pflag.FlagSet) []flagDoc {
	var docs []flagDoc
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		d := flagDoc{
			Name:  "--" + f.Name,
			Kind:  flagKind(f.Value.Type()),
			Usage: cleanDescription(f.Usage),
		}
		if f.Shorthand != "" {
			d.Short = "-" + f.Shorthand
		}
		switch f.DefValue {
		case "", "[]", "false", "0":
		default:
			d.Default = InlineCode(f.DefValue)
		}
		docs = append(docs, d)
	})
	return docs
}

// flagKind names the value a flag takes.
func flagKind(typ string) string {
	switch typ {
	case "bool":
		return "switch"
	case "stringSlice", "stringArray":
		return "list, repeatable"
	case "int", "int64", "uint":
		return "number"
	default:
		return typ
	}
}

func renderCLIIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for Biome")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("Biome lints JavaScript and TypeScript projects, applies safe and unsafe fixes, and lists its rule catalog.")

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/biome/cmd/biome@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, flagDocs(root.PersistentFlags()))

	w.Header(2, "Environment Variables")
	w.Paragraph("Command-line flags take precedence over environment variables, which take precedence over `biome.json`.")
	rows = nil
	for _, v := range config.EnvVars() {
		rows = append(rows, []string{InlineCode(v.Name), v.Description})
	}
	w.Table([]string{"Variable", "Description"}, rows)

	w.Header(2, "Exit Status")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "No error diagnostics. Warnings do not count unless " + InlineCode("--error-on-warnings") + " is set."},
		{InlineCode("1"), "Error diagnostics were reported, including hidden ones and " + InlineCode(lint.CategoryFilesNoMatch) +
			" unless " + InlineCode("--no-errors-on-unmatched") + " is set. The run ends with " + InlineCode(outcome.ErrLintFailed.Error()) + "."},
		{InlineCode("1"), "The invocation itself was invalid: unknown flags, a bad selector or an invalid configuration."},
	})

	w.Header(2, "Diagnostic Categories")
	w.Paragraph("Besides " + InlineCode("lint/<group>/<rule>") + ", diagnostics may carry these categories:")
	rows = nil
	for _, c := range lint.ReservedCategories() {
		rows = append(rows, []string{InlineCode(c.Name), c.Description})
	}
	w.Table([]string{"Category", "Meaning"}, rows)

	return w.Bytes()
}

func renderCommandPage(doc commandDoc) []byte {
	w := NewMarkdownWriter()

	w.Frontmatter(doc.Name, doc.Summary)
	w.GeneratedMarker()

	w.Header(1, doc.Name)
	w.Paragraph(doc.Description)

	w.Header(2, "Usage")
	w.CodeBlock("bash", doc.Usage)

	if len(doc.Aliases) > 0 {
		w.Header(2, "Aliases")
		aliases := make([]string, len(doc.Aliases))
		for i, a := range doc.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.BulletList(aliases)
	}

	if len(doc.Flags) > 0 {
		w.Header(2, "Options")
		writeFlagsTable(w, doc.Flags)
	}
	if len(doc.Global) > 0 {
		w.Header(2, "Global Options")
		writeFlagsTable(w, doc.Global)
	}

	if doc.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", doc.Example)
	}
	return w.Bytes()
}

func writeFlagsTable(w *MarkdownWriter, flags []flagDoc) {
	rows := make([][]string, len(flags))
	for i, f := range flags {
		rows[i] = []string{InlineCode(f.Name), f.Short, f.Kind, f.Default, f.Usage}
	}
	w.Table([]string{"Option", "Short", "Takes", "Default", "Description"}, rows)
}

// cleanExample removes the common indentation of example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	if indent > 0 {
		for i, line := range lines {
			if len(line) >= indent {
				lines[i] = line[indent:]
			} else {
				lines[i] = strings.TrimLeft(line, " \t")
			}
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
