package lint

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// RuleDef is a data-driven rule implementation.
// Rules are stateless - all context comes via the RuleContext passed to Check.
// Group and Name must match a catalog entry.
type RuleDef struct {
	Group       Group     // Catalog group, e.g. GroupSuspicious
	Name        string    // Catalog name, e.g. "noDebugger"
	Description string    // Human-readable description
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Option keys this rule accepts

	// ValidateOptions checks option values when the configuration is loaded.
	// Keys outside ConfigKeys are rejected before it is called.
	ValidateOptions func(opts map[string]any) error

	// Documentation fields
	BadExample  string
	GoodExample string
}

// CheckFunc analyzes a tree and returns diagnostics.
// The returned diagnostics need only Range, Message, Notes and Fixes;
// the analyzer stamps the category and severity.
type CheckFunc func(ctx *RuleContext) []Diagnostic

// RuleContext is the input of a rule invocation.
type RuleContext struct {
	Tree    *parser.Tree
	Options map[string]any
	Rule    RuleID
}

// Source returns the text of the file being analyzed.
func (c *RuleContext) Source() []byte {
	return c.Tree.Source
}

// Text returns the source text covered by n.
func (c *RuleContext) Text(n *sitter.Node) string {
	return c.Tree.Text(n)
}

// Diagnostic creates a diagnostic spanning n.
func (c *RuleContext) Diagnostic(n *sitter.Node, message string) Diagnostic {
	return Diagnostic{Range: parser.NodeRange(n), Message: message}
}

// Fix creates a fix with the rule's catalog applicability.
func (c *RuleContext) Fix(description string, edits ...TextEdit) Fix {
	app := ApplicabilitySafe
	if Metadata(c.Rule).FixKind == FixUnsafe {
		app = ApplicabilityUnsafe
	}
	return Fix{Applicability: app, Description: description, Edits: edits}
}

// Replace creates an edit replacing the text of n.
func Replace(n *sitter.Node, text string) TextEdit {
	return TextEdit{Range: parser.NodeRange(n), NewText: text}
}

// Delete creates an edit removing a range.
func Delete(r core.TextRange) TextEdit {
	return TextEdit{Range: r}
}
