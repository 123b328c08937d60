package suspicious

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoDuplicateCase)
}

// NoDuplicateCase disallows duplicate case labels.
var NoDuplicateCase = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noDuplicateCase",
	Description: "Disallow duplicate case labels.",
	Check:       checkNoDuplicateCase,
	BadExample:  "switch (a) {\n  case 1:\n    break;\n  case 1:\n    break;\n}",
	GoodExample: "switch (a) {\n  case 1:\n    break;\n  case 2:\n    break;\n}",
}

func checkNoDuplicateCase(ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		body := n.ChildByFieldName("body")
		if body == nil {
			return
		}
		seen := make(map[string]*sitter.Node)
		for _, c := range parser.NamedChildren(body) {
			if c.Type() != "switch_case" {
				continue
			}
			value := c.ChildByFieldName("value")
			if value == nil {
				continue
			}
			key := normalize(ctx.Text(value))
			first, dup := seen[key]
			if !dup {
				seen[key] = value
				continue
			}
			d := ctx.Diagnostic(value, "Duplicate case label.")
			d.Related = []lint.RelatedInfo{{
				Range:   parser.NodeRange(first),
				Message: "The first similar label is here:",
			}}
			diagnostics = append(diagnostics, d)
		}
	}, "switch_statement")
	return diagnostics
}

// normalize drops whitespace so that labels differing only in layout compare equal.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), "")
}
