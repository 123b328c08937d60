package style

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoVar)
}

// NoVar disallows the use of var.
var NoVar = lint.RuleDef{
	Group:       lint.GroupStyle,
	Name:        "noVar",
	Description: "Disallow the use of var.",
	Check:       checkNoVar,
	BadExample:  "var foo = 1;",
	GoodExample: "const foo = 1;\nlet bar = 1;",
}

func checkNoVar(ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		// `declare global { var x: T }` has no block-scoped equivalent
		if ast.Ancestor(n, "ambient_declaration") != nil {
			return
		}
		kw := n.Child(0)
		if kw == nil || kw.Type() != "var" {
			return
		}
		d := ctx.Diagnostic(n, "Use let or const instead of var.")
		d.Notes = []string{"A variable declared with var is accessible in the whole body of the function. Thus, the variable can be accessed before its initialization and outside the block where it is declared."}
		d.Fixes = []lint.Fix{ctx.Fix("Use 'let' instead.", lint.Replace(kw, "let"))}
		diagnostics = append(diagnostics, d)
	}, "variable_declaration")
	return diagnostics
}
