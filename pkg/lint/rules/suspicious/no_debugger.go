package suspicious

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoDebugger)
}

// NoDebugger disallows the use of debugger.
var NoDebugger = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noDebugger",
	Description: "Disallow the use of debugger.",
	Check:       checkNoDebugger,
	BadExample:  "debugger;",
	GoodExample: "const test = { debugger: 1 };\ntest.debugger;",
}

func checkNoDebugger(ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		d := ctx.Diagnostic(n, "This is an unexpected use of the debugger statement.")
		d.Fixes = []lint.Fix{ctx.Fix("Remove debugger statement",
			lint.Delete(ast.StatementRange(n, ctx.Source())))}
		diagnostics = append(diagnostics, d)
	}, "debugger_statement")
	return diagnostics
}
