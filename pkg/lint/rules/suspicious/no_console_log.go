package suspicious

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoConsoleLog)
}

// NoConsoleLog disallows console.log.
var NoConsoleLog = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noConsoleLog",
	Description: "Disallow the use of console.log.",
	Check:       checkNoConsoleLog,
	BadExample:  "console.log()",
	GoodExample: "console.info(\"info\");",
}

func checkNoConsoleLog(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		callee := parser.Unparen(n.ChildByFieldName("function"))
		if callee == nil || callee.Type() != "member_expression" {
			return
		}
		obj := callee.ChildByFieldName("object")
		prop := callee.ChildByFieldName("property")
		if obj == nil || prop == nil || obj.Content(src) != "console" || prop.Content(src) != "log" {
			return
		}

		d := ctx.Diagnostic(n, "Don't use console.log")
		d.Notes = []string{"console.log is usually a tool for debugging and you don't want to have that in production."}
		if stmt := ast.Parent(n); stmt != nil && stmt.Type() == "expression_statement" {
			d.Fixes = []lint.Fix{ctx.Fix("Remove console.log",
				lint.Delete(ast.StatementRange(stmt, src)))}
		}
		diagnostics = append(diagnostics, d)
	}, "call_expression")
	return diagnostics
}
