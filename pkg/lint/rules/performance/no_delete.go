package performance

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoDelete)
}

// NoDelete disallows the use of the delete operator.
var NoDelete = lint.RuleDef{
	Group:       lint.GroupPerformance,
	Name:        "noDelete",
	Description: "Disallow the use of the delete operator.",
	Check:       checkNoDelete,
	BadExample:  "const arr = [1, 2, 3];\ndelete arr[0];",
	GoodExample: "const foo = new Set([1, 2, 3]);\nfoo.delete(1);",
}

func checkNoDelete(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		op := parser.Operator(n)
		if op == nil || op.Content(src) != "delete" {
			return
		}
		arg := parser.Unparen(n.ChildByFieldName("argument"))
		if arg == nil || (arg.Type() != "member_expression" && arg.Type() != "subscript_expression") {
			return
		}
		if arg.ChildByFieldName("optional_chain") != nil || hasOptionalChain(arg) {
			return
		}

		d := ctx.Diagnostic(n, "Avoid the delete operator which can impact performance.")
		d.Fixes = []lint.Fix{ctx.Fix("Use an undefined assignment instead.",
			lint.Replace(n, ctx.Text(arg)+" = undefined"))}
		diagnostics = append(diagnostics, d)
	}, "unary_expression")
	return diagnostics
}

func hasOptionalChain(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "optional_chain" {
			return true
		}
	}
	return false
}
