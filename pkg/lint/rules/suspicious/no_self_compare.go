package suspicious

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoSelfCompare)
}

// NoSelfCompare disallows comparisons where both sides are exactly the same.
var NoSelfCompare = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noSelfCompare",
	Description: "Disallow comparisons where both sides are exactly the same.",
	Check:       checkNoSelfCompare,
	BadExample:  "if (x === x) {}",
	GoodExample: "if (x === y) {}",
}

func checkNoSelfCompare(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		if !ast.IsComparison(ast.BinaryOperator(n, src)) {
			return
		}
		left, right := ast.Operands(n)
		if left == nil || right == nil || normalize(ctx.Text(left)) != normalize(ctx.Text(right)) {
			return
		}
		d := ctx.Diagnostic(n, "Comparing to itself is potentially pointless.")
		if ast.IsNaN(left, src) {
			d.Notes = []string{"If you are testing for NaN, you can use Number.isNaN() instead."}
		}
		diagnostics = append(diagnostics, d)
	}, "binary_expression")
	return diagnostics
}
