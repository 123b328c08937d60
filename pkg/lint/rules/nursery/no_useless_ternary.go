package nursery

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoUselessTernary)
}

// NoUselessTernary disallows ternary operators when simpler alternatives exist.
var NoUselessTernary = lint.RuleDef{
	Group:       lint.GroupNursery,
	Name:        "noUselessTernary",
	Description: "Disallow ternary operators when simpler alternatives exist.",
	Check:       checkNoUselessTernary,
	BadExample:  "var a = x ? true : true;",
	GoodExample: "var a = x ? 'a' : 'b';",
}

func checkNoUselessTernary(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		cons, okCons := ast.BooleanLiteral(n.ChildByFieldName("consequence"))
		alt, okAlt := ast.BooleanLiteral(n.ChildByFieldName("alternative"))
		test := parser.Unparen(n.ChildByFieldName("condition"))
		if !okCons || !okAlt || test == nil {
			return
		}

		var replacement string
		switch {
		case cons == alt && cons:
			replacement = "true"
		case cons == alt:
			replacement = "false"
		case cons && isBooleanExpression(test, src):
			replacement = ctx.Text(test)
		case cons:
			replacement = "!!" + ast.Wrap(test, src)
		default:
			replacement = "!" + ast.Wrap(test, src)
		}

		d := ctx.Diagnostic(n, "Unnecessary use of boolean literals in conditional expression.")
		d.Notes = []string{"Simplify your code by directly assigning the result without using a ternary operator."}
		d.Fixes = []lint.Fix{ctx.Fix("Remove the conditional expression with", lint.Replace(n, replacement))}
		diagnostics = append(diagnostics, d)
	}, "ternary_expression")
	return diagnostics
}

// isBooleanExpression reports whether n always evaluates to a boolean.
func isBooleanExpression(n *sitter.Node, src []byte) bool {
	if _, ok := ast.BooleanLiteral(n); ok {
		return true
	}
	switch n.Type() {
	case "unary_expression":
		op := parser.Operator(n)
		return op != nil && op.Content(src) == "!"
	case "binary_expression":
		op := ast.BinaryOperator(n, src)
		return ast.IsComparison(op) || op == "in" || op == "instanceof"
	}
	return false
}
