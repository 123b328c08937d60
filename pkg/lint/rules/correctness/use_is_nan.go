package correctness

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(UseIsNan)
}

// UseIsNan requires calls to isNaN() when checking for NaN.
var UseIsNan = lint.RuleDef{
	Group:       lint.GroupCorrectness,
	Name:        "useIsNan",
	Description: "Require calls to isNaN() when checking for NaN.",
	Check:       checkUseIsNan,
	BadExample:  "if (x == NaN) {}",
	GoodExample: "if (Number.isNaN(x)) {}",
}

func checkUseIsNan(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		switch n.Type() {
		case "binary_expression":
			if !ast.IsComparison(ast.BinaryOperator(n, src)) {
				return
			}
			left, right := ast.Operands(n)
			if ast.IsNaN(left, src) || ast.IsNaN(right, src) {
				diagnostics = append(diagnostics, ctx.Diagnostic(n,
					"Use the Number.isNaN function to compare with NaN."))
			}
		case "switch_statement":
			value := n.ChildByFieldName("value")
			if value != nil && ast.IsNaN(value, src) {
				diagnostics = append(diagnostics, ctx.Diagnostic(value,
					"'switch(NaN)' can never match a case clause. Use Number.isNaN instead of the switch."))
			}
		case "switch_case":
			value := n.ChildByFieldName("value")
			if value != nil && ast.IsNaN(value, src) {
				diagnostics = append(diagnostics, ctx.Diagnostic(value,
					"'case NaN' can never match. Use Number.isNaN before the switch."))
			}
		}
	}, "binary_expression", "switch_statement", "switch_case")
	return diagnostics
}
