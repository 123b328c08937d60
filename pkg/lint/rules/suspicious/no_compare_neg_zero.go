package suspicious

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoCompareNegZero)
}

// NoCompareNegZero disallows comparing against -0.
var NoCompareNegZero = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noCompareNegZero",
	Description: "Disallow comparing against -0.",
	Check:       checkNoCompareNegZero,
	BadExample:  "(1 >= -0)",
	GoodExample: "(1 >= 0)",
}

func checkNoCompareNegZero(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		op := ast.BinaryOperator(n, src)
		if !ast.IsComparison(op) {
			return
		}
		left, right := ast.Operands(n)
		for _, side := range []*sitter.Node{left, right} {
			zero := negZeroOperand(side, src)
			if zero == nil {
				continue
			}
			d := ctx.Diagnostic(n, "Do not use the "+op+" operator to compare against -0.")
			d.Fixes = []lint.Fix{ctx.Fix("Replace -0 with 0", lint.Replace(side, zero.Content(src)))}
			diagnostics = append(diagnostics, d)
			return
		}
	}, "binary_expression")
	return diagnostics
}

// negZeroOperand returns the zero literal of a "-0" expression.
func negZeroOperand(n *sitter.Node, src []byte) *sitter.Node {
	if n == nil || n.Type() != "unary_expression" {
		return nil
	}
	if op := parser.Operator(n); op == nil || op.Content(src) != "-" {
		return nil
	}
	arg := n.ChildByFieldName("argument")
	if arg == nil || arg.Type() != "number" || !isZero(arg.Content(src)) {
		return nil
	}
	return arg
}

func isZero(lit string) bool {
	lit = strings.ToLower(strings.ReplaceAll(lit, "_", ""))
	lit = strings.TrimSuffix(lit, "n")
	for _, prefix := range []string{"0x", "0o", "0b"} {
		if rest, ok := strings.CutPrefix(lit, prefix); ok {
			return strings.Trim(rest, "0") == ""
		}
	}
	mantissa, _, _ := strings.Cut(lit, "e")
	return strings.Trim(mantissa, "0.") == "" && mantissa != ""
}
