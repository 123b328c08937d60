package style

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(UseTemplate)
}

// UseTemplate prefers template literals over string concatenation.
var UseTemplate = lint.RuleDef{
	Group:       lint.GroupStyle,
	Name:        "useTemplate",
	Description: "Prefer template literals over string concatenation.",
	Check:       checkUseTemplate,
	BadExample:  "const s = foo + \"baz\";",
	GoodExample: "let s = \"foo\" + \"bar\" + `baz`;",
}

func checkUseTemplate(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		if ast.BinaryOperator(n, src) != "+" {
			return
		}
		// only the outermost concatenation is reported
		if p := ast.Parent(n); ast.BinaryOperator(p, src) == "+" {
			return
		}
		if !containsString(n, src) {
			return
		}
		operands := flattenConcat(n, src)
		onlyStrings := true
		for _, op := range operands {
			if op.Type() != "string" && op.Type() != "template_string" {
				onlyStrings = false
				break
			}
		}
		if onlyStrings {
			return
		}

		d := ctx.Diagnostic(n, "Template literals are preferred over string concatenation.")
		if !hasComment(n) {
			d.Fixes = []lint.Fix{ctx.Fix("Use a template literal.", lint.Replace(n, buildTemplate(operands, src)))}
		}
		diagnostics = append(diagnostics, d)
	}, "binary_expression")
	return diagnostics
}

// containsString reports whether a + chain has a string literal operand.
func containsString(n *sitter.Node, src []byte) bool {
	if n.Type() == "string" {
		return true
	}
	if ast.BinaryOperator(n, src) != "+" {
		return false
	}
	left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
	return (left != nil && containsString(left, src)) || (right != nil && right.Type() == "string")
}

// flattenConcat lists the operands of a left-associative + chain. A prefix
// that contains no string is kept whole, since it is an arithmetic sum.
func flattenConcat(n *sitter.Node, src []byte) []*sitter.Node {
	if ast.BinaryOperator(n, src) != "+" || !containsString(n, src) {
		return []*sitter.Node{n}
	}
	ops := flattenConcat(n.ChildByFieldName("left"), src)
	return append(ops, n.ChildByFieldName("right"))
}

func buildTemplate(operands []*sitter.Node, src []byte) string {
	var b strings.Builder
	b.WriteByte('`')
	for _, op := range operands {
		text := op.Content(src)
		switch op.Type() {
		case "string":
			b.WriteString(ast.TemplateEscape(ast.UnquoteString(text), text[0]))
		case "template_string":
			b.WriteString(text[1 : len(text)-1])
		default:
			b.WriteString("${")
			b.WriteString(text)
			b.WriteString("}")
		}
	}
	b.WriteByte('`')
	return b.String()
}

func hasComment(n *sitter.Node) bool {
	found := false
	parser.Walk(n, func(c *sitter.Node) bool {
		if c.Type() == "comment" {
			found = true
		}
		return !found
	})
	return found
}
