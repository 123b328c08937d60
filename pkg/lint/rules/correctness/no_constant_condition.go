package correctness

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoConstantCondition)
}

// NoConstantCondition disallows constant expressions in conditions.
var NoConstantCondition = lint.RuleDef{
	Group:       lint.GroupCorrectness,
	Name:        "noConstantCondition",
	Description: "Disallow constant expressions in conditions.",
	Check:       checkNoConstantCondition,
	BadExample:  "if (false) {\n  doSomethingUnfinished();\n}",
	GoodExample: "if (x === 0) {\n  doSomething();\n}",
}

func checkNoConstantCondition(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		test := condition(n)
		if test == nil || !ast.IsConstant(test, src) {
			return
		}
		if isInfiniteGeneratorLoop(n, test) {
			return
		}
		d := ctx.Diagnostic(test, "Unexpected constant condition.")
		diagnostics = append(diagnostics, d)
	}, "if_statement", "while_statement", "do_statement", "for_statement", "ternary_expression")
	return diagnostics
}

// condition returns the test expression of a conditional node.
func condition(n *sitter.Node) *sitter.Node {
	c := n.ChildByFieldName("condition")
	if c == nil {
		return nil
	}
	switch c.Type() {
	case "empty_statement":
		return nil
	case "expression_statement":
		for i := 0; i < int(c.NamedChildCount()); i++ {
			if e := c.NamedChild(i); e.Type() != "comment" {
				return parser.Unparen(e)
			}
		}
		return nil
	}
	return parser.Unparen(c)
}

// isInfiniteGeneratorLoop allows `while (true)` loops that yield inside a generator.
func isInfiniteGeneratorLoop(loop, test *sitter.Node) bool {
	if loop.Type() == "if_statement" || loop.Type() == "ternary_expression" {
		return false
	}
	if v, ok := ast.BooleanLiteral(test); !ok || !v {
		return false
	}
	fn := ast.Ancestor(loop, "generator_function_declaration", "generator_function", "function_declaration",
		"function_expression", "function", "arrow_function", "method_definition")
	if fn == nil {
		return false
	}
	switch fn.Type() {
	case "generator_function_declaration", "generator_function":
	case "method_definition":
		if !hasStar(fn) {
			return false
		}
	default:
		return false
	}

	found := false
	parser.Walk(loop.ChildByFieldName("body"), func(c *sitter.Node) bool {
		switch c.Type() {
		case "yield_expression":
			found = true
		case "function_declaration", "function_expression", "function", "arrow_function",
			"generator_function_declaration", "generator_function", "method_definition":
			return false
		}
		return !found
	})
	return found
}

func hasStar(n *sitter.Node) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == "*" {
			return true
		}
	}
	return false
}
