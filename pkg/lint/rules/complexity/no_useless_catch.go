package complexity

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoUselessCatch)
}

// NoUselessCatch disallows catch clauses that only rethrow the original error.
var NoUselessCatch = lint.RuleDef{
	Group:       lint.GroupComplexity,
	Name:        "noUselessCatch",
	Description: "Disallow unnecessary catch clauses.",
	Check:       checkNoUselessCatch,
	BadExample:  "try {\n  doSomething();\n} catch (e) {\n  throw e;\n}",
	GoodExample: "try {\n  doSomething();\n} catch (e) {\n  doSomethingWhenCatch();\n  throw e;\n}",
}

func checkNoUselessCatch(ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		param := n.ChildByFieldName("parameter")
		body := n.ChildByFieldName("body")
		if param == nil || body == nil || param.Type() != "identifier" {
			return
		}
		stmts := parser.NamedChildren(body)
		if len(stmts) != 1 || stmts[0].Type() != "throw_statement" {
			return
		}
		thrown := stmts[0].NamedChild(0)
		if thrown == nil || parser.Unparen(thrown).Type() != "identifier" || ctx.Text(parser.Unparen(thrown)) != ctx.Text(param) {
			return
		}

		d := ctx.Diagnostic(stmts[0], "The catch clause that only rethrows the original error is useless.")
		d.Notes = []string{"An unnecessary catch clause can be confusing."}
		diagnostics = append(diagnostics, d)
	}, "catch_clause")
	return diagnostics
}
