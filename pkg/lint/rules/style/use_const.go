package style

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(UseConst)
}

// UseConst requires const declarations for variables that are never
// reassigned after declared.
var UseConst = lint.RuleDef{
	Group:       lint.GroupStyle,
	Name:        "useConst",
	Description: "Require const declarations for variables that are never reassigned after declared.",
	Check:       checkUseConst,
	BadExample:  "let a = 3;\nconsole.log(a);",
	GoodExample: "let a = 2;\na = 3;\nconsole.log(a);",
}

func checkUseConst(ctx *lint.RuleContext) []lint.Diagnostic {
	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		kw := n.ChildByFieldName("kind")
		if kw == nil {
			kw = n.Child(0)
		}
		if kw == nil || kw.Content(src) != "let" {
			return
		}

		scope := ast.Scope(n)
		var names []string
		for _, decl := range parser.NamedChildren(n) {
			if decl.Type() != "variable_declarator" {
				continue
			}
			name := decl.ChildByFieldName("name")
			if name == nil || name.Type() != "identifier" || decl.ChildByFieldName("value") == nil {
				return
			}
			if isReassigned(scope, src, name.Content(src)) {
				return
			}
			names = append(names, name.Content(src))
		}
		if len(names) == 0 {
			return
		}

		d := ctx.Diagnostic(kw, "This 'let' declares a variable that is only assigned once.")
		for _, name := range names {
			d.Notes = append(d.Notes, "'"+name+"' is never reassigned.")
		}
		d.Fixes = []lint.Fix{ctx.Fix("Use 'const' instead.", lint.Replace(kw, "const"))}
		diagnostics = append(diagnostics, d)
	}, "lexical_declaration")
	return diagnostics
}

func isReassigned(scope *sitter.Node, src []byte, name string) bool {
	for _, id := range ast.Identifiers(scope, src, name) {
		if ast.IsWriteTarget(id) {
			return true
		}
	}
	return false
}
