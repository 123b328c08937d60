package complexity

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoUselessRename)
}

// NoUselessRename disallows renaming import, export, and destructured
// assignments to the same name.
var NoUselessRename = lint.RuleDef{
	Group:       lint.GroupComplexity,
	Name:        "noUselessRename",
	Description: "Disallow renaming import, export, and destructured assignments to the same name.",
	Check:       checkNoUselessRename,
	BadExample:  "import { foo as foo } from \"bar\";",
	GoodExample: "import { foo as bar } from \"baz\";",
}

func checkNoUselessRename(ctx *lint.RuleContext) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		var original, renamed *sitter.Node
		switch n.Type() {
		case "import_specifier", "export_specifier":
			original, renamed = n.ChildByFieldName("name"), n.ChildByFieldName("alias")
		case "pair_pattern":
			original, renamed = n.ChildByFieldName("key"), n.ChildByFieldName("value")
			if renamed != nil && renamed.Type() != "identifier" {
				return
			}
		}
		if original == nil || renamed == nil || ctx.Text(original) != ctx.Text(renamed) {
			return
		}

		d := ctx.Diagnostic(n, "Useless rename.")
		d.Fixes = []lint.Fix{ctx.Fix("Remove the renaming.", lint.Replace(n, ctx.Text(original)))}
		diagnostics = append(diagnostics, d)
	}, "import_specifier", "export_specifier", "pair_pattern")
	return diagnostics
}
