package suspicious

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/internal/ast"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(NoDoubleEquals)
}

// NoDoubleEquals requires the use of === and !==.
//
// Configuration options:
//   - ignoreNull: allow == and != when one side is null (default true)
var NoDoubleEquals = lint.RuleDef{
	Group:       lint.GroupSuspicious,
	Name:        "noDoubleEquals",
	Description: "Require the use of === and !==.",
	Check:       checkNoDoubleEquals,
	ConfigKeys:  []string{"ignoreNull"},
	BadExample:  "foo == bar",
	GoodExample: "foo === bar",

	ValidateOptions: lint.OptionsValidator[doubleEqualsOptions](nil),
}

type doubleEqualsOptions struct {
	IgnoreNull bool `mapstructure:"ignoreNull"`
}

func checkNoDoubleEquals(ctx *lint.RuleContext) []lint.Diagnostic {
	opts := doubleEqualsOptions{IgnoreNull: true}
	if err := lint.DecodeOptions(ctx.Options, &opts); err != nil {
		return nil
	}

	src := ctx.Source()
	var diagnostics []lint.Diagnostic
	parser.WalkType(ctx.Tree.Root(), func(n *sitter.Node) {
		op := ast.BinaryOperator(n, src)
		if op != "==" && op != "!=" {
			return
		}
		left, right := ast.Operands(n)
		if opts.IgnoreNull && (ast.IsNull(left) || ast.IsNull(right)) {
			return
		}

		strict := op + "="
		d := ctx.Diagnostic(parser.Operator(n), "Use "+strict+" instead of "+op+".")
		if opts.IgnoreNull {
			d.Notes = []string{op + " is only allowed when comparing against null."}
		}
		d.Notes = append(d.Notes, "Using "+strict+" may be unsafe if you are relying on type coercion.")
		d.Fixes = []lint.Fix{ctx.Fix("Use "+strict, lint.Replace(parser.Operator(n), strict))}
		diagnostics = append(diagnostics, d)
	}, "binary_expression")
	return diagnostics
}
