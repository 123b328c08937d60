package style

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

func init() {
	lint.Register(UseNamingConvention)
}

// UseNamingConvention enforces naming conventions for everything across a codebase.
//
// Configuration options:
//   - strictCase: forbid consecutive uppercase letters in camelCase and PascalCase (default true)
//   - enumMemberCase: case of TypeScript enum members, one of PascalCase, CONSTANT_CASE or camelCase
var UseNamingConvention = lint.RuleDef{
	Group:       lint.GroupStyle,
	Name:        "useNamingConvention",
	Description: "Enforce naming conventions for everything across a codebase.",
	Check:       checkUseNamingConvention,
	ConfigKeys:  []string{"strictCase", "enumMemberCase"},
	BadExample:  "let a_value = 0;",
	GoodExample: "let aValue = 0;",

	ValidateOptions: lint.OptionsValidator(func(o namingOptions) error {
		if o.EnumMemberCase == "" {
			return nil
		}
		if _, ok := parseNameCase(o.EnumMemberCase); !ok {
			return fmt.Errorf("invalid rule options: unknown enumMemberCase %q, expected PascalCase, CONSTANT_CASE or camelCase", o.EnumMemberCase)
		}
		return nil
	}),
}

type namingOptions struct {
	StrictCase     bool   `mapstructure:"strictCase"`
	EnumMemberCase string `mapstructure:"enumMemberCase"`
}

// namedElement is a kind of declaration together with its accepted cases.
type namedElement struct {
	kind  string
	cases []nameCase
}

var (
	elemVariable       = namedElement{"local variable", []nameCase{caseCamel}}
	elemTopLevelConst  = namedElement{"top-level const", []nameCase{caseCamel, casePascal, caseConstant}}
	elemTopLevelVar    = namedElement{"top-level var", []nameCase{caseCamel, casePascal, caseConstant}}
	elemTopLevelLet    = namedElement{"top-level let", []nameCase{caseCamel}}
	elemParameter      = namedElement{"function parameter", []nameCase{caseCamel}}
	elemCatchParameter = namedElement{"catch parameter", []nameCase{caseCamel}}
	elemFunction       = namedElement{"function", []nameCase{caseCamel, casePascal}}
	elemClass          = namedElement{"class", []nameCase{casePascal}}
	elemClassMember    = namedElement{"class member", []nameCase{caseCamel}}
	elemStaticMember   = namedElement{"static class member", []nameCase{caseCamel, caseConstant}}
	elemObjectMember   = namedElement{"object property", []nameCase{caseCamel}}
	elemEnum           = namedElement{"enum", []nameCase{casePascal}}
	elemInterface      = namedElement{"interface", []nameCase{casePascal}}
	elemTypeAlias      = namedElement{"type alias", []nameCase{casePascal}}
	elemTypeParameter  = namedElement{"type parameter", []nameCase{casePascal}}
	elemNamespace      = namedElement{"namespace", []nameCase{caseCamel, casePascal}}
	elemImportNS       = namedElement{"import namespace", []nameCase{caseCamel, casePascal}}
	elemImportAlias    = namedElement{"import alias", []nameCase{caseCamel, casePascal, caseConstant}}
	elemExportAlias    = namedElement{"export alias", []nameCase{caseCamel, casePascal, caseConstant}}
)

type namingChecker struct {
	ctx        *lint.RuleContext
	src        []byte
	strict     bool
	enumMember namedElement
	out        []lint.Diagnostic
}

func checkUseNamingConvention(ctx *lint.RuleContext) []lint.Diagnostic {
	opts := namingOptions{StrictCase: true}
	if err := lint.DecodeOptions(ctx.Options, &opts); err != nil {
		return nil
	}
	enumCase := casePascal
	if opts.EnumMemberCase != "" {
		c, ok := parseNameCase(opts.EnumMemberCase)
		if !ok {
			return nil
		}
		enumCase = c
	}

	c := &namingChecker{
		ctx:        ctx,
		src:        ctx.Source(),
		strict:     opts.StrictCase,
		enumMember: namedElement{"enum member", []nameCase{enumCase}},
	}
	parser.Walk(ctx.Tree.Root(), func(n *sitter.Node) bool {
		c.visit(n)
		return true
	})
	return c.out
}

func (c *namingChecker) visit(n *sitter.Node) {
	switch n.Type() {
	case "variable_declarator":
		c.check(n.ChildByFieldName("name"), c.variableElement(n))
	case "function_declaration", "generator_function_declaration":
		c.check(n.ChildByFieldName("name"), elemFunction)
	case "class_declaration", "abstract_class_declaration":
		c.check(n.ChildByFieldName("name"), elemClass)
	case "formal_parameters":
		for _, p := range parser.NamedChildren(n) {
			c.check(parameterName(p), elemParameter)
		}
	case "catch_clause":
		c.check(n.ChildByFieldName("parameter"), elemCatchParameter)
	case "field_definition", "public_field_definition", "method_definition":
		c.member(n)
	case "pair":
		if p := n.Parent(); p != nil && p.Type() == "object" {
			c.check(n.ChildByFieldName("key"), elemObjectMember)
		}
	case "enum_declaration":
		c.check(n.ChildByFieldName("name"), elemEnum)
		if body := n.ChildByFieldName("body"); body != nil {
			for _, m := range parser.NamedChildren(body) {
				if m.Type() == "enum_assignment" {
					m = m.ChildByFieldName("name")
				}
				c.check(m, c.enumMember)
			}
		}
	case "interface_declaration":
		c.check(n.ChildByFieldName("name"), elemInterface)
	case "type_alias_declaration":
		c.check(n.ChildByFieldName("name"), elemTypeAlias)
	case "type_parameter":
		c.check(n.ChildByFieldName("name"), elemTypeParameter)
	case "internal_module", "module":
		c.check(n.ChildByFieldName("name"), elemNamespace)
	case "namespace_import":
		for _, id := range parser.NamedChildren(n) {
			c.check(id, elemImportNS)
		}
	case "import_specifier":
		c.check(n.ChildByFieldName("alias"), elemImportAlias)
	case "export_specifier":
		c.check(n.ChildByFieldName("alias"), elemExportAlias)
	}
}

func (c *namingChecker) variableElement(declarator *sitter.Node) namedElement {
	decl := declarator.Parent()
	if decl == nil || !isTopLevel(decl) {
		return elemVariable
	}
	if decl.Type() == "variable_declaration" {
		return elemTopLevelVar
	}
	kw := decl.ChildByFieldName("kind")
	if kw != nil && kw.Content(c.src) == "let" {
		return elemTopLevelLet
	}
	return elemTopLevelConst
}

// isTopLevel reports whether a declaration sits at module level or directly
// in a TypeScript namespace.
func isTopLevel(decl *sitter.Node) bool {
	p := decl.Parent()
	if p != nil && p.Type() == "export_statement" {
		p = p.Parent()
	}
	if p == nil {
		return false
	}
	switch p.Type() {
	case "program":
		return true
	case "statement_block":
		gp := p.Parent()
		return gp != nil && (gp.Type() == "internal_module" || gp.Type() == "module")
	}
	return false
}

func (c *namingChecker) member(n *sitter.Node) {
	name := n.ChildByFieldName("name")
	if name == nil {
		name = n.ChildByFieldName("property")
	}
	p := n.Parent()
	if p == nil {
		return
	}
	if p.Type() == "object" {
		c.check(name, elemObjectMember)
		return
	}
	if p.Type() != "class_body" {
		return
	}
	if hasToken(n, "static") {
		c.check(name, elemStaticMember)
		return
	}
	c.check(name, elemClassMember)
}

func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() == token {
			return true
		}
	}
	return false
}

// parameterName returns the identifier bound by a formal parameter, if any.
func parameterName(p *sitter.Node) *sitter.Node {
	switch p.Type() {
	case "identifier":
		return p
	case "assignment_pattern":
		return parameterName(p.ChildByFieldName("left"))
	case "required_parameter", "optional_parameter":
		// constructor(private readonly x) declares a property, not a parameter
		if hasChild(p, "accessibility_modifier") || hasToken(p, "readonly") {
			return nil
		}
		if pat := p.ChildByFieldName("pattern"); pat != nil {
			return parameterName(pat)
		}
	}
	return nil
}

func hasChild(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == typ {
			return true
		}
	}
	return false
}

func (c *namingChecker) check(id *sitter.Node, elem namedElement) {
	if id == nil {
		return
	}
	switch id.Type() {
	case "identifier", "type_identifier", "property_identifier", "private_property_identifier":
	default:
		return
	}
	name := strings.TrimPrefix(id.Content(c.src), "#")
	trimmed := trimAffixes(name)
	if trimmed == "" {
		return
	}

	actual := identifyCase(trimmed, c.strict)
	for _, want := range elem.cases {
		if actual.compatible(want, trimmed) {
			return
		}
	}

	if c.strict && identifyCase(trimmed, false) != caseUnknown && actual == caseUnknown {
		d := c.ctx.Diagnostic(id, "Two consecutive uppercase characters are not allowed in camelCase and PascalCase because `strictCase` is set to `true`.")
		d.Notes = []string{"If you want to use consecutive uppercase characters in camelCase and PascalCase then consider setting `strictCase` option to `false`."}
		c.out = append(c.out, d)
		return
	}

	names := make([]string, len(elem.cases))
	for i, cs := range elem.cases {
		names[i] = cs.String()
	}
	trimInfo := ""
	if trimmed != name {
		trimInfo = fmt.Sprintf(" trimmed as `%s`", trimmed)
	}
	suggested := strings.Replace(name, trimmed, convertCase(trimmed, elem.cases[0]), 1)

	d := c.ctx.Diagnostic(id, fmt.Sprintf("This %s name%s should be in %s.", elem.kind, trimInfo, strings.Join(names, " or ")))
	d.Notes = []string{fmt.Sprintf("The name could be renamed to `%s`.", suggested)}
	c.out = append(c.out, d)
}
