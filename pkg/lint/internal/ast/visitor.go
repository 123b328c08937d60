// Package ast provides syntax tree helpers shared by lint rules.
package ast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// Same reports whether a and b denote the same syntax node.
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// Parent returns the parent of n, skipping parenthesized_expression wrappers.
func Parent(n *sitter.Node) *sitter.Node {
	p := n.Parent()
	for p != nil && p.Type() == "parenthesized_expression" {
		p = p.Parent()
	}
	return p
}

// Ancestor returns the nearest ancestor of n whose type is one of types.
func Ancestor(n *sitter.Node, types ...string) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		for _, t := range types {
			if p.Type() == t {
				return p
			}
		}
	}
	return nil
}

// Scope returns the nearest block-like node enclosing n.
func Scope(n *sitter.Node) *sitter.Node {
	if s := Ancestor(n, "statement_block", "program", "class_body", "switch_body"); s != nil {
		return s
	}
	return n
}

// IsComparison reports whether op is an equality or relational operator.
func IsComparison(op string) bool {
	switch op {
	case "==", "===", "!=", "!==", "<", "<=", ">", ">=":
		return true
	}
	return false
}

// BinaryOperator returns the operator of a binary_expression, or "".
func BinaryOperator(n *sitter.Node, src []byte) string {
	if n == nil || n.Type() != "binary_expression" {
		return ""
	}
	op := parser.Operator(n)
	if op == nil {
		return ""
	}
	return op.Content(src)
}

// Operands returns the unparenthesized operands of a binary_expression.
func Operands(n *sitter.Node) (left, right *sitter.Node) {
	return parser.Unparen(n.ChildByFieldName("left")), parser.Unparen(n.ChildByFieldName("right"))
}

// BooleanLiteral returns the value of a true or false literal.
func BooleanLiteral(n *sitter.Node) (value, ok bool) {
	n = parser.Unparen(n)
	if n == nil {
		return false, false
	}
	switch n.Type() {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// IsStringLiteral reports whether n is a string literal or a template without substitutions.
func IsStringLiteral(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "string":
		return true
	case "template_string":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if n.NamedChild(i).Type() == "template_substitution" {
				return false
			}
		}
		return true
	}
	return false
}

// IsLiteral reports whether n is a primitive literal.
func IsLiteral(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "number", "true", "false", "null", "undefined", "regex":
		return true
	}
	return IsStringLiteral(n)
}

// IsNull reports whether n is the null literal.
func IsNull(n *sitter.Node) bool {
	n = parser.Unparen(n)
	return n != nil && n.Type() == "null"
}

// IsNaN reports whether n is NaN or Number.NaN.
func IsNaN(n *sitter.Node, src []byte) bool {
	n = parser.Unparen(n)
	if n == nil {
		return false
	}
	switch n.Type() {
	case "identifier":
		return n.Content(src) == "NaN"
	case "member_expression":
		obj := n.ChildByFieldName("object")
		prop := n.ChildByFieldName("property")
		return obj != nil && prop != nil && obj.Content(src) == "Number" && prop.Content(src) == "NaN"
	}
	return false
}

// IsConstant reports whether the value of n is known without evaluating
// any variable, in a boolean context.
func IsConstant(n *sitter.Node, src []byte) bool {
	n = parser.Unparen(n)
	if n == nil {
		return false
	}
	if IsLiteral(n) {
		return true
	}
	switch n.Type() {
	case "object", "array", "arrow_function", "function", "function_expression", "class":
		return true
	case "identifier":
		return n.Content(src) == "undefined"
	case "template_string":
		return false
	case "unary_expression":
		op := parser.Operator(n)
		if op == nil {
			return false
		}
		switch op.Content(src) {
		case "void", "typeof":
			return true
		case "!", "-", "+", "~":
			return IsConstant(n.ChildByFieldName("argument"), src)
		}
		return false
	case "binary_expression":
		left, right := Operands(n)
		switch BinaryOperator(n, src) {
		case "||", "&&", "??":
			return IsConstant(left, src) && IsConstant(right, src)
		case "in", "instanceof":
			return false
		}
		return IsConstant(left, src) && IsConstant(right, src)
	case "sequence_expression":
		right := n.ChildByFieldName("right")
		if right == nil {
			right = n.NamedChild(int(n.NamedChildCount()) - 1)
		}
		return IsConstant(right, src)
	case "assignment_expression":
		return IsConstant(n.ChildByFieldName("right"), src)
	}
	return false
}

// IsPrimary reports whether n can be embedded in a larger expression
// without parentheses.
func IsPrimary(n *sitter.Node) bool {
	switch n.Type() {
	case "identifier", "member_expression", "subscript_expression", "call_expression",
		"parenthesized_expression", "this", "array", "object":
		return true
	}
	return IsLiteral(n)
}

// Wrap returns the text of n, parenthesized unless n is primary.
func Wrap(n *sitter.Node, src []byte) string {
	if IsPrimary(n) {
		return n.Content(src)
	}
	return "(" + n.Content(src) + ")"
}

// StatementRange returns the range to delete when removing statement n:
// the statement itself, widened to its whole line when nothing else is on it.
func StatementRange(n *sitter.Node, src []byte) core.TextRange {
	r := parser.NodeRange(n)

	start := int(r.Start)
	for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
		start--
	}
	end := int(r.End)
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	lineStart := start == 0 || src[start-1] == '\n'
	lineEnd := end == len(src) || src[end] == '\n' || src[end] == '\r'
	if !lineStart || !lineEnd {
		return r
	}
	if end < len(src) && src[end] == '\r' {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}
	return core.TextRange{Start: uint32(start), End: uint32(end)}
}

// Identifiers returns every identifier node under n whose text is name.
func Identifiers(n *sitter.Node, src []byte, name string) []*sitter.Node {
	var out []*sitter.Node
	parser.Walk(n, func(c *sitter.Node) bool {
		t := c.Type()
		if (t == "identifier" || t == "shorthand_property_identifier_pattern") && c.Content(src) == name {
			out = append(out, c)
		}
		return true
	})
	return out
}

// IsWriteTarget reports whether identifier id is assigned by its parent.
func IsWriteTarget(id *sitter.Node) bool {
	if id.Type() == "shorthand_property_identifier_pattern" {
		return insidePatternAssignment(id)
	}
	p := id.Parent()
	for p != nil && p.Type() == "parenthesized_expression" {
		id, p = p, p.Parent()
	}
	if p == nil {
		return false
	}
	switch p.Type() {
	case "assignment_expression", "augmented_assignment_expression":
		return Same(p.ChildByFieldName("left"), id)
	case "update_expression":
		return Same(p.ChildByFieldName("argument"), id)
	case "for_in_statement":
		return Same(p.ChildByFieldName("left"), id)
	case "array_pattern", "object_pattern", "pair_pattern", "assignment_pattern", "rest_pattern":
		return insidePatternAssignment(id)
	}
	return false
}

func insidePatternAssignment(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "array_pattern", "object_pattern", "pair_pattern", "assignment_pattern", "rest_pattern":
			continue
		case "assignment_expression", "for_in_statement":
			return true
		}
		return false
	}
	return false
}

// UnquoteString returns the contents of a string literal without its quotes.
func UnquoteString(text string) string {
	if len(text) >= 2 {
		q := text[0]
		if (q == '"' || q == '\'' || q == '`') && text[len(text)-1] == q {
			return text[1 : len(text)-1]
		}
	}
	return text
}

// TemplateEscape rewrites the contents of a quoted string for use inside a
// template literal.
func TemplateEscape(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == quote:
			b.WriteByte(quote)
			i++
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
		case c == '`':
			b.WriteString("\\`")
		case c == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString("\\$")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
