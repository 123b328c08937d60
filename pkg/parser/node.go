package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/core"
)

// NodeRange returns the byte range covered by n.
func NodeRange(n *sitter.Node) core.TextRange {
	return core.TextRange{Start: n.StartByte(), End: n.EndByte()}
}

// Walk visits n and its descendants in pre-order.
// Returning false from fn skips the children of the visited node.
func Walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	walk(n, fn, 0)
}

func walk(n *sitter.Node, fn func(*sitter.Node) bool, depth int) {
	if n == nil || depth > maxWalkDepth {
		return
	}
	if !fn(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), fn, depth+1)
	}
}

// WalkType calls fn for every descendant of n (including n) whose type is one of types.
func WalkType(n *sitter.Node, fn func(*sitter.Node), types ...string) {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	Walk(n, func(node *sitter.Node) bool {
		if _, ok := set[node.Type()]; ok {
			fn(node)
		}
		return true
	})
}

// NamedChildren returns the named children of n.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if c := n.NamedChild(i); c != nil && c.Type() != "comment" {
			out = append(out, c)
		}
	}
	return out
}

// Unparen strips any parenthesized_expression wrappers from n.
func Unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" {
		inner := firstNonComment(n)
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}

// Operator returns the operator token of a binary, unary or update expression.
func Operator(n *sitter.Node) *sitter.Node {
	return n.ChildByFieldName("operator")
}

// FirstToken returns the first leaf token under n, skipping comments.
func FirstToken(n *sitter.Node) *sitter.Node {
	for n != nil && n.ChildCount() > 0 {
		var next *sitter.Node
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			if c.Type() != "comment" {
				next = c
				break
			}
		}
		if next == nil {
			return n
		}
		n = next
	}
	return n
}

// IsStatement reports whether n is a statement or declaration node.
func IsStatement(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case "expression_statement", "variable_declaration", "lexical_declaration",
		"function_declaration", "generator_function_declaration", "class_declaration",
		"if_statement", "for_statement", "for_in_statement", "while_statement",
		"do_statement", "return_statement", "throw_statement", "try_statement",
		"switch_statement", "break_statement", "continue_statement", "debugger_statement",
		"labeled_statement", "statement_block", "empty_statement", "with_statement",
		"import_statement", "export_statement", "interface_declaration",
		"type_alias_declaration", "enum_declaration", "abstract_class_declaration",
		"module", "internal_module", "ambient_declaration":
		return true
	default:
		return false
	}
}

func firstNonComment(n *sitter.Node) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "comment" {
			return c
		}
	}
	return nil
}
