// Package parser provides JavaScript and TypeScript parsing for the linter.
//
// # Usage
//
//	lang, ok := parser.LanguageForPath("src/app.ts")
//	if !ok {
//	    // no handler for this extension
//	}
//	tree, err := parser.Parse(ctx, lang, src)
//	if err != nil {
//	    // handle error
//	}
//	defer tree.Close()
//
// Parsing never fails on malformed input: tree-sitter recovers, and the
// recovered ERROR and MISSING nodes are reported as ParseErrors on the Tree.
// Rules may still inspect the partial tree.
package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/core"
)

// Tree is a parsed source file.
// A Tree must be closed once no rule needs its nodes anymore.
type Tree struct {
	Language Language
	Source   []byte
	Lines    *core.LineIndex
	Errors   []*ParseError

	tree     *sitter.Tree
	comments []*sitter.Node
}

// Parse parses src with the grammar for lang.
// A new tree-sitter parser is created per call so Parse is safe for concurrent use.
func Parse(ctx context.Context, lang Language, src []byte) (*Tree, error) {
	grammar := lang.grammar()
	if grammar == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, lang)
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(grammar)

	st, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	t := &Tree{
		Language: lang,
		Source:   src,
		Lines:    core.NewLineIndex(src),
		tree:     st,
	}

	root := st.RootNode()
	t.collect(root, 0)
	return t, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// HasErrors reports whether the parser had to recover from syntax errors.
func (t *Tree) HasErrors() bool {
	return len(t.Errors) > 0
}

// Comments returns every comment node in source order.
func (t *Tree) Comments() []*sitter.Node {
	return t.comments
}

// Text returns the source text covered by n.
func (t *Tree) Text(n *sitter.Node) string {
	return n.Content(t.Source)
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// collect gathers comments and syntax errors in one pass.
func (t *Tree) collect(n *sitter.Node, depth int) {
	if n == nil || depth > maxWalkDepth {
		return
	}

	if n.Type() == "comment" {
		t.comments = append(t.comments, n)
	}

	if (n.IsError() || n.IsMissing()) && len(t.Errors) < maxParseErrors {
		t.Errors = append(t.Errors, newParseError(n, t.Source))
		if n.IsMissing() {
			return
		}
	}

	if !n.HasError() {
		// no syntax errors below; only comments remain of interest
		t.collectComments(n, depth)
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		t.collect(n.Child(i), depth+1)
	}
}

func (t *Tree) collectComments(n *sitter.Node, depth int) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == "comment" {
			t.comments = append(t.comments, child)
			continue
		}
		if depth < maxWalkDepth && child.ChildCount() > 0 {
			t.collectComments(child, depth+1)
		}
	}
}

func newParseError(n *sitter.Node, src []byte) *ParseError {
	r := NodeRange(n)
	if r.End > uint32(len(src)) {
		r.End = uint32(len(src))
	}

	if n.IsMissing() {
		return &ParseError{Range: r, Message: fmt.Sprintf("expected `%s` but instead found nothing", n.Type())}
	}

	text := ""
	if r.Len() > 0 && r.Len() < 100 {
		text = string(src[r.Start:r.End])
	}
	if text == "" {
		return &ParseError{Range: r, Message: "Unexpected syntax"}
	}
	return &ParseError{Range: r, Message: fmt.Sprintf("Unexpected token `%s`", truncate(text, 50))}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
