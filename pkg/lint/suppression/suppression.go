// Package suppression parses inline suppression comments and filters the
// diagnostics they mask.
//
// Three comment forms are recognized, as line or block comments:
//
//	// biome-ignore lint/suspicious/noDebugger: reason     masks the next construct
//	// biome-ignore-start lint/style: reason              opens a masked range
//	// biome-ignore-end lint/style: reason                closes it
//	// biome-ignore-all lint/suspicious: reason           masks the whole file
//
// A category may name a rule (lint/<group>/<rule>), a group (lint/<group>)
// or every rule (lint). Several categories may precede the colon. Categories
// of other tools, such as format or parse, are accepted and ignored.
package suppression

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// Kind is the form of a suppression comment.
type Kind int

// Suppression kinds.
const (
	KindLine Kind = iota
	KindRangeStart
	KindRangeEnd
	KindTopLevel
)

func (k Kind) directive() string {
	switch k {
	case KindRangeStart:
		return "biome-ignore-start"
	case KindRangeEnd:
		return "biome-ignore-end"
	case KindTopLevel:
		return "biome-ignore-all"
	default:
		return "biome-ignore"
	}
}

// Suppression is one category of one suppression comment.
type Suppression struct {
	Kind Kind
	// Target is the suppressed category as written, e.g. "lint/style/noVar".
	Target string
	// All is set when the target is the bare "lint" category.
	All      bool
	Selector lint.Selector
	// Comment is the range of the comment that declared the suppression.
	Comment core.TextRange
	// Covered is the range whose diagnostics are masked.
	Covered core.TextRange

	used bool
}

// Matches reports whether the suppression masks a diagnostic of rule id at r.
func (s *Suppression) Matches(id lint.RuleID, r core.TextRange) bool {
	if !s.covers(id) {
		return false
	}
	return s.Covered.ContainsOffset(r.Start)
}

func (s *Suppression) covers(id lint.RuleID) bool {
	return s.All || s.Selector.Matches(id)
}

// Set holds the suppressions of one file.
type Set struct {
	suppressions []*Suppression
	diagnostics  []lint.Diagnostic
}

// Suppressions returns the parsed suppressions in source order.
func (s *Set) Suppressions() []*Suppression {
	return s.suppressions
}

// Diagnostics returns the suppressions/parse diagnostics found while parsing.
func (s *Set) Diagnostics() []lint.Diagnostic {
	return s.diagnostics
}

// Parse extracts suppressions from the comments of a tree.
func Parse(tree *parser.Tree) *Set {
	set := &Set{}
	var open []*Suppression
	firstStatement := firstStatementStart(tree)

	for _, c := range tree.Comments() {
		text := tree.Text(c)
		kind, body, ok := directive(text)
		if !ok {
			continue
		}
		comment := parser.NodeRange(c)

		targets, problem := parseTargets(body)
		if problem != "" {
			set.report(comment, problem)
			continue
		}

		var covered core.TextRange
		switch kind {
		case KindLine:
			covered = nextConstruct(c)
		case KindTopLevel:
			if comment.Start > firstStatement {
				set.report(comment, "Top-level suppressions must be placed at the top of the file, before any statement.")
				continue
			}
			covered = core.TextRange{Start: 0, End: uint32(len(tree.Source))}
		case KindRangeStart:
			covered = core.TextRange{Start: comment.End, End: uint32(len(tree.Source))}
		case KindRangeEnd:
			// closes matching open ranges below
		}

		for _, target := range targets {
			if kind == KindRangeEnd {
				start := popMatching(&open, target)
				if start == nil {
					set.report(comment, fmt.Sprintf("Found a biome-ignore-end for %s without a matching biome-ignore-start.", target.Target))
					continue
				}
				start.Covered.End = comment.Start
				continue
			}

			s := target
			s.Kind = kind
			s.Comment = comment
			s.Covered = covered
			set.suppressions = append(set.suppressions, s)
			if kind == KindRangeStart {
				open = append(open, s)
			}
		}
	}
	return set
}

func (s *Set) report(r core.TextRange, msg string) {
	s.diagnostics = append(s.diagnostics, lint.Diagnostic{
		Category: lint.CategorySuppressionsParse,
		Severity: lint.SeverityError,
		Message:  msg,
		Range:    r,
	})
}

// Apply removes the rule diagnostics masked by a suppression and appends
// suppressions/unused diagnostics for suppressions that masked nothing.
// Suppressions whose rules are not enabled are never reported as unused.
func (s *Set) Apply(diags []lint.Diagnostic, enabled func(lint.RuleID) bool) []lint.Diagnostic {
	kept := make([]lint.Diagnostic, 0, len(diags))
	for _, d := range diags {
		id, ok := lint.LookupCategory(d.Category)
		if !ok {
			kept = append(kept, d)
			continue
		}
		suppressed := false
		for _, sup := range s.suppressions {
			if sup.Matches(id, d.Range) {
				sup.used = true
				suppressed = true
			}
		}
		if !suppressed {
			kept = append(kept, d)
		}
	}

	kept = append(kept, s.diagnostics...)
	for _, sup := range s.suppressions {
		if sup.used || !sup.anyEnabled(enabled) {
			continue
		}
		kept = append(kept, lint.Diagnostic{
			Category: lint.CategorySuppressionsUnused,
			Severity: lint.SeverityWarning,
			Message:  "Suppression comment has no effect. Remove the suppression or make sure you are suppressing the correct rule.",
			Range:    sup.Comment,
			Notes:    []string{sup.Kind.directive() + " " + sup.Target},
		})
	}
	return kept
}

func (s *Suppression) anyEnabled(enabled func(lint.RuleID) bool) bool {
	if enabled == nil {
		return true
	}
	for i := 0; i < lint.RuleCount(); i++ {
		id := lint.RuleID(i)
		if s.covers(id) && enabled(id) {
			return true
		}
	}
	return false
}

// directive recognizes a suppression comment and returns its kind and body.
func directive(comment string) (Kind, string, bool) {
	text := strings.TrimSpace(stripCommentMarkers(comment))
	rest, ok := strings.CutPrefix(text, "biome-ignore")
	if !ok {
		return 0, "", false
	}

	kind := KindLine
	switch {
	case strings.HasPrefix(rest, "-all"):
		kind, rest = KindTopLevel, rest[len("-all"):]
	case strings.HasPrefix(rest, "-start"):
		kind, rest = KindRangeStart, rest[len("-start"):]
	case strings.HasPrefix(rest, "-end"):
		kind, rest = KindRangeEnd, rest[len("-end"):]
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != ':' {
		// e.g. "biome-ignored", not a directive
		return 0, "", false
	}
	return kind, rest, true
}

func stripCommentMarkers(comment string) string {
	if s, ok := strings.CutPrefix(comment, "//"); ok {
		return s
	}
	s := strings.TrimPrefix(comment, "/*")
	s = strings.TrimSuffix(s, "*/")
	s = strings.TrimSpace(s)
	return strings.TrimPrefix(s, "*")
}

// parseTargets parses "<category>... : <explanation>".
// A non-empty problem describes why the comment is malformed.
func parseTargets(body string) (targets []*Suppression, problem string) {
	head, _, ok := strings.Cut(body, ":")
	if !ok {
		return nil, "Unterminated suppression comment: expected a colon after the suppressed categories."
	}
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return nil, "Suppression comment is missing the category to suppress, e.g. lint/suspicious/noDebugger."
	}

	targets = make([]*Suppression, 0, len(fields))
	for _, f := range fields {
		if f == "lint" {
			targets = append(targets, &Suppression{Target: f, All: true})
			continue
		}
		if !strings.HasPrefix(f, "lint/") {
			if foreignCategory(f) {
				continue
			}
			return nil, fmt.Sprintf("Unknown suppression category `%s`.", f)
		}
		sel, err := lint.ParseSelector(f)
		if err != nil {
			return nil, fmt.Sprintf("Unknown lint rule `%s` in suppression comment: %v.", f, err)
		}
		targets = append(targets, &Suppression{Target: f, Selector: sel})
	}
	return targets, ""
}

// foreignCategories are suppression categories owned by other tools
// (formatter, parser, assists, plugins). The linter accepts and ignores them.
var foreignCategories = []string{"format", "parse", "syntax", "assist", "plugin"}

func foreignCategory(category string) bool {
	for _, c := range foreignCategories {
		if category == c || strings.HasPrefix(category, c+"/") {
			return true
		}
	}
	return false
}

// nextConstruct returns the range of the syntax node following a comment.
func nextConstruct(comment *sitter.Node) core.TextRange {
	n := comment.NextNamedSibling()
	for n != nil && n.Type() == "comment" {
		n = n.NextNamedSibling()
	}
	if n == nil {
		end := comment.EndByte()
		return core.TextRange{Start: end, End: end}
	}
	return parser.NodeRange(n)
}

// firstStatementStart returns the offset of the first non-comment top-level node.
func firstStatementStart(tree *parser.Tree) uint32 {
	root := tree.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		c := root.NamedChild(i)
		if c.Type() != "comment" && c.Type() != "hash_bang_line" {
			return c.StartByte()
		}
	}
	return uint32(len(tree.Source))
}

func popMatching(open *[]*Suppression, end *Suppression) *Suppression {
	for i := len(*open) - 1; i >= 0; i-- {
		s := (*open)[i]
		if s.Target == end.Target {
			*open = append((*open)[:i], (*open)[i+1:]...)
			return s
		}
	}
	return nil
}
