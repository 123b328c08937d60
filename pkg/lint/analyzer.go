package lint

import (
	"fmt"

	"github.com/leapstack-labs/biome/pkg/parser"
)

// Analyzer runs the enabled rules of a ResolvedLint against syntax trees.
// An Analyzer is immutable and safe for concurrent use.
type Analyzer struct {
	resolved *ResolvedLint
}

// NewAnalyzer creates an analyzer for the resolved configuration.
func NewAnalyzer(resolved *ResolvedLint) *Analyzer {
	if resolved == nil {
		resolved = Resolve(RulesConfiguration{}, ResolveOptions{LinterEnabled: true})
	}
	return &Analyzer{resolved: resolved}
}

// Resolved returns the configuration the analyzer runs with.
func (a *Analyzer) Resolved() *ResolvedLint {
	return a.resolved
}

// RulesFor returns the enabled, implemented rules supporting lang.
func (a *Analyzer) RulesFor(lang parser.Language) []RuleID {
	var ids []RuleID
	for _, id := range a.resolved.Enabled().Rules() {
		if !Metadata(id).Languages.Has(lang) || !IsImplemented(id) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Analyze runs every selected rule over the tree.
// Diagnostics come back stamped with category and severity, with fixes
// adjusted to the rule's effective fix kind. A panicking rule yields an
// internal/panic diagnostic instead of aborting the file.
func (a *Analyzer) Analyze(tree *parser.Tree) []Diagnostic {
	var diagnostics []Diagnostic
	for _, id := range a.RulesFor(tree.Language) {
		rule, _ := GetRule(id)
		diags, err := a.run(rule, id, tree)
		if err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				Category: CategoryInternalPanic,
				Severity: SeverityError,
				Message:  fmt.Sprintf("The rule %s panicked while analyzing this file", id.Category()),
				Notes:    []string{err.Error()},
			})
			continue
		}

		sev, ok := a.resolved.SeverityFor(id.Category())
		if !ok {
			continue
		}
		fixKind := a.resolved.FixKind(id)
		for i := range diags {
			diags[i].Category = id.Category()
			diags[i].Severity = sev
			diags[i].Fixes = applyFixKind(diags[i].Fixes, fixKind)
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

func (a *Analyzer) run(rule RuleDef, id RuleID, tree *parser.Tree) (diags []Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	ctx := &RuleContext{Tree: tree, Options: a.resolved.Options(id), Rule: id}
	return rule.Check(ctx), nil
}

// applyFixKind rewrites fix applicability to honor a "fix" override.
func applyFixKind(fixes []Fix, kind FixKind) []Fix {
	switch kind {
	case FixNone:
		return nil
	case FixSafe:
		for i := range fixes {
			fixes[i].Applicability = ApplicabilitySafe
		}
	case FixUnsafe:
		for i := range fixes {
			fixes[i].Applicability = ApplicabilityUnsafe
		}
	}
	return fixes
}
