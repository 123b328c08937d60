package lint

// ResolveOptions carries the invocation-level inputs of rule resolution.
type ResolveOptions struct {
	// LinterEnabled mirrors linter.enabled. When false and Only is empty,
	// no rule runs.
	LinterEnabled bool
	// Unstable turns on presets for unstable groups.
	Unstable bool
	// Only restricts the run to these groups or rules.
	Only []Selector
	// Skip removes these groups or rules. Skip wins over Only.
	Skip []Selector
}

// ResolvedLint is the effective rule set of an invocation together with
// the severity of every category it may emit. It is immutable once built
// and safe to share between workers.
type ResolvedLint struct {
	rules    RulesConfiguration
	enabled  FilterSet
	severity [64 * bitWords]Severity
}

// Resolve computes the effective rule set from configuration and CLI overlays.
func Resolve(rules RulesConfiguration, opts ResolveOptions) *ResolvedLint {
	r := &ResolvedLint{rules: rules}

	var enabled FilterSet
	if len(opts.Only) > 0 {
		enabled = r.onlySet(opts.Only)
	} else if opts.LinterEnabled {
		enabled = presetFilter(rules, opts.Unstable)
	}

	var skipped FilterSet
	for _, sel := range opts.Skip {
		skipped = skipped.Union(selectorFilter(sel))
	}
	r.enabled = enabled.Difference(skipped)

	for _, id := range r.enabled.Rules() {
		meta := Metadata(id)
		sev, ok := rules.RuleConfig(id).Level.severity(meta)
		if !ok {
			sev = meta.DefaultSeverity()
		}
		r.severity[id] = sev
	}
	return r
}

// presetFilter applies preset inheritance for every group.
func presetFilter(rules RulesConfiguration, unstable bool) FilterSet {
	parentAll := rules.All != nil && *rules.All
	parentRecommended := rules.Recommended == nil || *rules.Recommended

	var f FilterSet
	for _, g := range groupOrder {
		gc := rules.Group(g)
		var groupAll, groupRecommended *bool
		if gc != nil {
			groupAll, groupRecommended = gc.All, gc.Recommended
		}

		switch {
		case isTrue(groupAll) || (groupAll == nil && parentAll):
			f = f.Union(AllPreset(g, unstable))
		case isTrue(groupRecommended) || (groupRecommended == nil && groupAll == nil && parentRecommended):
			f = f.Union(RecommendedPreset(g, unstable))
		}

		if gc == nil {
			continue
		}
		for name, rc := range gc.Rules {
			id, ok := Lookup(g, name)
			if !ok {
				continue
			}
			switch rc.Level {
			case LevelUnset:
			case LevelOff:
				f.Disable(id)
			default:
				f.Enable(id)
			}
		}
	}
	return f
}

// onlySet builds the --only selection. A group selector still honors rules
// explicitly configured "off"; a rule selector turns its rule back on.
func (r *ResolvedLint) onlySet(only []Selector) FilterSet {
	var f FilterSet
	for _, sel := range only {
		if sel.IsRule {
			f.Enable(sel.Rule)
			continue
		}
		for _, id := range groupIDs[sel.Group] {
			if metadata[id].Deprecated {
				continue
			}
			if r.rules.RuleConfig(id).Level == LevelOff {
				continue
			}
			f.Enable(id)
		}
	}
	return f
}

func selectorFilter(sel Selector) FilterSet {
	if sel.IsRule {
		return FilterOf(sel.Rule)
	}
	return FilterOf(groupIDs[sel.Group]...)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// Enabled returns the effective rule set.
func (r *ResolvedLint) Enabled() FilterSet {
	return r.enabled
}

// IsEnabled reports whether the rule is in the effective set.
func (r *ResolvedLint) IsEnabled(id RuleID) bool {
	return r.enabled.Contains(id)
}

// SeverityFor returns the effective severity of a diagnostic category.
// It returns false for unknown categories and for disabled rules.
func (r *ResolvedLint) SeverityFor(category string) (Severity, bool) {
	id, ok := LookupCategory(category)
	if !ok || !r.enabled.Contains(id) {
		return 0, false
	}
	return r.severity[id], true
}

// Options returns the configured options of a rule.
func (r *ResolvedLint) Options(id RuleID) map[string]any {
	return r.rules.RuleConfig(id).Options
}

// FixKind returns the effective fix kind of a rule after any "fix" override.
func (r *ResolvedLint) FixKind(id RuleID) FixKind {
	meta := Metadata(id)
	if meta.FixKind == FixNone {
		return FixNone
	}
	if fix := r.rules.RuleConfig(id).Fix; fix != nil {
		return *fix
	}
	return meta.FixKind
}
