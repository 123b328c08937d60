package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/biome/pkg/parser"
)

// =============================================================================
// Groups
// =============================================================================

// Group is a closed-set category of related rules.
type Group string

// Rule groups, in catalog order.
const (
	GroupA11y        Group = "a11y"
	GroupComplexity  Group = "complexity"
	GroupCorrectness Group = "correctness"
	GroupNursery     Group = "nursery"
	GroupPerformance Group = "performance"
	GroupSecurity    Group = "security"
	GroupStyle       Group = "style"
	GroupSuspicious  Group = "suspicious"
)

// IsUnstable reports whether rules of the group are excluded from presets
// unless unstable mode is on.
func (g Group) IsUnstable() bool {
	return g == GroupNursery
}

// ParseGroup returns the group with the given name.
func ParseGroup(name string) (Group, bool) {
	for _, t := range catalog {
		if string(t.group) == name {
			return t.group, true
		}
	}
	return "", false
}

// =============================================================================
// Rule metadata
// =============================================================================

// FixKind describes the applicability of the fixes a rule may produce.
type FixKind int

// Fix kinds, ordered from most to least permissive.
const (
	FixNone FixKind = iota
	FixSafe
	FixUnsafe
)

// String returns the fix kind name.
func (k FixKind) String() string {
	switch k {
	case FixSafe:
		return "safe"
	case FixUnsafe:
		return "unsafe"
	default:
		return "none"
	}
}

// ParseFixKind converts a configuration value to a FixKind.
func ParseFixKind(s string) (FixKind, bool) {
	switch s {
	case "none":
		return FixNone, true
	case "safe":
		return FixSafe, true
	case "unsafe":
		return FixUnsafe, true
	default:
		return FixNone, false
	}
}

// LanguageSet is a bitmask of languages a rule supports.
type LanguageSet uint8

const (
	langJSON LanguageSet = 0
	langJS               = LanguageSet(1<<parser.LanguageJavaScript | 1<<parser.LanguageTypeScript | 1<<parser.LanguageTSX)
	langTS               = LanguageSet(1<<parser.LanguageTypeScript | 1<<parser.LanguageTSX)
	langJSX              = LanguageSet(1<<parser.LanguageJavaScript | 1<<parser.LanguageTSX)
)

// Has reports whether the set contains lang.
func (s LanguageSet) Has(lang parser.Language) bool {
	return s&(1<<lang) != 0
}

// RuleID is a dense index into the catalog.
type RuleID uint16

// RuleMetadata is the static description of a rule.
type RuleMetadata struct {
	ID          RuleID
	Group       Group
	Name        string
	Recommended bool
	Unstable    bool
	Deprecated  bool
	FixKind     FixKind
	Languages   LanguageSet
}

// Category returns the diagnostic category of the rule, "lint/<group>/<name>".
func (m RuleMetadata) Category() string {
	return "lint/" + string(m.Group) + "/" + m.Name
}

// DefaultSeverity is the severity a rule gets when it is enabled without an explicit level.
func (m RuleMetadata) DefaultSeverity() Severity {
	if m.Recommended {
		return SeverityError
	}
	return SeverityWarning
}

// Group returns the rule's group.
func (id RuleID) Group() Group { return metadata[id].Group }

// Name returns the rule's name within its group.
func (id RuleID) Name() string { return metadata[id].Name }

// Category returns the rule's diagnostic category.
func (id RuleID) Category() string { return metadata[id].Category() }

// String returns "<group>/<name>".
func (id RuleID) String() string {
	return string(metadata[id].Group) + "/" + metadata[id].Name
}

// =============================================================================
// Catalog tables
// =============================================================================

type catalogEntry struct {
	name        string
	recommended bool
	fix         FixKind
	languages   LanguageSet
}

type groupTable struct {
	group Group
	rules []catalogEntry
}

// deprecatedRules stay configurable but never join the "all" preset.
var deprecatedRules = map[string]bool{
	"correctness/noNewSymbol": true,
}

var (
	metadata   []RuleMetadata
	groupOrder []Group
	groupIDs   = make(map[Group][]RuleID)
	groupRecs  = make(map[Group][]RuleID)
)

func init() {
	for _, t := range catalog {
		if !sort.SliceIsSorted(t.rules, func(i, j int) bool { return t.rules[i].name < t.rules[j].name }) {
			panic(fmt.Sprintf("lint: rules of group %q are not sorted", t.group))
		}
		groupOrder = append(groupOrder, t.group)
		for _, e := range t.rules {
			id := RuleID(len(metadata))
			meta := RuleMetadata{
				ID:          id,
				Group:       t.group,
				Name:        e.name,
				Recommended: e.recommended,
				Unstable:    t.group.IsUnstable(),
				Deprecated:  deprecatedRules[string(t.group)+"/"+e.name],
				FixKind:     e.fix,
				Languages:   e.languages,
			}
			metadata = append(metadata, meta)
			groupIDs[t.group] = append(groupIDs[t.group], id)
			if e.recommended {
				groupRecs[t.group] = append(groupRecs[t.group], id)
			}
		}
	}
	if len(metadata) > 64*bitWords {
		panic(fmt.Sprintf("lint: catalog has %d rules, filter sets hold %d", len(metadata), 64*bitWords))
	}
}

// =============================================================================
// Registry queries
// =============================================================================

// Groups returns every rule group in catalog order.
func Groups() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// RulesIn returns the rules of a group, sorted by name.
func RulesIn(g Group) []RuleID {
	ids := groupIDs[g]
	out := make([]RuleID, len(ids))
	copy(out, ids)
	return out
}

// RecommendedIn returns the recommended rules of a group, sorted by name.
func RecommendedIn(g Group) []RuleID {
	ids := groupRecs[g]
	out := make([]RuleID, len(ids))
	copy(out, ids)
	return out
}

// Lookup finds a rule by group and name using binary search.
func Lookup(g Group, name string) (RuleID, bool) {
	ids := groupIDs[g]
	i := sort.Search(len(ids), func(i int) bool { return metadata[ids[i]].Name >= name })
	if i < len(ids) && metadata[ids[i]].Name == name {
		return ids[i], true
	}
	return 0, false
}

// Metadata returns the static metadata of a rule.
func Metadata(id RuleID) RuleMetadata {
	return metadata[id]
}

// RuleCount returns the number of rules in the catalog.
func RuleCount() int {
	return len(metadata)
}

// LookupCategory resolves a "lint/<group>/<name>" category to a rule.
func LookupCategory(category string) (RuleID, bool) {
	rest, ok := strings.CutPrefix(category, "lint/")
	if !ok {
		return 0, false
	}
	group, name, ok := strings.Cut(rest, "/")
	if !ok {
		return 0, false
	}
	g, ok := ParseGroup(group)
	if !ok {
		return 0, false
	}
	return Lookup(g, name)
}

// Selector identifies either a whole group or a single rule, as used by
// --only, --skip and suppression comments.
type Selector struct {
	Group Group
	Rule  RuleID
	// IsRule is false when the selector names a whole group.
	IsRule bool
}

// ParseSelector parses "<group>" or "<group>/<rule>", with an optional "lint/" prefix.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "lint/")
	group, name, hasRule := strings.Cut(s, "/")
	g, ok := ParseGroup(group)
	if !ok {
		return Selector{}, fmt.Errorf("unknown rule group %q", group)
	}
	if !hasRule {
		return Selector{Group: g}, nil
	}
	id, ok := Lookup(g, name)
	if !ok {
		return Selector{}, fmt.Errorf("unknown rule %q in group %q", name, group)
	}
	return Selector{Group: g, Rule: id, IsRule: true}, nil
}

// Matches reports whether the selector covers the rule.
func (s Selector) Matches(id RuleID) bool {
	if s.IsRule {
		return s.Rule == id
	}
	return metadata[id].Group == s.Group
}

// String returns the selector in "<group>[/<rule>]" form.
func (s Selector) String() string {
	if s.IsRule {
		return s.Rule.String()
	}
	return string(s.Group)
}
