package lint

import "math/bits"

// bitWords bounds the catalog size at 64*bitWords rules.
const bitWords = 4

// ruleBits is a fixed-size bitset over rule ids.
type ruleBits [bitWords]uint64

func (b *ruleBits) set(id RuleID)      { b[id/64] |= 1 << (id % 64) }
func (b ruleBits) has(id RuleID) bool { return b[id/64]&(1<<(id%64)) != 0 }

func (b ruleBits) or(o ruleBits) ruleBits {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

func (b ruleBits) andNot(o ruleBits) ruleBits {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

func (b ruleBits) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// FilterSet is a set of rules held as two disjoint parts, enabled and disabled.
// The effective set is enabled minus disabled.
// Iteration order is catalog order: group order, then rule name.
type FilterSet struct {
	enabled  ruleBits
	disabled ruleBits
}

// Enable adds rules to the enabled part.
func (f *FilterSet) Enable(ids ...RuleID) {
	for _, id := range ids {
		f.enabled.set(id)
	}
}

// Disable adds rules to the disabled part.
func (f *FilterSet) Disable(ids ...RuleID) {
	for _, id := range ids {
		f.disabled.set(id)
	}
}

// Contains reports whether the rule is in the effective set.
func (f FilterSet) Contains(id RuleID) bool {
	return f.enabled.has(id) && !f.disabled.has(id)
}

// IsDisabled reports whether the rule was explicitly disabled.
func (f FilterSet) IsDisabled(id RuleID) bool {
	return f.disabled.has(id)
}

// Union combines both parts of f and o.
func (f FilterSet) Union(o FilterSet) FilterSet {
	return FilterSet{enabled: f.enabled.or(o.enabled), disabled: f.disabled.or(o.disabled)}
}

// Difference returns a set whose effective rules are those of f not in o.
func (f FilterSet) Difference(o FilterSet) FilterSet {
	return FilterSet{enabled: f.enabled, disabled: f.disabled.or(o.effective())}
}

// Len returns the size of the effective set.
func (f FilterSet) Len() int {
	return f.effective().count()
}

// Rules returns the effective rules in catalog order.
func (f FilterSet) Rules() []RuleID {
	eff := f.effective()
	out := make([]RuleID, 0, eff.count())
	for i := range metadata {
		if eff.has(RuleID(i)) {
			out = append(out, RuleID(i))
		}
	}
	return out
}

func (f FilterSet) effective() ruleBits {
	return f.enabled.andNot(f.disabled)
}

// FilterOf returns the set enabling exactly the given rules.
func FilterOf(ids ...RuleID) FilterSet {
	var f FilterSet
	f.Enable(ids...)
	return f
}

// RecommendedPreset returns the recommended rules of a group.
// Unstable groups contribute nothing unless unstable mode is on.
func RecommendedPreset(g Group, unstable bool) FilterSet {
	if g.IsUnstable() && !unstable {
		return FilterSet{}
	}
	return FilterOf(groupRecs[g]...)
}

// AllPreset returns every non-deprecated rule of a group.
// Unstable groups contribute nothing unless unstable mode is on.
func AllPreset(g Group, unstable bool) FilterSet {
	if g.IsUnstable() && !unstable {
		return FilterSet{}
	}
	var f FilterSet
	for _, id := range groupIDs[g] {
		if !metadata[id].Deprecated {
			f.Enable(id)
		}
	}
	return f
}
