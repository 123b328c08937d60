package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, g Group, name string) RuleID {
	t.Helper()
	id, ok := Lookup(g, name)
	require.True(t, ok, "%s/%s", g, name)
	return id
}

func TestFilterSet_Algebra(t *testing.T) {
	debugger := mustLookup(t, GroupSuspicious, "noDebugger")
	noVar := mustLookup(t, GroupStyle, "noVar")
	useConst := mustLookup(t, GroupStyle, "useConst")

	a := FilterOf(debugger, noVar)
	b := FilterOf(useConst)
	b.Disable(noVar)

	union := a.Union(b)
	assert.True(t, union.Contains(debugger))
	assert.True(t, union.Contains(useConst))
	assert.False(t, union.Contains(noVar), "disabled part wins")
	assert.Equal(t, 2, union.Len())

	diff := a.Difference(FilterOf(debugger))
	assert.False(t, diff.Contains(debugger))
	assert.True(t, diff.Contains(noVar))
}

func TestFilterSet_RulesStableOrder(t *testing.T) {
	debugger := mustLookup(t, GroupSuspicious, "noDebugger")
	noVar := mustLookup(t, GroupStyle, "noVar")
	access := mustLookup(t, GroupA11y, "noAccessKey")

	f := FilterOf(debugger, noVar, access)
	assert.Equal(t, []RuleID{access, noVar, debugger}, f.Rules())
}

func TestPresets(t *testing.T) {
	rec := RecommendedPreset(GroupSuspicious, false)
	assert.Equal(t, len(RecommendedIn(GroupSuspicious)), rec.Len())

	all := AllPreset(GroupSuspicious, false)
	assert.Equal(t, len(RulesIn(GroupSuspicious)), all.Len())

	assert.Equal(t, 0, RecommendedPreset(GroupNursery, false).Len())
	assert.Equal(t, 0, AllPreset(GroupNursery, false).Len())
	assert.Equal(t, len(RecommendedIn(GroupNursery)), RecommendedPreset(GroupNursery, true).Len())

	deprecated := mustLookup(t, GroupCorrectness, "noNewSymbol")
	assert.False(t, AllPreset(GroupCorrectness, false).Contains(deprecated))
}
