package lint

import (
	"fmt"
	"sync"
)

// globalRegistry is the single global registry of rule implementations.
var globalRegistry = &Registry{
	rules: make(map[RuleID]RuleDef),
}

// Registry stores registered rule implementations keyed by catalog id.
type Registry struct {
	mu    sync.RWMutex
	rules map[RuleID]RuleDef
}

// Register adds a rule implementation to the global registry.
// Call this from init() functions in rule packages.
// It panics when the rule is not in the catalog or is registered twice.
func Register(rule RuleDef) {
	id, ok := Lookup(rule.Group, rule.Name)
	if !ok {
		panic(fmt.Sprintf("lint: rule %s/%s is not in the catalog", rule.Group, rule.Name))
	}
	if rule.Check == nil {
		panic(fmt.Sprintf("lint: rule %s has no check function", id))
	}

	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, dup := globalRegistry.rules[id]; dup {
		panic(fmt.Sprintf("lint: rule %s registered twice", id))
	}
	globalRegistry.rules[id] = rule
}

// GetRule returns the implementation of a rule, if one is registered.
func GetRule(id RuleID) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// IsImplemented reports whether a rule has a registered implementation.
func IsImplemented(id RuleID) bool {
	_, ok := GetRule(id)
	return ok
}

// ImplementedRules returns the ids of all registered rules in catalog order.
func ImplementedRules() []RuleID {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	ids := make([]RuleID, 0, len(globalRegistry.rules))
	for i := range metadata {
		if _, ok := globalRegistry.rules[RuleID(i)]; ok {
			ids = append(ids, RuleID(i))
		}
	}
	return ids
}
