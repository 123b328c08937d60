package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule groups - each registers its rules via init()
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/complexity"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/correctness"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/nursery"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/performance"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/style"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules/suspicious"
)
