// Package rules provides the JavaScript and TypeScript lint rule implementations.
//
// Rules are organized by catalog group:
//   - complexity: needlessly complex code (noUselessRename, noUselessCatch)
//   - correctness: code that is guaranteed wrong (noConstantCondition, useIsNan)
//   - nursery: rules under development (noUselessTernary)
//   - performance: slow constructs (noDelete)
//   - style: consistent style (noVar, useConst, useNamingConvention, useTemplate)
//   - suspicious: likely mistakes (noDebugger, noCompareNegZero, noDoubleEquals, ...)
//
// Rules without an implementation stay in the catalog: they can be
// configured and selected, they just never produce diagnostics.
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/biome/pkg/lint/rules"
package rules
