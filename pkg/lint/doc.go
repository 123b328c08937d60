// Package lint provides the rule catalog, configuration resolution and
// analysis framework of the linter.
//
// # Architecture
//
// The package is organized in layers, leaves first:
//
//  1. Catalog (catalog.go): the static table of every rule, its group,
//     whether it is recommended, its fix kind and supported languages.
//     Rule ids are dense indexes; names are sorted within a group.
//  2. Filter algebra (filter.go): FilterSet, a set of rules held as an
//     enabled part and a disabled part, with presets per group.
//  3. Configuration (rules_config.go): the linter.rules shape and its
//     deserialization into RulesConfiguration with diagnostics.
//  4. Resolution (resolve.go): ResolvedLint, the effective rule set and
//     the severity of every category after --only and --skip.
//  5. Analysis (analyzer.go): runs implemented rules on a parser.Tree.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/biome/pkg/lint/rules"
//
// A rule must exist in the catalog before it can register. Catalog rules
// without an implementation are valid configuration targets that never
// report anything.
//
// # Severity
//
// A rule enabled without an explicit level reports errors when it is
// recommended and warnings otherwise. An explicit level always wins.
package lint
