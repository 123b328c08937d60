// Package style provides lint rules that enforce a consistent and idiomatic
// way of writing code.
//
// Rules in this package:
//   - noVar: var declarations
//   - useConst: let bindings that are never reassigned
//   - useNamingConvention: identifier casing per kind of declaration
//   - useTemplate: string concatenation instead of template literals
package style
