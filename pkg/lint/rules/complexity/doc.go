// Package complexity provides lint rules that flag needlessly complex code.
//
// Rules in this package:
//   - noUselessRename: renaming an import, export or destructured binding to the same name
//   - noUselessCatch: catch clauses that only rethrow
package complexity
