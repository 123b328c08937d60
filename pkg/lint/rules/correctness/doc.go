// Package correctness provides lint rules for code that is guaranteed to be
// incorrect or useless.
package correctness
