// Package performance provides lint rules for code that could run faster or
// more efficiently.
package performance
