// Package nursery provides lint rules still under development.
// Rules here only run when selected explicitly or in unstable mode.
package nursery
