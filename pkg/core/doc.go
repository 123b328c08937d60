// Package core defines the shared vocabulary of the linter.
//
// This package contains:
//   - Severity levels carried by every diagnostic
//   - Text ranges (byte offsets) and line/column positions
//   - LineIndex for converting offsets into positions
//
// The Golden Rule: pkg/core imports ONLY the standard library.
// All other packages depend on core, not the reverse.
package core
