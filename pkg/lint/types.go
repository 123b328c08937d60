package lint

import (
	"github.com/leapstack-labs/biome/pkg/core"
)

// Severity is an alias for core.Severity.
// This allows rule code to use lint.Severity without importing pkg/core.
type Severity = core.Severity

// Severity levels re-exported from core.
const (
	SeverityError   = core.SeverityError
	SeverityWarning = core.SeverityWarning
	SeverityInfo    = core.SeverityInfo
	SeverityHint    = core.SeverityHint
)

// ParseSeverity is re-exported from core.
var ParseSeverity = core.ParseSeverity

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a finding about a file.
type Diagnostic struct {
	Category string
	Severity Severity
	Message  string
	Range    core.TextRange
	Notes    []string
	Related  []RelatedInfo
	Fixes    []Fix

	// Fixed is set when the driver applied one of the fixes.
	Fixed bool

	// Populated by the driver once the file is known.
	Path  string
	Start core.Position
	End   core.Position
}

// RelatedInfo provides a secondary location for a diagnostic.
type RelatedInfo struct {
	Path    string
	Range   core.TextRange
	Message string
}

// Fix represents a suggested code fix.
type Fix struct {
	Applicability Applicability
	Description   string
	Edits         []TextEdit
}

// TextEdit replaces the bytes of Range with NewText.
type TextEdit struct {
	Range   core.TextRange
	NewText string
}

// Applicability tells whether a fix may change program behavior.
type Applicability int

// Fix applicability levels.
const (
	// ApplicabilitySafe fixes never change semantics and are applied by --write.
	ApplicabilitySafe Applicability = iota
	// ApplicabilityUnsafe fixes may change semantics and need --unsafe.
	ApplicabilityUnsafe
)

// String returns the applicability name.
func (a Applicability) String() string {
	if a == ApplicabilitySafe {
		return "safe"
	}
	return "unsafe"
}

// Span returns the range covered by all edits of the fix.
func (f Fix) Span() core.TextRange {
	if len(f.Edits) == 0 {
		return core.TextRange{}
	}
	span := f.Edits[0].Range
	for _, e := range f.Edits[1:] {
		span = span.Cover(e.Range)
	}
	return span
}

// IsRule reports whether the diagnostic was produced by a lint rule.
func (d Diagnostic) IsRule() bool {
	_, ok := LookupCategory(d.Category)
	return ok
}

// =============================================================================
// Reserved categories
// =============================================================================

// Categories emitted by the linter infrastructure rather than by rules.
const (
	CategoryParse              = "parse"
	CategoryConfiguration      = "configuration"
	CategoryFilesTooLarge      = "files/tooLarge"
	CategoryFilesMissingHandle = "files/missingHandler"
	CategoryFilesNoMatch       = "files/noMatch"
	CategoryFilesIO            = "files/io"
	CategoryFilesDeeplyNested  = "files/deeplyNested"
	CategorySuppressionsParse  = "suppressions/parse"
	CategorySuppressionsUnused = "suppressions/unused"
	CategoryInternalPanic      = "internal/panic"
	CategoryInternalFixLoop    = "internal/fixLoop"
	CategoryMaxDiagnostics     = "internal/maxDiagnostics"
)

// ReservedCategory describes a category emitted by the infrastructure.
type ReservedCategory struct {
	Name        string
	Description string
}

// ReservedCategories returns the infrastructure categories in display order.
func ReservedCategories() []ReservedCategory {
	return []ReservedCategory{
		{CategoryParse, "The file has syntax errors. Rules still run on the recovered tree; fixes are not applied."},
		{CategoryConfiguration, "The configuration file or a flag value is invalid."},
		{CategoryFilesTooLarge, "The file exceeds files.maxSize and was skipped."},
		{CategoryFilesMissingHandle, "No language handles the file extension."},
		{CategoryFilesNoMatch, "Explicit paths were given but no file was processed."},
		{CategoryFilesIO, "The file could not be read or written."},
		{CategoryFilesDeeplyNested, "A symbolic link cycle or an overly long link chain was skipped."},
		{CategorySuppressionsParse, "A suppression comment is malformed or names an unknown rule."},
		{CategorySuppressionsUnused, "A suppression comment masked no diagnostic."},
		{CategoryInternalPanic, "A rule crashed while analyzing the file."},
		{CategoryInternalFixLoop, "Fixes kept producing new fixes and were stopped."},
		{CategoryMaxDiagnostics, "More errors were found than --max-diagnostics allows to show."},
	}
}
