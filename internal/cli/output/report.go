package output

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/leapstack-labs/biome/internal/outcome"
	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/lint"
)

// ReportOptions controls how a report is rendered.
type ReportOptions struct {
	// Level hides diagnostics less severe than it. It does not affect the
	// exit status.
	Level lint.Severity
}

// DefaultReportOptions shows errors, warnings and infos.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{Level: lint.SeverityInfo}
}

// Report renders the diagnostics and summary of a lint run.
func (r *Renderer) Report(rep *outcome.Report, opts ReportOptions) error {
	if r.EffectiveMode() == ModeJSON {
		return r.JSON(newLintOutput(rep, opts))
	}
	r.reportText(rep, opts)
	return nil
}

func (r *Renderer) reportText(rep *outcome.Report, opts ReportOptions) {
	for _, d := range rep.Diagnostics {
		if d.Severity.AtLeast(opts.Level) {
			r.diagnostic(d, nil)
		}
	}
	for _, f := range rep.Files {
		for _, d := range f.Diagnostics {
			if d.Severity.AtLeast(opts.Level) {
				r.diagnostic(d, f.Source)
			}
		}
	}
	r.summary(rep.Summary)
}

// diagnostic writes one diagnostic:
//
//	path:line:col category
//
//	  × message
//
//	  i note
func (r *Renderer) diagnostic(d lint.Diagnostic, src []byte) {
	s := r.styles

	header := d.Category
	if d.Path != "" {
		loc := d.Path
		if d.Start.Line > 0 {
			loc = fmt.Sprintf("%s:%d:%d", d.Path, d.Start.Line, d.Start.Column)
		}
		header = s.Path.Render(loc) + " " + s.Category.Render(d.Category)
	}
	if d.Fixed {
		header += " " + s.Success.Render("FIXED")
	} else if len(d.Fixes) > 0 {
		header += " " + s.Muted.Render("FIXABLE")
	}
	r.Eprintf("%s\n\n", header)
	r.Eprintf("  %s %s\n\n", r.marker(d.Severity), d.Message)

	for _, note := range d.Notes {
		r.Eprintf("  %s %s\n\n", s.Info.Render("i"), note)
	}
	for _, rel := range d.Related {
		r.Eprintf("  %s %s\n\n", s.Info.Render("i"), rel.Message)
	}
	if d.Fixed || len(d.Fixes) == 0 {
		return
	}

	fix := d.Fixes[0]
	kind := "Safe fix"
	if fix.Applicability == lint.ApplicabilityUnsafe {
		kind = "Unsafe fix"
	}
	r.Eprintf("  %s %s: %s\n\n", s.Info.Render("i"), kind, fix.Description)
	if diff := r.fixDiff(src, fix); diff != "" {
		r.Eprintf("%s\n", diff)
	}
}

func (r *Renderer) marker(sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.styles.Error.Render("×")
	case lint.SeverityWarning:
		return r.styles.Warning.Render("!")
	case lint.SeverityInfo:
		return r.styles.Info.Render("i")
	default:
		return r.styles.Hint.Render("i")
	}
}

// fixDiff renders the change a fix would make as a unified diff.
func (r *Renderer) fixDiff(src []byte, fix lint.Fix) string {
	if src == nil {
		return ""
	}
	fixed, err := lint.ApplyFix(src, fix)
	if err != nil {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:       difflib.SplitLines(string(src)),
		B:       difflib.SplitLines(string(fixed)),
		Context: 1,
	})
	if err != nil || diff == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(text, "@@"):
			text = r.styles.DiffHunk.Render(text)
		case strings.HasPrefix(text, "+"):
			text = r.styles.DiffAdd.Render(text)
		case strings.HasPrefix(text, "-"):
			text = r.styles.DiffDel.Render(text)
		}
		b.WriteString("    ")
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) summary(sum outcome.Summary) {
	s := r.styles
	checked := fmt.Sprintf("Checked %s.", plural(sum.Files, "file"))
	if sum.Changed > 0 {
		checked += fmt.Sprintf(" Fixed %s.", plural(sum.Changed, "file"))
	}
	r.Eprintf("%s\n", checked)

	if sum.Errors > 0 {
		r.Eprintf("%s\n", s.Error.Render(fmt.Sprintf("Found %s.", plural(sum.Errors, "error"))))
	}
	if sum.Warnings > 0 {
		r.Eprintf("%s\n", s.Warning.Render(fmt.Sprintf("Found %s.", plural(sum.Warnings, "warning"))))
	}
	if sum.Infos > 0 {
		r.Eprintf("%s\n", s.Info.Render(fmt.Sprintf("Found %s.", plural(sum.Infos, "info"))))
	}
	if sum.Hidden > 0 {
		r.Eprintf("%s\n", s.Muted.Render(fmt.Sprintf("%s not shown because of --max-diagnostics.", plural(sum.Hidden, "error"))))
	}
}

func plural(n int, word string) string {
	if n == 1 || word == "info" {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// LintOutput is the JSON reporter envelope.
type LintOutput struct {
	Summary     outcome.Summary `json:"summary"`
	Diagnostics []Diagnostic    `json:"diagnostics"`
}

// Diagnostic is the JSON form of a diagnostic.
type Diagnostic struct {
	Category string         `json:"category"`
	Severity core.Severity  `json:"severity"`
	Message  string         `json:"message"`
	Path     string         `json:"path,omitempty"`
	Start    *core.Position `json:"start,omitempty"`
	End      *core.Position `json:"end,omitempty"`
	Notes    []string       `json:"notes,omitempty"`
	Fixed    bool           `json:"fixed,omitempty"`
	Fixes    []Fix          `json:"fixes,omitempty"`
}

// Fix is the JSON form of a suggested fix.
type Fix struct {
	Applicability string `json:"applicability"`
	Description   string `json:"description"`
}

func newLintOutput(rep *outcome.Report, opts ReportOptions) LintOutput {
	out := LintOutput{Summary: rep.Summary, Diagnostics: []Diagnostic{}}
	for _, d := range rep.All() {
		if !d.Severity.AtLeast(opts.Level) {
			continue
		}
		jd := Diagnostic{
			Category: d.Category,
			Severity: d.Severity,
			Message:  d.Message,
			Path:     d.Path,
			Notes:    d.Notes,
			Fixed:    d.Fixed,
		}
		if d.Start.Line > 0 {
			start, end := d.Start, d.End
			jd.Start, jd.End = &start, &end
		}
		for _, f := range d.Fixes {
			jd.Fixes = append(jd.Fixes, Fix{Applicability: f.Applicability.String(), Description: f.Description})
		}
		out.Diagnostics = append(out.Diagnostics, jd)
	}
	return out
}
