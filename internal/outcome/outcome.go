// Package outcome aggregates per-file results into the report of an
// invocation and decides its exit status.
package outcome

import (
	"errors"
	"sort"

	"github.com/leapstack-labs/biome/internal/driver"
	"github.com/leapstack-labs/biome/pkg/lint"
)

// ErrLintFailed is returned when the run emitted diagnostics that fail it.
// The diagnostics themselves have already been rendered.
var ErrLintFailed = errors.New("some errors were emitted while running checks")

// Options are the exit status overlays.
type Options struct {
	// ErrorOnWarnings makes warnings fail the run.
	ErrorOnWarnings bool
	// NoErrorsOnUnmatched keeps files/noMatch from failing the run.
	NoErrorsOnUnmatched bool
}

// Summary counts the diagnostics of a run.
type Summary struct {
	Files    int `json:"files"`
	Changed  int `json:"changed"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
	Hints    int `json:"hints"`
	// Hidden counts error diagnostics dropped by the per-file cap.
	Hidden int `json:"hidden"`
}

// Report is the reduced outcome of a run.
type Report struct {
	// Files holds one result per processed file, sorted by path.
	Files []driver.Result
	// Diagnostics holds invocation-level diagnostics: configuration and gate.
	Diagnostics []lint.Diagnostic
	Summary     Summary

	failed bool
}

// Failed reports whether the run must exit with a failure status.
func (r *Report) Failed() bool {
	return r.failed
}

// Err returns ErrLintFailed when the run failed.
func (r *Report) Err() error {
	if r.failed {
		return ErrLintFailed
	}
	return nil
}

// All returns every diagnostic of the report, invocation-level first.
func (r *Report) All() []lint.Diagnostic {
	all := append([]lint.Diagnostic(nil), r.Diagnostics...)
	for _, f := range r.Files {
		all = append(all, f.Diagnostics...)
	}
	return all
}

// Reducer accumulates results. It is not safe for concurrent use: a single
// goroutine feeds it.
type Reducer struct {
	opts   Options
	report Report
}

// NewReducer creates a reducer.
func NewReducer(opts Options) *Reducer {
	return &Reducer{opts: opts}
}

// AddDiagnostics records invocation-level diagnostics.
func (r *Reducer) AddDiagnostics(diags ...lint.Diagnostic) {
	for _, d := range diags {
		if d.Category == lint.CategoryFilesNoMatch && r.opts.NoErrorsOnUnmatched {
			d.Severity = lint.SeverityInfo
		}
		r.count(d)
		r.report.Diagnostics = append(r.report.Diagnostics, d)
	}
}

// Add records the result of one file.
func (r *Reducer) Add(res driver.Result) {
	r.report.Summary.Files++
	if res.ContentChanged {
		r.report.Summary.Changed++
	}
	if res.Hidden > 0 {
		r.report.Summary.Hidden += res.Hidden
		r.report.failed = true
	}
	for _, d := range res.Diagnostics {
		r.count(d)
	}
	r.report.Files = append(r.report.Files, res)
}

func (r *Reducer) count(d lint.Diagnostic) {
	s := &r.report.Summary
	switch d.Severity {
	case lint.SeverityError:
		s.Errors++
		r.report.failed = true
	case lint.SeverityWarning:
		s.Warnings++
		if r.opts.ErrorOnWarnings {
			r.report.failed = true
		}
	case lint.SeverityInfo:
		s.Infos++
	case lint.SeverityHint:
		s.Hints++
	}
}

// Finish sorts the accumulated results and returns the report.
func (r *Reducer) Finish() *Report {
	sort.SliceStable(r.report.Files, func(i, j int) bool {
		return r.report.Files[i].Path < r.report.Files[j].Path
	})
	sort.SliceStable(r.report.Diagnostics, func(i, j int) bool {
		return r.report.Diagnostics[i].Path < r.report.Diagnostics[j].Path
	})
	rep := r.report
	return &rep
}
