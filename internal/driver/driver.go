// Package driver runs the lint pipeline for one file: read, parse, analyze,
// suppress, optionally fix until the content settles, cap and write back.
package driver

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"sort"

	"github.com/cespare/xxhash/v2"

	fsx "github.com/leapstack-labs/biome/internal/fs"
	"github.com/leapstack-labs/biome/internal/scanner"
	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/lint"
	"github.com/leapstack-labs/biome/pkg/lint/suppression"
	"github.com/leapstack-labs/biome/pkg/parser"
)

// DefaultMaxDiagnostics is the default number of error diagnostics shown per file.
const DefaultMaxDiagnostics = 20

// State is the terminal state of a file.
type State int

// Terminal states.
const (
	StateReported State = iota
	StateIOFailed
	StateFixBudgetExceeded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIOFailed:
		return "io-failed"
	case StateFixBudgetExceeded:
		return "fix-budget-exceeded"
	default:
		return "reported"
	}
}

// Options configures a Driver.
type Options struct {
	FS       fsx.FileSystem
	Analyzer *lint.Analyzer
	// Fix enables the fix loop (--write / --fix).
	Fix bool
	// Unsafe also applies unsafe fixes.
	Unsafe bool
	// MaxDiagnostics caps the error diagnostics reported per file.
	MaxDiagnostics int
	Cache          *Cache
	Logger         *slog.Logger
}

// Result is the envelope produced for one file.
type Result struct {
	Path           string
	ContentChanged bool
	Diagnostics    []lint.Diagnostic
	// Output holds the final content of stdin and in-memory items.
	Output []byte
	// Source holds the final content when a diagnostic carries a fix that
	// was not applied, so reporters can render the fix.
	Source []byte
	// Hidden counts the error diagnostics dropped by the cap.
	Hidden int
	State  State
}

func (r Result) clone() Result {
	c := r
	c.Diagnostics = append([]lint.Diagnostic(nil), r.Diagnostics...)
	c.Output = append([]byte(nil), r.Output...)
	return c
}

// Driver lints work items. It is safe for concurrent use.
type Driver struct {
	opts          Options
	logger        *slog.Logger
	maxIterations int
}

// New creates a driver.
func New(opts Options) *Driver {
	if opts.FS == nil {
		opts.FS = fsx.NewOS()
	}
	if opts.Analyzer == nil {
		opts.Analyzer = lint.NewAnalyzer(nil)
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Driver{opts: opts, logger: logger, maxIterations: maxFixIterations}
}

// Lint runs the pipeline for one work item. Failures that concern the file
// are reported as diagnostics on the result.
func (d *Driver) Lint(ctx context.Context, item scanner.WorkItem) Result {
	res := Result{Path: item.Path}

	src, err := d.read(item)
	if err != nil {
		res.State = StateIOFailed
		res.Diagnostics = []lint.Diagnostic{fileDiagnostic(lint.CategoryFilesIO, item.Path,
			fmt.Sprintf("Unable to read the file %s: %v", item.Path, err))}
		return res
	}

	key := cacheKey{path: item.Path, fingerprint: xxhash.Sum64(src)}
	if d.opts.Cache != nil {
		if cached, ok := d.opts.Cache.get(key); ok {
			d.logger.Debug("cache hit", slog.String("path", item.Path))
			return cached
		}
	}

	res = d.lint(ctx, item, src)
	if d.opts.Cache != nil && !res.ContentChanged && res.State == StateReported && ctx.Err() == nil {
		d.opts.Cache.add(key, res)
	}
	return res
}

func (d *Driver) lint(ctx context.Context, item scanner.WorkItem, src []byte) Result {
	res := Result{Path: item.Path}

	p, err := d.analyze(ctx, item.Language, src)
	if err != nil {
		res.State = StateIOFailed
		res.Diagnostics = []lint.Diagnostic{d.failure(item, err)}
		return res
	}

	final := src
	var applied []lint.Diagnostic
	if d.opts.Fix {
		loop := d.fixLoop(ctx, item, src, p)
		final, p, applied = loop.src, loop.pass, loop.applied
		if loop.err != nil {
			res.State = StateIOFailed
			res.Diagnostics = append(applied, d.failure(item, loop.err))
			return res
		}
		if loop.exceeded {
			res.State = StateFixBudgetExceeded
			p.diags = append(p.diags, lint.Diagnostic{
				Category: lint.CategoryInternalFixLoop,
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("The fixes did not converge after %d iterations; the remaining fixes were not applied.", d.maxIterations),
			})
		}
	}

	diags := positions(p.diags, item.Path, p.lines)
	diags, res.Hidden = capErrors(diags, item.Path, d.opts.MaxDiagnostics)
	res.Diagnostics = append(applied, diags...)
	if hasPendingFix(res.Diagnostics) {
		res.Source = final
	}

	changed := string(final) != string(src)
	switch {
	case item.Source != scanner.SourceDisk:
		res.Output = final
		res.ContentChanged = changed
	case changed && item.WriteBack:
		if err := d.write(item, final); err != nil {
			res.State = StateIOFailed
			res.Diagnostics = append(res.Diagnostics, fileDiagnostic(lint.CategoryFilesIO, item.Path, writeMessage(item.Path, err)))
			break
		}
		res.ContentChanged = true
	}

	d.logger.Debug("linted file",
		slog.String("path", item.Path),
		slog.Int("diagnostics", len(res.Diagnostics)),
		slog.Bool("changed", res.ContentChanged))
	return res
}

func hasPendingFix(diags []lint.Diagnostic) bool {
	for _, d := range diags {
		if !d.Fixed && len(d.Fixes) > 0 {
			return true
		}
	}
	return false
}

// pass is the outcome of one parse-and-analyze round.
type pass struct {
	diags       []lint.Diagnostic
	parseErrors bool
	lines       *core.LineIndex
}

// fixable reports whether the fix loop may rewrite this content.
func (p pass) fixable() bool {
	return !p.parseErrors
}

func (d *Driver) analyze(ctx context.Context, lang parser.Language, src []byte) (p pass, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPanic, r)
		}
	}()

	tree, err := parser.Parse(ctx, lang, src)
	if err != nil {
		return pass{}, err
	}
	defer tree.Close()

	diags := make([]lint.Diagnostic, 0, len(tree.Errors))
	for _, e := range tree.Errors {
		diags = append(diags, lint.Diagnostic{
			Category: lint.CategoryParse,
			Severity: lint.SeverityError,
			Message:  e.Message,
			Range:    e.Range,
		})
	}

	resolved := d.opts.Analyzer.Resolved()
	ruleDiags := d.opts.Analyzer.Analyze(tree)
	ruleDiags = suppression.Parse(tree).Apply(ruleDiags, resolved.IsEnabled)
	diags = append(diags, ruleDiags...)
	sortDiagnostics(diags)

	return pass{diags: diags, parseErrors: tree.HasErrors(), lines: tree.Lines}, nil
}

var errPanic = errors.New("panic while analyzing")

func (d *Driver) failure(item scanner.WorkItem, err error) lint.Diagnostic {
	if errors.Is(err, errPanic) {
		d.logger.Error("analysis panicked", slog.String("path", item.Path), slog.Any("error", err))
		return fileDiagnostic(lint.CategoryInternalPanic, item.Path,
			fmt.Sprintf("Biome encountered an unexpected error while processing %s: %v", item.Path, err))
	}
	return fileDiagnostic(lint.CategoryFilesIO, item.Path,
		fmt.Sprintf("Unable to process the file %s: %v", item.Path, err))
}

func (d *Driver) read(item scanner.WorkItem) ([]byte, error) {
	if item.Source != scanner.SourceDisk {
		return item.Content, nil
	}
	return d.opts.FS.ReadFile(item.FullPath)
}

func (d *Driver) write(item scanner.WorkItem, content []byte) error {
	perm := iofs.FileMode(0o644)
	if info, err := d.opts.FS.Stat(item.FullPath); err == nil {
		perm = info.Mode().Perm()
	}
	if err := d.opts.FS.WriteFile(item.FullPath, content, perm); err != nil {
		return err
	}
	d.logger.Debug("wrote fixed file", slog.String("path", item.Path))
	return nil
}

func writeMessage(path string, err error) string {
	if errors.Is(err, fsx.ErrReadOnly) {
		return fmt.Sprintf("Unable to write the fixed content of %s: the file system is read-only.", path)
	}
	return fmt.Sprintf("Unable to write the fixed content of %s: %v", path, err)
}

func fileDiagnostic(category, path, message string) lint.Diagnostic {
	return lint.Diagnostic{
		Category: category,
		Severity: lint.SeverityError,
		Message:  message,
		Path:     path,
	}
}

// sortDiagnostics orders diagnostics by start offset, end offset, then category.
func sortDiagnostics(diags []lint.Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if c := diags[i].Range.Compare(diags[j].Range); c != 0 {
			return c < 0
		}
		return diags[i].Category < diags[j].Category
	})
}

// positions stamps path and line/column positions.
func positions(diags []lint.Diagnostic, path string, lines *core.LineIndex) []lint.Diagnostic {
	for i := range diags {
		d := &diags[i]
		d.Path = path
		d.Start = lines.Position(d.Range.Start)
		d.End = lines.Position(d.Range.End)
		for j := range d.Related {
			if d.Related[j].Path == "" {
				d.Related[j].Path = path
			}
		}
	}
	return diags
}

// capErrors keeps at most limit error diagnostics and appends a summary when
// some were dropped. Other severities are never dropped.
func capErrors(diags []lint.Diagnostic, path string, limit int) ([]lint.Diagnostic, int) {
	kept := diags[:0:0]
	errs, hidden := 0, 0
	for _, d := range diags {
		if d.Severity == lint.SeverityError {
			if errs == limit {
				hidden++
				continue
			}
			errs++
		}
		kept = append(kept, d)
	}
	if hidden > 0 {
		kept = append(kept, lint.Diagnostic{
			Category: lint.CategoryMaxDiagnostics,
			Severity: lint.SeverityInfo,
			Message:  fmt.Sprintf("The number of diagnostics exceeds the limit allowed; %d not shown.", hidden),
			Path:     path,
		})
	}
	return kept, hidden
}
