package driver

import (
	"context"
	"log/slog"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/leapstack-labs/biome/internal/scanner"
	"github.com/leapstack-labs/biome/pkg/core"
	"github.com/leapstack-labs/biome/pkg/lint"
)

// maxFixIterations bounds the rounds of the fix loop.
const maxFixIterations = 10

type fixOutcome struct {
	src      []byte
	pass     pass
	applied  []lint.Diagnostic
	exceeded bool
	err      error
}

// candidate is the first applicable fix of one diagnostic.
type candidate struct {
	diag  lint.Diagnostic
	fix   lint.Fix
	rule  string
	index int
	span  core.TextRange
}

// fixLoop applies fixes and re-analyzes until no applicable fix remains,
// the content repeats or the iteration budget runs out. It never rewrites
// content that has parse errors.
func (d *Driver) fixLoop(ctx context.Context, item scanner.WorkItem, src []byte, p pass) fixOutcome {
	out := fixOutcome{src: src, pass: p}
	seen := map[uint64]bool{xxhash.Sum64(src): true}

	for iter := 0; ; iter++ {
		if ctx.Err() != nil || !out.pass.fixable() {
			return out
		}
		batch := d.selectFixes(out.pass.diags)
		if len(batch) == 0 {
			return out
		}
		if iter == d.maxIterations {
			d.logger.Warn("fix loop did not converge", slog.String("path", item.Path), slog.Int("iterations", iter))
			out.exceeded = true
			return out
		}

		next, err := applyBatch(out.src, batch)
		if err != nil {
			// a rule produced conflicting edits; apply its fixes one at a time
			next, batch, err = applyFirst(out.src, batch)
			if err != nil {
				d.logger.Warn("discarding invalid fix", slog.String("path", item.Path), slog.Any("error", err))
				return out
			}
		}
		fp := xxhash.Sum64(next)
		if seen[fp] {
			d.logger.Debug("fix loop reached a cycle", slog.String("path", item.Path), slog.Int("iterations", iter))
			return out
		}
		seen[fp] = true

		for _, c := range batch {
			out.applied = append(out.applied, appliedDiagnostic(c, item.Path, out.pass.lines))
		}

		p, err := d.analyze(ctx, item.Language, next)
		if err != nil {
			out.err = err
			return out
		}
		out.src, out.pass = next, p
		d.logger.Debug("applied fixes",
			slog.String("path", item.Path),
			slog.Int("iteration", iter+1),
			slog.Int("fixes", len(batch)))
	}
}

// selectFixes picks non-overlapping fixes, earliest first, breaking ties by
// rule name and fix index.
func (d *Driver) selectFixes(diags []lint.Diagnostic) []candidate {
	var cands []candidate
	for _, diag := range diags {
		if diag.Fixed {
			continue
		}
		for i, f := range diag.Fixes {
			if len(f.Edits) == 0 || !d.applicable(f) {
				continue
			}
			rule := diag.Category
			if id, ok := lint.LookupCategory(diag.Category); ok {
				rule = id.Name()
			}
			cands = append(cands, candidate{diag: diag, fix: f, rule: rule, index: i, span: f.Span()})
			break
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.span.Start != b.span.Start {
			return a.span.Start < b.span.Start
		}
		if a.rule != b.rule {
			return a.rule < b.rule
		}
		return a.index < b.index
	})

	var batch []candidate
	for _, c := range cands {
		overlaps := false
		for _, b := range batch {
			if c.span.Overlaps(b.span) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			batch = append(batch, c)
		}
	}
	return batch
}

func (d *Driver) applicable(f lint.Fix) bool {
	return f.Applicability == lint.ApplicabilitySafe || d.opts.Unsafe
}

func applyBatch(src []byte, batch []candidate) ([]byte, error) {
	var merged lint.Fix
	for _, c := range batch {
		merged.Edits = append(merged.Edits, c.fix.Edits...)
	}
	return lint.ApplyFix(src, merged)
}

// applyFirst applies the first fix of the batch that is valid on its own.
func applyFirst(src []byte, batch []candidate) ([]byte, []candidate, error) {
	var lastErr error
	for _, c := range batch {
		next, err := lint.ApplyFix(src, c.fix)
		if err == nil {
			return next, []candidate{c}, nil
		}
		lastErr = err
	}
	return nil, nil, lastErr
}

// appliedDiagnostic reports an applied fix as an informational diagnostic,
// positioned in the content the fix was applied to.
func appliedDiagnostic(c candidate, path string, lines *core.LineIndex) lint.Diagnostic {
	notes := append([]string(nil), c.diag.Notes...)
	notes = append(notes, "Applied fix: "+c.fix.Description)
	return lint.Diagnostic{
		Category: c.diag.Category,
		Severity: lint.SeverityInfo,
		Message:  c.diag.Message,
		Range:    c.diag.Range,
		Notes:    notes,
		Fixed:    true,
		Path:     path,
		Start:    lines.Position(c.diag.Range.Start),
		End:      lines.Position(c.diag.Range.End),
	}
}
