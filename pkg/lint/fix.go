package lint

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOverlappingEdits is returned when the edits of a fix overlap.
var ErrOverlappingEdits = errors.New("fix edits overlap")

// ApplyFix applies the edits of fix to src and returns the new content.
// src is not modified.
func ApplyFix(src []byte, fix Fix) ([]byte, error) {
	edits := make([]TextEdit, len(fix.Edits))
	copy(edits, fix.Edits)
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Range.Compare(edits[j].Range) < 0
	})

	var prevEnd uint32
	for i, e := range edits {
		if e.Range.Start > e.Range.End || int(e.Range.End) > len(src) {
			return nil, fmt.Errorf("fix %q: edit %s is out of bounds", fix.Description, e.Range)
		}
		if i > 0 && e.Range.Start < prevEnd {
			return nil, fmt.Errorf("fix %q: %w", fix.Description, ErrOverlappingEdits)
		}
		prevEnd = e.Range.End
	}

	out := make([]byte, 0, len(src))
	var last uint32
	for _, e := range edits {
		out = append(out, src[last:e.Range.Start]...)
		out = append(out, e.NewText...)
		last = e.Range.End
	}
	out = append(out, src[last:]...)
	return out, nil
}
