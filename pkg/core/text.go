package core

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// TextRange is a half-open byte range [Start, End) into a source file.
type TextRange struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// NewRange creates a range, swapping the bounds if needed.
func NewRange(start, end uint32) TextRange {
	if end < start {
		start, end = end, start
	}
	return TextRange{Start: start, End: end}
}

// Len returns the number of bytes covered by the range.
func (r TextRange) Len() uint32 {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether other lies entirely inside r.
func (r TextRange) Contains(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// ContainsOffset reports whether offset lies inside r.
func (r TextRange) ContainsOffset(offset uint32) bool {
	return r.Start <= offset && offset < r.End
}

// Overlaps reports whether r and other share at least one byte,
// or whether one is an empty insertion strictly inside the other.
func (r TextRange) Overlaps(other TextRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		if r.IsEmpty() && other.IsEmpty() {
			return r.Start == other.Start
		}
		if r.IsEmpty() {
			return other.Start < r.Start && r.Start < other.End
		}
		return r.Start < other.Start && other.Start < r.End
	}
	return r.Start < other.End && other.Start < r.End
}

// Cover returns the smallest range containing both r and other.
func (r TextRange) Cover(other TextRange) TextRange {
	start, end := r.Start, r.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return TextRange{Start: start, End: end}
}

// Compare orders ranges by start offset, then by end offset.
func (r TextRange) Compare(other TextRange) int {
	switch {
	case r.Start < other.Start:
		return -1
	case r.Start > other.Start:
		return 1
	case r.End < other.End:
		return -1
	case r.End > other.End:
		return 1
	default:
		return 0
	}
}

// String returns the range as "start..end".
func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Position is a 1-based line and column in a source file.
// Column counts Unicode code points.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex converts byte offsets into line/column positions.
type LineIndex struct {
	src        []byte
	lineStarts []uint32
}

// NewLineIndex builds a line index for src.
func NewLineIndex(src []byte) *LineIndex {
	starts := []uint32{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return &LineIndex{src: src, lineStarts: starts}
}

// LineCount returns the number of lines in the source.
func (idx *LineIndex) LineCount() int {
	return len(idx.lineStarts)
}

// Position returns the 1-based position of a byte offset.
// Offsets past the end clamp to the end of the source.
func (idx *LineIndex) Position(offset uint32) Position {
	if int(offset) > len(idx.src) {
		offset = uint32(len(idx.src))
	}
	line := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	start := idx.lineStarts[line]
	col := utf8.RuneCount(idx.src[start:offset]) + 1
	return Position{Line: line + 1, Column: col}
}

// LineStart returns the byte offset at which the 1-based line begins.
func (idx *LineIndex) LineStart(line int) uint32 {
	if line < 1 {
		return 0
	}
	if line > len(idx.lineStarts) {
		return uint32(len(idx.src))
	}
	return idx.lineStarts[line-1]
}

// LineOf returns the 1-based line containing offset.
func (idx *LineIndex) LineOf(offset uint32) int {
	return idx.Position(offset).Line
}
