package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TextRange
		want bool
	}{
		{"disjoint", TextRange{0, 3}, TextRange{3, 5}, false},
		{"overlapping", TextRange{0, 4}, TextRange{3, 5}, true},
		{"nested", TextRange{0, 10}, TextRange{3, 5}, true},
		{"same insertion point", TextRange{2, 2}, TextRange{2, 2}, true},
		{"insertion at boundary", TextRange{3, 3}, TextRange{3, 5}, false},
		{"insertion inside", TextRange{4, 4}, TextRange{3, 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTextRange_ContainsAndCover(t *testing.T) {
	r := NewRange(10, 2)
	assert.Equal(t, TextRange{Start: 2, End: 10}, r)
	assert.True(t, r.Contains(TextRange{Start: 2, End: 10}))
	assert.False(t, r.Contains(TextRange{Start: 1, End: 5}))
	assert.True(t, r.ContainsOffset(9))
	assert.False(t, r.ContainsOffset(10))
	assert.Equal(t, TextRange{Start: 0, End: 10}, r.Cover(TextRange{Start: 0, End: 4}))
	assert.Equal(t, -1, TextRange{1, 2}.Compare(TextRange{1, 3}))
	assert.Equal(t, 1, TextRange{2, 2}.Compare(TextRange{1, 3}))
	assert.Equal(t, 0, TextRange{1, 3}.Compare(TextRange{1, 3}))
}

func TestLineIndex_Position(t *testing.T) {
	src := []byte("let a = 4;\ndebugger;\nconst é = 1;\n")
	idx := NewLineIndex(src)

	assert.Equal(t, 4, idx.LineCount())
	assert.Equal(t, Position{Line: 1, Column: 1}, idx.Position(0))
	assert.Equal(t, Position{Line: 2, Column: 1}, idx.Position(11))
	assert.Equal(t, Position{Line: 2, Column: 9}, idx.Position(19))
	// "const é" : the é is two bytes but one column
	assert.Equal(t, Position{Line: 3, Column: 8}, idx.Position(21+8))
	assert.Equal(t, uint32(11), idx.LineStart(2))
	assert.Equal(t, 2, idx.LineOf(15))
	assert.Equal(t, Position{Line: 4, Column: 1}, idx.Position(1000))
}
