package correctness_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/biome/pkg/parser"
)

// Helper to run a single rule and return its diagnostics
func runRule(t *testing.T, src, category string) []lint.Diagnostic {
	t.Helper()
	id, ok := lint.LookupCategory(category)
	require.True(t, ok, "unknown rule %s", category)

	tree, err := parser.Parse(context.Background(), parser.LanguageJavaScript, []byte(src))
	require.NoError(t, err)
	defer tree.Close()

	resolved := lint.Resolve(lint.RulesConfiguration{}, lint.ResolveOptions{
		Only: []lint.Selector{{Group: id.Group(), Rule: id, IsRule: true}},
	})
	return lint.NewAnalyzer(resolved).Analyze(tree)
}

func TestNoConstantCondition(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDiag bool
	}{
		{name: "if false", src: "if (false) { run(); }", wantDiag: true},
		{name: "for true", src: "for(;true;);", wantDiag: true},
		{name: "while literal", src: "while (1) {}", wantDiag: true},
		{name: "do while object", src: "do {} while ({});", wantDiag: true},
		{name: "ternary", src: "const a = 'x' ? b : c;", wantDiag: true},
		{name: "negated literal", src: "if (!0) {}", wantDiag: true},
		{name: "typeof", src: "if (typeof x) {}", wantDiag: true},
		{name: "function expression", src: "if (function () {}) {}", wantDiag: true},
		{name: "comparison", src: "if (x === 0) {}"},
		{name: "variable", src: "while (running) {}"},
		{name: "endless for", src: "for (;;) {}"},
		{name: "template with substitution", src: "if (`${x}`) {}"},
		{name: "generator loop", src: "function* gen() { while (true) { yield 1; } }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "lint/correctness/noConstantCondition")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, "Unexpected constant condition.", diags[0].Message)
				assert.Equal(t, lint.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestNoConstantCondition_ManyLoops(t *testing.T) {
	src := strings.Repeat("for(;true;);\n", 48)
	assert.Len(t, runRule(t, src, "lint/correctness/noConstantCondition"), 48)
}

func TestUseIsNan(t *testing.T) {
	tests := []struct {
		src      string
		wantDiag bool
	}{
		{src: "if (x == NaN) {}", wantDiag: true},
		{src: "if (Number.NaN !== y) {}", wantDiag: true},
		{src: "switch (NaN) { case x: }", wantDiag: true},
		{src: "switch (x) { case NaN: }", wantDiag: true},
		{src: "if (Number.isNaN(x)) {}"},
		{src: "x = NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			diags := runRule(t, tt.src, "lint/correctness/useIsNan")
			if tt.wantDiag {
				assert.Len(t, diags, 1)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}
