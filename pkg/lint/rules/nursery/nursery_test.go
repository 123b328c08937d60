package nursery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/biome/pkg/lint"
	_ "github.com/leapstack-labs/biome/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/biome/pkg/parser"
)

func analyze(t *testing.T, src string, opts lint.ResolveOptions) []lint.Diagnostic {
	t.Helper()
	tree, err := parser.Parse(context.Background(), parser.LanguageJavaScript, []byte(src))
	require.NoError(t, err)
	defer tree.Close()
	return lint.NewAnalyzer(lint.Resolve(lint.RulesConfiguration{}, opts)).Analyze(tree)
}

func TestNoUselessTernary(t *testing.T) {
	sel, err := lint.ParseSelector("nursery/noUselessTernary")
	require.NoError(t, err)
	only := lint.ResolveOptions{Only: []lint.Selector{sel}}

	tests := []struct {
		src  string
		want string
	}{
		{src: "var a = x ? true : true;", want: "var a = true;"},
		{src: "var a = x ? false : false;", want: "var a = false;"},
		{src: "var a = x === 1 ? true : false;", want: "var a = x === 1;"},
		{src: "var a = foo ? true : false;", want: "var a = !!foo;"},
		{src: "var a = foo ? false : true;", want: "var a = !foo;"},
		{src: "var a = foo + 1 ? false : true;", want: "var a = !(foo + 1);"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			diags := analyze(t, tt.src, only)
			require.Len(t, diags, 1)
			out, err := lint.ApplyFix([]byte(tt.src), diags[0].Fixes[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}

	assert.Empty(t, analyze(t, "var a = x ? 'a' : 'b';", only))
}

func TestNoUselessTernary_UnstableGroup(t *testing.T) {
	src := "var a = x ? true : true;"

	stable := analyze(t, src, lint.ResolveOptions{LinterEnabled: true})
	for _, d := range stable {
		assert.NotEqual(t, "lint/nursery/noUselessTernary", d.Category)
	}

	unstable := analyze(t, src, lint.ResolveOptions{LinterEnabled: true, Unstable: true})
	var found bool
	for _, d := range unstable {
		found = found || d.Category == "lint/nursery/noUselessTernary"
	}
	assert.True(t, found, "recommended nursery rules run in unstable mode")
}
