package complexity_test

import (
	"context"
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

func TestNoUselessRename(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "import",
			src:  "import {a as a} from 'mod'; function f(){return{a}} class Foo{}",
			want: "import {a} from 'mod'; function f(){return{a}} class Foo{}",
		},
		{
			name: "export",
			src:  "const foo = 1;\nexport { foo as foo };",
			want: "const foo = 1;\nexport { foo };",
		},
		{
			name: "destructuring",
			src:  "const { bar: bar } = obj;",
			want: "const { bar } = obj;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "lint/complexity/noUselessRename")
			require.Len(t, diags, 1)
			fix := diags[0].Fixes[0]
			assert.Equal(t, lint.ApplicabilitySafe, fix.Applicability)
			out, err := lint.ApplyFix([]byte(tt.src), fix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}

	for _, src := range []string{
		"import { foo as bar } from 'baz';",
		"const { a: b } = obj;",
		"const { a: { a } } = obj;",
		"export { x as default };",
	} {
		assert.Empty(t, runRule(t, src, "lint/complexity/noUselessRename"), src)
	}
}

func TestNoUselessCatch(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDiag bool
	}{
		{name: "rethrow only", src: "try { a(); } catch (e) { throw e; }", wantDiag: true},
		{name: "rethrow with finally", src: "try { a(); } catch (e) { throw e; } finally { b(); }", wantDiag: true},
		{name: "handles error", src: "try { a(); } catch (e) { log(e); throw e; }"},
		{name: "throws other", src: "try { a(); } catch (e) { throw new Error(e); }"},
		{name: "destructured", src: "try { a(); } catch ({ message }) { throw message; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "lint/complexity/noUselessCatch")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Empty(t, diags[0].Fixes)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}
