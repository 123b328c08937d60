package style_test

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
func runRule(t *testing.T, lang parser.Language, src, category string, options map[string]any) []lint.Diagnostic {
	t.Helper()
	id, ok := lint.LookupCategory(category)
	require.True(t, ok, "unknown rule %s", category)

	tree, err := parser.Parse(context.Background(), lang, []byte(src))
	require.NoError(t, err)
	defer tree.Close()

	var rules lint.RulesConfiguration
	rules.SetRule(id, lint.RuleConfiguration{Level: lint.LevelOn, Options: options})
	resolved := lint.Resolve(rules, lint.ResolveOptions{
		Only: []lint.Selector{{Group: id.Group(), Rule: id, IsRule: true}},
	})
	return lint.NewAnalyzer(resolved).Analyze(tree)
}

func applyOnly(t *testing.T, src string, diags []lint.Diagnostic) string {
	t.Helper()
	require.Len(t, diags, 1)
	require.NotEmpty(t, diags[0].Fixes)
	out, err := lint.ApplyFix([]byte(src), diags[0].Fixes[0])
	require.NoError(t, err)
	return string(out)
}

func TestNoVar(t *testing.T) {
	src := "var foo = 1;"
	diags := runRule(t, parser.LanguageJavaScript, src, "lint/style/noVar", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, lint.ApplicabilityUnsafe, diags[0].Fixes[0].Applicability)
	assert.Equal(t, "let foo = 1;", applyOnly(t, src, diags))

	assert.Empty(t, runRule(t, parser.LanguageJavaScript, "const foo = 1;\nlet bar = 1;", "lint/style/noVar", nil))
	assert.Empty(t, runRule(t, parser.LanguageTypeScript, "declare global { var x: number; }", "lint/style/noVar", nil))
}

func TestUseConst(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "never reassigned", src: "let a = 3;\nconsole.log(a);", want: "const a = 3;\nconsole.log(a);"},
		{name: "multiple declarators", src: "let a = 1, b = 2;\nuse(a, b);", want: "const a = 1, b = 2;\nuse(a, b);"},
		{name: "inside block", src: "function f() { let x = g(); return x; }", want: "function f() { const x = g(); return x; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, parser.LanguageJavaScript, tt.src, "lint/style/useConst", nil)
			assert.Equal(t, tt.want, applyOnly(t, tt.src, diags))
		})
	}

	for _, src := range []string{
		"let a = 2;\na = 3;",
		"let a = 2;\na += 3;",
		"let i = 0;\ni++;",
		"let a;\na = 1;",
		"let a = 1, b = 2;\nb = 3;",
		"let a = 1;\n[a] = [2];",
		"let a = 1;\n({ a } = obj);",
		"for (let i = 0; i < 3; i++) {}",
		"const a = 1;",
	} {
		assert.Empty(t, runRule(t, parser.LanguageJavaScript, src, "lint/style/useConst", nil), src)
	}
}

func TestUseNamingConvention(t *testing.T) {
	tests := []struct {
		name    string
		lang    parser.Language
		src     string
		options map[string]any
		message string
	}{
		{name: "snake local", src: "let a_value = 0;", message: "This top-level let name should be in camelCase."},
		{name: "strict case", src: "function f() { const fooYPosition = 0; }", message: "Two consecutive uppercase characters"},
		{name: "parameter", src: "function f(FirstParam) {}", message: "This function parameter name should be in camelCase."},
		{name: "class", src: "class my_class {}", message: "This class name should be in PascalCase."},
		{name: "object property", src: "const alice = { FULL_NAME: 'Alice' };", message: "This object property name should be in camelCase."},
		{name: "type alias", lang: parser.LanguageTypeScript, src: "type person = { fullName: string };", message: "This type alias name should be in PascalCase."},
		{name: "import namespace", src: "import * as MY_LIB from 'my-lib';", message: "This import namespace name should be in camelCase or PascalCase."},
		{name: "enum member case", lang: parser.LanguageTypeScript, src: "enum Status { Open }", options: map[string]any{"enumMemberCase": "CONSTANT_CASE"}, message: "This enum member name should be in CONSTANT_CASE."},
		{name: "trimmed", src: "function f() { let __a_b = 1; }", message: "trimmed as `a_b`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang := tt.lang
			if lang == parser.LanguageUnknown {
				lang = parser.LanguageJavaScript
			}
			diags := runRule(t, lang, tt.src, "lint/style/useNamingConvention", tt.options)
			require.Len(t, diags, 1)
			assert.Contains(t, diags[0].Message, tt.message)
			assert.Equal(t, lint.SeverityWarning, diags[0].Severity, "not recommended, so warning by default")
		})
	}

	valid := []struct {
		lang parser.Language
		src  string
	}{
		{parser.LanguageJavaScript, "export const A_CONSTANT = 5;\nexport const Person = class {};\nlet aVariable = 0;"},
		{parser.LanguageJavaScript, "function f(param, _unusedParam) { let localValue = 0; try {} catch (customError) {} }"},
		{parser.LanguageJavaScript, "function Component() {}\nclass Person { static MAX_FRIEND_COUNT = 256; initializedProperty = 0; specialMethod() {} }"},
		{parser.LanguageJavaScript, "import assert, { deepStrictEqual as deepEqual, AssertionError as AssertError } from 'node:assert';"},
		{parser.LanguageJavaScript, "const headers = { 'Content-Type': 'json' };"},
		{parser.LanguageTypeScript, "enum Status { Open, Close }\ninterface Named { fullName: string }\nfunction id<Val>(value: Val): Val { return value; }"},
	}
	for _, tt := range valid {
		assert.Empty(t, runRule(t, tt.lang, tt.src, "lint/style/useNamingConvention", nil), tt.src)
	}

	assert.Empty(t, runRule(t, parser.LanguageJavaScript, "function f() { const fooYPosition = 0; }",
		"lint/style/useNamingConvention", map[string]any{"strictCase": false}))
}

func TestUseTemplate(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{src: `const s = foo + "baz";`, want: "const s = `${foo}baz`;"},
		{src: `const s = 1 + 2 + "foo" + 3;`, want: "const s = `${1 + 2}foo${3}`;"},
		{src: `const s = 1 * 2 + "foo";`, want: "const s = `${1 * 2}foo`;"},
		{src: `const s = 'it\'s ' + name;`, want: "const s = `it's ${name}`;"},
		{src: "const s = a + \"`${b}`\";", want: "const s = `${a}\\`\\${b}\\``;"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			diags := runRule(t, parser.LanguageJavaScript, tt.src, "lint/style/useTemplate", nil)
			assert.Equal(t, tt.want, applyOnly(t, tt.src, diags))
		})
	}

	for _, src := range []string{
		"let s = \"foo\" + \"bar\" + `baz`;",
		"let s = `value: ${1}`;",
		"let n = a + b;",
	} {
		assert.Empty(t, runRule(t, parser.LanguageJavaScript, src, "lint/style/useTemplate", nil), src)
	}
}
