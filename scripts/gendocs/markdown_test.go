package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Options")
	w.Table([]string{"Option", "Description"}, [][]string{{InlineCode("--only"), "a|b"}})
	w.CodeBlock("js", "debugger;\n")

	want := "## Options\n\n" +
		"| Option | Description |\n| --- | --- |\n| `--only` | a\\|b |\n\n" +
		"```js\ndebugger;\n```\n\n"
	assert.Equal(t, want, string(w.Bytes()))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Disallow the use of debugger.", cleanDescription("Disallow the use\n\tof  debugger."))
}

func TestCleanExample(t *testing.T) {
	got := cleanExample("\n  biome lint\n    --write\n")
	assert.Equal(t, "biome lint\n  --write", got)
}
