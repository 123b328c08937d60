package main

import (
	"bytes"
	"fmt"
	"strings"
)

// MarkdownWriter accumulates a markdown document.
type MarkdownWriter struct {
	buf bytes.Buffer
}

// NewMarkdownWriter creates an empty document.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

// Frontmatter writes the YAML frontmatter read by the docs site.
func (w *MarkdownWriter) Frontmatter(title, description string) {
	w.Line("---")
	w.Line(fmt.Sprintf("title: %q", title))
	w.Line(fmt.Sprintf("description: %q", description))
	w.Line("---")
	w.Newline()
}

// GeneratedMarker warns readers not to edit the file by hand.
func (w *MarkdownWriter) GeneratedMarker() {
	w.Line("<!-- Code generated by scripts/gendocs. DO NOT EDIT. -->")
	w.Newline()
}

// Header writes a heading of the given level.
func (w *MarkdownWriter) Header(level int, text string) {
	w.Line(strings.Repeat("#", level) + " " + text)
	w.Newline()
}

// Paragraph writes text followed by a blank line.
func (w *MarkdownWriter) Paragraph(text string) {
	w.Line(text)
	w.Newline()
}

// CodeBlock writes a fenced code block.
func (w *MarkdownWriter) CodeBlock(lang, code string) {
	w.Line("```" + lang)
	w.Line(strings.TrimRight(code, "\n"))
	w.Line("```")
	w.Newline()
}

// BulletList writes one bullet per item.
func (w *MarkdownWriter) BulletList(items []string) {
	for _, item := range items {
		w.Line("- " + item)
	}
	w.Newline()
}

// Table writes a pipe table. Pipes in cells are escaped.
func (w *MarkdownWriter) Table(headers []string, rows [][]string) {
	w.Line("| " + strings.Join(headers, " | ") + " |")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	w.Line("| " + strings.Join(sep, " | ") + " |")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		w.Line("| " + strings.Join(cells, " | ") + " |")
	}
	w.Newline()
}

// Line writes text and a newline.
func (w *MarkdownWriter) Line(text string) {
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
}

// Newline writes an empty line.
func (w *MarkdownWriter) Newline() {
	w.buf.WriteByte('\n')
}

// Bytes returns the document.
func (w *MarkdownWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// InlineCode wraps s in backticks.
func InlineCode(s string) string {
	return "`" + s + "`"
}

// Bold wraps s in double asterisks.
func Bold(s string) string {
	return "**" + s + "**"
}

// cleanDescription collapses a description onto one line for table cells.
func cleanDescription(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
