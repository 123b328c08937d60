package scanner

import (
	"github.com/leapstack-labs/biome/pkg/parser"
)

// Source tells where the content of a work item comes from.
type Source int

// Content sources.
const (
	SourceDisk Source = iota
	SourceStdin
	SourceMemory
)

// WorkItem is one file accepted by the gate.
type WorkItem struct {
	// Path is the display path, relative to the scan root when possible,
	// with forward slashes.
	Path string
	// FullPath is the path used for filesystem operations.
	FullPath string
	Language parser.Language
	Source   Source
	// Content holds the source for stdin and memory items.
	Content []byte
	// WriteBack allows the driver to write fixed content to FullPath.
	WriteBack bool
	// Explicit is set when the path was named on the command line.
	Explicit bool
}

// NewStdinItem creates the work item for content read from stdin.
// The virtual path only selects the language; nothing is written back.
func NewStdinItem(virtualPath string, content []byte) (WorkItem, bool) {
	lang, ok := parser.LanguageForPath(virtualPath)
	return WorkItem{
		Path:     virtualPath,
		FullPath: virtualPath,
		Language: lang,
		Source:   SourceStdin,
		Content:  content,
		Explicit: true,
	}, ok
}
