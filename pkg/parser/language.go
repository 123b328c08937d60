package parser

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language identifies a source language with a registered handler.
type Language int

// Supported languages.
const (
	LanguageUnknown Language = iota
	// LanguageJavaScript covers .js, .mjs, .cjs and .jsx (the grammar accepts JSX).
	LanguageJavaScript
	// LanguageTypeScript covers .ts, .mts and .cts.
	LanguageTypeScript
	// LanguageTSX covers .tsx.
	LanguageTSX
)

// String returns the language name.
func (l Language) String() string {
	switch l {
	case LanguageJavaScript:
		return "javascript"
	case LanguageTypeScript:
		return "typescript"
	case LanguageTSX:
		return "tsx"
	default:
		return "unknown"
	}
}

// IsTypeScript reports whether the language carries type annotations.
func (l Language) IsTypeScript() bool {
	return l == LanguageTypeScript || l == LanguageTSX
}

// SupportsJSX reports whether the language grammar accepts JSX.
func (l Language) SupportsJSX() bool {
	return l == LanguageJavaScript || l == LanguageTSX
}

// extensions maps lowercase file extensions to their language handler.
var extensions = map[string]Language{
	".js":  LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
	".jsx": LanguageJavaScript,
	".ts":  LanguageTypeScript,
	".mts": LanguageTypeScript,
	".cts": LanguageTypeScript,
	".tsx": LanguageTSX,
}

// LanguageForPath returns the language handler for a file path by extension.
// Returns LanguageUnknown and false when no handler is registered.
func LanguageForPath(path string) (Language, bool) {
	if strings.HasSuffix(path, ".d.ts") {
		return LanguageTypeScript, true
	}
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// Extensions returns the file extensions that have a language handler.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	return exts
}

// grammar returns the tree-sitter grammar for the language.
func (l Language) grammar() *sitter.Language {
	switch l {
	case LanguageJavaScript:
		return javascript.GetLanguage()
	case LanguageTypeScript:
		return typescript.GetLanguage()
	case LanguageTSX:
		return tsx.GetLanguage()
	default:
		return nil
	}
}
