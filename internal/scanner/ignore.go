package scanner

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/moby/patternmatcher"
)

// compileIgnore turns the lines of a .gitignore file into a pattern matcher.
// Unanchored patterns match at any depth. A trailing slash restricts the
// pattern to directories: it matches what lies beneath them and never a
// file of the same name.
func compileIgnore(content []byte) (*patternmatcher.PatternMatcher, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negated := false
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			negated, line = true, rest
		}
		line = strings.TrimPrefix(line, "\\")
		var dirOnly bool
		line, dirOnly = strings.CutSuffix(line, "/")
		if line == "" {
			continue
		}

		anchored := strings.Contains(line, "/")
		line = strings.TrimPrefix(line, "/")
		if !anchored && !strings.HasPrefix(line, "**/") {
			line = "**/" + line
		}
		if dirOnly {
			line += "/**"
		}
		if negated {
			line = "!" + line
		}
		patterns = append(patterns, line)
	}
	return patternmatcher.New(patterns)
}

// ignored reports whether rel (slash-separated, relative to the ignore file)
// is excluded by pm or sits under an excluded directory.
func ignored(pm *patternmatcher.PatternMatcher, rel string) bool {
	if pm == nil || rel == "" || rel == "." || strings.HasPrefix(rel, "../") {
		return false
	}
	ok, err := pm.MatchesOrParentMatches(filepath.FromSlash(rel))
	return err == nil && ok
}

// matchIncludes evaluates an ordered include list. An empty list accepts
// everything; a list of only negated patterns starts from "included".
// Later patterns override earlier ones.
func matchIncludes(patterns []string, rel string) bool {
	if len(patterns) == 0 {
		return true
	}
	included := true
	for _, p := range patterns {
		if !strings.HasPrefix(p, "!") {
			included = false
			break
		}
	}
	for _, p := range patterns {
		negated := strings.HasPrefix(p, "!")
		pat := strings.TrimPrefix(strings.TrimPrefix(p, "!"), "./")
		if globMatch(pat, rel) {
			included = !negated
		}
	}
	return included
}

// globMatch matches rel against pat, or against pat as a directory prefix.
func globMatch(pat, rel string) bool {
	if ok, err := doublestar.Match(pat, rel); err == nil && ok {
		return true
	}
	if strings.HasSuffix(pat, "/**") {
		return false
	}
	ok, err := doublestar.Match(strings.TrimSuffix(pat, "/")+"/**", rel)
	return err == nil && ok
}
