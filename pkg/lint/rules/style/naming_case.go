package style

import (
	"strings"
	"unicode"
)

// nameCase is the casing of an identifier.
type nameCase int

const (
	caseUnknown nameCase = iota
	caseCamel
	casePascal
	caseConstant
	caseLower
	caseUpper
	caseSnake
)

// String returns the conventional spelling of the case.
func (c nameCase) String() string {
	switch c {
	case caseCamel:
		return "camelCase"
	case casePascal:
		return "PascalCase"
	case caseConstant:
		return "CONSTANT_CASE"
	case caseLower:
		return "lowercase"
	case caseUpper:
		return "UPPERCASE"
	case caseSnake:
		return "snake_case"
	default:
		return "unknown case"
	}
}

// parseNameCase parses the spelling used by the enumMemberCase option.
func parseNameCase(s string) (nameCase, bool) {
	for _, c := range []nameCase{caseCamel, casePascal, caseConstant} {
		if c.String() == s {
			return c, true
		}
	}
	return caseUnknown, false
}

// identifyCase classifies name. With strict set, camelCase and PascalCase
// names must not contain two consecutive uppercase letters.
func identifyCase(name string, strict bool) nameCase {
	if name == "" {
		return caseUnknown
	}
	var hasLower, hasUpper, hasUnderscore, consecutiveUpper bool
	prevUpper := false
	for i, r := range name {
		switch {
		case r == '_':
			if i == 0 || i == len(name)-1 || strings.HasPrefix(name[i+1:], "_") {
				return caseUnknown
			}
			hasUnderscore = true
			prevUpper = false
		case unicode.IsUpper(r):
			if prevUpper {
				consecutiveUpper = true
			}
			hasUpper = true
			prevUpper = true
		case unicode.IsLower(r):
			hasLower = true
			prevUpper = false
		case unicode.IsDigit(r):
			prevUpper = false
		default:
			return caseUnknown
		}
	}

	first := []rune(name)[0]
	switch {
	case hasUnderscore && hasLower && hasUpper:
		return caseUnknown
	case hasUnderscore && hasUpper:
		return caseConstant
	case hasUnderscore:
		return caseSnake
	case !hasUpper:
		return caseLower
	case !hasLower:
		return caseUpper
	case strict && consecutiveUpper:
		return caseUnknown
	case unicode.IsUpper(first):
		return casePascal
	case unicode.IsLower(first):
		return caseCamel
	default:
		return caseUnknown
	}
}

// compatible reports whether a name of case c satisfies the expected case.
func (c nameCase) compatible(expected nameCase, name string) bool {
	if c == expected {
		return true
	}
	switch expected {
	case caseCamel:
		return c == caseLower
	case casePascal:
		return c == caseUpper && len([]rune(name)) == 1
	case caseConstant:
		return c == caseUpper
	}
	return false
}

// words splits an identifier into its lowercased words.
func words(name string) []string {
	var out []string
	var cur []rune
	runes := []rune(name)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if r == '_' || r == '-' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// convertCase rewrites name into case c.
func convertCase(name string, c nameCase) string {
	ws := words(name)
	var b strings.Builder
	for i, w := range ws {
		switch c {
		case caseConstant:
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteString(strings.ToUpper(w))
		case caseCamel:
			if i == 0 {
				b.WriteString(w)
				continue
			}
			b.WriteString(capitalize(w))
		default:
			b.WriteString(capitalize(w))
		}
	}
	return b.String()
}

func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// trimAffixes strips leading and trailing underscores and dollar signs.
func trimAffixes(name string) string {
	return strings.Trim(name, "_$")
}
