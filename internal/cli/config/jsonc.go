package config

import (
	"github.com/knadh/koanf/parsers/json"
)

// JSONC is a koanf parser for JSON with comments and trailing commas.
type JSONC struct {
	json *json.JSON
}

// JSONCParser returns a JSONC parser.
func JSONCParser() *JSONC {
	return &JSONC{json: json.Parser()}
}

// Unmarshal strips comments and trailing commas and parses the rest as JSON.
func (p *JSONC) Unmarshal(b []byte) (map[string]interface{}, error) {
	return p.json.Unmarshal(StripJSONC(b))
}

// Marshal writes plain JSON.
func (p *JSONC) Marshal(o map[string]interface{}) ([]byte, error) {
	return p.json.Marshal(o)
}

// StripJSONC blanks out comments and drops trailing commas in objects and
// arrays. String literals are left untouched and byte offsets of the
// remaining tokens are preserved, so JSON syntax errors still point at the
// right place.
func StripJSONC(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	inString := false
	lastComma := -1
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			lastComma = -1
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			out[i], out[i+1] = ' ', ' '
			i += 2
			for i < len(out) && !(out[i] == '*' && i+1 < len(out) && out[i+1] == '/') {
				if out[i] != '\n' {
					out[i] = ' '
				}
				i++
			}
			if i < len(out) {
				out[i], out[i+1] = ' ', ' '
				i++
			}
		case c == ',':
			lastComma = i
		case c == '}' || c == ']':
			if lastComma >= 0 {
				out[lastComma] = ' '
			}
			lastComma = -1
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			lastComma = -1
		}
	}
	return out
}
