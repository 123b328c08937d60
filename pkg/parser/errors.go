package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/biome/pkg/core"
)

// ErrNoHandler is returned when parsing is requested for a language without a grammar.
var ErrNoHandler = errors.New("no language handler")

// ParseError is a syntax error recovered by the parser.
type ParseError struct {
	Range   core.TextRange
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Range, e.Message)
}

// maxParseErrors bounds the errors collected from heavily malformed input.
const maxParseErrors = 50

// maxWalkDepth prevents stack exhaustion on pathological nesting.
const maxWalkDepth = 2000
