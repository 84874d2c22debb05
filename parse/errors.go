package parse

import (
	"errors"
	"fmt"

	"github.com/boml-format/go-boml/token"
)

// ErrorKind classifies structural parse failures.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota + 1
	InvalidEncoding
	UnterminatedString
	InvalidEscape
	InvalidNumber
	InvalidDateTime
	DuplicateKey
	RedefinedTable
	NotATable
	ExpectedKey
	ExpectedEquals
	ExpectedValue
	ExpectedNewline
	ExpectedRightBracket
	UnexpectedEndOfInput
	DepthExceeded
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedCharacter:  "unexpected character",
	InvalidEncoding:      "invalid encoding",
	UnterminatedString:   "unterminated string",
	InvalidEscape:        "invalid escape",
	InvalidNumber:        "invalid number",
	InvalidDateTime:      "invalid date-time",
	DuplicateKey:         "duplicate key",
	RedefinedTable:       "table redefined",
	NotATable:            "not a table",
	ExpectedKey:          "expected a key",
	ExpectedEquals:       "expected '='",
	ExpectedValue:        "expected a value",
	ExpectedNewline:      "expected a newline",
	ExpectedRightBracket: "expected closing bracket",
	UnexpectedEndOfInput: "unexpected end of input",
	DepthExceeded:        "nesting too deep",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a structural parse failure. Span is the byte range of the
// offending text, Pos resolves it to line and column, and Err, when
// set, is the decode-level cause.
type Error struct {
	Kind ErrorKind
	Span token.Span
	Pos  *token.Pos
	Err  error
}

func (e *Error) Error() string {
	// skip causes that just restate the kind, like ErrUnterminated
	// under UnterminatedString
	if e.Err != nil && e.Err.Error() != e.Kind.String() {
		return fmt.Sprintf("%s: %s at %s", e.Kind, e.Err, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// scanKind maps lexer sentinels onto error kinds.
func scanKind(err error) ErrorKind {
	switch {
	case errors.Is(err, token.ErrBadUTF8):
		return InvalidEncoding
	case errors.Is(err, token.ErrUnterminated):
		return UnterminatedString
	case errors.Is(err, token.ErrBadEscape):
		return InvalidEscape
	case errors.Is(err, token.ErrNumber):
		return InvalidNumber
	case errors.Is(err, token.ErrDateTime):
		return InvalidDateTime
	default:
		return UnexpectedCharacter
	}
}
