package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = fmt.Errorf("%w: bad unicode scalar", ErrBadEscape)
	ErrNumber       = errors.New("bad number")
	ErrDateTime     = errors.New("bad date-time")
	ErrCharacter    = errors.New("unexpected character")

	ErrNumberLeadingZero = fmt.Errorf("%w: leading zero", ErrNumber)
	ErrNumberUnderscore  = fmt.Errorf("%w: misplaced underscore", ErrNumber)
	ErrNumberTooLong     = fmt.Errorf("%w: too long", ErrNumber)
)

// ScanError is a lexical error bound to the position it occurred at.
type ScanError struct {
	Err  error
	Span Span
	Pos  Pos
}

func NewScanError(err error, span Span, pos *Pos) *ScanError {
	return &ScanError{Err: err, Span: span, Pos: *pos}
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
