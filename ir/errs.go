package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is the root of errors for lookups of keys that are
	// not present in a table.
	ErrInvalidKey = errors.New("invalid key")

	// ErrTypeMismatch is the root of errors for lookups that found a
	// value of a different kind than the one requested.
	ErrTypeMismatch = errors.New("type mismatch")
)

// KeyError indicates a key was looked up in a table which does not
// contain it. It unwraps to ErrInvalidKey.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidKey, e.Key)
}

func (e *KeyError) Unwrap() error {
	return ErrInvalidKey
}

// TypeError indicates a key was present but its value had a different
// kind than the caller asked for. Found is the value that was there, so
// callers recovering from the mismatch need not look it up again. It
// unwraps to ErrTypeMismatch.
type TypeError struct {
	Key      string
	Found    *Value
	Expected Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %q is %s, want %s", ErrTypeMismatch, e.Key,
		e.Found.Kind(), e.Expected)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
