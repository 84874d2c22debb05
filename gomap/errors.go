package gomap

import "fmt"

// UnmarshalError reports a failure decoding a document value into a Go
// value. FieldPath locates the failure in the document, e.g.
// "server.ports[2]"; it is empty at the top level.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// MarshalError reports a failure building a document value from a Go
// value.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// TypeError reports a document value whose kind cannot convert to the
// destination Go type.
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	msg := fmt.Sprintf("cannot decode %s into %s", e.Actual, e.Expected)
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}
