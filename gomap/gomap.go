package gomap

import (
	"fmt"

	"github.com/boml-format/go-boml/ir"
)

// Unmarshaler is implemented by types that decode themselves from a
// document value. FromIR calls UnmarshalTOML in place of its
// reflection-based conversion.
type Unmarshaler interface {
	UnmarshalTOML(v *ir.Value) error
}

// Marshaler is implemented by types that build their own document
// value. ToIR calls MarshalTOML in place of its reflection-based
// conversion.
type Marshaler interface {
	MarshalTOML() (*ir.Value, error)
}

// MapOption configures FromIR, FromTable, and ToIR.
type MapOption func(*mapOptions)

type mapOptions struct {
	strict bool
}

func newMapOptions(opts []MapOption) mapOptions {
	var res mapOptions
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

// Strict makes decoding fail on table keys that have no destination
// field. Without it, unknown keys are skipped.
func Strict() MapOption {
	return func(o *mapOptions) {
		o.strict = true
	}
}

// childPath and indexPath build the field paths reported in errors,
// as in "server.ports[2]". The top level is the empty path.

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
