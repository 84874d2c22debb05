package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"

	"github.com/boml-format/go-boml/ir"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*Marshaler)(nil)).Elem()
)

// ToIR builds a document value from a Go value. Struct fields keep
// their declaration order and map keys are sorted. Struct fields and
// map entries holding nil pointers or nil interfaces are left out,
// since a document has no way to write them; a nil anywhere else is an
// error. time.Time values become date-time values in RFC 3339 form.
func ToIR(v any, opts ...MapOption) (*ir.Value, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot represent nil"}
	}
	e := &encoder{opts: newMapOptions(opts), visited: map[uintptr]string{}}
	return e.value(reflect.ValueOf(v), "")
}

type encoder struct {
	opts mapOptions

	// visited holds the pointers on the path from the root to the
	// value being built, to catch cyclic inputs.
	visited map[uintptr]string
}

func (e *encoder) value(val reflect.Value, path string) (*ir.Value, error) {
	if !val.IsValid() {
		return nil, &MarshalError{FieldPath: path, Message: "cannot represent nil"}
	}
	// Unwrap before the method checks so a time.Time or a Marshaler
	// behind a pointer or interface converts the same as a direct one.
	switch val.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: path, Message: "cannot represent nil"}
		}
		addr := val.Pointer()
		if prev, seen := e.visited[addr]; seen {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("circular reference detected, previously seen at %q", prev),
			}
		}
		e.visited[addr] = path
		res, err := e.value(val.Elem(), path)
		delete(e.visited, addr)
		return res, err
	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: path, Message: "cannot represent nil"}
		}
		return e.value(val.Elem(), path)
	}
	if m, ok := marshalerFor(val); ok {
		return m.MarshalTOML()
	}
	if val.Type() == timeType {
		t := val.Interface().(time.Time)
		return ir.FromDateTime(t.Format(time.RFC3339Nano)), nil
	}
	if tm, ok := textMarshalerFor(val); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("MarshalText failed: %v", err), Err: err}
		}
		return ir.FromString(string(b)), nil
	}
	switch val.Kind() {
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInteger(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("integer %d overflows int64", u)}
		}
		return ir.FromInteger(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.Bool:
		return ir.FromBoolean(val.Bool()), nil
	case reflect.Slice, reflect.Array:
		return e.array(val, path)
	case reflect.Map:
		return e.table(val, path)
	case reflect.Struct:
		return e.structTable(val, path)
	default:
		return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported type %s", val.Type())}
	}
}

func (e *encoder) array(val reflect.Value, path string) (*ir.Value, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		addr := val.Pointer()
		if prev, seen := e.visited[addr]; seen {
			return nil, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("circular reference detected, previously seen at %q", prev),
			}
		}
		e.visited[addr] = path
		defer delete(e.visited, addr)
	}
	elems := make([]*ir.Value, val.Len())
	for i := range elems {
		elem, err := e.value(val.Index(i), indexPath(path, i))
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return ir.FromArray(elems), nil
}

func (e *encoder) table(val reflect.Value, path string) (*ir.Value, error) {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return nil, &MarshalError{FieldPath: path, Message: fmt.Sprintf("map key type of %s must be a string", typ)}
	}
	tab := ir.NewTable()
	if val.IsNil() {
		return ir.FromTable(tab), nil
	}
	addr := val.Pointer()
	if prev, seen := e.visited[addr]; seen {
		return nil, &MarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("circular reference detected, previously seen at %q", prev),
		}
	}
	e.visited[addr] = path
	defer delete(e.visited, addr)

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	slices.Sort(keys)
	for _, key := range keys {
		mv := val.MapIndex(reflect.ValueOf(key).Convert(typ.Key()))
		if skipNil(mv) {
			continue
		}
		elem, err := e.value(mv, childPath(path, key))
		if err != nil {
			return nil, err
		}
		tab.Set(key, elem)
	}
	return ir.FromTable(tab), nil
}

func (e *encoder) structTable(val reflect.Value, path string) (*ir.Value, error) {
	tab := ir.NewTable()
	for _, f := range typeFields(val.Type()) {
		fv, ok := fieldRead(val, f.index)
		if !ok {
			continue
		}
		if f.omitEmpty && isEmpty(fv) {
			continue
		}
		if skipNil(fv) {
			continue
		}
		elem, err := e.value(fv, childPath(path, f.name))
		if err != nil {
			return nil, err
		}
		tab.Set(f.name, elem)
	}
	return ir.FromTable(tab), nil
}

// skipNil reports field values a document cannot write: nil pointers
// and nil interfaces.
func skipNil(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		return val.IsNil()
	}
	return false
}

// isEmpty reports values the omitempty option drops: zero scalars,
// empty collections, and nils.
func isEmpty(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return val.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return val.IsZero()
	case reflect.Pointer, reflect.Interface:
		return val.IsNil()
	}
	return false
}

// marshalerFor finds a MarshalTOML implementation on val or, for a
// value type whose pointer carries the method, on an addressable copy.
func marshalerFor(val reflect.Value) (Marshaler, bool) {
	if m, ok := val.Interface().(Marshaler); ok {
		return m, true
	}
	if val.CanAddr() {
		if m, ok := val.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	if val.Kind() != reflect.Pointer && reflect.PointerTo(val.Type()).Implements(marshalerType) {
		pv := reflect.New(val.Type())
		pv.Elem().Set(val)
		return pv.Interface().(Marshaler), true
	}
	return nil, false
}

func textMarshalerFor(val reflect.Value) (encoding.TextMarshaler, bool) {
	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return tm, true
	}
	if val.CanAddr() {
		if tm, ok := val.Addr().Interface().(encoding.TextMarshaler); ok {
			return tm, true
		}
	}
	return nil, false
}
