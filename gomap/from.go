package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/boml-format/go-boml/ir"
)

// FromIR decodes a document value into v, which must be a non-nil
// pointer. Strings that alias the source text are copied on the way
// out, so the decoded result never pins the document it came from.
func FromIR(value *ir.Value, v any, opts ...MapOption) error {
	if v == nil {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: fmt.Sprintf("destination must be a non-nil pointer, not %T", v)}
	}
	d := &decoder{opts: newMapOptions(opts)}
	return d.value(value, rv.Elem(), "")
}

// FromTable decodes a document root into v. See FromIR.
func FromTable(t *ir.Table, v any, opts ...MapOption) error {
	return FromIR(ir.FromTable(t), v, opts...)
}

type decoder struct {
	opts mapOptions
}

func (d *decoder) value(v *ir.Value, val reflect.Value, path string) error {
	if v.Kind() == ir.InvalidKind {
		return &UnmarshalError{FieldPath: path, Message: "no value"}
	}
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		if u, ok := val.Interface().(Unmarshaler); ok {
			return u.UnmarshalTOML(v)
		}
		return d.value(v, val.Elem(), path)
	}
	if val.CanAddr() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalTOML(v)
		}
	}
	if s, ok := text(v); ok && val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if err := tu.UnmarshalText([]byte(s)); err != nil {
				return &UnmarshalError{
					FieldPath: path,
					Message:   fmt.Sprintf("cannot decode %s %q: %v", v.Kind(), s, err),
					Err:       err,
				}
			}
			return nil
		}
	}
	if val.Kind() == reflect.Interface {
		if val.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("cannot decode into %s", val.Type())}
		}
		val.Set(reflect.ValueOf(anyValue(v)))
		return nil
	}
	switch v.Kind() {
	case ir.StringKind, ir.DateKind, ir.TimeKind, ir.DateTimeKind:
		if val.Kind() != reflect.String {
			return typeErr(path, val.Type(), v.Kind())
		}
		s, _ := text(v)
		val.SetString(owned(v, s))
		return nil
	case ir.IntegerKind:
		return d.integer(v, val, path)
	case ir.FloatKind:
		return d.float(v, val, path)
	case ir.BooleanKind:
		b, _ := v.AsBoolean()
		if val.Kind() != reflect.Bool {
			return typeErr(path, val.Type(), v.Kind())
		}
		val.SetBool(b)
		return nil
	case ir.ArrayKind:
		return d.array(v, val, path)
	default:
		return d.table(v, val, path)
	}
}

func (d *decoder) integer(v *ir.Value, val reflect.Value, path string) error {
	i, _ := v.AsInteger()
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("integer %d overflows %s", i, val.Type())}
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i < 0 || val.OverflowUint(uint64(i)) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("integer %d overflows %s", i, val.Type())}
		}
		val.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		val.SetFloat(float64(i))
	default:
		return typeErr(path, val.Type(), v.Kind())
	}
	return nil
}

func (d *decoder) float(v *ir.Value, val reflect.Value, path string) error {
	f, _ := v.AsFloat()
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		if val.OverflowFloat(f) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("float %v overflows %s", f, val.Type())}
		}
		val.SetFloat(f)
	default:
		return typeErr(path, val.Type(), v.Kind())
	}
	return nil
}

func (d *decoder) array(v *ir.Value, val reflect.Value, path string) error {
	elems, _ := v.AsArray()
	switch val.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(val.Type(), len(elems), len(elems))
		for i, elem := range elems {
			if err := d.value(elem, out.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		val.Set(out)
	case reflect.Array:
		if len(elems) > val.Len() {
			return &UnmarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("array of %d elements does not fit in %s", len(elems), val.Type()),
			}
		}
		for i, elem := range elems {
			if err := d.value(elem, val.Index(i), indexPath(path, i)); err != nil {
				return err
			}
		}
		for i := len(elems); i < val.Len(); i++ {
			val.Index(i).SetZero()
		}
	default:
		return typeErr(path, val.Type(), v.Kind())
	}
	return nil
}

func (d *decoder) table(v *ir.Value, val reflect.Value, path string) error {
	tab, _ := v.AsTable()
	switch val.Kind() {
	case reflect.Struct:
		fields := fieldsByName(val.Type())
		for key, elem := range tab.All() {
			f, ok := fields[key]
			if !ok {
				if d.opts.strict {
					return &UnmarshalError{
						FieldPath: childPath(path, key),
						Message:   fmt.Sprintf("no field for key %q in %s", key, val.Type()),
					}
				}
				continue
			}
			if err := d.value(elem, fieldValue(val, f.index), childPath(path, key)); err != nil {
				return err
			}
		}
	case reflect.Map:
		return d.tableMap(tab, val, path)
	default:
		return typeErr(path, val.Type(), v.Kind())
	}
	return nil
}

func (d *decoder) tableMap(tab *ir.Table, val reflect.Value, path string) error {
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("map key type of %s must be a string", typ)}
	}
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(typ, tab.Len()))
	}
	for key, elem := range tab.All() {
		ev := reflect.New(typ.Elem()).Elem()
		if err := d.value(elem, ev, childPath(path, key)); err != nil {
			return err
		}
		kv := reflect.ValueOf(strings.Clone(key)).Convert(typ.Key())
		val.SetMapIndex(kv, ev)
	}
	return nil
}

// anyValue converts a document value for an interface destination,
// with tables as map[string]any, arrays as []any, and the date and
// time forms as their raw text.
func anyValue(v *ir.Value) any {
	switch v.Kind() {
	case ir.IntegerKind:
		i, _ := v.AsInteger()
		return i
	case ir.FloatKind:
		f, _ := v.AsFloat()
		return f
	case ir.BooleanKind:
		b, _ := v.AsBoolean()
		return b
	case ir.ArrayKind:
		elems, _ := v.AsArray()
		res := make([]any, len(elems))
		for i, elem := range elems {
			res[i] = anyValue(elem)
		}
		return res
	case ir.TableKind:
		tab, _ := v.AsTable()
		res := make(map[string]any, tab.Len())
		for key, elem := range tab.All() {
			res[strings.Clone(key)] = anyValue(elem)
		}
		return res
	default:
		s, _ := text(v)
		return owned(v, s)
	}
}

// text returns the textual arm of string, date, time, and date-time
// values.
func text(v *ir.Value) (string, bool) {
	switch v.Kind() {
	case ir.StringKind:
		return v.AsString()
	case ir.DateKind:
		return v.AsDate()
	case ir.TimeKind:
		return v.AsTime()
	case ir.DateTimeKind:
		return v.AsDateTime()
	}
	return "", false
}

// owned copies s when it aliases the source text.
func owned(v *ir.Value, s string) string {
	if v.Raw() {
		return strings.Clone(s)
	}
	return s
}

func typeErr(path string, typ reflect.Type, kind ir.Kind) error {
	return &TypeError{FieldPath: path, Expected: typ.String(), Actual: kind.String()}
}
