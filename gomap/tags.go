package gomap

import (
	"reflect"
	"strings"
)

// fieldInfo records one destination of a table key within a struct,
// after tag renaming and embedded flattening. index is the path of
// field indices from the outer struct.
type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

// typeFields lists the usable fields of a struct type: exported fields
// in declaration order, then fields promoted from embedded structs.
// Matching is by toml tag when present, otherwise by the exact Go
// field name. A tag of "-" drops the field. When two fields map to one
// name, the one reached first keeps it, and direct fields are reached
// before promoted ones.
func typeFields(typ reflect.Type) []fieldInfo {
	var fields []fieldInfo
	addFields(typ, nil, &fields, map[string]bool{})
	return fields
}

func addFields(typ reflect.Type, index []int, fields *[]fieldInfo, seen map[string]bool) {
	type embed struct {
		typ   reflect.Type
		index []int
	}
	var embeds []embed

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name, omitEmpty, skip := parseTag(f)
		if skip || !f.IsExported() {
			continue
		}
		fi := append(append([]int{}, index...), i)
		if f.Anonymous && name == "" {
			et := f.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct {
				embeds = append(embeds, embed{et, fi})
				continue
			}
		}
		if name == "" {
			name = f.Name
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		*fields = append(*fields, fieldInfo{name: name, index: fi, omitEmpty: omitEmpty})
	}

	for _, em := range embeds {
		addFields(em.typ, em.index, fields, seen)
	}
}

func fieldsByName(typ reflect.Type) map[string]fieldInfo {
	fields := typeFields(typ)
	m := make(map[string]fieldInfo, len(fields))
	for _, f := range fields {
		m[f.name] = f
	}
	return m
}

// parseTag splits a toml struct tag into its name and options. An
// empty name means the Go field name applies.
func parseTag(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag, ok := f.Tag.Lookup("toml")
	if !ok {
		return "", false, false
	}
	if tag == "-" {
		return "", false, true
	}
	name, rest, _ := strings.Cut(tag, ",")
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// fieldValue walks an index path to a field, allocating any nil
// embedded pointers along the way.
func fieldValue(val reflect.Value, index []int) reflect.Value {
	for _, i := range index {
		if val.Kind() == reflect.Pointer {
			if val.IsNil() {
				val.Set(reflect.New(val.Type().Elem()))
			}
			val = val.Elem()
		}
		val = val.Field(i)
	}
	return val
}

// fieldRead walks an index path without allocating; ok is false when a
// nil embedded pointer cuts the path short.
func fieldRead(val reflect.Value, index []int) (_ reflect.Value, ok bool) {
	for _, i := range index {
		if val.Kind() == reflect.Pointer {
			if val.IsNil() {
				return reflect.Value{}, false
			}
			val = val.Elem()
		}
		val = val.Field(i)
	}
	return val, true
}
