package gomap

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTypeFields(t *testing.T) {
	type Base struct {
		ID   int `toml:"id"`
		Skip int `toml:"-"`
	}
	type T struct {
		B string `toml:"b"`
		A string
		Base
		hidden int
	}

	var names []string
	for _, f := range typeFields(reflect.TypeOf(T{})) {
		names = append(names, f.name)
	}
	want := []string{"b", "A", "id"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("typeFields() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTag(t *testing.T) {
	type tagged struct {
		A int `toml:"x"`
		B int `toml:"x,omitempty"`
		C int `toml:"-"`
		D int `toml:",omitempty"`
		E int
	}
	tests := []struct {
		field     string
		name      string
		omitEmpty bool
		skip      bool
	}{
		{field: "A", name: "x"},
		{field: "B", name: "x", omitEmpty: true},
		{field: "C", skip: true},
		{field: "D", omitEmpty: true},
		{field: "E"},
	}
	typ := reflect.TypeOf(tagged{})
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := typ.FieldByName(tt.field)
			if !ok {
				t.Fatalf("no field %s", tt.field)
			}
			name, omitEmpty, skip := parseTag(f)
			if name != tt.name || omitEmpty != tt.omitEmpty || skip != tt.skip {
				t.Errorf("parseTag() = (%q, %v, %v), want (%q, %v, %v)",
					name, omitEmpty, skip, tt.name, tt.omitEmpty, tt.skip)
			}
		})
	}
}
