package ir

import (
	"math"
	"testing"
)

func TestMarshalJSONOrder(t *testing.T) {
	doc := NewTable()
	doc.Set("z", FromInteger(1))
	doc.Set("a", FromString("two"))
	inner := NewTable()
	inner.Set("b", FromBoolean(false))
	inner.Set("aa", FromArray([]*Value{FromInteger(1), FromFloat(2.5)}))
	doc.Set("m", FromTable(inner))

	got, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":"two","m":{"b":false,"aa":[1,2.5]}}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestMarshalJSONNonFinite(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"inf", FromFloat(math.Inf(1)), `"inf"`},
		{"-inf", FromFloat(math.Inf(-1)), `"-inf"`},
		{"nan", FromFloat(math.NaN()), `"nan"`},
		{"finite", FromFloat(1.25), `1.25`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshalJSONEscaping(t *testing.T) {
	doc := NewTable()
	doc.Set("quote\"key", FromString("line\nbreak"))
	got, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"quote\"key":"line\nbreak"}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestMarshalJSONDateForms(t *testing.T) {
	doc := NewTable()
	doc.Set("d", FromDate("2024-01-02"))
	doc.Set("t", FromTime("03:04:05"))
	doc.Set("dt", FromDateTime("2024-01-02 03:04:05+07:00"))
	got, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"d":"2024-01-02","t":"03:04:05","dt":"2024-01-02 03:04:05+07:00"}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	got, err := NewTable().MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON = %s, want {}", got)
	}
	got, err = FromArray(nil).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[]" {
		t.Errorf("MarshalJSON = %s, want []", got)
	}
}
