package ir

import (
	"bytes"
	"encoding/json"
	"math"
)

// MarshalJSON projects the table to a JSON object, keeping key order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON projects the value to JSON. Strings and the date and
// time forms become JSON strings, arrays become JSON arrays, tables
// become objects with keys in insertion order. Non-finite floats have
// no JSON number form and become the strings "inf", "-inf", and "nan".
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.appendJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Table) appendJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := t.m[k].appendJSON(buf); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func (v *Value) appendJSON(buf *bytes.Buffer) error {
	switch v.Kind() {
	case StringKind, DateKind, TimeKind, DateTimeKind:
		b, err := json.Marshal(v.str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case IntegerKind:
		b, err := json.Marshal(v.i)
		if err != nil {
			return err
		}
		buf.Write(b)
	case FloatKind:
		switch {
		case math.IsInf(v.f, 1):
			buf.WriteString(`"inf"`)
		case math.IsInf(v.f, -1):
			buf.WriteString(`"-inf"`)
		case math.IsNaN(v.f):
			buf.WriteString(`"nan"`)
		default:
			b, err := json.Marshal(v.f)
			if err != nil {
				return err
			}
			buf.Write(b)
		}
	case BooleanKind:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case ArrayKind:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case TableKind:
		return v.tab.appendJSON(buf)
	default:
		buf.WriteString("null")
	}
	return nil
}
