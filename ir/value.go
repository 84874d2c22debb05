package ir

import "strings"

// Kind discriminates the active arm of a Value.
type Kind int

const (
	InvalidKind Kind = iota
	StringKind
	IntegerKind
	FloatKind
	BooleanKind
	ArrayKind
	TableKind
	DateKind
	TimeKind
	DateTimeKind
)

func (k Kind) String() string {
	switch k {
	case StringKind:
		return "string"
	case IntegerKind:
		return "integer"
	case FloatKind:
		return "float"
	case BooleanKind:
		return "boolean"
	case ArrayKind:
		return "array"
	case TableKind:
		return "table"
	case DateKind:
		return "date"
	case TimeKind:
		return "time"
	case DateTimeKind:
		return "date-time"
	default:
		return "invalid"
	}
}

// Value is one node of a document tree. Exactly one arm is active,
// reported by Kind. The zero Value has InvalidKind and no arms; use the
// From* constructors.
type Value struct {
	kind Kind
	str  string
	i    int64
	f    float64
	b    bool
	arr  []*Value
	tab  *Table

	// raw records whether str aliases the source text the value was
	// parsed from. False means str is owned storage, produced by
	// escape decoding or by FromString.
	raw bool

	// tarr marks an array created by [[header]] syntax, which may grow
	// by further headers but not be reopened as a plain table.
	tarr bool
}

// FromString returns a string value owning its storage.
func FromString(s string) *Value {
	return &Value{kind: StringKind, str: s}
}

// FromRawString returns a string value whose storage aliases the
// source text it was sliced from.
func FromRawString(s string) *Value {
	return &Value{kind: StringKind, str: s, raw: true}
}

// FromInteger returns an integer value.
func FromInteger(i int64) *Value {
	return &Value{kind: IntegerKind, i: i}
}

// FromFloat returns a float value.
func FromFloat(f float64) *Value {
	return &Value{kind: FloatKind, f: f}
}

// FromBoolean returns a boolean value.
func FromBoolean(b bool) *Value {
	return &Value{kind: BooleanKind, b: b}
}

// FromArray returns an array value wrapping elems. The slice is not
// copied; nil is an empty array.
func FromArray(elems []*Value) *Value {
	return &Value{kind: ArrayKind, arr: elems}
}

// FromTableArray returns an empty array value marked as created by
// [[header]] syntax.
func FromTableArray() *Value {
	return &Value{kind: ArrayKind, tarr: true}
}

// FromTable returns a table value wrapping t.
func FromTable(t *Table) *Value {
	return &Value{kind: TableKind, tab: t}
}

// FromDate returns a date value holding the raw matched text. The text
// is not range checked.
func FromDate(s string) *Value {
	return &Value{kind: DateKind, str: s, raw: true}
}

// FromTime returns a time value holding the raw matched text.
func FromTime(s string) *Value {
	return &Value{kind: TimeKind, str: s, raw: true}
}

// FromDateTime returns a date-time value holding the raw matched text.
func FromDateTime(s string) *Value {
	return &Value{kind: DateTimeKind, str: s, raw: true}
}

// Kind reports which arm of v is active.
func (v *Value) Kind() Kind {
	if v == nil {
		return InvalidKind
	}
	return v.kind
}

// Raw reports whether v's string storage aliases the source text it
// was parsed from. It is false for non-string kinds other than the
// date and time forms, and false for strings that were decoded into
// owned storage.
func (v *Value) Raw() bool {
	return v != nil && v.raw
}

// Own replaces aliased string storage with an owned copy, detaching v
// from the source text. It returns v. No-op for values that already
// own their storage.
func (v *Value) Own() *Value {
	if v.raw {
		v.str = strings.Clone(v.str)
		v.raw = false
	}
	return v
}

// IsTableArray reports whether v is an array created by [[header]]
// syntax.
func (v *Value) IsTableArray() bool {
	return v != nil && v.kind == ArrayKind && v.tarr
}

// Append adds elem to an array value.
func (v *Value) Append(elem *Value) {
	v.arr = append(v.arr, elem)
}

// AsString returns the string arm.
func (v *Value) AsString() (string, bool) {
	if v.Kind() != StringKind {
		return "", false
	}
	return v.str, true
}

// AsInteger returns the integer arm.
func (v *Value) AsInteger() (int64, bool) {
	if v.Kind() != IntegerKind {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the float arm.
func (v *Value) AsFloat() (float64, bool) {
	if v.Kind() != FloatKind {
		return 0, false
	}
	return v.f, true
}

// AsBoolean returns the boolean arm.
func (v *Value) AsBoolean() (bool, bool) {
	if v.Kind() != BooleanKind {
		return false, false
	}
	return v.b, true
}

// AsArray returns the array arm. The returned slice is the value's own
// storage, not a copy.
func (v *Value) AsArray() ([]*Value, bool) {
	if v.Kind() != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// AsTable returns the table arm.
func (v *Value) AsTable() (*Table, bool) {
	if v.Kind() != TableKind {
		return nil, false
	}
	return v.tab, true
}

// AsDate returns the raw text of the date arm.
func (v *Value) AsDate() (string, bool) {
	if v.Kind() != DateKind {
		return "", false
	}
	return v.str, true
}

// AsTime returns the raw text of the time arm.
func (v *Value) AsTime() (string, bool) {
	if v.Kind() != TimeKind {
		return "", false
	}
	return v.str, true
}

// AsDateTime returns the raw text of the date-time arm.
func (v *Value) AsDateTime() (string, bool) {
	if v.Kind() != DateTimeKind {
		return "", false
	}
	return v.str, true
}
