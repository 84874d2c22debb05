package ir

import (
	"cmp"
	"strings"
)

// Compare imposes a total order on values, for sorting and for
// deterministic diffs. Values of different kinds order by kind rank,
// with integers and floats sharing a rank and comparing numerically.
// Arrays compare elementwise and then by length; tables compare by
// their ordered key sequences and then by the values those keys bind.
// Date and time forms compare as text, which agrees with chronological
// order for equal offsets. NaN orders below every other float.
func Compare(a, b *Value) int {
	ra, rb := rank(a.Kind()), rank(b.Kind())
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch a.Kind() {
	case BooleanKind:
		ab, _ := a.AsBoolean()
		bb, _ := b.AsBoolean()
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	case IntegerKind, FloatKind:
		if a.Kind() == IntegerKind && b.Kind() == IntegerKind {
			return cmp.Compare(a.i, b.i)
		}
		return cmp.Compare(numeric(a), numeric(b))
	case StringKind, DateKind, TimeKind, DateTimeKind:
		return strings.Compare(a.str, b.str)
	case ArrayKind:
		for i := 0; i < len(a.arr) && i < len(b.arr); i++ {
			if c := Compare(a.arr[i], b.arr[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.arr), len(b.arr))
	case TableKind:
		return compareTables(a.tab, b.tab)
	default:
		return 0
	}
}

func compareTables(a, b *Table) int {
	for i := 0; i < len(a.keys) && i < len(b.keys); i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.keys), len(b.keys)); c != 0 {
		return c
	}
	for _, k := range a.keys {
		if c := Compare(a.m[k], b.m[k]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b represent the same document value. It
// ignores the raw-versus-owned distinction of string storage.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func rank(k Kind) int {
	switch k {
	case BooleanKind:
		return 1
	case IntegerKind, FloatKind:
		return 2
	case StringKind:
		return 3
	case DateKind:
		return 4
	case TimeKind:
		return 5
	case DateTimeKind:
		return 6
	case ArrayKind:
		return 7
	case TableKind:
		return 8
	default:
		return 0
	}
}

func numeric(v *Value) float64 {
	if v.kind == IntegerKind {
		return float64(v.i)
	}
	return v.f
}
