package ir

import (
	"strconv"
	"strings"
)

// The typed getters look up key in t and unwrap the requested arm. An
// absent key yields a *KeyError; a present key of another kind yields a
// *TypeError carrying the found value.

// GetString returns the string value bound to key.
func (t *Table) GetString(key string) (string, error) {
	v, err := t.get(key, StringKind)
	if err != nil {
		return "", err
	}
	s, _ := v.AsString()
	return s, nil
}

// GetInteger returns the integer value bound to key.
func (t *Table) GetInteger(key string) (int64, error) {
	v, err := t.get(key, IntegerKind)
	if err != nil {
		return 0, err
	}
	i, _ := v.AsInteger()
	return i, nil
}

// GetFloat returns the float value bound to key.
func (t *Table) GetFloat(key string) (float64, error) {
	v, err := t.get(key, FloatKind)
	if err != nil {
		return 0, err
	}
	f, _ := v.AsFloat()
	return f, nil
}

// GetBoolean returns the boolean value bound to key.
func (t *Table) GetBoolean(key string) (bool, error) {
	v, err := t.get(key, BooleanKind)
	if err != nil {
		return false, err
	}
	b, _ := v.AsBoolean()
	return b, nil
}

// GetArray returns the array value bound to key. The slice is the
// value's own storage.
func (t *Table) GetArray(key string) ([]*Value, error) {
	v, err := t.get(key, ArrayKind)
	if err != nil {
		return nil, err
	}
	a, _ := v.AsArray()
	return a, nil
}

// GetTable returns the table value bound to key.
func (t *Table) GetTable(key string) (*Table, error) {
	v, err := t.get(key, TableKind)
	if err != nil {
		return nil, err
	}
	sub, _ := v.AsTable()
	return sub, nil
}

// GetDate returns the raw text of the date value bound to key.
func (t *Table) GetDate(key string) (string, error) {
	v, err := t.get(key, DateKind)
	if err != nil {
		return "", err
	}
	s, _ := v.AsDate()
	return s, nil
}

// GetTime returns the raw text of the time value bound to key.
func (t *Table) GetTime(key string) (string, error) {
	v, err := t.get(key, TimeKind)
	if err != nil {
		return "", err
	}
	s, _ := v.AsTime()
	return s, nil
}

// GetDateTime returns the raw text of the date-time value bound to
// key.
func (t *Table) GetDateTime(key string) (string, error) {
	v, err := t.get(key, DateTimeKind)
	if err != nil {
		return "", err
	}
	s, _ := v.AsDateTime()
	return s, nil
}

func (t *Table) get(key string, want Kind) (*Value, error) {
	v, ok := t.Get(key)
	if !ok {
		return nil, &KeyError{Key: key}
	}
	if v.Kind() != want {
		return nil, &TypeError{Key: key, Found: v, Expected: want}
	}
	return v, nil
}

// Lookup resolves a dotted path of bare segments against the table,
// descending through nested tables and, for numeric segments, array
// elements. Errors carry the whole path, not the failing segment.
func (t *Table) Lookup(path string) (*Value, error) {
	cur := FromTable(t)
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case TableKind:
			tab, _ := cur.AsTable()
			v, ok := tab.Get(seg)
			if !ok {
				return nil, &KeyError{Key: path}
			}
			cur = v
		case ArrayKind:
			arr, _ := cur.AsArray()
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(arr) {
				return nil, &KeyError{Key: path}
			}
			cur = arr[idx]
		default:
			return nil, &TypeError{Key: path, Found: cur, Expected: TableKind}
		}
	}
	return cur, nil
}
