package ir

import "iter"

// Table is an ordered mapping from keys to Values. Lookup is by map,
// iteration follows insertion order.
type Table struct {
	keys []string
	m    map[string]*Value

	// defined marks tables closed to header redefinition: those
	// written as an inline table or already named by a [header].
	// Tables created implicitly while descending a dotted path stay
	// open until a header names them.
	defined bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: map[string]*Value{}}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns the table's keys in insertion order. The slice is a
// copy.
func (t *Table) Keys() []string {
	ks := make([]string, len(t.keys))
	copy(ks, t.keys)
	return ks
}

// Get returns the value for key and whether it is present.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.m[key]
	return v, ok
}

// Set binds key to v. A first binding appends to the iteration order;
// rebinding an existing key keeps its position.
func (t *Table) Set(key string, v *Value) {
	if _, ok := t.m[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.m[key] = v
}

// All iterates the table's entries in insertion order.
func (t *Table) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range t.keys {
			if !yield(k, t.m[k]) {
				return
			}
		}
	}
}

// MarkDefined closes t to header redefinition.
func (t *Table) MarkDefined() {
	t.defined = true
}

// Defined reports whether t has been closed to header redefinition.
func (t *Table) Defined() bool {
	return t.defined
}
