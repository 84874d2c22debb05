package libdiff

import (
	"encoding/json"
	"fmt"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/boml-format/go-boml/ir"
)

// Change records one difference at a dotted path. From is nil for an
// addition, To is nil for a removal, and both are set when a value was
// replaced in place.
type Change struct {
	Path string
	From *ir.Value
	To   *ir.Value
}

func (c Change) String() string {
	switch {
	case c.From == nil:
		return fmt.Sprintf("+ %s = %s", c.Path, render(c.To))
	case c.To == nil:
		return fmt.Sprintf("- %s = %s", c.Path, render(c.From))
	default:
		return fmt.Sprintf("~ %s = %s -> %s", c.Path, render(c.From), render(c.To))
	}
}

func render(v *ir.Value) string {
	d, err := json.Marshal(v)
	if err != nil {
		return v.Kind().String()
	}
	return string(d)
}

// Diff returns the changes that turn from into to, in document order of
// to for additions and of from for removals. A key present in both
// tables contributes changes only where its values differ.
func Diff(from, to *ir.Table) []Change {
	var out []Change
	diffTables("", from, to, &out)
	return out
}

// diffTables aligns the two ordered key sequences with diff-match-patch
// over a rune alphabet, one rune per distinct key.
func diffTables(prefix string, from, to *ir.Table, out *[]Change) {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from)
	toRunes := mapKeysTo(keyMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// a key deleted here and inserted there just moved; its two halves
	// join back into one value comparison
	deleted := map[rune]bool{}
	moved := map[rune]bool{}
	for i := range diffs {
		if diffs[i].Type == diffpatch.DiffDelete {
			for _, r := range diffs[i].Text {
				deleted[r] = true
			}
		}
	}
	for i := range diffs {
		if diffs[i].Type == diffpatch.DiffInsert {
			for _, r := range diffs[i].Text {
				if deleted[r] {
					moved[r] = true
				}
			}
		}
	}

	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			k := runeMap[r]
			switch d.Type {
			case diffpatch.DiffDelete:
				if moved[r] {
					continue
				}
				v, _ := from.Get(k)
				*out = append(*out, Change{Path: join(prefix, k), From: v})
			case diffpatch.DiffInsert:
				if moved[r] {
					fv, _ := from.Get(k)
					tv, _ := to.Get(k)
					diffValues(join(prefix, k), fv, tv, out)
					continue
				}
				v, _ := to.Get(k)
				*out = append(*out, Change{Path: join(prefix, k), To: v})
			case diffpatch.DiffEqual:
				fv, _ := from.Get(k)
				tv, _ := to.Get(k)
				diffValues(join(prefix, k), fv, tv, out)
			}
		}
	}
}

func diffValues(path string, from, to *ir.Value, out *[]Change) {
	if from.Kind() == ir.TableKind && to.Kind() == ir.TableKind {
		ft, _ := from.AsTable()
		tt, _ := to.AsTable()
		diffTables(path, ft, tt, out)
		return
	}
	if from.Kind() == ir.ArrayKind && to.Kind() == ir.ArrayKind {
		fa, _ := from.AsArray()
		ta, _ := to.AsArray()
		n := min(len(fa), len(ta))
		for i := 0; i < n; i++ {
			diffValues(join(path, strconv.Itoa(i)), fa[i], ta[i], out)
		}
		for i := n; i < len(fa); i++ {
			*out = append(*out, Change{Path: join(path, strconv.Itoa(i)), From: fa[i]})
		}
		for i := n; i < len(ta); i++ {
			*out = append(*out, Change{Path: join(path, strconv.Itoa(i)), To: ta[i]})
		}
		return
	}
	if !ir.Equal(from, to) {
		*out = append(*out, Change{Path: path, From: from, To: to})
	}
}

func mapKeysTo(m map[string]rune, im map[rune]string, t *ir.Table) []rune {
	keys := t.Keys()
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
