package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/boml-format/go-boml/debug"
	"github.com/boml-format/go-boml/ir"
)

// Env is the variable scope an expression runs in.
type Env map[string]any

// DocEnv converts a document into an Env: each top-level key becomes a
// variable holding the converted value.
func DocEnv(doc *ir.Table) Env {
	return Env(TableToAny(doc))
}

// Eval compiles and runs code against doc.
func Eval(doc *ir.Table, code string) (any, error) {
	prg, err := expr.Compile(code, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, DocEnv(doc))
	if debug.Eval() {
		debug.Logf("eval %q -> %v (err=%v)\n", code, res, err)
	}
	return res, err
}

// ToAny converts a value into plain Go data: strings, int64, float64,
// bool, []any, map[string]any. Date and time values convert to their
// raw text. Map conversion drops key order.
func ToAny(v *ir.Value) any {
	switch v.Kind() {
	case ir.StringKind:
		s, _ := v.AsString()
		return s
	case ir.IntegerKind:
		i, _ := v.AsInteger()
		return i
	case ir.FloatKind:
		f, _ := v.AsFloat()
		return f
	case ir.BooleanKind:
		b, _ := v.AsBoolean()
		return b
	case ir.DateKind:
		s, _ := v.AsDate()
		return s
	case ir.TimeKind:
		s, _ := v.AsTime()
		return s
	case ir.DateTimeKind:
		s, _ := v.AsDateTime()
		return s
	case ir.ArrayKind:
		arr, _ := v.AsArray()
		res := make([]any, len(arr))
		for i, e := range arr {
			res[i] = ToAny(e)
		}
		return res
	case ir.TableKind:
		tab, _ := v.AsTable()
		return TableToAny(tab)
	default:
		return nil
	}
}

// TableToAny converts a table into a map.
func TableToAny(t *ir.Table) map[string]any {
	res := make(map[string]any, t.Len())
	for k, v := range t.All() {
		res[k] = ToAny(v)
	}
	return res
}

func exprOpts(doc *ir.Table) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			v, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := doc.Lookup(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			path := params[0].(string)
			v, err := doc.Lookup(path)
			if err != nil {
				return nil, err
			}
			tab, ok := v.AsTable()
			if !ok {
				return nil, &ir.TypeError{Key: path, Found: v, Expected: ir.TableKind}
			}
			return tab.Keys(), nil
		},
			new(func(string) []string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
