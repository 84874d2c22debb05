package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/parse"
)

const testSrc = `name = "boml"
tags = ["a", "b"]
when = 1979-05-27

[server]
host = "localhost"
port = 8080

[limits]
min = 1
max = 10
`

func testDoc(t *testing.T) *ir.Table {
	t.Helper()
	doc, err := parse.Parse(testSrc)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func evalBool(t *testing.T, doc *ir.Table, code string) bool {
	t.Helper()
	res, err := Eval(doc, code)
	if err != nil {
		t.Fatalf("Eval(`%s`): %v", code, err)
	}
	b, ok := res.(bool)
	if !ok {
		t.Fatalf("Eval(`%s`) = %T, want bool", code, res)
	}
	return b
}

func TestEval(t *testing.T) {
	doc := testDoc(t)
	for _, code := range []string{
		"server.port > 1024",
		"server.host == 'localhost'",
		"limits.max - limits.min == 9",
		"len(tags) == 2",
		"name + '-x' == 'boml-x'",
		"when == '1979-05-27'",
		"'b' in tags",
	} {
		if !evalBool(t, doc, code) {
			t.Errorf("`%s` = false", code)
		}
	}
	if evalBool(t, doc, "server.port > 9000") {
		t.Error("`server.port > 9000` = true")
	}
}

func TestEvalFuncs(t *testing.T) {
	doc := testDoc(t)
	t.Setenv("BOML_EVAL_TEST", "yes")
	for _, code := range []string{
		"get('server.port') == 8080",
		"get('tags.1') == 'b'",
		"has('limits.min')",
		"not has('limits.gone')",
		"'host' in keys('server')",
		"len(keys('server')) == 2",
		"getenv('BOML_EVAL_TEST') == 'yes'",
	} {
		if !evalBool(t, doc, code) {
			t.Errorf("`%s` = false", code)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := testDoc(t)
	if _, err := Eval(doc, "1 +"); err == nil {
		t.Error("compile error not surfaced")
	}
	if _, err := Eval(doc, "get('limits.gone')"); err == nil {
		t.Error("lookup error not surfaced")
	}
	if _, err := Eval(doc, "keys('name')"); err == nil {
		t.Error("keys on a scalar not surfaced")
	}
}

func TestDocEnv(t *testing.T) {
	env := DocEnv(testDoc(t))
	server, ok := env["server"].(map[string]any)
	if !ok {
		t.Fatalf("server = %T", env["server"])
	}
	if server["port"] != int64(8080) {
		t.Errorf("port = %v (%T)", server["port"], server["port"])
	}
}

func TestToAny(t *testing.T) {
	doc := testDoc(t)
	got := TableToAny(doc)
	want := map[string]any{
		"name": "boml",
		"tags": []any{"a", "b"},
		"when": "1979-05-27",
		"server": map[string]any{
			"host": "localhost",
			"port": int64(8080),
		},
		"limits": map[string]any{
			"min": int64(1),
			"max": int64(10),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}
