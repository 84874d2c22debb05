package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/parse"
)

func mustParse(t *testing.T, src string) *ir.Table {
	t.Helper()
	doc, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return doc
}

func diffStrings(t *testing.T, from, to string) []string {
	t.Helper()
	changes := Diff(mustParse(t, from), mustParse(t, to))
	if len(changes) == 0 {
		return nil
	}
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.String()
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "Equal",
			from: "a = 1\nb = 'x'\n",
			to:   "a = 1\nb = 'x'\n",
			want: nil,
		},
		{
			name: "Add And Remove",
			from: "a = 1\nb = 2\n",
			to:   "a = 1\nc = 3\n",
			want: []string{"- b = 2", "+ c = 3"},
		},
		{
			name: "Replace",
			from: "a = 1\n",
			to:   "a = 2\n",
			want: []string{"~ a = 1 -> 2"},
		},
		{
			name: "Replace String",
			from: `a = "x"` + "\n",
			to:   `a = "y"` + "\n",
			want: []string{`~ a = "x" -> "y"`},
		},
		{
			name: "Nested Table",
			from: "[server]\nhost = 'a'\nport = 1\n",
			to:   "[server]\nhost = 'a'\nport = 2\n",
			want: []string{"~ server.port = 1 -> 2"},
		},
		{
			name: "Moved Keys Are Not Changes",
			from: "a = 1\nb = 2\n",
			to:   "b = 2\na = 1\n",
			want: nil,
		},
		{
			name: "Moved And Changed",
			from: "a = 1\nb = 2\n",
			to:   "b = 2\na = 9\n",
			want: []string{"~ a = 1 -> 9"},
		},
		{
			name: "Arrays Compare Positionally",
			from: "x = [1, 2, 3]\n",
			to:   "x = [1, 5]\n",
			want: []string{"~ x.1 = 2 -> 5", "- x.2 = 3"},
		},
		{
			name: "Array Grows",
			from: "x = [1]\n",
			to:   "x = [1, 2]\n",
			want: []string{"+ x.1 = 2"},
		},
		{
			name: "Kind Change Is A Replacement",
			from: "v = 1\n",
			to:   "[v]\nx = 1\n",
			want: []string{`~ v = 1 -> {"x":1}`},
		},
		{
			name: "Table Added",
			from: "a = 1\n",
			to:   "a = 1\n\n[server]\nport = 80\n",
			want: []string{`+ server = {"port":80}`},
		},
		{
			name: "Deep New Key",
			from: "[db]\nname = 'x'\n",
			to:   "[db]\nname = 'x'\nport = 5432\n",
			want: []string{"+ db.port = 5432"},
		},
	}
	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			got := diffStrings(t, tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffFieldAccess(t *testing.T) {
	changes := Diff(mustParse(t, "a = 1\n"), mustParse(t, "a = 2\n"))
	if len(changes) != 1 {
		t.Fatalf("got %d changes", len(changes))
	}
	c := changes[0]
	if c.Path != "a" {
		t.Errorf("Path = %q", c.Path)
	}
	if v, ok := c.From.AsInteger(); !ok || v != 1 {
		t.Errorf("From = %v", c.From)
	}
	if v, ok := c.To.AsInteger(); !ok || v != 2 {
		t.Errorf("To = %v", c.To)
	}
}
