package token

import (
	"errors"
	"strings"
	"testing"
)

func lexAll(src string) ([]Token, error) {
	lx := NewLexer(src)
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		if tok.Type == TEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []Token) string {
	parts := make([]string, len(toks))
	for i := range toks {
		parts[i] = toks[i].Type.String()
	}
	return strings.Join(parts, " ")
}

func TestLexKinds(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x = 1\n", "TBareKey TEquals TInteger TNewline"},
		// key position wins over keyword-looking text
		{"true = false", "TBareKey TEquals TBoolean"},
		{"inf = 2", "TBareKey TEquals TInteger"},
		{"[table]\n", "TTableStart TBareKey TTableEnd TNewline"},
		{"[[aot]]\n", "TArrayTableStart TBareKey TArrayTableEnd TNewline"},
		{"[a.b]", "TTableStart TBareKey TDot TBareKey TTableEnd"},
		{" [indented]", "TTableStart TBareKey TTableEnd"},
		{"x = [1, 2]", "TBareKey TEquals TLBracket TInteger TComma TInteger TRBracket"},
		// double bracket in value position is a nested array, not a header
		{"x = [[1]]", "TBareKey TEquals TLBracket TLBracket TInteger TRBracket TRBracket"},
		{"x = {a = 1}", "TBareKey TEquals TLBrace TBareKey TEquals TInteger TRBrace"},
		{"a.b = 'c'", "TBareKey TDot TBareKey TEquals TLiteralString"},
		{"x = [true]", "TBareKey TEquals TLBracket TBoolean TRBracket"},
		{"x = [\n1,\n]\n", "TBareKey TEquals TLBracket TNewline TInteger TComma TNewline TRBracket TNewline"},
		{"x = [1]\n[y]\n", "TBareKey TEquals TLBracket TInteger TRBracket TNewline TTableStart TBareKey TTableEnd TNewline"},
		{"x = 1979-05-27", "TBareKey TEquals TDate"},
		{"x = 07:32:00", "TBareKey TEquals TTime"},
		{"x = 1979-05-27T07:32:00Z", "TBareKey TEquals TDateTime"},
		// a space-separated time joins into one token
		{"x = 1979-05-27 07:32:00", "TBareKey TEquals TDateTime"},
		// anything else after a date starts a fresh atom
		{"x = 1979-05-27 true", "TBareKey TEquals TDate TBareKey"},
		{"# only\n", "TNewline"},
		{"x = \"s\" # c\n", "TBareKey TEquals TBasicString TNewline"},
		{"x=1#c", "TBareKey TEquals TInteger"},
		{"\"q\" = 1", "TBasicString TEquals TInteger"},
		{"", ""},
	}
	for _, tt := range tests {
		toks, err := lexAll(tt.in)
		if err != nil {
			t.Errorf("`%s` gave %v", tt.in, err)
			continue
		}
		if got := kinds(toks); got != tt.want {
			t.Errorf("`%s` gave `%s` want `%s`", tt.in, got, tt.want)
		}
	}
}

func TestLexSpans(t *testing.T) {
	src := "key = 'val'\n"
	toks, err := lexAll(src)
	if err != nil {
		t.Fatal(err)
	}
	wantSpans := []Span{{0, 3}, {4, 5}, {6, 11}, {11, 12}}
	if len(toks) != len(wantSpans) {
		t.Fatalf("got %d tokens want %d", len(toks), len(wantSpans))
	}
	for i := range toks {
		if toks[i].Span != wantSpans[i] {
			t.Errorf("token %d span %s want %s", i, toks[i].Span, wantSpans[i])
		}
		if toks[i].Text != src[toks[i].Span.Start:toks[i].Span.End] {
			t.Errorf("token %d text %q does not alias its span", i, toks[i].Text)
		}
	}
}

// firstValue lexes src and returns the token after the '='.
func firstValue(t *testing.T, src string) Token {
	t.Helper()
	toks, err := lexAll(src)
	if err != nil {
		t.Fatalf("`%s` gave %v", src, err)
	}
	for i := range toks {
		if toks[i].Type == TEquals {
			return toks[i+1]
		}
	}
	t.Fatalf("`%s` has no value", src)
	return Token{}
}

func TestLexModFlag(t *testing.T) {
	tests := []struct {
		in  string
		mod bool
	}{
		{`x = "ab"`, false},
		{`x = "a\tb"`, true},
		{`x = 'a\tb'`, false},
		{"x = \"\"\"a\\nb\"\"\"", true},
		{"x = '''a\\nb'''", false},
		{"x = 1000", false},
		{"x = 1_000", true},
		{"x = 0xdead_beef", true},
	}
	for _, tt := range tests {
		if tok := firstValue(t, tt.in); tok.Mod != tt.mod {
			t.Errorf("`%s` gave Mod=%v want %v (%s)", tt.in, tok.Mod, tt.mod, tok.Info())
		}
	}
}

func TestLexQuoteRuns(t *testing.T) {
	tests := []struct {
		in   string
		body string
	}{
		{`x = """abc"""`, "abc"},
		// extra quotes ahead of the closer belong to the content
		{`x = """xy""""`, `xy"`},
		{`x = '''a''b'''`, "a''b"},
		{`x = ''''one''''`, "'one'"},
	}
	for _, tt := range tests {
		tok := firstValue(t, tt.in)
		if tok.Type != TMultiBasic && tok.Type != TMultiLiteral {
			t.Errorf("`%s` gave %s", tt.in, tok.Info())
			continue
		}
		if got := MultilineBody(tok.Text); got != tt.body {
			t.Errorf("`%s` gave body `%s` want `%s`", tt.in, got, tt.body)
		}
	}
}

func TestLexSticky(t *testing.T) {
	lx := NewLexer("x = \"abc\ny = 1")
	var firstErr error
	for i := 0; i < 20; i++ {
		_, err := lx.Next()
		if err != nil {
			firstErr = err
			break
		}
	}
	if firstErr == nil {
		t.Fatal("no error from unterminated string")
	}
	if !errors.Is(firstErr, ErrUnterminated) {
		t.Fatalf("got %v want ErrUnterminated", firstErr)
	}
	var se *ScanError
	if !errors.As(firstErr, &se) {
		t.Fatalf("got %T want *ScanError", firstErr)
	}
	if (se.Span != Span{4, 8}) {
		t.Errorf("span %s want [4,8)", se.Span)
	}
	if l, c := se.Pos.LineCol(); l != 0 || c != 4 {
		t.Errorf("pos (%d,%d) want (0,4)", l, c)
	}
	// the lexer never recovers or scans further
	for i := 0; i < 3; i++ {
		_, err := lx.Next()
		if err != firstErr {
			t.Fatalf("call %d gave %v want the original error", i, err)
		}
	}
}

func TestLexBadUTF8(t *testing.T) {
	for _, src := range []string{"\xff = 1", "x = \xff"} {
		_, err := lexAll(src)
		if !errors.Is(err, ErrBadUTF8) {
			t.Errorf("`%s` gave %v want ErrBadUTF8", src, err)
		}
	}
}

func TestLexBadDateTime(t *testing.T) {
	tests := []string{
		"x = 1979-05",
		"x = 1979-05-27T07:32",
		"x = 07:32",
		"x = 1979-05-27 07:32:0x",
	}
	for _, src := range tests {
		_, err := lexAll(src)
		if !errors.Is(err, ErrDateTime) {
			t.Errorf("`%s` gave %v want ErrDateTime", src, err)
		}
	}
}
