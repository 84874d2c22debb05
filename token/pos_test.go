package token

import (
	"testing"
)

func TestLineCol(t *testing.T) {
	src := "ab\ncd\n\nx"
	pd := NewPosDoc(src)
	pd.Index(len(src))
	tests := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{6, 2, 0},
		{7, 3, 0},
	}
	for _, tt := range tests {
		if l, c := pd.LineCol(tt.off); l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = (%d,%d) want (%d,%d)", tt.off, l, c, tt.line, tt.col)
		}
	}
}

// Index and lexer-driven recording can overlap without duplicating
// newline entries.
func TestIndexIdempotent(t *testing.T) {
	src := "a\nb\nc\n"
	pd := NewPosDoc(src)
	pd.Index(4)
	pd.Index(len(src))
	pd.Index(len(src))
	if l, c := pd.LineCol(4); l != 2 || c != 0 {
		t.Errorf("LineCol(4) = (%d,%d) want (2,0)", l, c)
	}
	if l, c := pd.LineCol(5); l != 2 || c != 1 {
		t.Errorf("LineCol(5) = (%d,%d) want (2,1)", l, c)
	}
}

func TestLexerRecordsNewlines(t *testing.T) {
	src := "a = 1\nb = 2\n"
	lx := NewLexer(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Type == TEOF {
			break
		}
	}
	if l, c := lx.PosDoc().LineCol(6); l != 1 || c != 0 {
		t.Errorf("LineCol(6) = (%d,%d) want (1,0)", l, c)
	}
	if l, c := lx.PosDoc().LineCol(10); l != 1 || c != 4 {
		t.Errorf("LineCol(10) = (%d,%d) want (1,4)", l, c)
	}
}

func TestPosString(t *testing.T) {
	src := "a = 012\n"
	pd := NewPosDoc(src)
	pd.Index(len(src))
	got := pd.Pos(4).String()
	want := "`...a = 012\\n...` at offset 4 (line=0, col=4)"
	if got != want {
		t.Errorf("got `%s` want `%s`", got, want)
	}
	bare := &Pos{I: 7}
	if got := bare.String(); got != "offset 7" {
		t.Errorf("got `%s` want `offset 7`", got)
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 9}
	if s.Len() != 6 {
		t.Errorf("Len = %d want 6", s.Len())
	}
	if s.String() != "[3,9)" {
		t.Errorf("String = %s want [3,9)", s)
	}
}
