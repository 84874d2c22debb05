package parse

import (
	"errors"
	"testing"

	"github.com/boml-format/go-boml/token"
)

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not *Error: %v", err, err)
	}
	return perr.Kind
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		kind  ErrorKind
		span  token.Span
		wraps error
	}{
		{
			name: "stray punctuation key",
			in:   "? = 1",
			kind: UnexpectedCharacter,
			span: token.Span{Start: 0, End: 1},
		},
		{
			name: "stray punctuation value",
			in:   "x = @",
			kind: UnexpectedCharacter,
			span: token.Span{Start: 4, End: 5},
		},
		{
			name: "invalid utf8",
			in:   "a = \"\xff\"",
			kind: InvalidEncoding,
			span: token.Span{Start: 5, End: 6},
		},
		{
			name:  "string hits end of input",
			in:    `a = "xy`,
			kind:  UnterminatedString,
			span:  token.Span{Start: 4, End: 7},
			wraps: token.ErrUnterminated,
		},
		{
			name:  "string hits newline",
			in:    "a = \"xy\nb = 1",
			kind:  UnterminatedString,
			span:  token.Span{Start: 4, End: 7},
			wraps: token.ErrUnterminated,
		},
		{
			name:  "unknown escape",
			in:    `a = "x\qy"`,
			kind:  InvalidEscape,
			span:  token.Span{Start: 6, End: 8},
			wraps: token.ErrBadEscape,
		},
		{
			name:  "bad unicode scalar",
			in:    `a = "\uZZZZ"`,
			kind:  InvalidEscape,
			span:  token.Span{Start: 5, End: 7},
			wraps: token.ErrBadEscape,
		},
		{
			name:  "dangling underscore",
			in:    "a = 12_",
			kind:  InvalidNumber,
			span:  token.Span{Start: 4, End: 7},
			wraps: token.ErrNumberUnderscore,
		},
		{
			name:  "leading zero",
			in:    "a = 012",
			kind:  InvalidNumber,
			span:  token.Span{Start: 4, End: 7},
			wraps: token.ErrNumberLeadingZero,
		},
		{
			name:  "bad date",
			in:    "a = 2024-13",
			kind:  InvalidDateTime,
			span:  token.Span{Start: 4, End: 11},
			wraps: token.ErrDateTime,
		},
		{
			name:  "bad time",
			in:    "a = 12:3",
			kind:  InvalidDateTime,
			span:  token.Span{Start: 4, End: 8},
			wraps: token.ErrDateTime,
		},
		{
			name: "duplicate key",
			in:   "a = 1\na = 2",
			kind: DuplicateKey,
			span: token.Span{Start: 6, End: 7},
		},
		{
			name: "duplicate key in section",
			in:   "[package]\nname = \"x\"\nname = \"y\"",
			kind: DuplicateKey,
			span: token.Span{Start: 21, End: 25},
		},
		{
			name: "table header repeated",
			in:   "[a]\n[a]",
			kind: RedefinedTable,
			span: token.Span{Start: 5, End: 6},
		},
		{
			name: "header reopens inline table",
			in:   "a = { b = 1 }\n[a]",
			kind: RedefinedTable,
			span: token.Span{Start: 15, End: 16},
		},
		{
			name: "header over scalar",
			in:   "x = 1\n[x]",
			kind: RedefinedTable,
			span: token.Span{Start: 7, End: 8},
		},
		{
			name: "array table over plain table",
			in:   "[s]\n[[s]]",
			kind: DuplicateKey,
			span: token.Span{Start: 6, End: 7},
		},
		{
			name: "dotted path through scalar",
			in:   "a = 1\na.b = 2",
			kind: NotATable,
			span: token.Span{Start: 6, End: 7},
		},
		{
			name: "equals without key",
			in:   "= 1",
			kind: ExpectedKey,
			span: token.Span{Start: 0, End: 1},
		},
		{
			name: "dot without following key",
			in:   "[a.]",
			kind: ExpectedKey,
			span: token.Span{Start: 3, End: 4},
		},
		{
			name: "multiline string as key",
			in:   "'''k''' = 1",
			kind: ExpectedKey,
			span: token.Span{Start: 0, End: 7},
		},
		{
			name: "two keys no equals",
			in:   "a b = 1",
			kind: ExpectedEquals,
			span: token.Span{Start: 2, End: 3},
		},
		{
			name: "assignment without value",
			in:   "a =",
			kind: ExpectedValue,
			span: token.Span{Start: 3, End: 3},
		},
		{
			name: "value on next line",
			in:   "a =\nb = 1",
			kind: ExpectedValue,
			span: token.Span{Start: 3, End: 4},
		},
		{
			name: "second assignment same line",
			in:   "a = 1 b = 2",
			kind: ExpectedNewline,
			span: token.Span{Start: 6, End: 7},
		},
		{
			name: "junk after header",
			in:   "[a] x = 1",
			kind: ExpectedNewline,
			span: token.Span{Start: 4, End: 5},
		},
		{
			name: "header not closed",
			in:   "[a b]",
			kind: ExpectedRightBracket,
			span: token.Span{Start: 3, End: 4},
		},
		{
			name: "array elements not separated",
			in:   "x = [1 2]",
			kind: ExpectedRightBracket,
			span: token.Span{Start: 7, End: 8},
		},
		{
			name: "newline inside inline table",
			in:   "x = {\n}",
			kind: ExpectedRightBracket,
			span: token.Span{Start: 5, End: 6},
		},
		{
			name: "array hits end of input",
			in:   "x = [1,",
			kind: UnexpectedEndOfInput,
			span: token.Span{Start: 7, End: 7},
		},
		{
			name: "inline table hits end of input",
			in:   "x = {a = 1,",
			kind: UnexpectedEndOfInput,
			span: token.Span{Start: 11, End: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) accepted", tt.in)
			}
			if doc != nil {
				t.Error("partial tree returned alongside error")
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error: %v", err, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v (err: %v)", perr.Kind, tt.kind, err)
			}
			if perr.Span != tt.span {
				t.Errorf("span = %v, want %v (err: %v)", perr.Span, tt.span, err)
			}
			if perr.Pos == nil {
				t.Error("Pos not set")
			}
			if tt.wraps != nil && !errors.Is(err, tt.wraps) {
				t.Errorf("err does not wrap %v: %v", tt.wraps, err)
			}

			// same input, same failure
			_, again := Parse(tt.in)
			var perr2 *Error
			if !errors.As(again, &perr2) {
				t.Fatalf("repeat parse error %T: %v", again, again)
			}
			if perr2.Kind != perr.Kind || perr2.Span != perr.Span {
				t.Errorf("repeat parse differs: %v %v then %v %v",
					perr.Kind, perr.Span, perr2.Kind, perr2.Span)
			}
		})
	}
}

func TestEarliestErrorWins(t *testing.T) {
	// both lines are malformed; only the first one is reported
	in := "a = \"x\\qy\"\nb = 012\n"
	_, err := Parse(in)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T: %v", err, err)
	}
	if perr.Kind != InvalidEscape {
		t.Errorf("kind = %v, want InvalidEscape", perr.Kind)
	}
	if perr.Span.Start != 6 {
		t.Errorf("span start = %d, want 6", perr.Span.Start)
	}

	// a repeat parse reports the identical failure
	_, err = Parse(in)
	var again *Error
	if !errors.As(err, &again) {
		t.Fatalf("error %T: %v", err, err)
	}
	if again.Kind != perr.Kind || again.Span != perr.Span {
		t.Errorf("repeat parse: kind=%v span=%v, first: kind=%v span=%v",
			again.Kind, again.Span, perr.Kind, perr.Span)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse("a = 012\n")
	if err == nil {
		t.Fatal("accepted")
	}
	got := err.Error()
	want := "invalid number: bad number: leading zero at `...a = 012\\n...` at offset 4 (line=0, col=4)"
	if got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
