package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TNewline
	TBareKey
	TBasicString
	TMultiBasic
	TLiteralString
	TMultiLiteral
	TInteger
	TFloat
	TBoolean
	TDate
	TTime
	TDateTime
	TEquals
	TDot
	TComma
	TLBracket
	TRBracket
	TLBrace
	TRBrace
	TTableStart
	TTableEnd
	TArrayTableStart
	TArrayTableEnd
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:             "TEOF",
		TNewline:         "TNewline",
		TBareKey:         "TBareKey",
		TBasicString:     "TBasicString",
		TMultiBasic:      "TMultiBasic",
		TLiteralString:   "TLiteralString",
		TMultiLiteral:    "TMultiLiteral",
		TInteger:         "TInteger",
		TFloat:           "TFloat",
		TBoolean:         "TBoolean",
		TDate:            "TDate",
		TTime:            "TTime",
		TDateTime:        "TDateTime",
		TEquals:          "TEquals",
		TDot:             "TDot",
		TComma:           "TComma",
		TLBracket:        "TLBracket",
		TRBracket:        "TRBracket",
		TLBrace:          "TLBrace",
		TRBrace:          "TRBrace",
		TTableStart:      "TTableStart",
		TTableEnd:        "TTableEnd",
		TArrayTableStart: "TArrayTableStart",
		TArrayTableEnd:   "TArrayTableEnd",
	}[t]
}

// Token is one lexical element of a TOML document. Text is a substring
// of the source (delimiters included for strings), so holding tokens
// keeps the source alive. Mod records that decoding must modify the
// text: a basic string containing at least one backslash, or a number
// containing underscores.
type Token struct {
	Type TokenType
	Span Span
	Text string
	Mod  bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s %q", t.Type, t.Span, t.Text)
}
