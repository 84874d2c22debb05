package token

import (
	"unicode/utf8"
)

// Lexer scans TOML source into tokens, one Next call at a time. It is
// single-pass and not restartable: once an error is returned every
// subsequent call returns the same error, and no text past the error is
// ever scanned.
//
// TOML lexing is position-sensitive (`true = 1` has a bare key "true",
// `x = true` has a boolean), so the lexer tracks whether the next atom
// sits in key or value position, plus a stack of open `[` / `{`
// containers to know what a comma or closing bracket means.
type Lexer struct {
	src string
	i   int
	pd  *PosDoc

	stack   []byte
	inVal   bool
	header  int
	lineTop bool

	err error
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src, pd: NewPosDoc(src), lineTop: true}
}

// PosDoc exposes the line/column table built up during scanning.
func (lx *Lexer) PosDoc() *PosDoc {
	return lx.pd
}

// Offset is the current scan frontier.
func (lx *Lexer) Offset() int {
	return lx.i
}

func (lx *Lexer) Next() (Token, error) {
	if lx.err != nil {
		return Token{}, lx.err
	}
	tok, err := lx.scan()
	if err != nil {
		lx.err = err
		return Token{}, err
	}
	return tok, nil
}

func (lx *Lexer) tok(tt TokenType, start, end int) Token {
	lx.lineTop = false
	return Token{Type: tt, Span: Span{start, end}, Text: lx.src[start:end]}
}

func (lx *Lexer) top() byte {
	if len(lx.stack) == 0 {
		return 0
	}
	return lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) scan() (Token, error) {
	src, n := lx.src, len(lx.src)
	for lx.i < n {
		c := src[lx.i]
		switch c {
		case ' ', '\t', '\r':
			lx.i++
		case '#':
			lx.skipComment()
		case '\n':
			lx.pd.nl(lx.i)
			tok := Token{Type: TNewline, Span: Span{lx.i, lx.i + 1}, Text: src[lx.i : lx.i+1]}
			lx.i++
			lx.lineTop = true
			if len(lx.stack) == 0 {
				lx.inVal = false
			}
			return tok, nil
		case '=':
			tok := lx.tok(TEquals, lx.i, lx.i+1)
			lx.i++
			lx.inVal = true
			return tok, nil
		case '.':
			tok := lx.tok(TDot, lx.i, lx.i+1)
			lx.i++
			return tok, nil
		case ',':
			tok := lx.tok(TComma, lx.i, lx.i+1)
			lx.i++
			lx.inVal = lx.top() == '['
			return tok, nil
		case '{':
			tok := lx.tok(TLBrace, lx.i, lx.i+1)
			lx.i++
			lx.stack = append(lx.stack, '{')
			lx.inVal = false
			return tok, nil
		case '}':
			tok := lx.tok(TRBrace, lx.i, lx.i+1)
			lx.i++
			if lx.top() == '{' {
				lx.stack = lx.stack[:len(lx.stack)-1]
			}
			lx.inVal = false
			return tok, nil
		case '[':
			if lx.headerOK() {
				if lx.i+1 < n && src[lx.i+1] == '[' {
					tok := lx.tok(TArrayTableStart, lx.i, lx.i+2)
					lx.i += 2
					lx.header = 2
					return tok, nil
				}
				tok := lx.tok(TTableStart, lx.i, lx.i+1)
				lx.i++
				lx.header = 1
				return tok, nil
			}
			tok := lx.tok(TLBracket, lx.i, lx.i+1)
			lx.i++
			lx.stack = append(lx.stack, '[')
			lx.inVal = true
			return tok, nil
		case ']':
			if lx.header == 2 && lx.i+1 < n && src[lx.i+1] == ']' {
				tok := lx.tok(TArrayTableEnd, lx.i, lx.i+2)
				lx.i += 2
				lx.header = 0
				return tok, nil
			}
			if lx.header != 0 {
				tok := lx.tok(TTableEnd, lx.i, lx.i+1)
				lx.i++
				lx.header = 0
				return tok, nil
			}
			tok := lx.tok(TRBracket, lx.i, lx.i+1)
			lx.i++
			if lx.top() == '[' {
				lx.stack = lx.stack[:len(lx.stack)-1]
			}
			lx.inVal = false
			return tok, nil
		case '"', '\'':
			return lx.scanString()
		default:
			if lx.inVal {
				return lx.scanValueAtom()
			}
			return lx.scanKeyAtom()
		}
	}
	return Token{Type: TEOF, Span: Span{n, n}}, nil
}

// headerOK reports whether a '[' here opens a table header rather than
// an array value: only at the top of a line, outside any container.
func (lx *Lexer) headerOK() bool {
	return lx.lineTop && len(lx.stack) == 0 && !lx.inVal && lx.header == 0
}

func (lx *Lexer) skipComment() {
	src, n := lx.src, len(lx.src)
	for lx.i < n && src[lx.i] != '\n' {
		lx.i++
	}
}

func isBareKeyChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

func (lx *Lexer) scanKeyAtom() (Token, error) {
	src, n := lx.src, len(lx.src)
	start := lx.i
	i := start
	for i < n && isBareKeyChar(src[i]) {
		i++
	}
	if i == start {
		r, sz := utf8.DecodeRuneInString(src[start:])
		err := ErrCharacter
		if r == utf8.RuneError && sz == 1 {
			err = ErrBadUTF8
		}
		return Token{}, NewScanError(err, Span{start, start + sz}, lx.pd.Pos(start))
	}
	tok := lx.tok(TBareKey, start, i)
	lx.i = i
	return tok, nil
}

func isValueEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ']', '}', '#':
		return true
	}
	return false
}

func (lx *Lexer) scanValueAtom() (Token, error) {
	src, n := lx.src, len(lx.src)
	start := lx.i
	i := start
	for i < n && !isValueEnd(src[i]) {
		i++
	}
	lexeme := src[start:i]
	tt, joined, err := lx.classify(lexeme, i)
	if err != nil {
		return Token{}, err
	}
	i += joined
	tok := lx.tok(tt, start, i)
	tok.Mod = hasUnderscore(lexeme)
	lx.i = i
	lx.inVal = false
	return tok, nil
}

// classify decides what kind of value atom a lexeme is. When a date is
// followed by a space-separated time, the time part is pulled in and its
// length returned as joined.
func (lx *Lexer) classify(lexeme string, end int) (TokenType, int, error) {
	src, n := lx.src, len(lx.src)
	start := end - len(lexeme)
	switch lexeme {
	case "true", "false":
		return TBoolean, 0, nil
	case "inf", "+inf", "-inf", "nan", "+nan", "-nan":
		return TFloat, 0, nil
	}
	body := lexeme
	signed := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
		signed = true
	}
	if len(body) == 0 || body[0] < '0' || body[0] > '9' {
		r, sz := utf8.DecodeRuneInString(lexeme)
		err := ErrCharacter
		if r == utf8.RuneError && sz == 1 {
			err = ErrBadUTF8
		}
		return 0, 0, NewScanError(err, Span{start, start + sz}, lx.pd.Pos(start))
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'o' || body[1] == 'b') {
		return TInteger, 0, nil
	}
	if !signed && len(body) >= 5 && allDigits(body[:4]) && body[4] == '-' {
		if isDateShape(lexeme) {
			// a space-separated time may follow: 1979-05-27 07:32:00
			if end+3 < n && src[end] == ' ' &&
				isDigit(src[end+1]) && isDigit(src[end+2]) && src[end+3] == ':' {
				j := end + 1
				for j < n && !isValueEnd(src[j]) {
					j++
				}
				full := src[start:j]
				if !isDateTimeShape(full) {
					return 0, 0, NewScanError(ErrDateTime, Span{start, j}, lx.pd.Pos(start))
				}
				return TDateTime, j - end, nil
			}
			return TDate, 0, nil
		}
		if isDateTimeShape(lexeme) {
			return TDateTime, 0, nil
		}
		return 0, 0, NewScanError(ErrDateTime, Span{start, end}, lx.pd.Pos(start))
	}
	if !signed && len(body) >= 3 && allDigits(body[:2]) && body[2] == ':' {
		if !isTimeShape(lexeme) {
			return 0, 0, NewScanError(ErrDateTime, Span{start, end}, lx.pd.Pos(start))
		}
		return TTime, 0, nil
	}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '.', 'e', 'E':
			return TFloat, 0, nil
		}
	}
	return TInteger, 0, nil
}

func hasUnderscore(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			return true
		}
	}
	return false
}

func (lx *Lexer) scanString() (Token, error) {
	src, n := lx.src, len(lx.src)
	start := lx.i
	q := src[start]
	if start+2 < n && src[start+1] == q && src[start+2] == q {
		return lx.scanMultiline(q)
	}
	i := start + 1
	mod := false
	for i < n {
		c := src[i]
		switch c {
		case q:
			tt := TBasicString
			if q == '\'' {
				tt = TLiteralString
			}
			tok := lx.tok(tt, start, i+1)
			tok.Mod = mod && q == '"'
			lx.i = i + 1
			lx.inVal = false
			return tok, nil
		case '\n':
			return Token{}, NewScanError(ErrUnterminated, Span{start, i}, lx.pd.Pos(start))
		case '\\':
			if q == '"' {
				mod = true
				if i+1 >= n || src[i+1] == '\n' {
					return Token{}, NewScanError(ErrUnterminated, Span{start, i}, lx.pd.Pos(start))
				}
				i += 2
				continue
			}
			i++
		default:
			i++
		}
	}
	return Token{}, NewScanError(ErrUnterminated, Span{start, n}, lx.pd.Pos(start))
}

func (lx *Lexer) scanMultiline(q byte) (Token, error) {
	src, n := lx.src, len(lx.src)
	start := lx.i
	i := start + 3
	mod := false
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			lx.pd.nl(i)
			i++
		case '\\':
			if q == '"' {
				mod = true
				if i+1 < n && src[i+1] == '\n' {
					lx.pd.nl(i + 1)
				}
				i += 2
				continue
			}
			i++
		case q:
			j := i
			for j < n && src[j] == q {
				j++
			}
			if j-i >= 3 {
				// the last three quotes close the string; any in
				// front of them belong to the content
				tt := TMultiBasic
				if q == '\'' {
					tt = TMultiLiteral
				}
				tok := lx.tok(tt, start, j)
				tok.Mod = mod && q == '"'
				lx.i = j
				lx.inVal = false
				return tok, nil
			}
			i = j
		default:
			i++
		}
	}
	return Token{}, NewScanError(ErrUnterminated, Span{start, n}, lx.pd.Pos(start))
}
