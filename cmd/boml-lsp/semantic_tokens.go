package main

import (
	"context"
	"errors"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/boml-format/go-boml/token"
)

// The legend served from Initialize. Encoded token types index into
// these slices.
var semanticTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

var semanticTokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
}

const (
	commentToken = iota
	keywordToken
	stringToken
	numberToken
	operatorToken
	propertyToken
)

const definitionBit = 1 << 0

// semToken is one classified region before delta encoding. Lines and
// characters are zero-based; characters and lengths are in UTF-16
// units.
type semToken struct {
	line, char, length uint32
	typ, mods          uint32
}

// collectTokens classifies the document by re-scanning it. The scanner
// stops at the first lexical error; everything before it still
// highlights, diagnostics cover the rest.
func collectTokens(doc *document) []semToken {
	lx := token.NewLexer(doc.content)
	var toks []token.Token
	limit := len(doc.content)
	for {
		t, err := lx.Next()
		if err != nil {
			var se *token.ScanError
			if errors.As(err, &se) {
				limit = se.Span.Start
			} else {
				limit = lx.Offset()
			}
			break
		}
		if t.Type == token.TEOF {
			break
		}
		toks = append(toks, t)
	}

	var (
		list    []semToken
		prevEnd int
		header  bool
	)
	for i, t := range toks {
		emitComment(&list, doc, prevEnd, t.Span.Start)
		prevEnd = t.Span.End

		var typ uint32
		mods := uint32(0)
		switch t.Type {
		case token.TNewline:
			continue
		case token.TTableStart, token.TArrayTableStart:
			header = true
			typ = operatorToken
		case token.TTableEnd, token.TArrayTableEnd:
			header = false
			typ = operatorToken
		case token.TEquals, token.TDot, token.TComma,
			token.TLBracket, token.TRBracket, token.TLBrace, token.TRBrace:
			typ = operatorToken
		case token.TBoolean:
			typ = keywordToken
		case token.TInteger, token.TFloat,
			token.TDate, token.TTime, token.TDateTime:
			typ = numberToken
		case token.TBareKey:
			typ = propertyToken
			if header {
				mods = definitionBit
			}
		case token.TBasicString, token.TLiteralString:
			switch {
			case header:
				typ = propertyToken
				mods = definitionBit
			case keyAt(toks, i):
				typ = propertyToken
			default:
				typ = stringToken
			}
		case token.TMultiBasic, token.TMultiLiteral:
			typ = stringToken
		default:
			continue
		}
		emitSpans(&list, doc, t.Span, typ, mods)
	}
	emitComment(&list, doc, prevEnd, limit)
	return list
}

// keyAt reports whether the string token at index i is in key
// position, which shows as a following dot or equals.
func keyAt(toks []token.Token, i int) bool {
	if i+1 >= len(toks) {
		return false
	}
	switch toks[i+1].Type {
	case token.TEquals, token.TDot:
		return true
	}
	return false
}

// emitComment scans the inter-token gap [from, to) for a comment.
// Comments are the only non-whitespace the scanner skips, so the first
// '#' in a gap starts one running to the gap's end.
func emitComment(list *[]semToken, doc *document, from, to int) {
	if from >= to {
		return
	}
	gap := doc.content[from:to]
	h := strings.IndexByte(gap, '#')
	if h < 0 {
		return
	}
	s, e := from+h, to
	if e > s && doc.content[e-1] == '\r' {
		e--
	}
	emitSpans(list, doc, token.Span{Start: s, End: e}, commentToken, 0)
}

// emitSpans appends the classified span, split at newlines since the
// protocol encodes tokens per line.
func emitSpans(list *[]semToken, doc *document, span token.Span, typ, mods uint32) {
	for s := span.Start; s < span.End; {
		e, next := span.End, span.End+1
		if nl := strings.IndexByte(doc.content[s:e], '\n'); nl >= 0 {
			e = s + nl
			next = e + 1
		}
		if e > s && doc.content[e-1] == '\r' {
			e--
		}
		if e > s {
			pos := doc.position(s)
			*list = append(*list, semToken{
				line:   pos.Line,
				char:   pos.Character,
				length: uint32(utf16Len(doc.content[s:e])),
				typ:    typ,
				mods:   mods,
			})
		}
		s = next
	}
}

// encodeTokens emits the wire form: five uints per token holding line
// delta, character delta, length, type index, and modifier bits.
func encodeTokens(list []semToken) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, st := range list {
		dl := st.line - prevLine
		dc := st.char
		if dl == 0 {
			dc = st.char - prevChar
		}
		data = append(data, dl, dc, st.length, st.typ, st.mods)
		prevLine, prevChar = st.line, st.char
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(collectTokens(doc))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(params.TextDocument.URI)
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var kept []semToken
	for _, st := range collectTokens(doc) {
		if st.line < params.Range.Start.Line || st.line > params.Range.End.Line {
			continue
		}
		kept = append(kept, st)
	}
	return &protocol.SemanticTokens{Data: encodeTokens(kept)}, nil
}
