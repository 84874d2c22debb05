package parse

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/boml-format/go-boml/ir"
	"github.com/boml-format/go-boml/token"
)

// DefaultMaxDepth bounds array and inline-table nesting unless a
// MaxDepth option overrides it.
const DefaultMaxDepth = 1000

// Parse parses TOML source into a document table. On failure the
// returned error is a *Error for the earliest malformed construct and
// no tree is returned. Source text must be valid UTF-8.
//
// Escape-free strings in the result alias src; see CopyStrings.
func Parse(src string, opts ...ParseOption) (*ir.Table, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if off := invalidUTF8(src); off >= 0 {
		pd := token.NewPosDoc(src)
		pd.Index(off)
		return nil, &Error{
			Kind: InvalidEncoding,
			Span: token.Span{Start: off, End: off + 1},
			Pos:  pd.Pos(off),
		}
	}
	p := &parser{lx: token.NewLexer(src), opts: pOpts}
	p.pd = p.lx.PosDoc()
	if err := p.next(); err != nil {
		return nil, err
	}
	root := ir.NewTable()
	if err := p.document(root); err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lx   *token.Lexer
	pd   *token.PosDoc
	opts *parseOpts
	tok  token.Token
}

// seg is one resolved segment of a dotted key path.
type seg struct {
	key  string
	span token.Span
}

func (p *parser) next() error {
	t, err := p.lx.Next()
	if err != nil {
		return fromScan(err)
	}
	p.tok = t
	return nil
}

func (p *parser) errAt(kind ErrorKind, span token.Span) error {
	return &Error{Kind: kind, Span: span, Pos: p.pd.Pos(span.Start)}
}

func (p *parser) errTok(kind ErrorKind) error {
	return p.errAt(kind, p.tok.Span)
}

// tokenErr wraps a decode failure covering the whole token.
func (p *parser) tokenErr(err error, t token.Token) error {
	return &Error{Kind: scanKind(err), Span: t.Span, Pos: p.pd.Pos(t.Span.Start), Err: err}
}

// decodeErr wraps a string-decode failure at its exact offset inside
// the token.
func (p *parser) decodeErr(err error, off int, t token.Token) error {
	at := t.Span.Start + off
	return &Error{
		Kind: scanKind(err),
		Span: token.Span{Start: at, End: min(at+2, t.Span.End)},
		Pos:  p.pd.Pos(at),
		Err:  err,
	}
}

func (p *parser) document(root *ir.Table) error {
	cur := root
	for {
		for p.tok.Type == token.TNewline {
			if err := p.next(); err != nil {
				return err
			}
		}
		var err error
		switch p.tok.Type {
		case token.TEOF:
			return nil
		case token.TTableStart:
			cur, err = p.tableHeader(root)
		case token.TArrayTableStart:
			cur, err = p.arrayTableHeader(root)
		default:
			err = p.assignment(cur)
		}
		if err != nil {
			return err
		}
		if err := p.lineEnd(); err != nil {
			return err
		}
	}
}

func (p *parser) lineEnd() error {
	switch p.tok.Type {
	case token.TNewline:
		return p.next()
	case token.TEOF:
		return nil
	default:
		return p.errTok(ExpectedNewline)
	}
}

// keyText resolves a single key token to its text.
func (p *parser) keyText(t token.Token) (string, error) {
	var k string
	switch t.Type {
	case token.TBareKey:
		k = t.Text
	case token.TLiteralString:
		k = token.Body(t.Text)
	case token.TBasicString:
		if !t.Mod {
			k = token.Body(t.Text)
			break
		}
		s, off, err := token.DecodeBasic(t.Text)
		if err != nil {
			return "", p.decodeErr(err, off, t)
		}
		return s, nil
	default:
		return "", p.errAt(ExpectedKey, t.Span)
	}
	if p.opts.copyStrings {
		k = strings.Clone(k)
	}
	return k, nil
}

// keyPath consumes a key or dotted key, leaving the lookahead on the
// token after the last segment.
func (p *parser) keyPath() ([]seg, error) {
	var segs []seg
	for {
		k, err := p.keyText(p.tok)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg{key: k, span: p.tok.Span})
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.Type != token.TDot {
			return segs, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}
}

func (p *parser) assignment(cur *ir.Table) error {
	path, err := p.keyPath()
	if err != nil {
		return err
	}
	if p.tok.Type != token.TEquals {
		return p.errTok(ExpectedEquals)
	}
	if err := p.next(); err != nil {
		return err
	}
	val, err := p.value(0)
	if err != nil {
		return err
	}
	return p.bind(cur, path, val)
}

// bind walks all but the last path segment with descend and puts val
// at the last one. Rebinding an existing key is a DuplicateKey error
// at the second occurrence.
func (p *parser) bind(tab *ir.Table, path []seg, val *ir.Value) error {
	var err error
	for _, s := range path[:len(path)-1] {
		tab, err = p.descend(tab, s)
		if err != nil {
			return err
		}
	}
	last := path[len(path)-1]
	if _, ok := tab.Get(last.key); ok {
		return p.errAt(DuplicateKey, last.span)
	}
	tab.Set(last.key, val)
	return nil
}

// descend resolves one intermediate path segment, creating an open
// table when the key is absent. Dotted keys and table headers share
// this operation, which is what makes `a.b.c = 1` and `[a.b]` with
// `c = 1` build identical trees. An array resolves to its last
// element, so paths reach into the newest [[header]] table.
func (p *parser) descend(tab *ir.Table, s seg) (*ir.Table, error) {
	v, ok := tab.Get(s.key)
	if !ok {
		sub := ir.NewTable()
		tab.Set(s.key, ir.FromTable(sub))
		return sub, nil
	}
	if sub, ok := v.AsTable(); ok {
		return sub, nil
	}
	if elems, ok := v.AsArray(); ok && len(elems) > 0 {
		if sub, ok := elems[len(elems)-1].AsTable(); ok {
			return sub, nil
		}
	}
	return nil, p.errAt(NotATable, s.span)
}

// headerPath consumes the dotted path of a [header] or [[header]] and
// the expected closing token.
func (p *parser) headerPath(closing token.TokenType) ([]seg, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	path, err := p.keyPath()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != closing {
		return nil, p.errTok(ExpectedRightBracket)
	}
	return path, p.next()
}

func (p *parser) tableHeader(root *ir.Table) (*ir.Table, error) {
	path, err := p.headerPath(token.TTableEnd)
	if err != nil {
		return nil, err
	}
	tab := root
	for _, s := range path[:len(path)-1] {
		tab, err = p.descend(tab, s)
		if err != nil {
			return nil, err
		}
	}
	last := path[len(path)-1]
	v, ok := tab.Get(last.key)
	if !ok {
		sub := ir.NewTable()
		sub.MarkDefined()
		tab.Set(last.key, ir.FromTable(sub))
		return sub, nil
	}
	if sub, ok := v.AsTable(); ok && !sub.Defined() {
		sub.MarkDefined()
		return sub, nil
	}
	return nil, p.errAt(RedefinedTable, last.span)
}

func (p *parser) arrayTableHeader(root *ir.Table) (*ir.Table, error) {
	path, err := p.headerPath(token.TArrayTableEnd)
	if err != nil {
		return nil, err
	}
	tab := root
	for _, s := range path[:len(path)-1] {
		tab, err = p.descend(tab, s)
		if err != nil {
			return nil, err
		}
	}
	last := path[len(path)-1]
	v, ok := tab.Get(last.key)
	if !ok {
		v = ir.FromTableArray()
		tab.Set(last.key, v)
	}
	if !v.IsTableArray() {
		return nil, p.errAt(DuplicateKey, last.span)
	}
	sub := ir.NewTable()
	v.Append(ir.FromTable(sub))
	return sub, nil
}

// leaf finishes a value: applies the copy option and advances past the
// value's final token.
func (p *parser) leaf(v *ir.Value) (*ir.Value, error) {
	if p.opts.copyStrings {
		v.Own()
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) value(depth int) (*ir.Value, error) {
	if depth > p.opts.maxDepth {
		return nil, p.errTok(DepthExceeded)
	}
	t := p.tok
	switch t.Type {
	case token.TBasicString:
		if t.Mod {
			s, off, err := token.DecodeBasic(t.Text)
			if err != nil {
				return nil, p.decodeErr(err, off, t)
			}
			return p.leaf(ir.FromString(s))
		}
		return p.leaf(ir.FromRawString(token.Body(t.Text)))
	case token.TMultiBasic:
		if t.Mod {
			s, off, err := token.DecodeMultiBasic(t.Text)
			if err != nil {
				return nil, p.decodeErr(err, off, t)
			}
			return p.leaf(ir.FromString(s))
		}
		return p.leaf(ir.FromRawString(token.MultilineBody(t.Text)))
	case token.TLiteralString:
		return p.leaf(ir.FromRawString(token.Body(t.Text)))
	case token.TMultiLiteral:
		return p.leaf(ir.FromRawString(token.MultilineBody(t.Text)))
	case token.TInteger:
		i, err := token.DecodeInteger(t.Text)
		if err != nil {
			return nil, p.tokenErr(err, t)
		}
		return p.leaf(ir.FromInteger(i))
	case token.TFloat:
		f, err := token.DecodeFloat(t.Text)
		if err != nil {
			return nil, p.tokenErr(err, t)
		}
		return p.leaf(ir.FromFloat(f))
	case token.TBoolean:
		return p.leaf(ir.FromBoolean(t.Text == "true"))
	case token.TDate:
		return p.leaf(ir.FromDate(t.Text))
	case token.TTime:
		return p.leaf(ir.FromTime(t.Text))
	case token.TDateTime:
		return p.leaf(ir.FromDateTime(t.Text))
	case token.TLBracket:
		return p.array(depth)
	case token.TLBrace:
		return p.inlineTable(depth)
	default:
		return nil, p.errTok(ExpectedValue)
	}
}

// array parses [ ... ] with interior newlines ignored and a trailing
// comma permitted.
func (p *parser) array(depth int) (*ir.Value, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	elems := []*ir.Value{}
	for {
		for p.tok.Type == token.TNewline {
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		if p.tok.Type == token.TRBracket {
			return p.leaf(ir.FromArray(elems))
		}
		if p.tok.Type == token.TEOF {
			return nil, p.errTok(UnexpectedEndOfInput)
		}
		el, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
		for p.tok.Type == token.TNewline {
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		switch p.tok.Type {
		case token.TComma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.TRBracket:
		case token.TEOF:
			return nil, p.errTok(UnexpectedEndOfInput)
		default:
			return nil, p.errTok(ExpectedRightBracket)
		}
	}
}

// inlineTable parses { ... }, which must stay on one line. The table
// is closed to later header redefinition.
func (p *parser) inlineTable(depth int) (*ir.Value, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	tab := ir.NewTable()
	tab.MarkDefined()
	for {
		switch p.tok.Type {
		case token.TRBrace:
			return p.leaf(ir.FromTable(tab))
		case token.TEOF:
			return nil, p.errTok(UnexpectedEndOfInput)
		case token.TNewline:
			return nil, p.errTok(ExpectedRightBracket)
		}
		path, err := p.keyPath()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != token.TEquals {
			return nil, p.errTok(ExpectedEquals)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		val, err := p.value(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.bind(tab, path, val); err != nil {
			return nil, err
		}
		switch p.tok.Type {
		case token.TComma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.TRBrace, token.TNewline, token.TEOF:
		default:
			return nil, p.errTok(ExpectedRightBracket)
		}
	}
}

func fromScan(err error) error {
	var se *token.ScanError
	if errors.As(err, &se) {
		return &Error{Kind: scanKind(se.Err), Span: se.Span, Pos: &se.Pos, Err: se.Err}
	}
	return err
}

func invalidUTF8(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return -1
}
