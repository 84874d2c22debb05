package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Span is a half-open byte-offset range [Start, End) into the source
// text. Spans are attached to tokens and errors for diagnostics and are
// never used to mutate anything.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// PosDoc maps byte offsets to line/column pairs. The lexer records each
// newline it scans past, so offsets up to the scan frontier resolve
// correctly; nothing beyond it is ever needed.
type PosDoc struct {
	d string
	n []int
}

func NewPosDoc(src string) *PosDoc {
	return &PosDoc{d: src}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

// Index records the newlines of the document prefix [0, end), so that
// offsets up to end resolve to line/column without any scanning having
// happened. It is safe to mix with lexer-driven recording.
func (p *PosDoc) Index(end int) {
	end = min(end, len(p.d))
	for i := 0; i < end; i++ {
		if p.d[i] == '\n' {
			p.nl(i)
		}
	}
}

// LineCol returns the zero-based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a single position in a document, resolvable to line/column and
// printable with a short context snippet.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p *Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	q := strconv.Quote(sample)
	q = q[1 : len(q)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", q, p.I, p.Line(), p.Col())
}
