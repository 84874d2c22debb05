// Package report renders parse failures as annotated source windows:
// the offending lines with a caret run under the failing span, plus a
// few lines of surrounding context. Output is colored through
// fatih/color, so callers control styling with color.NoColor.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	"github.com/boml-format/go-boml/parse"
	"github.com/boml-format/go-boml/token"
)

// context is the number of lines shown on either side of the span.
const context = 3

// tab is what a tab renders as; caret padding applies the same
// expansion so the underline stays aligned.
const tab = "    "

var (
	headColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	gutterColor = color.New(color.FgBlue).SprintFunc()
	caretColor  = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Render writes a diagnostic for err to w. err should be the error
// parse.Parse returned for src; anything else prints as a single line.
func Render(w io.Writer, src string, err error) error {
	var b strings.Builder
	var pe *parse.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(&b, "%s %v\n", headColor("error:"), err)
		_, werr := io.WriteString(w, b.String())
		return werr
	}

	pd := token.NewPosDoc(src)
	pd.Index(len(src))
	start := min(max(pe.Span.Start, 0), len(src))
	end := min(max(pe.Span.End, start), len(src))
	line, col := pd.LineCol(start)
	endLine, _ := pd.LineCol(end)

	head := pe.Kind.String()
	if pe.Err != nil && pe.Err.Error() != head {
		head = fmt.Sprintf("%s: %v", pe.Kind, pe.Err)
	}
	fmt.Fprintf(&b, "%s %s\n", headColor("error:"), head)
	fmt.Fprintf(&b, "  %s %d:%d\n", gutterColor("-->"), line+1, col+1)

	lines, starts := splitLines(src)
	lo := max(0, line-context)
	hi := min(len(lines)-1, endLine+context)
	gw := len(strconv.Itoa(hi + 1))
	for i := lo; i <= hi; i++ {
		raw := strings.TrimSuffix(lines[i], "\r")
		ls := starts[i]
		le := ls + len(lines[i])
		s := max(start, ls)
		e := min(end, le)
		hit := s < e || start == end && start >= ls && start <= le
		if !hit && i == len(lines)-1 && lines[i] == "" {
			// artifact of a trailing newline
			continue
		}
		fmt.Fprintf(&b, "%*d %s %s\n", gw, i+1, gutterColor("|"), expand(raw))
		if !hit {
			continue
		}
		pad := uniseg.StringWidth(expand(raw[:min(s-ls, len(raw))]))
		cw := uniseg.StringWidth(expand(raw[min(s-ls, len(raw)):min(e-ls, len(raw))]))
		if cw == 0 {
			cw = 1
		}
		fmt.Fprintf(&b, "%*s %s %s%s\n", gw, "", gutterColor("|"),
			strings.Repeat(" ", pad), caretColor(strings.Repeat("^", cw)))
	}
	_, werr := io.WriteString(w, b.String())
	return werr
}

// String renders err against src into a string.
func String(src string, err error) string {
	var b strings.Builder
	Render(&b, src, err)
	return b.String()
}

func expand(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", tab)
}

func splitLines(src string) ([]string, []int) {
	lines := strings.Split(src, "\n")
	starts := make([]int, len(lines))
	off := 0
	for i, l := range lines {
		starts[i] = off
		off += len(l) + 1
	}
	return lines, starts
}
