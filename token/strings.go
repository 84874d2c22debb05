package token

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Body returns the contents of a single-line string token with the
// delimiters stripped. The result aliases raw.
func Body(raw string) string {
	return raw[1 : len(raw)-1]
}

// MultilineBody returns the contents of a triple-quoted token with the
// delimiters stripped and a newline immediately after the opening
// delimiter discarded. The result aliases raw, so escape-free multiline
// strings stay zero-copy.
func MultilineBody(raw string) string {
	body := raw[3 : len(raw)-3]
	if after, ok := strings.CutPrefix(body, "\r\n"); ok {
		return after
	}
	if after, ok := strings.CutPrefix(body, "\n"); ok {
		return after
	}
	return body
}

// DecodeBasic decodes a single-line basic string token (delimiters
// included in raw), replaying escape sequences into fresh storage. On
// failure the returned int is the byte offset of the offending escape
// within raw.
func DecodeBasic(raw string) (string, int, error) {
	return decodeEscapes(Body(raw), 1, false)
}

// DecodeMultiBasic decodes a multiline basic string token, applying the
// leading-newline and line-continuation trimming rules.
func DecodeMultiBasic(raw string) (string, int, error) {
	body := raw[3 : len(raw)-3]
	off := 3
	if after, ok := strings.CutPrefix(body, "\r\n"); ok {
		body, off = after, off+2
	} else if after, ok := strings.CutPrefix(body, "\n"); ok {
		body, off = after, off+1
	}
	return decodeEscapes(body, off, true)
}

func decodeEscapes(body string, base int, multiline bool) (string, int, error) {
	b := &strings.Builder{}
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		next := strings.IndexByte(body[i:], '\\')
		if next < 0 {
			b.WriteString(body[i:])
			break
		}
		b.WriteString(body[i : i+next])
		i += next
		if i+1 >= len(body) {
			return "", base + i, ErrBadEscape
		}
		switch body[i+1] {
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case 'u':
			r, err := unicodeEscape(body[i+2:], 4)
			if err != nil {
				return "", base + i, err
			}
			b.WriteRune(r)
			i += 6
		case 'U':
			r, err := unicodeEscape(body[i+2:], 8)
			if err != nil {
				return "", base + i, err
			}
			b.WriteRune(r)
			i += 10
		case '\n', '\r', ' ', '\t':
			if !multiline {
				return "", base + i, ErrBadEscape
			}
			// line continuation: the backslash must be the last
			// non-whitespace on its line; everything through the
			// following whitespace is elided
			j := i + 1
			for j < len(body) && (body[j] == ' ' || body[j] == '\t' || body[j] == '\r') {
				j++
			}
			if j >= len(body) || body[j] != '\n' {
				return "", base + i, ErrBadEscape
			}
			j++
			for j < len(body) {
				c := body[j]
				if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
					break
				}
				j++
			}
			i = j
		default:
			return "", base + i, ErrBadEscape
		}
	}
	return b.String(), 0, nil
}

func unicodeEscape(s string, size int) (rune, error) {
	if len(s) < size {
		return 0, ErrBadUnicode
	}
	v, err := strconv.ParseUint(s[:size], 16, 32)
	if err != nil {
		return 0, ErrBadUnicode
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, ErrBadUnicode
	}
	return r, nil
}
