package token

import (
	"fmt"
	"math"
	"strconv"
)

// scratchSize bounds the buffer numeric text is cleaned into before
// handing off to strconv. Numbers longer than this after sign and
// prefix handling are rejected outright.
const scratchSize = 768

// DecodeInteger decodes a TOML integer lexeme: optional sign, optional
// 0x/0o/0b base prefix, underscores permitted only between digits.
func DecodeInteger(s string) (int64, error) {
	var scratch [scratchSize]byte
	b, base, err := cleanNumber(scratch[:0], s)
	if err != nil {
		return 0, err
	}
	if base == 10 {
		if err := checkLeadingZero(b); err != nil {
			return 0, err
		}
	}
	v, err := strconv.ParseInt(string(b), base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNumber, err.(*strconv.NumError).Err)
	}
	return v, nil
}

// DecodeFloat decodes a TOML float lexeme, including the inf and nan
// forms, after stripping underscores.
func DecodeFloat(s string) (float64, error) {
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	var scratch [scratchSize]byte
	b, base, err := cleanNumber(scratch[:0], s)
	if err != nil {
		return 0, err
	}
	if base != 10 {
		return 0, ErrNumber
	}
	if err := checkLeadingZero(b); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNumber, err.(*strconv.NumError).Err)
	}
	return v, nil
}

// cleanNumber copies s into dst with underscores stripped, validating
// that each underscore sits between two digits of the detected base.
// The base prefix is consumed; the sign is kept.
func cleanNumber(dst []byte, s string) ([]byte, int, error) {
	if len(s) == 0 {
		return nil, 0, ErrNumber
	}
	if len(s) > scratchSize {
		return nil, 0, ErrNumberTooLong
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		dst = append(dst, s[0])
		i++
	}
	base := 10
	if i+1 < len(s) && s[i] == '0' {
		switch s[i+1] {
		case 'x':
			base, i = 16, i+2
		case 'o':
			base, i = 8, i+2
		case 'b':
			base, i = 2, i+2
		}
	}
	prevDigit := false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if !prevDigit || i+1 >= len(s) || !baseDigit(s[i+1], base) {
				return nil, 0, ErrNumberUnderscore
			}
			prevDigit = false
			continue
		}
		dst = append(dst, c)
		prevDigit = baseDigit(c, base)
	}
	return dst, base, nil
}

func checkLeadingZero(b []byte) error {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		b = b[1:]
	}
	if len(b) > 1 && b[0] == '0' && b[1] >= '0' && b[1] <= '9' {
		return ErrNumberLeadingZero
	}
	return nil
}

func baseDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	default:
		return c >= '0' && c <= '9'
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
