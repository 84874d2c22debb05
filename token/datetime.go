package token

// Date and time values are recognized by lexical shape only and kept as
// raw text; no field ranges are checked. Converting them into a real
// calendar type is the consumer's business.

// isDateShape matches YYYY-MM-DD.
func isDateShape(s string) bool {
	if len(s) != 10 {
		return false
	}
	return allDigits(s[:4]) && s[4] == '-' &&
		allDigits(s[5:7]) && s[7] == '-' && allDigits(s[8:10])
}

// timePrefixLen returns the length of a leading HH:MM:SS[.frac] in s,
// or 0 if there is none.
func timePrefixLen(s string) int {
	if len(s) < 8 {
		return 0
	}
	if !allDigits(s[:2]) || s[2] != ':' ||
		!allDigits(s[3:5]) || s[5] != ':' || !allDigits(s[6:8]) {
		return 0
	}
	i := 8
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == i+1 {
			return 0
		}
		i = j
	}
	return i
}

func isTimeShape(s string) bool {
	n := timePrefixLen(s)
	return n > 0 && n == len(s)
}

// isDateTimeShape matches a date joined to a time by 'T', 't', or a
// single space, with an optional trailing Z/z or ±HH:MM offset.
func isDateTimeShape(s string) bool {
	if len(s) < 19 {
		return false
	}
	if !isDateShape(s[:10]) {
		return false
	}
	if s[10] != 'T' && s[10] != 't' && s[10] != ' ' {
		return false
	}
	rest := s[11:]
	n := timePrefixLen(rest)
	if n == 0 {
		return false
	}
	off := rest[n:]
	switch {
	case off == "":
		return true
	case off == "Z" || off == "z":
		return true
	case len(off) == 6 && (off[0] == '+' || off[0] == '-'):
		return allDigits(off[1:3]) && off[3] == ':' && allDigits(off[4:6])
	}
	return false
}
