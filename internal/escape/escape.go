// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape defines the escape table for JSON strings.
package escape

var shortEsc = [...]uint16{
	'"':  '"',
	'/':  '/',
	'\\': '\\',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Short reports the code unit denoted by the short escape \c, and whether c
// is a valid short escape letter. The letter 'u' is not a short escape.
func Short(c rune) (uint16, bool) {
	if c < 0 || int(c) >= len(shortEsc) {
		return 0, false
	}
	v := shortEsc[c]
	return v, v != 0
}

// HexDigit reports the value of ch as a hexadecimal digit, and whether ch
// is an ASCII hexadecimal digit.
func HexDigit(ch rune) (uint16, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return uint16(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return uint16(ch - 'a' + 10), true
	case 'A' <= ch && ch <= 'F':
		return uint16(ch - 'A' + 10), true
	}
	return 0, false
}
