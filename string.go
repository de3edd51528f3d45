// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"fmt"
	"unicode/utf16"

	"github.com/creachadair/jpull/internal/escape"
)

// UTF16 consumes a string value and returns its decoded contents as UTF-16
// code units. Each \uXXXX escape contributes exactly one code unit, so a
// surrogate pair written as two escapes is reproduced as two units, and an
// unpaired surrogate is preserved as-is.
func (p *Parser) UTF16() ([]uint16, error) { return p.AppendUTF16(nil) }

// AppendUTF16 consumes a string value and appends its decoded code units to
// dst, returning the updated slice. See [Parser.UTF16].
func (p *Parser) AppendUTF16(dst []uint16) ([]uint16, error) {
	if err := p.expect(String, ExpectedString); err != nil {
		return dst, err
	}
	out, err := p.scanString(dst)
	if err != nil {
		return dst, err
	}
	p.done()
	return out, nil
}

// Text consumes a string value and returns its decoded contents as a Go
// string. Surrogate pairs are combined; unpaired surrogates are replaced by
// U+FFFD.
func (p *Parser) Text() (string, error) {
	u, err := p.UTF16()
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(u)), nil
}

// skipString consumes a string value and discards its contents.
func (p *Parser) skipString() error {
	out, err := p.AppendUTF16(p.sbuf[:0])
	p.sbuf = out[:0]
	return err
}

// scanString decodes a quoted string, appending its code units to dst.
// Precondition: the next rune is the opening quotation mark.
//
// Literal line breaks are accepted as part of the string content, and are
// counted like any other line break. All other control characters must be
// escaped.
func (p *Parser) scanString(dst []uint16) ([]uint16, error) {
	start := p.c.line
	p.c.advance() // opening quote
	for {
		ch, ok := p.c.advance()
		if !ok {
			return dst, p.unclosed(start)
		}
		switch {
		case ch == '"':
			return dst, nil
		case ch == '\\':
			u, err := p.scanEscape(start)
			if err != nil {
				return dst, err
			}
			dst = append(dst, u)
		case ch < ' ' && !isBreak(ch):
			return dst, p.fail(IllegalControlCharacter, fmt.Sprintf("%U", ch), "use an escape sequence")
		default:
			dst = utf16.AppendRune(dst, ch)
		}
	}
}

// scanEscape decodes the escape sequence following a backslash.
func (p *Parser) scanEscape(start int) (uint16, error) {
	ch, ok := p.c.advance()
	if !ok {
		return 0, p.unclosed(start)
	} else if v, ok := escape.Short(ch); ok {
		return v, nil
	} else if ch != 'u' {
		return 0, p.fail(UnknownEscapeCode, quoteRune(ch), "")
	}

	// A \u escape is exactly 4 hex digits denoting one UTF-16 code unit.
	var v uint16
	for range 4 {
		ch, ok := p.c.advance()
		if !ok {
			return 0, p.unclosed(start)
		}
		d, ok := escape.HexDigit(ch)
		if !ok {
			return 0, p.fail(InvalidUnicodeEscape, quoteRune(ch), "want 4 hex digits")
		}
		v = v<<4 | d
	}
	return v, nil
}

// unclosed reports an error for a string that began on the given line and
// was not terminated.
func (p *Parser) unclosed(start int) error {
	if p.c.readErr() != nil {
		return p.eof("")
	}
	return p.failAt(start, UnclosedString, "", "string began on line %d", start)
}
