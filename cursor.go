// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"io"
)

// A cursor is a forward-only view of a rune stream with one rune of
// lookahead. It counts lines as runes are consumed.
type cursor struct {
	r    io.RuneReader
	next rune // lookahead, valid if have is true
	have bool
	err  error // sticky read error, including io.EOF

	line int  // current line, 1-based
	sep  rune // last line separator consumed, or 0
}

func newCursor(r io.RuneReader) cursor { return cursor{r: r, line: 1} }

// peek reports the next rune without consuming it. It reports false at the
// end of input or after a read error; see readErr.
func (c *cursor) peek() (rune, bool) {
	if c.have {
		return c.next, true
	} else if c.err != nil {
		return 0, false
	}
	ch, _, err := c.r.ReadRune()
	if err != nil {
		c.err = err
		return 0, false
	}
	c.next, c.have = ch, true
	return ch, true
}

// advance consumes and returns the next rune. It reports false at the end
// of input or after a read error.
func (c *cursor) advance() (rune, bool) {
	ch, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.have = false

	// A "\r\n" or "\n\r" pair is one line break; "\n\n" is two.
	if isBreak(ch) {
		if c.sep != 0 && c.sep != ch {
			c.sep = 0
		} else {
			c.line++
			c.sep = ch
		}
	} else {
		c.sep = 0
	}
	return ch, true
}

// skipSpace discards insignificant whitespace.
func (c *cursor) skipSpace() {
	for {
		ch, ok := c.peek()
		if !ok || !isSpace(ch) {
			return
		}
		c.advance()
	}
}

// readErr reports the error that stopped the cursor, or nil if it stopped
// at the end of input.
func (c *cursor) readErr() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}
