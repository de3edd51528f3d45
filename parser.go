// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/mds/stack"
	"go4.org/mem"
)

// DefaultMaxDepth is the default limit on container nesting.
const DefaultMaxDepth = 10000

// A Parser reads JSON values from an input stream on demand. The caller
// requests one value at a time, and the parser decodes exactly that value and
// no more.
//
// A Parser is not safe for concurrent use. After any method reports an error,
// every subsequent call reports the same error.
type Parser struct {
	c        cursor
	frames   *stack.Stack[*frame] // open containers, innermost on top
	maxDepth int
	buf      []byte   // scratch for literals and numbers
	sbuf     []uint16 // scratch for skipped strings
	err      error    // sticky
}

// A frame records the iteration state of one open container.
type frame struct {
	kind    Type // Array or Object
	started bool // at least one entry has been yielded
	owed    bool // the caller owes one value for the current entry
}

// New constructs a Parser that consumes UTF-8 encoded input from r.
// To read other encodings, see package source and [NewFromRunes].
func New(r io.Reader) *Parser {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return NewFromRunes(rr)
}

// NewFromRunes constructs a Parser that consumes Unicode scalar values from
// r. Decoding r's underlying encoding is the caller's responsibility.
func NewFromRunes(r io.RuneReader) *Parser {
	return &Parser{
		c:        newCursor(r),
		frames:   stack.New[*frame](),
		maxDepth: DefaultMaxDepth,
	}
}

// NewString constructs a Parser that consumes the contents of s.
func NewString(s string) *Parser { return NewFromRunes(strings.NewReader(s)) }

// SetMaxDepth sets the maximum nesting depth of arrays and objects. A value
// n <= 0 removes the limit, in which case the memory used to track open
// containers grows with the nesting of the input. Skip does not recurse, but
// a caller that walks values recursively should keep a limit in place.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Line reports the current 1-based line number of the input.
func (p *Parser) Line() int { return p.c.line }

// Depth reports the number of containers currently open.
func (p *Parser) Depth() int { return p.frames.Len() }

// Err reports the error that stopped p, if any.
func (p *Parser) Err() error { return p.err }

// PeekType reports the type of the next value without consuming it. Only
// whitespace preceding the value is consumed.
func (p *Parser) PeekType() (Type, error) {
	if err := p.begin(); err != nil {
		return Invalid, err
	}
	p.c.skipSpace()
	ch, ok := p.c.peek()
	if !ok {
		return Invalid, p.eof("expected a value")
	}
	if t := typeOf(ch); t != Invalid {
		return t, nil
	} else if isClose(ch) {
		return Invalid, p.closing(ch)
	}
	return Invalid, p.fail(UnexpectedCharacter, quoteRune(ch), "")
}

// Null consumes a null value.
func (p *Parser) Null() error {
	if err := p.expect(Null, ExpectedNull); err != nil {
		return err
	}
	if got := p.readName(); !got.Equal(mem.S("null")) {
		return p.fail(ExpectedNull, strconv.Quote(got.StringCopy()), "")
	}
	return p.finishScalar()
}

// Bool consumes a Boolean value.
func (p *Parser) Bool() (bool, error) {
	if err := p.expect(Bool, ExpectedBoolean); err != nil {
		return false, err
	}
	var ok bool
	switch got := p.readName(); {
	case got.Equal(mem.S("true")):
		ok = true
	case got.Equal(mem.S("false")):
		ok = false
	default:
		return false, p.fail(ExpectedBoolean, strconv.Quote(got.StringCopy()), "")
	}
	return ok, p.finishScalar()
}

// More reports whether another top-level value follows in the input. It
// reports false if a container is still open or p has failed.
func (p *Parser) More() bool {
	if p.err != nil || p.frames.Len() != 0 {
		return false
	}
	p.c.skipSpace()
	_, ok := p.c.peek()
	return ok
}

// Finish reports an error if any input other than whitespace remains, or if
// a container is still open.
func (p *Parser) Finish() error {
	if p.err != nil {
		return p.err
	} else if f, ok := p.frames.Peek(0); ok {
		return p.fail(ProtocolViolation, "", "%s is still open", f.kind)
	}
	p.c.skipSpace()
	if ch, ok := p.c.peek(); ok {
		return p.fail(UnexpectedCharacter, quoteRune(ch), "extra input after value")
	} else if p.c.readErr() != nil {
		return p.eof("")
	}
	return nil
}

// begin checks that the caller is entitled to read a value.
func (p *Parser) begin() error {
	if p.err != nil {
		return p.err
	}
	if f, ok := p.frames.Peek(0); ok && !f.owed {
		if f.started {
			return p.fail(ProtocolViolation, "", "value already consumed for this %s entry", f.kind)
		}
		return p.fail(ProtocolViolation, "", "call Next before reading %s entries", f.kind)
	}
	return nil
}

// done records that the value owed to the innermost container, if any, has
// been consumed.
func (p *Parser) done() {
	if f, ok := p.frames.Peek(0); ok {
		f.owed = false
	}
}

// expect checks that the next value has type want, or reports an error of
// the given kind describing what was found.
func (p *Parser) expect(want Type, kind ErrorKind) error {
	if err := p.begin(); err != nil {
		return err
	}
	p.c.skipSpace()
	ch, ok := p.c.peek()
	if !ok {
		return p.eof("expected " + want.String())
	}
	if t := typeOf(ch); t == want {
		return nil
	} else if t != Invalid {
		return p.fail(kind, t.String(), "")
	} else if isClose(ch) {
		return p.closing(ch)
	}
	return p.fail(kind, quoteRune(ch), "")
}

// finishScalar completes a scalar value whose text is in p.buf. A read error
// may have truncated the value, so it is checked here.
func (p *Parser) finishScalar() error {
	if p.c.readErr() != nil {
		return p.eof("")
	}
	p.done()
	return nil
}

// readName consumes a run of lowercase letters into p.buf. The run is
// bounded: no constant is longer than "false".
func (p *Parser) readName() mem.RO {
	const maxName = len("false") + 1

	p.buf = p.buf[:0]
	for len(p.buf) < maxName {
		ch, ok := p.c.peek()
		if !ok || !isNameRune(ch) {
			break
		}
		p.c.advance()
		p.buf = append(p.buf, byte(ch))
	}
	return mem.B(p.buf)
}

func (p *Parser) setErr(err error) error {
	p.err = err
	return err
}

func (p *Parser) fail(kind ErrorKind, found, msg string, args ...any) error {
	return p.failAt(p.c.line, kind, found, msg, args...)
}

func (p *Parser) failAt(line int, kind ErrorKind, found, msg string, args ...any) error {
	if len(args) != 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return p.setErr(&SyntaxError{Kind: kind, Line: line, Found: found, Message: msg})
}

// eof reports an error for input that stopped before it should have. If the
// underlying reader failed, the error wraps the read error.
func (p *Parser) eof(msg string) error {
	if err := p.c.readErr(); err != nil {
		return p.setErr(&SyntaxError{
			Kind:    UnexpectedEndOfInput,
			Line:    p.c.line,
			Message: "read failed: " + err.Error(),
			err:     err,
		})
	}
	return p.fail(UnexpectedEndOfInput, "", msg)
}

func (p *Parser) closing(ch rune) error {
	return p.fail(UnexpectedClosingToken, quoteRune(ch), "missing value, or extra comma before it")
}

func quoteRune(ch rune) string { return strconv.QuoteRune(ch) }
