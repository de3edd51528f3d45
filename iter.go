// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"iter"
	"unicode/utf16"
)

// Elements iterates over the elements of an array. Each call to Next
// advances to the next element; the caller must then consume exactly one
// value from the parser (or call its Skip method) before calling Next again:
//
//	e := p.Array()
//	for e.Next() {
//	   v, err := p.Int64()
//	   ...
//	}
//	if err := e.Err(); err != nil {
//	   log.Fatalf("Array: %v", err)
//	}
//
// If the caller stops before Next reports false, the parser is left inside
// the array and can only be discarded. Use SkipRest to drain the remainder.
type Elements struct {
	p     *Parser
	f     *frame
	index int
	done  bool
	err   error
}

// Array consumes the opening bracket of an array and returns an iterator over
// its elements. If the next value is not an array, the error is reported by
// the Err method of the iterator.
func (p *Parser) Array() *Elements {
	f, err := p.open(Array, ExpectedArray)
	return &Elements{p: p, f: f, index: -1, err: err}
}

// Next advances e to the next element, and reports whether one is available.
// When Next reports false, the closing bracket has been consumed or an error
// occurred; see Err.
func (e *Elements) Next() bool {
	if e.done || e.err != nil {
		return false
	}
	more, err := e.p.step(e.f, ']')
	if err != nil {
		e.err = err
		return false
	} else if !more {
		e.done = true
		return false
	}
	e.f.owed = true
	e.index++
	return true
}

// Index reports the 0-based index of the current element.
func (e *Elements) Index() int { return e.index }

// Err reports the error that ended iteration, or nil.
func (e *Elements) Err() error { return e.err }

// SkipRest discards the current element if it has not been consumed, and all
// the elements after it, through the closing bracket.
func (e *Elements) SkipRest() error {
	if e.err == nil && !e.done && e.f.owed {
		if err := e.p.Skip(); err != nil {
			e.err = err
			return err
		}
	}
	for e.Next() {
		if err := e.p.Skip(); err != nil {
			e.err = err
			return err
		}
	}
	return e.err
}

// All returns an iterator over the indexes of the remaining elements. The
// caller must consume one value per index; check Err after the loop.
func (e *Elements) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for e.Next() {
			if !yield(e.index) {
				return
			}
		}
	}
}

// Members iterates over the members of an object. Each call to Next advances
// to the next member and decodes its key; the caller must then consume
// exactly one value from the parser (or call its Skip method) before calling
// Next again:
//
//	m := p.Object()
//	for m.Next() {
//	   switch m.Key() {
//	   case "name":
//	      name, err = p.Text()
//	   default:
//	      err = p.Skip()
//	   }
//	   ...
//	}
//	if err := m.Err(); err != nil {
//	   log.Fatalf("Object: %v", err)
//	}
//
// If the caller stops before Next reports false, the parser is left inside
// the object and can only be discarded. Use SkipRest to drain the remainder.
type Members struct {
	p    *Parser
	f    *frame
	key  []uint16
	name string
	done bool
	err  error
}

// Object consumes the opening brace of an object and returns an iterator over
// its members. If the next value is not an object, the error is reported by
// the Err method of the iterator.
func (p *Parser) Object() *Members {
	f, err := p.open(Object, ExpectedObject)
	return &Members{p: p, f: f, err: err}
}

// Next advances m to the next member, and reports whether one is available.
// When Next reports false, the closing brace has been consumed or an error
// occurred; see Err.
func (m *Members) Next() bool {
	if m.done || m.err != nil {
		return false
	}
	more, err := m.p.step(m.f, '}')
	if err != nil {
		m.err = err
		return false
	} else if !more {
		m.done = true
		return false
	}
	if err := m.readKey(); err != nil {
		m.err = err
		return false
	}
	m.f.owed = true
	return true
}

func (m *Members) readKey() error {
	key, err := m.p.readKey(m.key[:0])
	if err != nil {
		return err
	}
	m.key = key
	m.name = string(utf16.Decode(key))
	return nil
}

// readKey consumes an object key and the colon after it, appending the key
// to dst.
func (p *Parser) readKey(dst []uint16) ([]uint16, error) {
	ch, ok := p.c.peek()
	if !ok {
		return dst, p.eof("expected object key")
	} else if ch != '"' {
		return dst, p.fail(ExpectedString, quoteRune(ch), "object keys must be strings")
	}
	key, err := p.scanString(dst)
	if err != nil {
		return key, err
	}

	p.c.skipSpace()
	ch, ok = p.c.peek()
	if !ok {
		return key, p.eof("expected colon")
	} else if ch != ':' {
		return key, p.fail(ExpectedColon, quoteRune(ch), "")
	}
	p.c.advance()
	return key, nil
}

// Key reports the key of the current member.
func (m *Members) Key() string { return m.name }

// KeyUTF16 reports the key of the current member as UTF-16 code units. The
// slice is only valid until the next call to Next.
func (m *Members) KeyUTF16() []uint16 { return m.key }

// Err reports the error that ended iteration, or nil.
func (m *Members) Err() error { return m.err }

// SkipRest discards the value of the current member if it has not been
// consumed, and all the members after it, through the closing brace.
func (m *Members) SkipRest() error {
	if m.err == nil && !m.done && m.f.owed {
		if err := m.p.Skip(); err != nil {
			m.err = err
			return err
		}
	}
	for m.Next() {
		if err := m.p.Skip(); err != nil {
			m.err = err
			return err
		}
	}
	return m.err
}

// All returns an iterator over the keys of the remaining members. The caller
// must consume one value per key; check Err after the loop.
func (m *Members) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for m.Next() {
			if !yield(m.name) {
				return
			}
		}
	}
}

// Skip consumes and discards the next value, of any type. Arrays and objects
// are drained completely. Skip does not recurse, so the only bound on the
// nesting it accepts is the limit set by SetMaxDepth.
func (p *Parser) Skip() error {
	base := p.frames.Len()
	for {
		if err := p.skipOne(); err != nil {
			return err
		}

		// Step the innermost open container to its next entry, popping any
		// that have ended, until we are back where we began.
		for p.frames.Len() > base {
			f, _ := p.frames.Peek(0)
			close := ']'
			if f.kind == Object {
				close = '}'
			}
			more, err := p.step(f, close)
			if err != nil {
				return err
			} else if !more {
				continue
			}
			if f.kind == Object {
				if p.sbuf, err = p.readKey(p.sbuf[:0]); err != nil {
					return err
				}
			}
			f.owed = true
			break
		}
		if p.frames.Len() == base {
			return nil
		}
	}
}

// skipOne consumes a scalar value, or the opening token of a container.
func (p *Parser) skipOne() error {
	t, err := p.PeekType()
	if err != nil {
		return err
	}
	switch t {
	case Null:
		return p.Null()
	case Bool:
		_, err := p.Bool()
		return err
	case Number:
		return p.scanNumber()
	case String:
		return p.skipString()
	case Array:
		_, err := p.open(Array, ExpectedArray)
		return err
	case Object:
		_, err := p.open(Object, ExpectedObject)
		return err
	}
	panic("unreachable")
}

// open consumes the opening token of a container of the given kind and
// pushes a frame for it.
func (p *Parser) open(kind Type, ek ErrorKind) (*frame, error) {
	if err := p.expect(kind, ek); err != nil {
		return nil, err
	}
	if p.maxDepth > 0 && p.frames.Len() >= p.maxDepth {
		return nil, p.fail(NestingTooDeep, "", "limit is %d", p.maxDepth)
	}
	p.c.advance()
	f := &frame{kind: kind}
	p.frames.Push(f)
	return f, nil
}

// step advances the container f to its next entry, consuming a separating
// comma if needed. It reports false if the container ended, in which case
// the close token has been consumed and f has been popped.
func (p *Parser) step(f *frame, close rune) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if top, ok := p.frames.Peek(0); !ok {
		return false, p.fail(ProtocolViolation, "", "%s is already closed", f.kind)
	} else if top != f {
		return false, p.fail(ProtocolViolation, "", "a nested %s is still open", top.kind)
	} else if f.owed {
		return false, p.fail(ProtocolViolation, "", "no value was consumed for the current %s entry", f.kind)
	}

	p.c.skipSpace()
	ch, ok := p.c.peek()
	if !ok {
		return false, p.eof("unclosed " + f.kind.String())
	}
	if ch == close {
		p.c.advance()
		p.frames.Pop()
		p.done()
		return false, nil
	}
	if f.started {
		if ch != ',' {
			return false, p.fail(ExpectedComma, quoteRune(ch), "")
		}
		p.c.advance()
		p.c.skipSpace()
	}
	f.started = true
	return true, nil
}
