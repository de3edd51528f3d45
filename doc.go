// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jpull implements a pull parser for JSON text (RFC 8259).
//
// # Parsing
//
// A Parser reads JSON values from an input stream on demand. Construct a
// parser from an io.Reader and ask it for the value you expect next:
//
//	p := jpull.New(input)
//	ok, err := p.Bool()
//
// Nothing beyond the requested value is read, and no tree is ever built. If
// the next value does not have the requested type, the call fails with an
// error of concrete type *jpull.SyntaxError, and the parser cannot be used
// further. Use PeekType to find out what comes next without consuming it:
//
//	switch t, err := p.PeekType(); t {
//	case jpull.Number:
//	   v, err := p.Float64()
//	case jpull.String:
//	   s, err := p.Text()
//	...
//	}
//
// Numbers may be requested as int64, uint64, float64, an exact decimal, or
// as normalized text. Strings may be requested as UTF-16 code units, which
// preserve \u escapes exactly, or as Go strings.
//
// # Containers
//
// Arrays and objects are read by iteration. The Array and Object methods
// consume the opening token and return an iterator. Each step of the
// iterator yields one element index or member key, and the caller must
// consume exactly one value from the parser before taking the next step:
//
//	m := p.Object()
//	for m.Next() {
//	   if m.Key() == "id" {
//	      id, err = p.Int64()
//	   } else {
//	      err = p.Skip()
//	   }
//	   if err != nil {
//	      return err
//	   }
//	}
//	if err := m.Err(); err != nil {
//	   return err
//	}
//
// Reading a second value for one step, or stepping without reading a value,
// is reported as a ProtocolViolation rather than desynchronizing the input.
// Iteration must be completed or the parser discarded: an iterator that is
// abandoned leaves the parser inside the container. SkipRest drains the
// remainder of a container when the caller is done with it early.
//
// # Errors
//
// Every syntax error reports the kind of error and the line where it was
// detected. ErrorKind values satisfy the error interface, so they may be
// used with errors.Is:
//
//	if errors.Is(err, jpull.UnexpectedEndOfInput) {
//	   log.Print("Truncated input")
//	}
package jpull
