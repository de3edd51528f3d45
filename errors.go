// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"fmt"
)

// ErrorKind classifies a [SyntaxError]. An ErrorKind is itself an error, so
// that callers may write:
//
//	if errors.Is(err, jpull.ExpectedComma) { ... }
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnknownError            ErrorKind = iota // unclassified error
	UnexpectedEndOfInput                     // input ended inside a value
	UnexpectedCharacter                      // a character that cannot start or continue a value
	UnexpectedClosingToken                   // "]" or "}" where a value was expected
	ExpectedComma                            // missing "," between container entries
	ExpectedColon                            // missing ":" after an object key
	ExpectedNull                             // wanted null
	ExpectedBoolean                          // wanted true or false
	ExpectedNumber                           // wanted a number
	LeadingZeroNotAllowed                    // integer part has a redundant leading zero
	ExpectedDigitInExponent                  // exponent marker or sign without digits
	ExpectedString                           // wanted a string
	ExpectedArray                            // wanted an array
	ExpectedObject                           // wanted an object
	UnclosedString                           // input ended inside a string
	IllegalControlCharacter                  // unescaped control character in a string
	UnknownEscapeCode                        // invalid letter after a backslash
	InvalidUnicodeEscape                     // invalid hex digit in a \u escape
	ProtocolViolation                        // caller broke the one-value-per-step contract
	NumberOutOfRange                         // number not representable in the requested type
	NestingTooDeep                           // containers nested beyond the configured limit
)

var kindStr = [...]string{
	UnknownError:            "unknown error",
	UnexpectedEndOfInput:    "unexpected end of input",
	UnexpectedCharacter:     "unexpected character",
	UnexpectedClosingToken:  "unexpected closing token",
	ExpectedComma:           "expected comma",
	ExpectedColon:           "expected colon",
	ExpectedNull:            "expected null",
	ExpectedBoolean:         "expected boolean",
	ExpectedNumber:          "expected number",
	LeadingZeroNotAllowed:   "leading zero not allowed",
	ExpectedDigitInExponent: "expected digit in exponent",
	ExpectedString:          "expected string",
	ExpectedArray:           "expected array",
	ExpectedObject:          "expected object",
	UnclosedString:          "unclosed string",
	IllegalControlCharacter: "illegal control character",
	UnknownEscapeCode:       "unknown escape code",
	InvalidUnicodeEscape:    "invalid unicode escape",
	ProtocolViolation:       "protocol violation",
	NumberOutOfRange:        "number out of range",
	NestingTooDeep:          "nesting too deep",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[UnknownError]
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by a [Parser].
type SyntaxError struct {
	Kind    ErrorKind
	Line    int    // 1-based line number where the error was detected
	Found   string // what was found instead, if known
	Message string // additional detail, if any

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	msg := fmt.Sprintf("line %d: %s", s.Line, s.Kind)
	if s.Found != "" {
		msg += ", found " + s.Found
	}
	if s.Message != "" {
		msg += " (" + s.Message + ")"
	}
	return msg
}

// Is reports whether target is an ErrorKind equal to s.Kind.
func (s *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == s.Kind
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
