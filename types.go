// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

// Type is the type of a JSON value, as determined by its first character.
type Type byte

// Constants defining the valid Type values.
const (
	Invalid Type = iota // no value
	Null                // constant: null
	Bool                // constant: true or false
	Number              // number
	String              // quoted string
	Array               // array: [ ... ]
	Object              // object: { ... }
)

var typeStr = [...]string{
	Invalid: "invalid",
	Null:    "null",
	Bool:    "boolean",
	Number:  "number",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[Invalid]
	}
	return typeStr[v]
}

// typeOf classifies the value starting with ch. It reports Invalid if ch
// cannot begin a value.
func typeOf(ch rune) Type {
	switch {
	case ch == 'n':
		return Null
	case ch == 't' || ch == 'f':
		return Bool
	case isNumStart(ch):
		return Number
	case ch == '"':
		return String
	case ch == '[':
		return Array
	case ch == '{':
		return Object
	}
	return Invalid
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isBreak(ch rune) bool    { return ch == '\n' || ch == '\r' }
func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }
func isClose(ch rune) bool    { return ch == ']' || ch == '}' }
