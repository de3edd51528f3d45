package escape_test

import (
	"testing"

	"github.com/creachadair/jpull/internal/escape"
)

func TestShort(t *testing.T) {
	tests := []struct {
		input rune
		want  uint16
		ok    bool
	}{
		{'"', '"', true},
		{'\\', '\\', true},
		{'/', '/', true},
		{'b', '\b', true},
		{'f', '\f', true},
		{'n', '\n', true},
		{'r', '\r', true},
		{'t', '\t', true},
		{'u', 0, false},
		{'a', 0, false},
		{'x', 0, false},
		{'é', 0, false},
		{-1, 0, false},
	}
	for _, test := range tests {
		got, ok := escape.Short(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("Short(%q): got (%q, %v), want (%q, %v)", test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestHexDigit(t *testing.T) {
	tests := []struct {
		input rune
		want  uint16
		ok    bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{'x', 0, false},
		{' ', 0, false},
		{'\u0130', 0, false}, // truncates to '0' as a byte
		{'\uff10', 0, false}, // fullwidth digit zero
		{-1, 0, false},
	}
	for _, test := range tests {
		got, ok := escape.HexDigit(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("HexDigit(%q): got (%d, %v), want (%d, %v)", test.input, got, ok, test.want, test.ok)
		}
	}
}
