// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpull

import (
	"strings"
	"testing"
)

func TestCursorLines(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 1},
		{"abc", 1},
		{"\n", 2},
		{"\r", 2},
		{"\r\n", 2},
		{"\n\r", 2},
		{"\n\n", 3},
		{"\r\r", 3},
		{"\r\n\r\n", 3},
		{"a\n\nb\r\n\r\nc\n\rd\r\re", 8},
		{"\r\n\n", 3},
		{"x\ny\rz", 3},
	}
	for _, test := range tests {
		c := newCursor(strings.NewReader(test.input))
		var got strings.Builder
		for {
			ch, ok := c.advance()
			if !ok {
				break
			}
			got.WriteRune(ch)
		}
		if got.String() != test.input {
			t.Errorf("Input %#q: read %#q", test.input, got.String())
		}
		if c.line != test.want {
			t.Errorf("Input %#q: got line %d, want %d", test.input, c.line, test.want)
		}
		if err := c.readErr(); err != nil {
			t.Errorf("Input %#q: unexpected read error: %v", test.input, err)
		}
	}
}

func TestCursorPeek(t *testing.T) {
	c := newCursor(strings.NewReader("ab"))
	for range 3 {
		if ch, ok := c.peek(); !ok || ch != 'a' {
			t.Fatalf("peek: got (%q, %v), want ('a', true)", ch, ok)
		}
	}
	if ch, ok := c.advance(); !ok || ch != 'a' {
		t.Fatalf("advance: got (%q, %v), want ('a', true)", ch, ok)
	}
	if ch, ok := c.advance(); !ok || ch != 'b' {
		t.Fatalf("advance: got (%q, %v), want ('b', true)", ch, ok)
	}
	if ch, ok := c.peek(); ok {
		t.Errorf("peek at end: got %q, want none", ch)
	}
	if ch, ok := c.advance(); ok {
		t.Errorf("advance at end: got %q, want none", ch)
	}
}

func TestCursorSkipSpace(t *testing.T) {
	c := newCursor(strings.NewReader(" \t\r\n\n x"))
	c.skipSpace()
	if ch, ok := c.peek(); !ok || ch != 'x' {
		t.Errorf("peek: got (%q, %v), want ('x', true)", ch, ok)
	}
	if c.line != 3 {
		t.Errorf("line: got %d, want 3", c.line)
	}
}
