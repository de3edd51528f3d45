// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jpull"
	"github.com/creachadair/jpull/jpath"
	"github.com/creachadair/jpull/query"
	"github.com/creachadair/mds/stack"
	"github.com/go-kit/log/level"
)

type checkCmd struct{ t *tool }

// Execute reports, for each input, whether it is a valid stream of JSON
// values. Invalid inputs are reported with the line and kind of their first
// error, and the command fails if any input is invalid.
func (c *checkCmd) Execute(args []string) error {
	var nin, nbad int
	err := c.t.eachInput(args, func(name string, p *jpull.Parser) error {
		nin++
		var nv int
		for p.More() {
			if err := p.Skip(); err != nil {
				break
			}
			nv++
		}
		if err := p.Finish(); err != nil {
			var se *jpull.SyntaxError
			if !errors.As(err, &se) {
				return err
			}
			nbad++
			level.Error(c.t.log).Log("msg", "invalid JSON", "file", name,
				"line", se.Line, "kind", se.Kind)
			fmt.Fprintf(c.t.out, "%s: %v\n", name, err)
			return nil
		}
		level.Debug(c.t.log).Log("msg", "input is valid", "file", name, "values", nv)
		fmt.Fprintf(c.t.out, "%s: ok (%d values)\n", name, nv)
		return nil
	})
	if err != nil {
		return err
	} else if nbad != 0 {
		return fmt.Errorf("%d of %d inputs are invalid", nbad, nin)
	}
	return nil
}

type selectCmd struct {
	t *tool

	Args struct {
		Expr  string   `positional-arg-name:"expr" required:"yes" description:"JSONPath expression"`
		Files []string `positional-arg-name:"file" description:"Input files (default stdin)"`
	} `positional-args:"yes"`
}

// Execute prints the path and value of each match of the expression, for
// each top-level value of each input.
func (c *selectCmd) Execute(args []string) error {
	expr, err := jpath.Parse(c.Args.Expr)
	if err != nil {
		return fmt.Errorf("invalid expression: %w", err)
	}
	level.Debug(c.t.log).Log("msg", "parsed expression", "expr", expr)

	multi := len(c.Args.Files) > 1
	return c.t.eachInput(c.Args.Files, func(name string, p *jpull.Parser) error {
		var nm int
		for p.More() {
			if err := query.Select(p, expr, func(path query.Path, p *jpull.Parser) error {
				text, err := summarize(p)
				if err != nil {
					return err
				}
				nm++
				if multi {
					fmt.Fprintf(c.t.out, "%s:", name)
				}
				fmt.Fprintf(c.t.out, "%s\t%s\n", path, text)
				return nil
			}); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		level.Debug(c.t.log).Log("msg", "selected", "file", name, "matches", nm)
		if err := p.Finish(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}

// summarize consumes a value and renders it for output. Scalars are rendered
// as JSON text; containers as their type and entry count.
func summarize(p *jpull.Parser) (string, error) {
	t, err := p.PeekType()
	if err != nil {
		return "", err
	}
	switch t {
	case jpull.Null:
		return "null", p.Null()
	case jpull.Bool:
		v, err := p.Bool()
		return strconv.FormatBool(v), err
	case jpull.Number:
		return p.NumberText()
	case jpull.String:
		s, err := p.Text()
		return strconv.Quote(s), err
	case jpull.Array:
		e := p.Array()
		for e.Next() {
			if err := p.Skip(); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("array(%d)", e.Index()+1), e.Err()
	}
	var n int
	m := p.Object()
	for m.Next() {
		n++
		if err := p.Skip(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("object(%d)", n), m.Err()
}

type statsCmd struct{ t *tool }

// Execute prints a summary line for each input.
func (c *statsCmd) Execute(args []string) error {
	return c.t.eachInput(args, func(name string, p *jpull.Parser) error {
		var s stats
		for p.More() {
			if err := s.visit(p); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			s.values++
		}
		if err := p.Finish(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprintf(c.t.out, "%s: %s\n", name, s.String())
		return nil
	})
}

// stats records the number of values of each type in an input.
type stats struct {
	values int // top-level values
	count  [jpull.Object + 1]int
	depth  int
}

// entries is the iteration interface shared by arrays and objects.
type entries interface {
	Next() bool
	Err() error
}

// visit consumes one value, counting it and everything nested inside it.
func (s *stats) visit(p *jpull.Parser) error {
	open := stack.New[entries]()
	for {
		t, err := p.PeekType()
		if err != nil {
			return err
		}
		s.count[t]++
		switch t {
		case jpull.Array:
			open.Push(p.Array())
		case jpull.Object:
			open.Push(p.Object())
		default:
			if err := p.Skip(); err != nil {
				return err
			}
		}
		s.depth = max(s.depth, open.Len())

		// Advance to the next entry, closing any containers that end.
		for {
			top, ok := open.Peek(0)
			if !ok {
				return nil
			} else if top.Next() {
				break
			} else if err := top.Err(); err != nil {
				return err
			}
			open.Pop()
		}
	}
}

func (s *stats) String() string {
	msg := "values=" + strconv.Itoa(s.values)
	for t := jpull.Null; t <= jpull.Object; t++ {
		msg += fmt.Sprintf(" %s=%d", t, s.count[t])
	}
	return msg + " depth=" + strconv.Itoa(s.depth)
}
