// Package query implements structural queries over a stream of JSON values.
//
// A query describes a syntactic substructure of a JSON value, such as an
// object member, an array element, or a path through the value. Evaluating a
// query consumes one value from a parser, skipping the parts of the value the
// query does not describe and handing the rest to a callback.
//
// The simplest query is for a "path", a sequence of object keys and/or array
// indices that describes a path from the root of a JSON value. For example,
// given the JSON value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the call
//
//	query.Find(p, f, 1, "c", "d")
//
// calls f with the parser positioned at the value "true".
package query

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jpull"
	"github.com/creachadair/jpull/jpath"
)

// ErrNotFound is reported by Find when the requested path does not exist.
var ErrNotFound = errors.New("value not found")

// Find consumes one value from p. If path denotes a value within it, Find
// calls f with p positioned at that value; f must consume exactly one value.
// The remainder of the enclosing value is discarded. Each element of path
// must be a string (an object key) or an int (an array index).
//
// If the path does not exist, Find reports an error wrapping ErrNotFound.
// Errors reported by f are returned unmodified.
func Find(p *jpull.Parser, f func(*jpull.Parser) error, path ...any) error {
	ok, err := find(p, f, path)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("%s: %w", Path(path), ErrNotFound)
	}
	return nil
}

func find(p *jpull.Parser, f func(*jpull.Parser) error, path []any) (bool, error) {
	if len(path) == 0 {
		return true, f(p)
	}
	t, err := p.PeekType()
	if err != nil {
		return false, err
	}
	switch key := path[0].(type) {
	case string:
		if t != jpull.Object {
			return false, p.Skip()
		}
		m := p.Object()
		for m.Next() {
			if m.Key() != key {
				if err := p.Skip(); err != nil {
					return false, err
				}
				continue
			}
			ok, err := find(p, f, path[1:])
			if err != nil {
				return false, err
			}
			return ok, m.SkipRest()
		}
		return false, m.Err()

	case int:
		if t != jpull.Array {
			return false, p.Skip()
		}
		e := p.Array()
		for e.Next() {
			if e.Index() != key {
				if err := p.Skip(); err != nil {
					return false, err
				}
				continue
			}
			ok, err := find(p, f, path[1:])
			if err != nil {
				return false, err
			}
			return ok, e.SkipRest()
		}
		return false, e.Err()

	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

// Select consumes one value from p and calls f for each value within it that
// matches expr, in the order they occur in the input. At each call, p is
// positioned at the matching value and f must consume exactly one value.
// Values that do not match expr are skipped.
//
// Because f consumes the matching value, any values nested inside it that
// would also match expr are not reported.
func Select(p *jpull.Parser, expr jpath.Expr, f func(Path, *jpull.Parser) error) error {
	s := &selector{p: p, expr: expr, f: f}
	return s.visit([]int{0})
}

type selector struct {
	p    *jpull.Parser
	expr jpath.Expr
	f    func(Path, *jpull.Parser) error
	path Path
}

// visit consumes one value, given the states of expr that have matched the
// path to that value. A state i means expr[:i] has matched.
func (s *selector) visit(states []int) error {
	if slices.Contains(states, len(s.expr)) {
		return s.f(slices.Clone(s.path), s.p)
	} else if len(states) == 0 {
		return s.p.Skip()
	}

	t, err := s.p.PeekType()
	if err != nil {
		return err
	}
	switch t {
	case jpull.Object:
		m := s.p.Object()
		for m.Next() {
			key := m.Key()
			if err := s.descend(key, states, func(st jpath.Step) bool {
				return st.MatchKey(key)
			}); err != nil {
				return err
			}
		}
		return m.Err()

	case jpull.Array:
		e := s.p.Array()
		for e.Next() {
			i := e.Index()
			if err := s.descend(i, states, func(st jpath.Step) bool {
				return st.MatchIndex(i)
			}); err != nil {
				return err
			}
		}
		return e.Err()
	}
	return s.p.Skip()
}

// descend visits the value of a container entry labelled by elt.
func (s *selector) descend(elt any, states []int, match func(jpath.Step) bool) error {
	var next []int
	add := func(i int) {
		if !slices.Contains(next, i) {
			next = append(next, i)
		}
	}
	for _, i := range states {
		if i >= len(s.expr) {
			continue
		}
		st := s.expr[i]
		if match(st) {
			add(i + 1)
		}
		if st.Op == jpath.Recur {
			add(i)
		}
	}

	s.path = append(s.path, elt)
	defer func() { s.path = s.path[:len(s.path)-1] }()
	return s.visit(next)
}

// A Path is a concrete path from the root of a JSON value, consisting of
// object keys (strings) and array indices (ints).
type Path []any

// String renders p in JSONPath bracket notation, for example $['a'][1].
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, elt := range p {
		switch t := elt.(type) {
		case string:
			sb.WriteString("['")
			sb.WriteString(strings.ReplaceAll(t, "'", `\'`))
			sb.WriteString("']")
		case int:
			sb.WriteString("[" + strconv.Itoa(t) + "]")
		default:
			fmt.Fprintf(&sb, "[%v]", t)
		}
	}
	return sb.String()
}
