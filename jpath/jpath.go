// Package jpath implements a parser for JSONPath expressions that can be
// evaluated in a single forward pass over a stream of JSON.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX ...]
 value = [INDEX] ":" [INDEX]

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `\d+`

Script "(...)" and filter "?(...)" values and negative indices are not
supported: each needs to look ahead of, or behind, the current position in
the input.

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	st, rest, err := parseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("at %q: %w", rest, err)
	}
	return st, nil
}

// MustParse parses s as a JSONPath expression, and panics if it is invalid.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("jpath: parsing %q: %v", s, err))
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // member lookup: .name or ['name']
	Index              // array index lookup: [n] or [n,m,...]
	Slice              // array slice: [lo:hi]
	Wildcard           // wildcard expansion: .* or [*]
	Recur              // recursive descent: ..name or ..*
)

var opText = map[Op]string{
	Invalid:  "invalid",
	Member:   "member",
	Index:    "index",
	Slice:    "slice",
	Wildcard: "*",
	Recur:    "..",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op      Op
	Name    string // Member and Recur: the key to match; "*" for any key
	Indices []int  // Index: the indices to match
	Lo, Hi  int    // Slice: the half-open range [Lo, Hi); Hi < 0 is unbounded
}

// MatchKey reports whether s selects an object member with the given key.
func (s Step) MatchKey(key string) bool {
	switch s.Op {
	case Member:
		return key == s.Name
	case Recur:
		return s.Name == "*" || key == s.Name
	case Wildcard:
		return true
	}
	return false
}

// MatchIndex reports whether s selects the array element at index i.
func (s Step) MatchIndex(i int) bool {
	switch s.Op {
	case Index:
		return slices.Contains(s.Indices, i)
	case Slice:
		return i >= s.Lo && (s.Hi < 0 || i < s.Hi)
	case Wildcard:
		return true
	case Recur:
		return s.Name == "*"
	}
	return false
}

func (s Step) String() string {
	switch s.Op {
	case Member:
		return "." + quoteName(s.Name)
	case Recur:
		if s.Name == "*" {
			return "..*"
		}
		return ".." + quoteName(s.Name)
	case Wildcard:
		return ".*"
	case Index:
		ss := make([]string, len(s.Indices))
		for i, v := range s.Indices {
			ss[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(ss, ",") + "]"
	case Slice:
		var lo, hi string
		if s.Lo != 0 {
			lo = strconv.Itoa(s.Lo)
		}
		if s.Hi >= 0 {
			hi = strconv.Itoa(s.Hi)
		}
		return "[" + lo + ":" + hi + "]"
	}
	return "[?]"
}

func quoteName(name string) string {
	if m := wordRE.FindString(name); m == name && name != "" {
		return name
	}
	return "'" + name + "'"
}

func parseExpr(s string) ([]Step, string, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, s, errors.New("missing root marker")
	}
	return parseSteps(t)
}

func parseSteps(s string) (steps []Step, rest string, _ error) {
	for s != "" {
		step, rest, err := parseStep(s)
		if err != nil {
			return nil, rest, err
		}
		steps = append(steps, step)
		s = rest
	}
	return steps, s, nil
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		name, u, err := parseName(t)
		if err != nil {
			return Step{}, t, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Name: name}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		name, u, err := parseName(t)
		if err != nil {
			return Step{}, t, fmt.Errorf("invalid .name: %w", err)
		}
		return nameStep(name), u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		step, u, err := parseValue(t)
		if err != nil {
			return Step{}, u, err
		}
		u, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, errors.New("missing close bracket")
		}
		return step, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func nameStep(name string) Step {
	if name == "*" {
		return Step{Op: Wildcard}
	}
	return Step{Op: Member, Name: name}
}

func parseName(s string) (name, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return "*", t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], nil
	}
	return "", s, errors.New("invalid name")
}

func parseIndex(s string) (int, string, error) {
	m := indexRE.FindStringSubmatch(s)
	if m == nil {
		return 0, s, errors.New("invalid index")
	} else if strings.HasPrefix(m[1], "-") {
		return 0, s, errors.New("negative indices are not supported")
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, s, err
	}
	return v, s[len(m[0]):], nil
}

func parseValue(s string) (_ Step, rest string, _ error) {
	if strings.HasPrefix(s, "?(") {
		return Step{}, s, errors.New("filter expressions are not supported")
	}
	if strings.HasPrefix(s, "(") {
		return Step{}, s, errors.New("script expressions are not supported")
	}

	// Slice with no lower bound.
	if u, ok := strings.CutPrefix(s, ":"); ok {
		return parseSlice(0, u)
	}
	if v, rest, err := parseIndex(s); err == nil {
		if u, ok := strings.CutPrefix(rest, ":"); ok {
			return parseSlice(v, u)
		}
		out := Step{Op: Index, Indices: []int{v}}
		for {
			u, ok := strings.CutPrefix(rest, ",")
			if !ok {
				return out, rest, nil
			}
			v, rest, err = parseIndex(u)
			if err != nil {
				return Step{}, u, err
			}
			out.Indices = append(out.Indices, v)
		}
	} else if strings.HasPrefix(s, "-") {
		return Step{}, s, err
	}
	if name, rest, err := parseName(s); err == nil {
		return nameStep(name), rest, nil
	}
	return Step{}, s, fmt.Errorf("invalid value: %q", s)
}

func parseSlice(lo int, s string) (Step, string, error) {
	out := Step{Op: Slice, Lo: lo, Hi: -1}
	if strings.HasPrefix(s, "]") {
		return out, s, nil
	}
	hi, rest, err := parseIndex(s)
	if err != nil {
		return Step{}, s, err
	}
	out.Hi = hi
	return out, rest, nil
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)
