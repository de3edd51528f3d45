// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package fields decodes JSON objects into Go values using explicit
// per-key decoding functions, without reflection.
//
// A Map associates object keys with functions that decode the value of the
// corresponding member:
//
//	var cfg struct {
//	   Name  string
//	   Port  int64
//	   Tags  []string
//	}
//	err := fields.Decode(p, fields.Map{
//	   "name": fields.String(&cfg.Name),
//	   "port": fields.Int64(&cfg.Port),
//	   "tags": fields.Slice(&cfg.Tags, (*jpull.Parser).Text),
//	})
package fields

import (
	"fmt"

	"github.com/creachadair/jpull"
)

// A Func decodes one JSON value from p. It must consume exactly one value.
type Func func(p *jpull.Parser) error

// A Map associates object keys with the functions that decode their values.
type Map map[string]Func

// Decode consumes an object from p. For each member whose key is in m, the
// corresponding function is called to decode its value. Members whose keys
// are not in m are skipped.
func Decode(p *jpull.Parser, m Map) error { return decode(p, m, false) }

// Strict is as Decode, but reports an error of type *UnknownFieldError if the
// object contains a key that is not in m.
func Strict(p *jpull.Parser, m Map) error { return decode(p, m, true) }

func decode(p *jpull.Parser, m Map, strict bool) error {
	obj := p.Object()
	for obj.Next() {
		f, ok := m[obj.Key()]
		if !ok {
			if strict {
				return &UnknownFieldError{Key: obj.Key(), Line: p.Line()}
			}
			if err := p.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := f(p); err != nil {
			return fmt.Errorf("field %q: %w", obj.Key(), err)
		}
	}
	return obj.Err()
}

// UnknownFieldError is reported by Strict for a key that is not mapped.
type UnknownFieldError struct {
	Key  string
	Line int
}

func (u *UnknownFieldError) Error() string {
	return fmt.Sprintf("line %d: unknown field %q", u.Line, u.Key)
}

// Object returns a Func that decodes a nested object using m.
func Object(m Map) Func {
	return func(p *jpull.Parser) error { return Decode(p, m) }
}

// Value returns a Func that decodes a value with dec and stores it in *v.
func Value[T any](v *T, dec func(*jpull.Parser) (T, error)) Func {
	return func(p *jpull.Parser) error {
		x, err := dec(p)
		if err != nil {
			return err
		}
		*v = x
		return nil
	}
}

// Bool returns a Func that decodes a Boolean into *v.
func Bool(v *bool) Func { return Value(v, (*jpull.Parser).Bool) }

// Int64 returns a Func that decodes an integer into *v.
func Int64(v *int64) Func { return Value(v, (*jpull.Parser).Int64) }

// Uint64 returns a Func that decodes a non-negative integer into *v.
func Uint64(v *uint64) Func { return Value(v, (*jpull.Parser).Uint64) }

// Float64 returns a Func that decodes a number into *v.
func Float64(v *float64) Func { return Value(v, (*jpull.Parser).Float64) }

// String returns a Func that decodes a string into *v.
func String(v *string) Func { return Value(v, (*jpull.Parser).Text) }

// Text returns a Func that stores the text of a number into *v.
func Text(v *string) Func { return Value(v, (*jpull.Parser).NumberText) }

// Nullable returns a Func that accepts null, leaving its target unchanged
// and setting *isNull to true, or otherwise delegates to f.
func Nullable(isNull *bool, f Func) Func {
	return func(p *jpull.Parser) error {
		t, err := p.PeekType()
		if err != nil {
			return err
		} else if t == jpull.Null {
			*isNull = true
			return p.Null()
		}
		*isNull = false
		return f(p)
	}
}

// Slice returns a Func that decodes an array, applying dec to each element
// and appending the results to *v.
func Slice[T any](v *[]T, dec func(*jpull.Parser) (T, error)) Func {
	return func(p *jpull.Parser) error {
		e := p.Array()
		for e.Next() {
			x, err := dec(p)
			if err != nil {
				return fmt.Errorf("index %d: %w", e.Index(), err)
			}
			*v = append(*v, x)
		}
		return e.Err()
	}
}
