// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package fields_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jpull"
	"github.com/creachadair/jpull/fields"
	"github.com/google/go-cmp/cmp"
)

type server struct {
	Name    string
	Port    int64
	Weight  float64
	ID      uint64
	Enabled bool
	Serial  string
	Tags    []string
	Limits  []int64
	Owner   owner
	NoProxy bool
	Proxy   string
}

type owner struct {
	Email string
}

func serverMap(s *server) fields.Map {
	return fields.Map{
		"name":    fields.String(&s.Name),
		"port":    fields.Int64(&s.Port),
		"weight":  fields.Float64(&s.Weight),
		"id":      fields.Uint64(&s.ID),
		"enabled": fields.Bool(&s.Enabled),
		"serial":  fields.Text(&s.Serial),
		"tags":    fields.Slice(&s.Tags, (*jpull.Parser).Text),
		"limits":  fields.Slice(&s.Limits, (*jpull.Parser).Int64),
		"owner": fields.Object(fields.Map{
			"email": fields.String(&s.Owner.Email),
		}),
		"proxy": fields.Nullable(&s.NoProxy, fields.String(&s.Proxy)),
	}
}

func TestDecode(t *testing.T) {
	const input = `{
  "name": "alpha",
  "port": 8080,
  "weight": 0.75,
  "id": 18446744073709551615,
  "enabled": true,
  "serial": 123456789012345678901234567890,
  "tags": ["a", "b"],
  "limits": [],
  "owner": {"email": "ops@example.com", "pager": [1, 2]},
  "proxy": null,
  "comment": {"ignored": [true, {"x": null}]}
}`
	var got server
	p := jpull.NewString(input)
	if err := fields.Decode(p, serverMap(&got)); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Errorf("Finish: unexpected error: %v", err)
	}
	want := server{
		Name:    "alpha",
		Port:    8080,
		Weight:  0.75,
		ID:      18446744073709551615,
		Enabled: true,
		Serial:  "123456789012345678901234567890",
		Tags:    []string{"a", "b"},
		Owner:   owner{Email: "ops@example.com"},
		NoProxy: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode: (-want, +got)\n%s", diff)
	}
}

func TestNullable(t *testing.T) {
	var s server
	p := jpull.NewString(`{"proxy": "http://proxy:3128"}`)
	if err := fields.Decode(p, serverMap(&s)); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if s.NoProxy || s.Proxy != "http://proxy:3128" {
		t.Errorf("Proxy: got (%v, %q), want (false, http://proxy:3128)", s.NoProxy, s.Proxy)
	}
}

func TestStrict(t *testing.T) {
	var s server
	p := jpull.NewString("{\"name\": \"x\",\n \"bogus\": 1}")
	err := fields.Strict(p, serverMap(&s))
	var ufe *fields.UnknownFieldError
	if !errors.As(err, &ufe) {
		t.Fatalf("Strict: got %v, want *UnknownFieldError", err)
	}
	if ufe.Key != "bogus" || ufe.Line != 2 {
		t.Errorf("Strict: got (%q, %d), want (bogus, 2)", ufe.Key, ufe.Line)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jpull.ErrorKind
	}{
		{`[]`, jpull.ExpectedObject},
		{`{"port": "80"}`, jpull.ExpectedNumber},
		{`{"port": 1.5}`, jpull.NumberOutOfRange},
		{`{"tags": ["a", 2]}`, jpull.ExpectedString},
		{`{"name": "a" "port": 1}`, jpull.ExpectedComma},
		{`{"owner": {"email": true}}`, jpull.ExpectedString},
	}
	for _, test := range tests {
		var s server
		err := fields.Decode(jpull.NewString(test.input), serverMap(&s))
		if !errors.Is(err, test.kind) {
			t.Errorf("Decode %#q: got %v, want %v", test.input, err, test.kind)
		}
	}
}
