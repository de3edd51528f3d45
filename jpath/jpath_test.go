package jpath_test

import (
	"testing"

	"github.com/creachadair/jpull/jpath"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"$", "$"},
		{"$.store.book[*]..author", "$.store.book.*..author"},
		{"$..author", ""},
		{"$.store.*", ""},
		{"$.store..price", ""},
		{"$..book[2]", ""},
		{"$..book[0,1]", ""},
		{"$..book[:2]", ""},
		{"$..book[0:2]", "$..book[:2]"},
		{"$..book[3:]", ""},
		{"$..book[1:4]", ""},
		{"$..*", ""},
		{"$['apple sauce'].pearPlum..'cherry apple'", "$.'apple sauce'.pearPlum..'cherry apple'"},
		{"$[a][1:3][b]['c d e']", "$.a[1:3].b.'c d e'"},
	}
	for _, test := range tests {
		e, err := jpath.Parse(test.input)
		if err != nil {
			t.Errorf("Parse %q: %v", test.input, err)
			continue
		}

		want := test.want
		if want == "" {
			want = test.input
		}
		if got := e.String(); got != want {
			t.Errorf("Parse %q:\n got %q\nwant %q", test.input, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"store.book",
		"$.",
		"$..",
		"$[1",
		"$[1,]",
		"$.a b",
		"$..book[-1:]",
		"$..book[1:-2]",
		"$..book[(@.length-1)]",
		"$..book[?(@.isbn)]",
		"$..book[?(@price<10)]",
	}
	for _, test := range tests {
		e, err := jpath.Parse(test)
		if err == nil {
			t.Errorf("Parse %q: got %v, want error", test, e)
		} else {
			t.Logf("Parse %q: got expected error: %v", test, err)
		}
	}
}

func TestSteps(t *testing.T) {
	e := jpath.MustParse("$.a['b c'][1,3][2:][*]..x..*")
	want := jpath.Expr{
		{Op: jpath.Member, Name: "a"},
		{Op: jpath.Member, Name: "b c"},
		{Op: jpath.Index, Indices: []int{1, 3}},
		{Op: jpath.Slice, Lo: 2, Hi: -1},
		{Op: jpath.Wildcard},
		{Op: jpath.Recur, Name: "x"},
		{Op: jpath.Recur, Name: "*"},
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("MustParse: (-want, +got)\n%s", diff)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		step  string
		key   string
		index int
		wantK bool
		wantI bool
	}{
		{"$.a", "a", 0, true, false},
		{"$.a", "b", 0, false, false},
		{"$.*", "any", 5, true, true},
		{"$[1,3]", "1", 3, false, true},
		{"$[1,3]", "", 2, false, false},
		{"$[2:4]", "", 1, false, false},
		{"$[2:4]", "", 2, false, true},
		{"$[2:4]", "", 4, false, false},
		{"$[2:]", "", 100, false, true},
		{"$..x", "x", 0, true, false},
		{"$..x", "y", 0, false, false},
		{"$..*", "y", 7, true, true},
	}
	for _, test := range tests {
		s := jpath.MustParse(test.step)[0]
		if got := s.MatchKey(test.key); got != test.wantK {
			t.Errorf("%s MatchKey(%q): got %v, want %v", test.step, test.key, got, test.wantK)
		}
		if got := s.MatchIndex(test.index); got != test.wantI {
			t.Errorf("%s MatchIndex(%d): got %v, want %v", test.step, test.index, got, test.wantI)
		}
	}
}

func TestMustParse(t *testing.T) {
	mtest.MustPanic(t, func() { jpath.MustParse("$[-1]") })
	mtest.MustPanic(t, func() { jpath.MustParse("no root") })
}
