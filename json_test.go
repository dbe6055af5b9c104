package edn

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestToJSON(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc string
		in   string
		want string
	}{
		{desc: "nil", in: "nil", want: "null"},
		{desc: "number", in: "42", want: "42"},
		{desc: "string", in: `"hi"`, want: `"hi"`},
		{desc: "char", in: `\a`, want: `'a'`},
		{desc: "keyword kebab to camel", in: ":foo-bar-baz", want: `"fooBarBaz"`},
		{desc: "symbol passes through as string", in: "foo-bar", want: `"foo-bar"`},
		{desc: "rational becomes float", in: "1/2", want: "0.5"},
		{desc: "set becomes array", in: "#{1}", want: "[1]"},
		{desc: "tagged inst unwraps", in: `#inst "2024-01-01"`, want: `"2024-01-01"`},
		{desc: "tagged uuid unwraps", in: `#uuid "abc-123"`, want: `"abc-123"`},
		{desc: "other tagged uses payload", in: "#my/tag 1", want: "1"},
		{
			desc: "map keyword keys camel-cased",
			in:   "{:foo-bar 1}",
			want: `{"fooBar":1}`,
		},
		{
			desc: "map string key passes through",
			in:   `{"a b" 1}`,
			want: `{"a b":1}`,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			got, err := ToJSON(v)
			if err != nil {
				t.Fatalf("ToJSON(%v) error: %v", v, err)
			}
			if got != tc.want {
				t.Errorf("ToJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToJSONUUIDTag(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	in := fmt.Sprintf("#uuid %q", id.String())
	v, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", in, err)
	}
	got, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON(%v) error: %v", v, err)
	}
	want := fmt.Sprintf("%q", id.String())
	if got != want {
		t.Errorf("ToJSON(%q) = %q, want %q", in, got, want)
	}
}

func TestJSONToEDN(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc string
		in   string
		want string
	}{
		{desc: "null becomes nil", in: "null", want: "nil"},
		{desc: "number passes through", in: "42", want: "42"},
		{desc: "object key becomes keyword", in: `{"a_b":1}`, want: `{:a-b 1}`},
		{desc: "char literal becomes backslash form", in: `['x']`, want: `[\x]`},
		{desc: "ordinary string passes through", in: `"hi"`, want: `"hi"`},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got, err := JSONToEDN(tc.in)
			if err != nil {
				t.Fatalf("JSONToEDN(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("JSONToEDN(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
