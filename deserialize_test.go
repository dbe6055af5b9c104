package edn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type nested struct {
		Field int64 `edn:"field"`
	}
	type message struct {
		Str      string   `edn:"str"`
		Num      int64    `edn:"num"`
		Flag     bool     `edn:"flag"`
		Nested   *nested  `edn:"nested"`
		Repeated []int64  `edn:"repeated"`
		Tags     []string `edn:"tags"`
	}

	var got message
	err := Unmarshal(`{
		"str" "hello"
		"num" 42
		"flag" true
		"nested" {"field" 7}
		"repeated" [1 2 3]
		"tags" ["a" "b"]
	}`, &got)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := message{
		Str:      "hello",
		Num:      42,
		Flag:     true,
		Nested:   &nested{Field: 7},
		Repeated: []int64{1, 2, 3},
		Tags:     []string{"a", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal mismatch (-want +got):\n%s", diff)
	}
}

type capturingTarget struct {
	got Edn
}

func (c *capturingTarget) FromEdn(e Edn) error {
	c.got = e
	return nil
}

func TestUnmarshalDeserializerBypassesReflection(t *testing.T) {
	t.Parallel()
	var target capturingTarget
	if err := Unmarshal(`1/2`, &target); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if target.got.Kind() != KindRational {
		t.Errorf("FromEdn received Kind() = %s, want Rational (the generic struct decoder would have lost this as a float)", target.got.Kind())
	}
}

func TestUnmarshalInvalidSyntax(t *testing.T) {
	t.Parallel()
	var v any
	err := Unmarshal(`{"a"`, &v)
	if err == nil {
		t.Fatalf("Unmarshal of truncated input: want error, got nil")
	}
}
