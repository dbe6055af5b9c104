package edn

import "testing"

func TestSerialize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		desc string
		in   Edn
		want string
	}{
		{desc: "nil", in: Nil(), want: "nil"},
		{desc: "empty", in: Empty(), want: ""},
		{desc: "bool true", in: Bool(true), want: "true"},
		{desc: "bool false", in: Bool(false), want: "false"},
		{desc: "string with escapes", in: Str("a\"b\\c\nd"), want: `"a\"b\\c\nd"`},
		{desc: "char", in: Char('x'), want: `\x`},
		{desc: "symbol", in: Symbol("foo-bar"), want: "foo-bar"},
		{desc: "keyword", in: Keyword(":foo"), want: ":foo"},
		{desc: "uint", in: UInt(42), want: "42"},
		{desc: "int", in: Int(-7), want: "-7"},
		{desc: "double integral", in: Double(3), want: "3.0"},
		{desc: "double fraction", in: Double(3.5), want: "3.5"},
		{desc: "rational", in: Rational(3, 4), want: "3/4"},
		{desc: "vector", in: Vector([]Edn{UInt(1), UInt(2)}), want: "[1 2]"},
		{desc: "list", in: List([]Edn{UInt(1), UInt(2)}), want: "(1 2)"},
		{desc: "set", in: Set([]Edn{UInt(1)}), want: "#{1}"},
		{
			desc: "map",
			in:   MapOf([]MapPair{{Key: Keyword(":a"), Value: UInt(1)}, {Key: Keyword(":b"), Value: UInt(2)}}),
			want: "{:a 1, :b 2}",
		},
		{desc: "tagged", in: Tagged("uuid", Str("abc")), want: `#uuid "abc"`},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := tc.in.Serialize(); got != tc.want {
				t.Errorf("Serialize() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSerializeGenericHelpers(t *testing.T) {
	t.Parallel()
	if got := SerializeInt(int8(-5)); got != "-5" {
		t.Errorf("SerializeInt(int8) = %q, want -5", got)
	}
	if got := SerializeUint(uint32(9)); got != "9" {
		t.Errorf("SerializeUint(uint32) = %q, want 9", got)
	}
	if got := SerializeFloat(float32(1.5)); got != "1.5" {
		t.Errorf("SerializeFloat(float32) = %q, want 1.5", got)
	}
	n := Nil()
	if got := SerializeOptional[Edn](nil); got != "nil" {
		t.Errorf("SerializeOptional(nil) = %q, want nil", got)
	}
	if got := SerializeOptional(&n); got != "nil" {
		t.Errorf("SerializeOptional(&Nil()) = %q, want nil", got)
	}
	if got := SerializeSlice([]Edn{UInt(1), UInt(2)}); got != "[1 2]" {
		t.Errorf("SerializeSlice = %q, want [1 2]", got)
	}
	if got := SerializeTuple2(UInt(1), Str("a")); got != `(1 "a")` {
		t.Errorf(`SerializeTuple2 = %q, want (1 "a")`, got)
	}
	if got := SerializeTuple3(UInt(1), UInt(2), UInt(3)); got != "(1 2 3)" {
		t.Errorf("SerializeTuple3 = %q, want (1 2 3)", got)
	}
	if got := SerializeTuple4(UInt(1), UInt(2), UInt(3), UInt(4)); got != "(1 2 3 4)" {
		t.Errorf("SerializeTuple4 = %q, want (1 2 3 4)", got)
	}
	if got := SerializeTuple5(UInt(1), UInt(2), UInt(3), UInt(4), UInt(5)); got != "(1 2 3 4 5)" {
		t.Errorf("SerializeTuple5 = %q, want (1 2 3 4 5)", got)
	}
	if got := SerializeTuple6(UInt(1), UInt(2), UInt(3), UInt(4), UInt(5), UInt(6)); got != "(1 2 3 4 5 6)" {
		t.Errorf("SerializeTuple6 = %q, want (1 2 3 4 5 6)", got)
	}
}
