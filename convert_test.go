package edn

import "testing"

func TestToInt(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc   string
		in     Edn
		want   int64
		wantOk bool
	}{
		{desc: "int", in: Int(-5), want: -5, wantOk: true},
		{desc: "double truncates", in: Double(3.9), want: 3, wantOk: true},
		{desc: "rational truncates", in: Rational(7, 2), want: 3, wantOk: true},
		{desc: "key text", in: Keyword(":42"), want: 42, wantOk: true},
		{desc: "str text", in: Str("42"), want: 42, wantOk: true},
		{desc: "uint converts", in: UInt(5), want: 5, wantOk: true},
		{desc: "bool not supported", in: Bool(true), want: 0, wantOk: false},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got, ok := tc.in.ToInt()
			if got != tc.want || ok != tc.wantOk {
				t.Errorf("ToInt() = (%v,%v), want (%v,%v)", got, ok, tc.want, tc.wantOk)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	t.Parallel()
	v, ok := Rational(1, 2).ToFloat()
	if !ok || v != 0.5 {
		t.Errorf("ToFloat(1/2) = (%v,%v), want (0.5,true)", v, ok)
	}
	if _, ok := Bool(true).ToFloat(); ok {
		t.Errorf("ToFloat(Bool) should fail")
	}
}

func TestToBool(t *testing.T) {
	t.Parallel()
	if v, ok := Str("true").ToBool(); !ok || !v {
		t.Errorf(`ToBool("true") = (%v,%v), want (true,true)`, v, ok)
	}
	if _, ok := Str("maybe").ToBool(); ok {
		t.Errorf(`ToBool("maybe") should fail`)
	}
}

func TestToUint(t *testing.T) {
	t.Parallel()
	if v, ok := UInt(9).ToUint(); !ok || v != 9 {
		t.Errorf("ToUint(UInt(9)) = (%v,%v), want (9,true)", v, ok)
	}
	if _, ok := Int(-1).ToUint(); ok {
		t.Errorf("ToUint(Int(-1)) should fail")
	}
}
