package edn

import (
	"math"
	"testing"
)

func TestCompareCrossKind(t *testing.T) {
	t.Parallel()
	if !Less(Nil(), Bool(false)) {
		t.Fatalf("want Nil < Bool by kind rank")
	}
	if !Less(Bool(true), Str("")) {
		t.Fatalf("want Bool < Str by kind rank")
	}
}

func TestCompareDoubleTotalOrder(t *testing.T) {
	t.Parallel()
	nan := Double(math.NaN())
	if !Equal(nan, nan) {
		t.Fatalf("want NaN equal to itself")
	}
	if !Equal(Double(0), Double(math.Copysign(0, -1))) {
		t.Fatalf("want -0.0 == 0.0")
	}
	if !Less(Double(1e300), nan) {
		t.Fatalf("want every ordinary float less than NaN")
	}
	if !Less(Double(-1), Double(1)) {
		t.Fatalf("want -1.0 < 1.0")
	}
}

func TestCompareRationalExact(t *testing.T) {
	t.Parallel()
	if !Equal(Rational(1, 2), Rational(2, 4)) {
		t.Fatalf("want 1/2 == 2/4 under exact rational comparison")
	}
	if !Less(Rational(1, 3), Rational(1, 2)) {
		t.Fatalf("want 1/3 < 1/2")
	}
}

func TestSetDeduplicates(t *testing.T) {
	t.Parallel()
	s := Set([]Edn{Int(1), Int(2), Int(1), Int(2), Int(3)})
	if s.Len() != 3 {
		t.Fatalf("got len %d, want 3", s.Len())
	}
}

func TestMapOfOverwritesOnDuplicateKey(t *testing.T) {
	t.Parallel()
	m := MapOf([]MapPair{
		{Key: Keyword(":a"), Value: Int(1)},
		{Key: Keyword(":a"), Value: Int(2)},
	})
	if m.Len() != 1 {
		t.Fatalf("got len %d, want 1", m.Len())
	}
	v, ok := m.GetKey(":a").ToInt()
	if !ok || v != 2 {
		t.Fatalf("got %v,%v, want 2,true", v, ok)
	}
}
