package edn

import (
	"math"
	"math/big"
	"sort"
)

// Kind discriminates the variant an [Edn] holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindStr
	KindChar
	KindSymbol
	KindKey
	KindUInt
	KindInt
	KindDouble
	KindRational
	KindVector
	KindList
	KindSet
	KindMap
	KindTagged
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindStr:
		return "Str"
	case KindChar:
		return "Char"
	case KindSymbol:
		return "Symbol"
	case KindKey:
		return "Key"
	case KindUInt:
		return "UInt"
	case KindInt:
		return "Int"
	case KindDouble:
		return "Double"
	case KindRational:
		return "Rational"
	case KindVector:
		return "Vector"
	case KindList:
		return "List"
	case KindSet:
		return "Set"
	case KindMap:
		return "Map"
	case KindTagged:
		return "Tagged"
	case KindEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Edn is an immutable EDN value: nil, a boolean, a string, a character, a
// symbol, a keyword, an unsigned or signed integer, a float, a rational, a
// vector, a list, a set, a map, a tagged element, or the empty value
// returned when an input holds only whitespace and comments.
//
// A zero Edn is the Nil value.
type Edn struct {
	kind Kind

	b bool
	s string // Str, Symbol, Key payload (Key includes the leading ':'); Tagged tag (no leading '#')
	c rune
	u uint64
	i int64
	f float64

	num, den int64 // Rational

	items []Edn // Vector, List, Set

	keys []string // Map: textual-rendering keys, insertion order
	vals []Edn    // Map: values aligned with keys

	tag *Edn // Tagged payload
}

// Nil returns the EDN nil value.
func Nil() Edn { return Edn{kind: KindNil} }

// Empty returns the value produced by an input holding only whitespace,
// commas, and comments.
func Empty() Edn { return Edn{kind: KindEmpty} }

// Bool wraps a boolean.
func Bool(v bool) Edn { return Edn{kind: KindBool, b: v} }

// Str wraps a string with escapes already decoded.
func Str(v string) Edn { return Edn{kind: KindStr, s: v} }

// Char wraps a single Unicode scalar.
func Char(v rune) Edn { return Edn{kind: KindChar, c: v} }

// Symbol wraps a bare identifier.
func Symbol(v string) Edn { return Edn{kind: KindSymbol, s: v} }

// Keyword wraps a keyword, including its leading ':'.
func Keyword(v string) Edn { return Edn{kind: KindKey, s: v} }

// UInt wraps an unsigned 64-bit integer.
func UInt(v uint64) Edn { return Edn{kind: KindUInt, u: v} }

// Int wraps a signed 64-bit integer.
func Int(v int64) Edn { return Edn{kind: KindInt, i: v} }

// Double wraps an IEEE-754 float.
func Double(v float64) Edn { return Edn{kind: KindDouble, f: v} }

// Rational wraps a ratio of two signed 64-bit integers, stored as parsed
// without reduction. den must be non-zero; callers constructing a
// Rational directly are responsible for that invariant (the parser
// enforces it at parse time).
func Rational(num, den int64) Edn { return Edn{kind: KindRational, num: num, den: den} }

// Vector wraps an ordered sequence.
func Vector(items []Edn) Edn { return Edn{kind: KindVector, items: append([]Edn(nil), items...)} }

// List wraps an ordered sequence.
func List(items []Edn) Edn { return Edn{kind: KindList, items: append([]Edn(nil), items...)} }

// Set wraps a collection, deduplicated by canonical equality. Order among
// the deduplicated elements is insertion order of first occurrence.
func Set(items []Edn) Edn {
	var out []Edn
	for _, it := range items {
		dup := false
		for _, existing := range out {
			if Equal(existing, it) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return Edn{kind: KindSet, items: out}
}

// MapPair is one key/value entry supplied to [MapOf].
type MapPair struct {
	Key   Edn
	Value Edn
}

// MapOf builds a Map from key/value Edn pairs; keys are rendered to their
// canonical text form (see [Edn.Serialize]) to become the map's string
// keys. On a duplicate rendered key, the later pair overwrites the earlier
// one; callers wanting duplicate-key detection should use [Parse], which
// reports [CodeHashMapDuplicateKey].
func MapOf(pairs []MapPair) Edn {
	m := Edn{kind: KindMap}
	for _, p := range pairs {
		k := p.Key.Serialize()
		m.setKey(k, p.Value)
	}
	return m
}

// MapOfStrings builds a Map directly from already-rendered string keys,
// the representation the parser itself produces.
func MapOfStrings(pairs map[string]Edn, order []string) Edn {
	m := Edn{kind: KindMap}
	for _, k := range order {
		m.setKey(k, pairs[k])
	}
	return m
}

func (e *Edn) setKey(k string, v Edn) {
	for i, existing := range e.keys {
		if existing == k {
			e.vals[i] = v
			return
		}
	}
	e.keys = append(e.keys, k)
	e.vals = append(e.vals, v)
}

// Tagged wraps a user-defined tagged value; tag excludes the leading '#'.
func Tagged(tag string, payload Edn) Edn {
	p := payload
	return Edn{kind: KindTagged, s: tag, tag: &p}
}

// Kind reports which variant e holds.
func (e Edn) Kind() Kind { return e.kind }

// TagName returns the tag of a Tagged value and true, or ("", false) for
// any other variant.
func (e Edn) TagName() (string, bool) {
	if e.kind != KindTagged {
		return "", false
	}
	return e.s, true
}

// TagPayload returns the payload of a Tagged value, or Nil for any other
// variant.
func (e Edn) TagPayload() Edn {
	if e.kind != KindTagged || e.tag == nil {
		return Nil()
	}
	return *e.tag
}

// Len reports the number of elements in a Vector, List, or Set, or the
// number of entries in a Map. Other variants report 0.
func (e Edn) Len() int {
	switch e.kind {
	case KindVector, KindList, KindSet:
		return len(e.items)
	case KindMap:
		return len(e.keys)
	default:
		return 0
	}
}

// Items returns a copy of the elements of a Vector, List, or Set, or nil
// for any other variant.
func (e Edn) Items() []Edn {
	if e.kind != KindVector && e.kind != KindList && e.kind != KindSet {
		return nil
	}
	return append([]Edn(nil), e.items...)
}

// MapKeys returns the rendered key strings of a Map in insertion order, or
// nil for any other variant.
func (e Edn) MapKeys() []string {
	if e.kind != KindMap {
		return nil
	}
	return append([]string(nil), e.keys...)
}

// Rational components, zero for any other variant.
func (e Edn) RationalParts() (num, den int64) { return e.num, e.den }

// doubleOrderKey produces a uint64 such that ordering by that key
// reproduces a total order over float64 where NaN compares largest and
// -0.0 compares equal to 0.0.
func doubleOrderKey(f float64) uint64 {
	if f == 0 {
		f = 0 // normalize -0.0 to 0.0
	}
	if math.IsNaN(f) {
		return math.MaxUint64
	}
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | (1 << 63)
}

func ratToBig(num, den int64) *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den))
}

func compareSeq(a, b []Edn) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func sortedMapPairs(e Edn) ([]string, []Edn) {
	keys := append([]string(nil), e.keys...)
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	sort.Strings(keys)
	vals := make([]Edn, len(keys))
	for i, k := range keys {
		vals[i] = e.vals[idx[k]]
	}
	return keys, vals
}

// Compare defines the canonical total order over Edn values; [Set] uses
// it, through [Equal], to deduplicate elements. Map keys are not compared
// through it: the parser and [MapOf] match keys by their rendered text.
// Values of different kinds compare by kind rank (the order of the Kind
// constants), giving a fixed (if arbitrary) cross-kind order.
func Compare(a, b Edn) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindNil, KindEmpty:
		return 0
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	case KindStr, KindSymbol, KindKey:
		switch {
		case a.s < b.s:
			return -1
		case a.s > b.s:
			return 1
		default:
			return 0
		}
	case KindChar:
		switch {
		case a.c < b.c:
			return -1
		case a.c > b.c:
			return 1
		default:
			return 0
		}
	case KindUInt:
		switch {
		case a.u < b.u:
			return -1
		case a.u > b.u:
			return 1
		default:
			return 0
		}
	case KindInt:
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	case KindDouble:
		ka, kb := doubleOrderKey(a.f), doubleOrderKey(b.f)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	case KindRational:
		return ratToBig(a.num, a.den).Cmp(ratToBig(b.num, b.den))
	case KindVector, KindList, KindSet:
		return compareSeq(a.items, b.items)
	case KindMap:
		ak, av := sortedMapPairs(a)
		bk, bv := sortedMapPairs(b)
		n := len(ak)
		if len(bk) < n {
			n = len(bk)
		}
		for i := 0; i < n; i++ {
			if ak[i] != bk[i] {
				if ak[i] < bk[i] {
					return -1
				}
				return 1
			}
			if c := Compare(av[i], bv[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(ak) < len(bk):
			return -1
		case len(ak) > len(bk):
			return 1
		default:
			return 0
		}
	case KindTagged:
		if a.s != b.s {
			if a.s < b.s {
				return -1
			}
			return 1
		}
		return Compare(a.TagPayload(), b.TagPayload())
	default:
		return 0
	}
}

// Equal reports whether a and b are the same EDN value under canonical
// ordering. NaN is equal to itself.
func Equal(a, b Edn) bool { return Compare(a, b) == 0 }

// Less reports whether a sorts before b under [Compare].
func Less(a, b Edn) bool { return Compare(a, b) < 0 }
