package edn

import (
	"math"
	"strconv"
	"strings"
)

// Serializer is implemented by any Go value that knows how to render
// itself as EDN text. [Edn] itself implements it; the Serialize* helpers
// below let callers build EDN text for plain Go values without first
// lifting them into an [Edn] tree.
type Serializer interface {
	Serialize() string
}

// Serialize renders e as canonical EDN text. Parsing the result with
// [Parse] reproduces e for every e not holding a Double NaN or infinity.
// Those render as the bare words NaN, Infinity and -Infinity, which
// [Parse] reads back as symbols, so they do not round-trip.
func (e Edn) Serialize() string {
	switch e.kind {
	case KindNil:
		return "nil"
	case KindEmpty:
		return ""
	case KindBool:
		return SerializeBool(e.b)
	case KindStr:
		return serializeString(e.s)
	case KindChar:
		return "\\" + string(e.c)
	case KindSymbol:
		return e.s
	case KindKey:
		return e.s
	case KindUInt:
		return strconv.FormatUint(e.u, 10)
	case KindInt:
		return strconv.FormatInt(e.i, 10)
	case KindDouble:
		return formatDouble(e.f)
	case KindRational:
		return strconv.FormatInt(e.num, 10) + "/" + strconv.FormatInt(e.den, 10)
	case KindVector:
		return "[" + joinSerialized(e.items, " ") + "]"
	case KindList:
		return "(" + joinSerialized(e.items, " ") + ")"
	case KindSet:
		return "#{" + joinSerialized(e.items, " ") + "}"
	case KindMap:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range e.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteByte(' ')
			sb.WriteString(e.vals[i].Serialize())
		}
		sb.WriteByte('}')
		return sb.String()
	case KindTagged:
		return "#" + e.s + " " + e.TagPayload().Serialize()
	default:
		return ""
	}
}

// String renders e the same way [Edn.Serialize] does, satisfying
// fmt.Stringer so an Edn prints sensibly in a log line or test failure.
func (e Edn) String() string { return e.Serialize() }

func joinSerialized(items []Edn, sep string) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Serialize()
	}
	return strings.Join(parts, sep)
}

func serializeString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// formatDouble renders f using the shortest decimal representation that
// reads back to the same bits, then guarantees the result still looks
// like a float (never bare digits, which [Parse] would read as a UInt
// or Int) by appending ".0" when neither a decimal point nor an exponent
// is present.
func formatDouble(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// SerializeBool renders a Go bool as EDN.
func SerializeBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// SerializeString renders a Go string as an EDN string literal.
func SerializeString(v string) string { return serializeString(v) }

// SerializeChar renders a Go rune as an EDN character literal.
func SerializeChar(v rune) string { return "\\" + string(v) }

// SerializeNilValue is the EDN text for the absence of a value, used by
// [SerializeOptional] when the pointer is nil.
const SerializeNilValue = "nil"

// Signed is any Go signed integer width EDN serializes as an Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any Go unsigned integer width EDN serializes as a UInt.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is any Go float width EDN serializes as a Double.
type Float interface {
	~float32 | ~float64
}

// SerializeInt renders any signed integer width as an EDN integer.
func SerializeInt[T Signed](v T) string { return strconv.FormatInt(int64(v), 10) }

// SerializeUint renders any unsigned integer width as an EDN integer.
func SerializeUint[T Unsigned](v T) string { return strconv.FormatUint(uint64(v), 10) }

// SerializeFloat renders any float width as an EDN double.
func SerializeFloat[T Float](v T) string { return formatDouble(float64(v)) }

// SerializeOptional renders *v as EDN: nil if v is nil, otherwise the
// rendering of *v. The Rust origin of this package models this as
// Option<T>; Go's nilable pointer is the idiomatic stand-in.
func SerializeOptional[T Serializer](v *T) string {
	if v == nil {
		return SerializeNilValue
	}
	return (*v).Serialize()
}

// SerializeSlice renders an ordered sequence as an EDN vector.
func SerializeSlice[T Serializer](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Serialize()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// SerializeSet renders an unordered, deduplicated collection as an EDN
// set literal.
func SerializeSet[T Serializer](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Serialize()
	}
	return "#{" + strings.Join(parts, " ") + "}"
}

// SerializeMap renders m as an EDN map. Each Go key is rewritten into a
// keyword-shaped EDN key: ASCII spaces and underscores become '-' and a
// leading ':' is added, matching the origin crate's Edn::Map{String} key
// convention. Go map iteration order is random, so the rendered pair
// order is too; callers needing deterministic output should build the
// map with [MapOf] and serialize the resulting [Edn] instead.
func SerializeMap[V Serializer](m map[string]V) string {
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, renderMapKey(k)+" "+v.Serialize())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func renderMapKey(k string) string {
	r := strings.NewReplacer(" ", "-", "_", "-")
	return ":" + r.Replace(k)
}

// SerializeTuple2 renders a fixed pair as an EDN list.
func SerializeTuple2[A, B Serializer](a A, b B) string {
	return "(" + a.Serialize() + " " + b.Serialize() + ")"
}

// SerializeTuple3 renders a fixed triple as an EDN list.
func SerializeTuple3[A, B, C Serializer](a A, b B, c C) string {
	return "(" + a.Serialize() + " " + b.Serialize() + " " + c.Serialize() + ")"
}

// SerializeTuple4 renders a fixed 4-tuple as an EDN list.
func SerializeTuple4[A, B, C, D Serializer](a A, b B, c C, d D) string {
	return "(" + a.Serialize() + " " + b.Serialize() + " " + c.Serialize() + " " + d.Serialize() + ")"
}

// SerializeTuple5 renders a fixed 5-tuple as an EDN list.
func SerializeTuple5[A, B, C, D, E Serializer](a A, b B, c C, d D, e E) string {
	return "(" + a.Serialize() + " " + b.Serialize() + " " + c.Serialize() + " " + d.Serialize() + " " + e.Serialize() + ")"
}

// SerializeTuple6 renders a fixed 6-tuple as an EDN list.
func SerializeTuple6[A, B, C, D, E, F Serializer](a A, b B, c C, d D, e E, f F) string {
	return "(" + a.Serialize() + " " + b.Serialize() + " " + c.Serialize() + " " + d.Serialize() + " " + e.Serialize() + " " + f.Serialize() + ")"
}
