package edn

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

// Deserializer is implemented by a Go type that wants to build itself
// directly from a parsed [Edn] tree rather than going through the
// reflection-based struct decoder Unmarshal otherwise uses. Implement
// it when the lossy parts of that decoder — rationals collapsing to
// float64, tagged elements losing their tag — would lose information
// your type needs.
type Deserializer interface {
	FromEdn(Edn) error
}

// Unmarshal parses text as EDN and writes the result into v, the
// package's counterpart to the origin crate's Deserialize trait.
//
// If v implements [Deserializer], its FromEdn method receives the
// parsed tree directly. Otherwise Unmarshal walks the tree into v by
// reflection: a Map decodes into a struct whose fields are addressed
// by an "edn" struct tag, falling back to the Go field name, the same
// tag-lookup convention the teacher's own Unmarshal used for its "ccl"
// tag (a field tagged `edn:"-"` is skipped; `edn:"-"` on an otherwise
// unreachable field is how you opt a field out). A type implementing
// encoding.TextUnmarshaler is fed the text of a Str element instead of
// being walked field by field.
func Unmarshal(text string, v any) error {
	e, err := Parse(text)
	if err != nil {
		return err
	}
	return UnmarshalEdn(e, v)
}

// UnmarshalEdn is [Unmarshal] for an already-parsed tree.
func UnmarshalEdn(e Edn, v any) error {
	if d, ok := v.(Deserializer); ok {
		return d.FromEdn(e)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("edn: Unmarshal target must be a non-nil pointer, got %T", v)
	}
	return decodeEdn(e, rv.Elem())
}

// structField identifies one decodable field of a struct type the way
// the teacher's own fieldMap does: by the type it belongs to and its
// resolved (tag-or-name) field name.
type structField struct {
	ty   reflect.Type
	name string
}

// fieldIndex resolves every exported field of t (and of any struct type
// t embeds by value) to its "edn"-tag-or-name key, adapted from the
// teacher's ccl fieldMap, which did the same walk for its "ccl" tag.
func fieldIndex(out map[structField]int, seen map[reflect.Type]bool, t reflect.Type) error {
	if seen[t] {
		return nil
	}
	seen[t] = true
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("edn"); ok {
			name, _, _ = strings.Cut(tag, ",")
			if name == "-" {
				continue
			}
		}
		key := structField{t, name}
		if _, dup := out[key]; dup {
			return fmt.Errorf("edn: multiple fields named %q in %s", name, t)
		}
		out[key] = i
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if err := fieldIndex(out, seen, f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapKeyName recovers the plain field-matching name from one of our
// own rendered Map key strings: a keyword's leading ':' is stripped, a
// quoted string's surrounding quotes and escapes are undone via
// ednUnquote, anything else (a bare symbol, a number) passes through.
func mapKeyName(k string) string {
	switch {
	case strings.HasPrefix(k, ":"):
		return k[1:]
	case strings.HasPrefix(k, `"`) && strings.HasSuffix(k, `"`) && len(k) >= 2:
		return ednUnquote(k)
	default:
		return k
	}
}

// decodeEdn walks e into rv by reflection. It is the struct-unpacking
// half of Unmarshal, playing the role the teacher's own unpackVal/
// unpackStruct pair played for asspb messages, but reading directly
// from an [Edn] tree instead of a map[string][]any.
func decodeEdn(e Edn, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if e.kind == KindNil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeEdn(e, rv.Elem())
	}
	if rv.CanAddr() && e.kind == KindStr {
		if tu, ok := rv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(e.s))
		}
	}
	switch e.kind {
	case KindNil, KindEmpty:
		return nil
	case KindBool:
		if rv.Kind() != reflect.Bool {
			return fmt.Errorf("edn: cannot decode bool into %s", rv.Type())
		}
		rv.SetBool(e.b)
	case KindUInt:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(e.u))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(int64(e.u))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			rv.SetUint(e.u)
		default:
			return fmt.Errorf("edn: cannot decode uint into %s", rv.Type())
		}
	case KindInt:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(e.i))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			rv.SetInt(e.i)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if e.i < 0 {
				return fmt.Errorf("edn: negative int does not fit in %s", rv.Type())
			}
			rv.SetUint(uint64(e.i))
		default:
			return fmt.Errorf("edn: cannot decode int into %s", rv.Type())
		}
	case KindDouble:
		if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
			return fmt.Errorf("edn: cannot decode double into %s", rv.Type())
		}
		rv.SetFloat(e.f)
	case KindRational:
		if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
			return fmt.Errorf("edn: cannot decode rational into %s", rv.Type())
		}
		if e.den == 0 {
			return fmt.Errorf("edn: rational with zero denominator")
		}
		rv.SetFloat(float64(e.num) / float64(e.den))
	case KindStr:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("edn: cannot decode string into %s", rv.Type())
		}
		rv.SetString(e.s)
	case KindKey, KindSymbol:
		if rv.Kind() != reflect.String {
			return fmt.Errorf("edn: cannot decode %s into %s", e.kind, rv.Type())
		}
		rv.SetString(strings.TrimPrefix(e.s, ":"))
	case KindChar:
		switch rv.Kind() {
		case reflect.Int32:
			rv.SetInt(int64(e.c))
		case reflect.String:
			rv.SetString(string(e.c))
		default:
			return fmt.Errorf("edn: cannot decode char into %s", rv.Type())
		}
	case KindVector, KindList, KindSet:
		if rv.Kind() != reflect.Slice {
			return fmt.Errorf("edn: cannot decode sequence into %s", rv.Type())
		}
		out := reflect.MakeSlice(rv.Type(), len(e.items), len(e.items))
		for i, it := range e.items {
			if err := decodeEdn(it, out.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(out)
	case KindMap:
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("edn: cannot decode map into %s", rv.Type())
		}
		fields := map[structField]int{}
		if err := fieldIndex(fields, map[reflect.Type]bool{}, rv.Type()); err != nil {
			return err
		}
		for i, k := range e.keys {
			name := mapKeyName(k)
			idx, ok := fields[structField{rv.Type(), name}]
			if !ok {
				return fmt.Errorf("edn: no field named %q in %s", name, rv.Type())
			}
			if err := decodeEdn(e.vals[i], rv.Field(idx)); err != nil {
				return err
			}
		}
	case KindTagged:
		return decodeEdn(e.TagPayload(), rv)
	default:
		return fmt.Errorf("edn: cannot decode %s into %s", e.kind, rv.Type())
	}
	return nil
}
