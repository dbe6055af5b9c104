package edn

import "iter"

// Get resolves one path step into e: an int indexes a Vector, List, or
// Set by position; a string looks up a Map by its rendered key text.
// Any step that does not apply — wrong container kind, out-of-range
// index, or missing key — yields [Nil], never an error, so chained
// lookups like e.Get("a").Get(0).Get("b") are safe to write without
// checking each step.
func (e Edn) Get(key any) Edn {
	switch k := key.(type) {
	case int:
		return e.Index(k)
	case string:
		return e.GetKey(k)
	case Edn:
		return e.GetKey(k.Serialize())
	default:
		return Nil()
	}
}

// Index returns the i-th element of a Vector, List, or Set, or [Nil] if e
// is not one of those or i is out of range.
func (e Edn) Index(i int) Edn {
	if e.kind != KindVector && e.kind != KindList && e.kind != KindSet {
		return Nil()
	}
	if i < 0 || i >= len(e.items) {
		return Nil()
	}
	return e.items[i]
}

// GetKey returns the value stored under the exact rendered key text k in
// a Map, or [Nil] if e is not a Map or the key is absent.
func (e Edn) GetKey(k string) Edn {
	if e.kind != KindMap {
		return Nil()
	}
	for i, existing := range e.keys {
		if existing == k {
			return e.vals[i]
		}
	}
	return Nil()
}

// Iter yields the elements of a Vector, List, or Set in order. Applied to
// any other variant it yields nothing, the idiomatic Go stand-in for the
// "absence indicator" a non-sequence lookup reports.
func (e Edn) Iter() iter.Seq[Edn] {
	return func(yield func(Edn) bool) {
		if e.kind != KindVector && e.kind != KindList && e.kind != KindSet {
			return
		}
		for _, it := range e.items {
			if !yield(it) {
				return
			}
		}
	}
}
