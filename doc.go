// Package edn parses, represents, and serializes Extensible Data Notation
// (EDN), the data format used by Clojure and friends.
//
// # Grammar
//
// A form is a leading run of whitespace, commas, comments, and discard
// sequences followed by exactly one value: nil, a boolean, a number, a
// character, a string, a keyword, a symbol, a list, a vector, a set, a map,
// or a tagged element. Parsing stops after the first complete form; an
// input containing only whitespace/comments/commas parses to the empty
// value.
//
//	nil true false
//	42 +42 -42 0x2a -0X2A 16r2a 36rabcxyz 3.14 1e10 22/7
//	\a \space \newline
//	"a string with \"escapes\""
//	:a-keyword a-symbol
//	[1 2 3] (1 2 3) #{1 2 3} {:a 1 :b 2}
//	#inst "2020-07-16T21:53:14.628-00:00"
//
// # Comments and discard
//
// `;` runs to end of line and is whitespace. `#_` followed by a form
// discards that form as though it were whitespace; discards compose:
//
//	#_ 1 #_ 2 3 ; parses to 3
//
// # Numbers
//
// An optional `+`/`-` sign, then either a `0x`/`0X` hex literal, an
// `<radix>r<digits>` literal with 2 <= radix <= 36, or a base-10 literal
// that may carry a fractional part, an exponent, or a `n/d` rational form.
// An integral literal without a leading `-` parses as UInt, an explicit
// `+` included; an integral literal with a leading `-` parses as Int;
// anything with a decimal point or exponent parses as Double.
//
// # Strings and characters
//
// Strings are double-quoted with `\"`, `\\`, `\n`, `\r`, `\t` escapes.
// Characters are a backslash followed by one scalar or one of the named
// literals `space`, `tab`, `newline`, `return`, `formfeed`, `backspace`.
//
// # Errors
//
// Parse failures carry a [Code], a 1-based line, a 1-based column counted
// in Unicode scalars, and a 0-based byte pointer, all via [*Error].
package edn
