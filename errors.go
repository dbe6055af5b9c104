package edn

import "fmt"

// Code identifies the kind of failure a parse, feature check, or
// deserialize attempt produced.
type Code string

const (
	CodeHashMapDuplicateKey Code = "HashMapDuplicateKey"
	CodeInvalidChar         Code = "InvalidChar"
	CodeInvalidEscape       Code = "InvalidEscape"
	CodeInvalidKeyword      Code = "InvalidKeyword"
	CodeInvalidNumber       Code = "InvalidNumber"
	CodeInvalidRadix        Code = "InvalidRadix"
	CodeUnexpectedEOF       Code = "UnexpectedEOF"
	CodeUnmatchedDelimiter  Code = "UnmatchedDelimiter"
	CodeNoFeatureSets       Code = "NoFeatureSets"
	CodeConvert             Code = "Convert"
	CodeTryFromInt          Code = "TryFromInt"
)

// Error is returned by [Parse], and by [Unmarshal] when its input fails to
// parse; Unmarshal's decoding failures are plain errors. Line, Column, and
// Ptr would be zero for the non-parse codes (Convert, TryFromInt), since
// positions are a parse-time concept; no function in this package returns
// those two codes.
type Error struct {
	Code Code
	// Line is 1-based.
	Line int
	// Column is a 1-based Unicode scalar count.
	Column int
	// Ptr is a 0-based byte offset.
	Ptr int

	// Radix carries the bad radix for CodeInvalidRadix, when known.
	Radix *int
	// Delim carries the offending delimiter for CodeUnmatchedDelimiter.
	Delim rune
	// Detail carries the target type name for CodeConvert/CodeTryFromInt.
	Detail string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeInvalidRadix:
		if e.Radix != nil {
			return fmt.Sprintf("%d:%d (byte %d): invalid radix %d", e.Line, e.Column, e.Ptr, *e.Radix)
		}
		return fmt.Sprintf("%d:%d (byte %d): invalid radix", e.Line, e.Column, e.Ptr)
	case CodeUnmatchedDelimiter:
		return fmt.Sprintf("%d:%d (byte %d): unmatched delimiter %q", e.Line, e.Column, e.Ptr, e.Delim)
	case CodeConvert:
		return fmt.Sprintf("could not convert to %s", e.Detail)
	case CodeTryFromInt:
		return fmt.Sprintf("integer out of range for %s", e.Detail)
	default:
		return fmt.Sprintf("%d:%d (byte %d): %s", e.Line, e.Column, e.Ptr, e.Code)
	}
}

// position is a snapshot of a cursor's line/column/byte-offset, taken at
// the start of a token so an error raised after scanning past it (e.g. a
// malformed number) still reports where the offending token began.
type position struct {
	line, col, ptr int
}

func (c *cursor) mark() position {
	return position{line: c.line, col: c.col, ptr: c.pos}
}

func newErrorAt(p position, code Code) *Error {
	return &Error{Code: code, Line: p.line, Column: p.col, Ptr: p.ptr}
}

func newError(c *cursor, code Code) *Error {
	return newErrorAt(c.mark(), code)
}

func newRadixErrorAt(p position, radix int) *Error {
	r := radix
	return &Error{Code: CodeInvalidRadix, Line: p.line, Column: p.col, Ptr: p.ptr, Radix: &r}
}

func newDelimError(c *cursor, delim rune) *Error {
	return &Error{Code: CodeUnmatchedDelimiter, Line: c.line, Column: c.col, Ptr: c.pos, Delim: delim}
}
