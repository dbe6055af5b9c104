package edn

import "unicode/utf8"

// cursor tracks a position in a source string by byte offset, 1-based
// line, and 1-based column (counted in Unicode scalars, not bytes). It is
// the position-tracking equivalent of the teacher's syntaxError line/col
// walk, threaded live through the parse instead of recomputed after the
// fact from a byte index.
type cursor struct {
	data string
	pos  int
	line int
	col  int
}

func newCursor(data string) *cursor {
	return &cursor{data: data, line: 1, col: 1}
}

func (c *cursor) eof() bool { return c.pos >= len(c.data) }

// peek returns the rune at the current position without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.data[c.pos:])
	return r, true
}

// lookahead returns up to n runes starting at the current position
// without consuming any of them. Used for the LL(2) decisions `#{` vs
// `#tag` and `#_` vs `#tag`; sign-prefixed numbers vs sign-prefixed
// symbols are told apart by looksNumeric from the atom already read.
func (c *cursor) lookahead(n int) []rune {
	rs := make([]rune, 0, n)
	pos := c.pos
	for i := 0; i < n && pos < len(c.data); i++ {
		r, w := utf8.DecodeRuneInString(c.data[pos:])
		rs = append(rs, r)
		pos += w
	}
	return rs
}

// next consumes and returns one scalar, advancing line/column/byte
// position. CR, LF, and CRLF each advance the line counter exactly once.
func (c *cursor) next() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(c.data[c.pos:])
	if r == '\r' {
		if c.pos+w < len(c.data) {
			r2, w2 := utf8.DecodeRuneInString(c.data[c.pos+w:])
			if r2 == '\n' {
				c.pos += w + w2
				c.line++
				c.col = 1
				return '\n', true
			}
		}
		c.pos += w
		c.line++
		c.col = 1
		return r, true
	}
	if r == '\n' {
		c.pos += w
		c.line++
		c.col = 1
		return r, true
	}
	c.pos += w
	c.col++
	return r, true
}

func isLineWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
}

// skipSpace skips whitespace, commas, and line comments (`;` to end of
// line); both are part of the same "whitespace" class per the grammar.
func (c *cursor) skipSpace() {
	for {
		r, ok := c.peek()
		if !ok {
			return
		}
		if isLineWhitespace(r) {
			c.next()
			continue
		}
		if r == ';' {
			for {
				r, ok := c.peek()
				if !ok || r == '\n' || r == '\r' {
					break
				}
				c.next()
			}
			continue
		}
		return
	}
}

func isSymbolStart(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '+' || r == '-' || r == '.' || r == '\'' || r == '!' || r == '?' ||
		r == '_' || r == '/' || r == '$' || r == '&' || r == '*' || r == '<' ||
		r == '>' || r == '=':
		return true
	}
	return false
}

func isSymbolChar(r rune) bool {
	if isSymbolStart(r) || (r >= '0' && r <= '9') {
		return true
	}
	return r == ':' || r == '#'
}

func isTerminator(r rune) bool {
	return isLineWhitespace(r) || r == '(' || r == ')' || r == '[' || r == ']' ||
		r == '{' || r == '}' || r == '"' || r == ';'
}
