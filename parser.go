package edn

import "strings"

// Parse reads one top-level EDN form from text. An input containing only
// whitespace, commas, and comments parses to [Empty]. Parse does not
// recover from errors: the first one aborts the parse and is returned
// with its full source position.
func Parse(text string) (Edn, error) {
	p := &parser{c: newCursor(text)}
	if err := p.skipDiscards(); err != nil {
		return Edn{}, err
	}
	if p.c.eof() {
		return Empty(), nil
	}
	v, err := p.readValue()
	if err != nil {
		return Edn{}, err
	}
	return v, nil
}

// MustParse is Parse, panicking on error. Intended for tests and
// compile-time-known literals, the same role the original crate's `edn!`
// macro plays.
func MustParse(text string) Edn {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	c *cursor
}

func isClosingDelim(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// skipDiscards consumes whitespace, comments, and any number of composed
// `#_ form` discard sequences, leaving the cursor at the start of the next
// real value (or at EOF).
func (p *parser) skipDiscards() *Error {
	for {
		p.c.skipSpace()
		la := p.c.lookahead(2)
		if len(la) < 2 || la[0] != '#' || la[1] != '_' {
			return nil
		}
		p.c.next()
		p.c.next()
		p.c.skipSpace()
		if p.c.eof() {
			return newError(p.c, CodeUnexpectedEOF)
		}
		if r, _ := p.c.peek(); isClosingDelim(r) {
			return newError(p.c, CodeUnexpectedEOF)
		}
		if _, err := p.readValue(); err != nil {
			return err
		}
	}
}

// readValue reads exactly one value; the cursor must already sit on the
// first character of that value (skipDiscards has already run).
func (p *parser) readValue() (Edn, *Error) {
	r, ok := p.c.peek()
	if !ok {
		return Edn{}, newError(p.c, CodeUnexpectedEOF)
	}
	switch r {
	case '[':
		return p.readSeq('[', ']', KindVector)
	case '(':
		return p.readSeq('(', ')', KindList)
	case '{':
		return p.readMap()
	case '"':
		return p.readString()
	case ':':
		return p.readKeyword()
	case '\\':
		return p.readChar()
	case '#':
		return p.readHash()
	default:
		return p.readAtom()
	}
}

func (p *parser) readSeq(open, close rune, kind Kind) (Edn, *Error) {
	p.c.next() // consume opener
	var items []Edn
	for {
		if err := p.skipDiscards(); err != nil {
			return Edn{}, err
		}
		if p.c.eof() {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		r, _ := p.c.peek()
		if r == close {
			p.c.next()
			if kind == KindVector {
				return Vector(items), nil
			}
			return List(items), nil
		}
		if isClosingDelim(r) {
			return Edn{}, newDelimError(p.c, r)
		}
		v, err := p.readValue()
		if err != nil {
			return Edn{}, err
		}
		items = append(items, v)
	}
}

func (p *parser) readMap() (Edn, *Error) {
	p.c.next() // consume '{'
	m := Edn{kind: KindMap}
	for {
		if err := p.skipDiscards(); err != nil {
			return Edn{}, err
		}
		if p.c.eof() {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		r, _ := p.c.peek()
		if r == '}' {
			p.c.next()
			return m, nil
		}
		if r == ')' || r == ']' {
			return Edn{}, newDelimError(p.c, r)
		}
		key, err := p.readValue()
		if err != nil {
			return Edn{}, err
		}
		if err := p.skipDiscards(); err != nil {
			return Edn{}, err
		}
		if p.c.eof() {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		if r, _ := p.c.peek(); r == '}' {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		val, err := p.readValue()
		if err != nil {
			return Edn{}, err
		}
		keyText := key.Serialize()
		for _, existing := range m.keys {
			if existing == keyText {
				return Edn{}, newError(p.c, CodeHashMapDuplicateKey)
			}
		}
		m.keys = append(m.keys, keyText)
		m.vals = append(m.vals, val)
	}
}

func (p *parser) readSet() (Edn, *Error) {
	start := p.c.mark()
	p.c.next() // '#'
	p.c.next() // '{'
	if !setsEnabled {
		return Edn{}, newErrorAt(start, CodeNoFeatureSets)
	}
	var items []Edn
	for {
		if err := p.skipDiscards(); err != nil {
			return Edn{}, err
		}
		if p.c.eof() {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		r, _ := p.c.peek()
		if r == '}' {
			p.c.next()
			return Set(items), nil
		}
		if r == ')' || r == ']' {
			return Edn{}, newDelimError(p.c, r)
		}
		v, err := p.readValue()
		if err != nil {
			return Edn{}, err
		}
		items = append(items, v)
	}
}

// readHash dispatches the forms beginning with '#': a set literal `#{`
// and a tagged element `#tag form`. A discard `#_` is normally consumed by
// skipDiscards before readValue runs; one that still reaches here (a `#_`
// directly after another `#_`) is read as a tagged element with tag "_".
func (p *parser) readHash() (Edn, *Error) {
	la := p.c.lookahead(2)
	if len(la) == 2 && la[1] == '{' {
		return p.readSet()
	}
	start := p.c.mark()
	p.c.next() // consume '#'
	var tag strings.Builder
	for {
		r, ok := p.c.peek()
		if !ok || isTerminator(r) {
			break
		}
		tag.WriteRune(r)
		p.c.next()
	}
	if tag.Len() == 0 {
		return Edn{}, newErrorAt(start, CodeInvalidKeyword)
	}
	if err := p.skipDiscards(); err != nil {
		return Edn{}, err
	}
	if p.c.eof() {
		return Edn{}, newError(p.c, CodeUnexpectedEOF)
	}
	payload, err := p.readValue()
	if err != nil {
		return Edn{}, err
	}
	return Tagged(tag.String(), payload), nil
}

func (p *parser) readString() (Edn, *Error) {
	p.c.next() // opening quote
	var sb strings.Builder
	for {
		r, ok := p.c.next()
		if !ok {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		if r == '"' {
			return Str(sb.String()), nil
		}
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		esc, ok := p.c.next()
		if !ok {
			return Edn{}, newError(p.c, CodeUnexpectedEOF)
		}
		switch esc {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			return Edn{}, newError(p.c, CodeInvalidEscape)
		}
	}
}

func (p *parser) readKeyword() (Edn, *Error) {
	start := p.c.mark()
	p.c.next() // ':'
	var sb strings.Builder
	for {
		r, ok := p.c.peek()
		if !ok || !isSymbolChar(r) {
			break
		}
		sb.WriteRune(r)
		p.c.next()
	}
	if sb.Len() == 0 {
		return Edn{}, newErrorAt(start, CodeInvalidKeyword)
	}
	return Keyword(":" + sb.String()), nil
}

var namedChars = map[string]rune{
	"space":     ' ',
	"tab":       '\t',
	"newline":   '\n',
	"return":    '\r',
	"formfeed":  '\f',
	"backspace": '\b',
}

func (p *parser) readChar() (Edn, *Error) {
	start := p.c.mark()
	p.c.next() // backslash
	first, ok := p.c.next()
	if !ok {
		return Edn{}, newErrorAt(start, CodeInvalidChar)
	}
	// A lowercase-letter-led run could be a named literal; read the full
	// run of letters and decide.
	if first >= 'a' && first <= 'z' {
		var sb strings.Builder
		sb.WriteRune(first)
		for {
			r, ok := p.c.peek()
			if !ok || !(r >= 'a' && r <= 'z') {
				break
			}
			sb.WriteRune(r)
			p.c.next()
		}
		name := sb.String()
		if len(name) == 1 {
			return Char(first), nil
		}
		if r, ok := namedChars[name]; ok {
			return Char(r), nil
		}
		return Edn{}, newErrorAt(start, CodeInvalidChar)
	}
	return Char(first), nil
}

// readAtom reads the maximal run of non-terminator characters starting at
// the cursor and classifies it as nil/true/false, a number, or a symbol.
func (p *parser) readAtom() (Edn, *Error) {
	start := p.c.mark()
	first, _ := p.c.peek()
	var sb strings.Builder
	for {
		r, ok := p.c.peek()
		if !ok || isTerminator(r) {
			break
		}
		sb.WriteRune(r)
		p.c.next()
	}
	raw := sb.String()
	if raw == "" {
		return Edn{}, newErrorAt(start, CodeInvalidNumber)
	}
	switch raw {
	case "nil":
		return Nil(), nil
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	if looksNumeric(first, raw) {
		v, err, ok := parseNumberToken(start, raw)
		if err != nil {
			return Edn{}, err
		}
		if ok {
			return v, nil
		}
	}
	return Symbol(raw), nil
}

// looksNumeric decides, from the first character and the full atom, the
// LL(2) question of whether this token is attempted as a number: a digit
// start, or a sign immediately followed by a digit.
func looksNumeric(first rune, raw string) bool {
	if first >= '0' && first <= '9' {
		return true
	}
	if (first == '+' || first == '-') && len(raw) > 1 {
		second := raw[1]
		return second >= '0' && second <= '9'
	}
	return false
}
