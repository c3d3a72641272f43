// Package tokenizer lexes source files of the component language: a
// Rust-flavored host language with embedded HTML-like markup. The lexer is
// total: any byte sequence produces a token stream, unknown bytes degrade to
// single-byte Bad tokens, and concatenating token texts reproduces the input.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	src        string
	pos        int
	state      State
	sawTagName bool
	toks       []Token
}

// Tokenize lexes src into a contiguous token stream. It never fails: every
// call returns a stream covering the whole input.
func Tokenize(src string) []Token {
	l := &lexer{src: src, state: StateHost}
	for l.pos < len(l.src) {
		start := l.pos
		switch l.state {
		case StateHost:
			l.lexHost()
		case StateTagOpen:
			l.lexTagOpen()
		case StateTagClose:
			l.lexTagClose()
		}
		// Guarantee forward progress regardless of lexer state bugs.
		if l.pos == start {
			l.emit(KindBad, start, start+1)
		}
	}
	return l.toks
}

// Cursor lexes a subrange of a buffer one token at a time. Offsets in the
// produced tokens are relative to the full buffer, not the subrange.
type Cursor struct {
	l *lexer
}

// Start positions a cursor at from, lexing src[from:to] beginning in the
// given state. Out-of-range bounds are clamped. A token that would extend
// past to is cut short there.
func Start(src string, from, to int, initial State) *Cursor {
	if to > len(src) {
		to = len(src)
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		from = to
	}
	return &Cursor{l: &lexer{src: src[:to], pos: from, state: initial}}
}

// Advance lexes the next token, reporting false when the subrange is
// exhausted. Like Tokenize it never fails: unrecognized input becomes a
// single-byte Bad token.
func (c *Cursor) Advance() bool {
	l := c.l
	if l.pos >= len(l.src) {
		return false
	}
	start := l.pos
	l.toks = l.toks[:0]
	switch l.state {
	case StateHost:
		l.lexHost()
	case StateTagOpen:
		l.lexTagOpen()
	case StateTagClose:
		l.lexTagClose()
	}
	if l.pos == start {
		l.toks = l.toks[:0]
		l.emit(KindBad, start, start+1)
	}
	return true
}

// Token returns the token produced by the last Advance.
func (c *Cursor) Token() Token {
	if len(c.l.toks) == 0 {
		return Token{}
	}
	return c.l.toks[0]
}

// State returns the lexer mode after the last Advance.
func (c *Cursor) State() State {
	return c.l.state
}

func (l *lexer) emit(kind Kind, start, end int) {
	if end > len(l.src) {
		end = len(l.src)
	}
	l.toks = append(l.toks, Token{Kind: kind, Text: l.src[start:end], Offset: start})
	l.pos = end
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) lexHost() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.lexWhitespace()
	case c == '/' && l.peek(1) == '/':
		l.lexLineComment()
	case c == '/' && l.peek(1) == '*':
		l.lexBlockComment()
	case c == 'r' && (l.peek(1) == '"' || l.peek(1) == '#'):
		if !l.lexRawString() {
			l.lexIdent()
		}
	case c == '"':
		l.lexString()
	case c == '\'':
		l.lexChar()
	case c >= '0' && c <= '9':
		l.lexNumber()
	case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
		l.lexIdentOrBad()
	case c == '<':
		l.lexAngle()
	default:
		l.lexPunct()
	}
}

func (l *lexer) lexWhitespace() {
	start := l.pos
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	l.emit(KindWhitespace, start, l.pos)
}

func (l *lexer) lexLineComment() {
	start := l.pos
	end := start
	for end < len(l.src) && l.src[end] != '\n' {
		end++
	}
	kind := KindLineComment
	// /// is a doc comment; //// and beyond is plain again, like rustc.
	if strings.HasPrefix(l.src[start:end], "///") && !strings.HasPrefix(l.src[start:end], "////") {
		kind = KindDocComment
	}
	l.emit(kind, start, end)
}

func (l *lexer) lexBlockComment() {
	start := l.pos
	kind := KindBlockComment
	// /** opens a doc comment unless it is the degenerate /**/
	if l.peek(2) == '*' && l.peek(3) != '/' {
		kind = KindDocComment
	}
	depth := 0
	i := l.pos
	for i < len(l.src) {
		if i+1 < len(l.src) && l.src[i] == '/' && l.src[i+1] == '*' {
			depth++
			i += 2
			continue
		}
		if i+1 < len(l.src) && l.src[i] == '*' && l.src[i+1] == '/' {
			depth--
			i += 2
			if depth == 0 {
				break
			}
			continue
		}
		i++
	}
	// Unterminated comments run to end of input.
	l.emit(kind, start, i)
}

// lexRawString handles r"..." and r#"..."# with any number of fence hashes.
// Returns false when the r is not actually introducing a raw string.
func (l *lexer) lexRawString() bool {
	start := l.pos
	i := l.pos + 1
	hashes := 0
	for i < len(l.src) && l.src[i] == '#' {
		hashes++
		i++
	}
	if i >= len(l.src) || l.src[i] != '"' {
		return false
	}
	i++ // opening quote
	fence := `"` + strings.Repeat("#", hashes)
	end := strings.Index(l.src[i:], fence)
	if end < 0 {
		l.emit(KindRawString, start, len(l.src))
		return true
	}
	l.emit(KindRawString, start, i+end+len(fence))
	return true
}

func (l *lexer) lexString() {
	start := l.pos
	i := l.pos + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			i += 2
			continue
		case '"':
			l.emit(KindString, start, i+1)
			return
		case '\n':
			// Unterminated string ends at the newline.
			l.emit(KindString, start, i)
			return
		}
		i++
	}
	l.emit(KindString, start, len(l.src))
}

func (l *lexer) lexChar() {
	start := l.pos
	i := l.pos + 1
	if i < len(l.src) && l.src[i] == '\\' {
		i += 2
	} else if i < len(l.src) {
		_, size := utf8.DecodeRuneInString(l.src[i:])
		i += size
	}
	if i < len(l.src) && l.src[i] == '\'' {
		l.emit(KindChar, start, i+1)
		return
	}
	// Not a char literal; a lone quote is punctuation (lifetime-style usage).
	l.emit(KindPunct, start, start+1)
}

func (l *lexer) lexNumber() {
	start := l.pos
	i := l.pos
	if l.src[i] == '0' && i+1 < len(l.src) {
		switch l.src[i+1] {
		case 'x', 'X':
			i += 2
			for i < len(l.src) && (isHexDigit(l.src[i]) || l.src[i] == '_') {
				i++
			}
			l.emit(KindNumber, start, l.scanNumberSuffix(i))
			return
		case 'o', 'O':
			i += 2
			for i < len(l.src) && (l.src[i] >= '0' && l.src[i] <= '7' || l.src[i] == '_') {
				i++
			}
			l.emit(KindNumber, start, l.scanNumberSuffix(i))
			return
		case 'b', 'B':
			i += 2
			for i < len(l.src) && (l.src[i] == '0' || l.src[i] == '1' || l.src[i] == '_') {
				i++
			}
			l.emit(KindNumber, start, l.scanNumberSuffix(i))
			return
		}
	}
	for i < len(l.src) && (isDigit(l.src[i]) || l.src[i] == '_') {
		i++
	}
	// Fraction part only when a digit follows the dot, so 1..2 and foo.1 lex cleanly.
	if i+1 < len(l.src) && l.src[i] == '.' && isDigit(l.src[i+1]) {
		i++
		for i < len(l.src) && (isDigit(l.src[i]) || l.src[i] == '_') {
			i++
		}
	}
	// Exponent
	if i < len(l.src) && (l.src[i] == 'e' || l.src[i] == 'E') {
		j := i + 1
		if j < len(l.src) && (l.src[j] == '+' || l.src[j] == '-') {
			j++
		}
		if j < len(l.src) && isDigit(l.src[j]) {
			i = j
			for i < len(l.src) && isDigit(l.src[i]) {
				i++
			}
		}
	}
	l.emit(KindNumber, start, l.scanNumberSuffix(i))
}

// scanNumberSuffix consumes a type suffix like u32, i64, f64, or usize: one
// letter followed by alphanumerics. Part of the number token, so 42u32 lexes
// as a single literal.
func (l *lexer) scanNumberSuffix(i int) int {
	if i >= len(l.src) || !isASCIILetter(l.src[i]) {
		return i
	}
	i++
	for i < len(l.src) && (isASCIILetter(l.src[i]) || isDigit(l.src[i])) {
		i++
	}
	return i
}

func (l *lexer) lexIdent() {
	start := l.pos
	end := scanIdent(l.src, l.pos)
	text := l.src[start:end]
	kind := KindIdent
	switch {
	case keywords[text]:
		kind = KindKeyword
	case types[text]:
		kind = KindType
	}
	l.emit(kind, start, end)
}

func (l *lexer) lexIdentOrBad() {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if !isIdentStart(r) {
		l.emit(KindBad, l.pos, l.pos+size)
		return
	}
	l.lexIdent()
}

// lexAngle disambiguates markup entry from comparison operators. A </ always
// opens a closing tag. A < directly followed by a known element name or an
// uppercase-led identifier opens a tag; anything else is an operator.
func (l *lexer) lexAngle() {
	if l.peek(1) == '/' {
		l.emit(KindTagCloseStart, l.pos, l.pos+2)
		l.state = StateTagClose
		l.sawTagName = false
		return
	}
	if name := tagNameAt(l.src, l.pos+1); name != "" {
		first, _ := utf8.DecodeRuneInString(name)
		if htmlTags[strings.ToLower(name)] && name == strings.ToLower(name) || unicode.IsUpper(first) {
			l.emit(KindTagOpenStart, l.pos, l.pos+1)
			l.state = StateTagOpen
			l.sawTagName = false
			return
		}
	}
	l.lexPunct()
}

var punctuation = []string{
	"<<=", ">>=", "...", "..=",
	"::", "->", "=>", "==", "!=", "<=", ">=", "&&", "||", "..",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~",
	"(", ")", "{", "}", "[", "]", ",", ";", ":", ".", "?", "#", "@", "$", "'",
}

func (l *lexer) lexPunct() {
	for _, p := range punctuation {
		if strings.HasPrefix(l.src[l.pos:], p) {
			l.emit(punctKind(p), l.pos, l.pos+len(p))
			return
		}
	}
	l.emit(KindBad, l.pos, l.pos+1)
}

// punctKind gives the bracket forms their own kinds so brace matching and
// statement scanning work on kind, not text.
func punctKind(p string) Kind {
	switch p {
	case "(":
		return KindParenOpen
	case ")":
		return KindParenClose
	case "{":
		return KindBraceOpen
	case "}":
		return KindBraceClose
	case "[":
		return KindBracketOpen
	case "]":
		return KindBracketClose
	}
	return KindPunct
}

func (l *lexer) lexTagOpen() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.lexWhitespace()
	case c == '>':
		l.emit(KindTagEnd, l.pos, l.pos+1)
		l.state = StateHost
	case c == '/' && l.peek(1) == '>':
		l.emit(KindTagSelfCloseEnd, l.pos, l.pos+2)
		l.state = StateHost
	case c == '=':
		l.emit(KindAttrEquals, l.pos, l.pos+1)
	case c == '"' || c == '\'':
		l.lexAttrValue(c)
	case c == '{':
		l.lexAttrExpr()
	case isTagNameByte(c):
		start := l.pos
		end := scanTagName(l.src, l.pos)
		if l.sawTagName {
			l.emit(KindAttrName, start, end)
		} else {
			l.emit(KindTagName, start, end)
			l.sawTagName = true
		}
	default:
		l.emit(KindBad, l.pos, l.pos+1)
	}
}

func (l *lexer) lexTagClose() {
	c := l.src[l.pos]
	switch {
	case isSpace(c):
		l.lexWhitespace()
	case c == '>':
		l.emit(KindTagEnd, l.pos, l.pos+1)
		l.state = StateHost
	case isTagNameByte(c):
		start := l.pos
		end := scanTagName(l.src, l.pos)
		l.emit(KindTagName, start, end)
	default:
		l.emit(KindBad, l.pos, l.pos+1)
	}
}

func (l *lexer) lexAttrValue(quote byte) {
	start := l.pos
	i := l.pos + 1
	for i < len(l.src) && l.src[i] != quote {
		i++
	}
	if i < len(l.src) {
		i++
	}
	l.emit(KindAttrValue, start, i)
}

// lexAttrExpr consumes a balanced {expression} attribute. Braces inside
// string literals do not count toward the depth.
func (l *lexer) lexAttrExpr() {
	start := l.pos
	depth := 0
	i := l.pos
	for i < len(l.src) {
		switch l.src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				l.emit(KindAttrExpr, start, i+1)
				return
			}
		case '"', '\'':
			quote := l.src[i]
			i++
			for i < len(l.src) && l.src[i] != quote {
				if l.src[i] == '\\' {
					i++
				}
				i++
			}
		}
		i++
	}
	// Unterminated expression runs to end of input.
	l.emit(KindAttrExpr, start, len(l.src))
}

// tagNameAt extracts a candidate element name starting at i, or "" when the
// character there cannot begin one. No whitespace is allowed between < and
// the name.
func tagNameAt(src string, i int) string {
	if i >= len(src) {
		return ""
	}
	c := src[i]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
		return ""
	}
	return src[i:scanTagName(src, i)]
}

func scanTagName(src string, i int) int {
	for i < len(src) && isTagNameByte(src[i]) {
		i++
	}
	return i
}

func scanIdent(src string, i int) int {
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !isIdentPart(r) {
			break
		}
		i += size
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isTagNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
