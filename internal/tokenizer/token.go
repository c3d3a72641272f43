package tokenizer

// Kind classifies a lexed token.
type Kind int

const (
	// KindWhitespace is a run of spaces, tabs, and newlines
	KindWhitespace Kind = iota
	// KindLineComment is a // comment, not including the trailing newline
	KindLineComment
	// KindDocComment is a /// line comment or a /** block comment
	KindDocComment
	// KindBlockComment is a (possibly nested) /* comment
	KindBlockComment
	// KindString is a double-quoted string literal, escapes included verbatim
	KindString
	// KindRawString is a raw string literal r"..." or r#"..."# with any fence depth
	KindRawString
	// KindChar is a single-quoted character literal
	KindChar
	// KindNumber is an integer or float literal, including 0x/0o/0b forms
	KindNumber
	// KindIdent is an identifier
	KindIdent
	// KindKeyword is a reserved word
	KindKeyword
	// KindType is a primitive type name
	KindType
	// KindPunct is an operator or punctuation token
	KindPunct
	// KindParenOpen is a (
	KindParenOpen
	// KindParenClose is a )
	KindParenClose
	// KindBraceOpen is a {
	KindBraceOpen
	// KindBraceClose is a }
	KindBraceClose
	// KindBracketOpen is a [
	KindBracketOpen
	// KindBracketClose is a ]
	KindBracketClose
	// KindBad is a single byte the lexer could not classify
	KindBad

	// KindTagOpenStart is the < that begins an opening markup tag
	KindTagOpenStart
	// KindTagCloseStart is the </ that begins a closing markup tag
	KindTagCloseStart
	// KindTagName is the element name inside a tag
	KindTagName
	// KindAttrName is an attribute name inside an opening tag
	KindAttrName
	// KindAttrEquals is the = between an attribute name and its value
	KindAttrEquals
	// KindAttrValue is a quoted attribute value, quotes included
	KindAttrValue
	// KindAttrExpr is a brace-delimited expression attribute, braces included
	KindAttrExpr
	// KindTagEnd is the > that closes a tag and returns to host code
	KindTagEnd
	// KindTagSelfCloseEnd is the /> that closes a self-closing tag
	KindTagSelfCloseEnd
)

// Token is one lexed span of the source. Tokens are contiguous: the Text of
// consecutive tokens concatenates back to the original input, and Offset is
// the byte position of the first character.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// IsTrivia reports whether the token is whitespace or any comment form.
// Navigation helpers skip trivia tokens.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case KindWhitespace, KindLineComment, KindDocComment, KindBlockComment:
		return true
	}
	return false
}

// State is the lexer mode. The lexer starts in StateHost and switches into
// the tag states when it recognizes markup, then back out at > or />.
type State int

const (
	// StateHost lexes ordinary host-language code
	StateHost State = iota
	// StateTagOpen lexes the inside of an opening tag: name, attributes, >
	StateTagOpen
	// StateTagClose lexes the inside of a closing tag: name, >
	StateTagClose
)

// keywords is the reserved word set of the host language.
var keywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true,
	"crate": true, "else": true, "enum": true, "false": true,
	"fn": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "mut": true,
	"pub": true, "return": true, "root": true, "self": true,
	"static": true, "struct": true, "super": true, "trait": true,
	"true": true, "type": true, "use": true, "where": true, "while": true,
}

// htmlTags is the set of lowercase element names that open markup mode.
// Identifiers outside this set still open markup when they start with an
// uppercase letter (component tags).
var htmlTags = map[string]bool{
	"a": true, "abbr": true, "address": true, "area": true, "article": true,
	"aside": true, "audio": true, "b": true, "base": true, "bdi": true,
	"bdo": true, "blockquote": true, "body": true, "br": true, "button": true,
	"canvas": true, "caption": true, "cite": true, "code": true, "col": true,
	"colgroup": true, "data": true, "datalist": true, "dd": true, "del": true,
	"details": true, "dfn": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"header": true, "hgroup": true, "hr": true, "html": true, "i": true,
	"iframe": true, "img": true, "input": true, "ins": true, "kbd": true,
	"label": true, "legend": true, "li": true, "link": true, "main": true,
	"map": true, "mark": true, "menu": true, "meta": true, "meter": true,
	"nav": true, "noscript": true, "object": true, "ol": true, "optgroup": true,
	"option": true, "output": true, "p": true, "picture": true, "pre": true,
	"progress": true, "q": true, "rp": true, "rt": true, "ruby": true,
	"s": true, "samp": true, "script": true, "section": true, "select": true,
	"slot": true, "small": true, "source": true, "span": true, "strong": true,
	"style": true, "sub": true, "summary": true, "sup": true, "table": true,
	"tbody": true, "td": true, "template": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "time": true, "title": true,
	"tr": true, "track": true, "u": true, "ul": true, "var": true,
	"video": true, "wbr": true,
}

// types is the primitive type name set of the host language.
var types = map[string]bool{
	"bool": true, "char": true, "str": true, "String": true,
	"f32": true, "f64": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"usize": true,
}

// IsKeyword reports whether s is a reserved word.
func IsKeyword(s string) bool {
	return keywords[s]
}

// IsType reports whether s is a primitive type name.
func IsType(s string) bool {
	return types[s]
}

// IsKnownTag reports whether s is a recognized lowercase element name.
func IsKnownTag(s string) bool {
	return htmlTags[s]
}
