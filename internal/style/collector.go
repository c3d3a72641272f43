package style

import (
	"strings"

	"github.com/shmigatron/volki/internal/tokenizer"
)

// CollectClasses walks a token stream and gathers every class name mentioned
// in a markup class attribute. Values are split on whitespace, so
// class="flex p-4" yields two entries. Only literal quoted values
// contribute; expression attributes are opaque at this level.
func CollectClasses(toks []tokenizer.Token) []string {
	var classes []string
	for i, tok := range toks {
		if tok.Kind != tokenizer.KindAttrName || tok.Text != "class" {
			continue
		}
		j := next(toks, i)
		if j < 0 || toks[j].Kind != tokenizer.KindAttrEquals {
			continue
		}
		j = next(toks, j)
		if j < 0 || toks[j].Kind != tokenizer.KindAttrValue {
			continue
		}
		for _, part := range strings.Fields(unquote(toks[j].Text)) {
			classes = append(classes, part)
		}
	}
	return classes
}

// CollectClassesFromSource tokenizes source text and collects class names.
func CollectClassesFromSource(src string) []string {
	return CollectClasses(tokenizer.Tokenize(src))
}

// ClassSpan is one class name occurrence with its byte offset in the source.
type ClassSpan struct {
	Name   string
	Offset int
}

// CollectClassSpans is CollectClasses with source positions, for editor
// features that need to point back at the class name.
func CollectClassSpans(toks []tokenizer.Token) []ClassSpan {
	var spans []ClassSpan
	for i, tok := range toks {
		if tok.Kind != tokenizer.KindAttrName || tok.Text != "class" {
			continue
		}
		j := next(toks, i)
		if j < 0 || toks[j].Kind != tokenizer.KindAttrEquals {
			continue
		}
		j = next(toks, j)
		if j < 0 || toks[j].Kind != tokenizer.KindAttrValue {
			continue
		}
		value := unquote(toks[j].Text)
		// The value begins one byte after the opening quote.
		base := toks[j].Offset + 1
		at := 0
		for at < len(value) {
			if isClassSpace(value[at]) {
				at++
				continue
			}
			end := at
			for end < len(value) && !isClassSpace(value[end]) {
				end++
			}
			spans = append(spans, ClassSpan{Name: value[at:end], Offset: base + at})
			at = end
		}
	}
	return spans
}

func isClassSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func next(toks []tokenizer.Token, i int) int {
	for j := i + 1; j < len(toks); j++ {
		if !toks[j].IsTrivia() {
			return j
		}
	}
	return -1
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
