package textDocument

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/documents"
	"github.com/shmigatron/volki/internal/position"
	"github.com/shmigatron/volki/internal/style"
	"github.com/shmigatron/volki/internal/tokenizer"
)

// ClassSpanAt returns the class attribute entry under the given position,
// if any.
func ClassSpanAt(doc *documents.Document, pos protocol.Position) (style.ClassSpan, bool) {
	content := doc.Content()
	offset := position.PositionToOffset(content, int(pos.Line), int(pos.Character))
	for _, span := range style.CollectClassSpans(doc.Tokens()) {
		if offset >= span.Offset && offset <= span.Offset+len(span.Name) {
			return span, true
		}
	}
	return style.ClassSpan{}, false
}

// InClassAttribute reports whether the position falls inside the quotes of
// a markup class attribute value.
func InClassAttribute(doc *documents.Document, pos protocol.Position) bool {
	content := doc.Content()
	offset := position.PositionToOffset(content, int(pos.Line), int(pos.Character))
	toks := doc.Tokens()
	for i, tok := range toks {
		if tok.Kind != tokenizer.KindAttrName || tok.Text != "class" {
			continue
		}
		for j := i + 1; j < len(toks); j++ {
			if toks[j].IsTrivia() || toks[j].Kind == tokenizer.KindAttrEquals {
				continue
			}
			if toks[j].Kind == tokenizer.KindAttrValue {
				start := toks[j].Offset + 1
				end := toks[j].Offset + len(toks[j].Text) - 1
				if offset >= start && offset <= end {
					return true
				}
			}
			break
		}
	}
	return false
}

// SpanRange converts a class span's byte extent to an LSP range.
func SpanRange(content string, span style.ClassSpan) protocol.Range {
	startLine, startChar := position.OffsetToPosition(content, span.Offset)
	endLine, endChar := position.OffsetToPosition(content, span.Offset+len(span.Name))
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(startLine), Character: protocol.UInteger(startChar)},
		End:   protocol.Position{Line: protocol.UInteger(endLine), Character: protocol.UInteger(endChar)},
	}
}
