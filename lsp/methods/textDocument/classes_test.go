package textDocument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/documents"
)

func openDoc(content string) *documents.Document {
	return documents.NewDocument("file:///a.volki", "volki", 1, content)
}

func at(line, char int) protocol.Position {
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
}

func TestClassSpanAt(t *testing.T) {
	doc := openDoc(`fn view() { <div class="flex p-4"></div> }`)

	t.Run("start of name", func(t *testing.T) {
		span, ok := ClassSpanAt(doc, at(0, 24))
		require.True(t, ok)
		assert.Equal(t, "flex", span.Name)
	})

	t.Run("middle of name", func(t *testing.T) {
		span, ok := ClassSpanAt(doc, at(0, 30))
		require.True(t, ok)
		assert.Equal(t, "p-4", span.Name)
	})

	t.Run("end of name is inclusive", func(t *testing.T) {
		span, ok := ClassSpanAt(doc, at(0, 28))
		require.True(t, ok)
		assert.Equal(t, "flex", span.Name)
	})

	t.Run("outside the attribute", func(t *testing.T) {
		_, ok := ClassSpanAt(doc, at(0, 5))
		assert.False(t, ok)
	})
}

func TestInClassAttribute(t *testing.T) {
	doc := openDoc(`fn view() { <div class="flex" id="x"></div> }`)

	assert.True(t, InClassAttribute(doc, at(0, 24)))
	assert.True(t, InClassAttribute(doc, at(0, 28)))

	t.Run("other attribute values excluded", func(t *testing.T) {
		assert.False(t, InClassAttribute(doc, at(0, 34)))
	})

	t.Run("host code excluded", func(t *testing.T) {
		assert.False(t, InClassAttribute(doc, at(0, 3)))
	})
}

func TestSpanRange(t *testing.T) {
	content := "line one\n<div class=\"p-4\"/>"
	doc := openDoc(content)

	span, ok := ClassSpanAt(doc, at(1, 13))
	require.True(t, ok)

	r := SpanRange(content, span)
	assert.Equal(t, at(1, 12), r.Start)
	assert.Equal(t, at(1, 15), r.End)
}
