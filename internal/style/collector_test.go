package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shmigatron/volki/internal/tokenizer"
)

func TestCollectClasses(t *testing.T) {
	t.Run("single attribute", func(t *testing.T) {
		classes := CollectClassesFromSource(`fn view() { <div class="flex p-4"></div> }`)
		assert.Equal(t, []string{"flex", "p-4"}, classes)
	})

	t.Run("multiple elements", func(t *testing.T) {
		src := `fn view() {
			<div class="outer">
				<span class="inner text-sm"></span>
			</div>
		}`
		classes := CollectClassesFromSource(src)
		assert.Equal(t, []string{"outer", "inner", "text-sm"}, classes)
	})

	t.Run("non class attributes ignored", func(t *testing.T) {
		classes := CollectClassesFromSource(`fn view() { <div id="main" data-x="y"></div> }`)
		assert.Empty(t, classes)
	})

	t.Run("expression values ignored", func(t *testing.T) {
		classes := CollectClassesFromSource(`fn view() { <div class={dynamic()}></div> }`)
		assert.Empty(t, classes)
	})

	t.Run("single quotes", func(t *testing.T) {
		classes := CollectClassesFromSource(`fn view() { <div class='grid gap-2'></div> }`)
		assert.Equal(t, []string{"grid", "gap-2"}, classes)
	})

	t.Run("host code untouched", func(t *testing.T) {
		classes := CollectClassesFromSource(`let class = "flex"; // class="p-4"`)
		assert.Empty(t, classes)
	})
}

func TestCollectClassSpans(t *testing.T) {
	src := `fn view() { <div class="flex p-4"></div> }`
	spans := CollectClassSpans(tokenizer.Tokenize(src))
	assert.Equal(t, []ClassSpan{
		{Name: "flex", Offset: 24},
		{Name: "p-4", Offset: 29},
	}, spans)

	t.Run("offsets point at the names", func(t *testing.T) {
		for _, span := range spans {
			assert.Equal(t, span.Name, src[span.Offset:span.Offset+len(span.Name)])
		}
	})

	t.Run("multiline attribute", func(t *testing.T) {
		src := "fn view() { <div class=\"flex\n\tp-4\"></div> }"
		spans := CollectClassSpans(tokenizer.Tokenize(src))
		assert.Len(t, spans, 2)
		assert.Equal(t, "p-4", spans[1].Name)
		assert.Equal(t, "p-4", src[spans[1].Offset:spans[1].Offset+len(spans[1].Name)])
	})
}
