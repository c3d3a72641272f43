package tokens_test

import (
	"testing"

	"github.com/shmigatron/volki/internal/tokenizer"
	"github.com/shmigatron/volki/internal/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextNonWhitespace(t *testing.T) {
	toks := tokenizer.Tokenize("fn  /* c */ main")

	t.Run("skips whitespace and comments", func(t *testing.T) {
		i := tokens.NextNonWhitespace(toks, 0)
		require.NotEqual(t, -1, i)
		assert.Equal(t, "main", toks[i].Text)
	})

	t.Run("from before the stream", func(t *testing.T) {
		i := tokens.NextNonWhitespace(toks, -1)
		require.NotEqual(t, -1, i)
		assert.Equal(t, "fn", toks[i].Text)
	})

	t.Run("no following token", func(t *testing.T) {
		assert.Equal(t, -1, tokens.NextNonWhitespace(toks, len(toks)-1))
	})
}

func TestPrevNonWhitespace(t *testing.T) {
	toks := tokenizer.Tokenize("fn  // trailing\nmain")

	var mainIdx int
	for i, tok := range toks {
		if tok.Text == "main" {
			mainIdx = i
		}
	}

	t.Run("skips whitespace and comments backwards", func(t *testing.T) {
		i := tokens.PrevNonWhitespace(toks, mainIdx)
		require.NotEqual(t, -1, i)
		assert.Equal(t, "fn", toks[i].Text)
	})

	t.Run("no preceding token", func(t *testing.T) {
		assert.Equal(t, -1, tokens.PrevNonWhitespace(toks, 0))
	})
}

func TestMatchingCloseBrace(t *testing.T) {
	t.Run("balanced nesting", func(t *testing.T) {
		toks := tokenizer.Tokenize("{ a { b } c }")
		close := tokens.MatchingCloseBrace(toks, 0)
		require.NotEqual(t, -1, close)
		assert.Equal(t, "}", toks[close].Text)
		assert.Equal(t, len(toks)-1, close)
	})

	t.Run("braces inside strings do not count", func(t *testing.T) {
		toks := tokenizer.Tokenize(`{ "}" }`)
		close := tokens.MatchingCloseBrace(toks, 0)
		require.NotEqual(t, -1, close)
		assert.Equal(t, len(toks)-1, close)
	})

	t.Run("unbalanced returns -1", func(t *testing.T) {
		toks := tokenizer.Tokenize("{ a {")
		assert.Equal(t, -1, tokens.MatchingCloseBrace(toks, 0))
	})

	t.Run("not an open brace returns -1", func(t *testing.T) {
		toks := tokenizer.Tokenize("fn {}")
		assert.Equal(t, -1, tokens.MatchingCloseBrace(toks, 0))
	})

	t.Run("out of range returns -1", func(t *testing.T) {
		toks := tokenizer.Tokenize("{}")
		assert.Equal(t, -1, tokens.MatchingCloseBrace(toks, 10))
		assert.Equal(t, -1, tokens.MatchingCloseBrace(nil, 0))
	})
}
