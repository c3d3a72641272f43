// Package tokens provides index-based navigation over a flat token stream.
// All helpers are pure functions on a []tokenizer.Token slice; a result of -1
// means "no such token".
package tokens

import (
	"github.com/shmigatron/volki/internal/tokenizer"
)

// NextNonWhitespace returns the index of the first non-trivia token strictly
// after index i, or -1 when none remains. Trivia is whitespace and comments.
func NextNonWhitespace(toks []tokenizer.Token, i int) int {
	if i < -1 {
		i = -1
	}
	for j := i + 1; j < len(toks); j++ {
		if !toks[j].IsTrivia() {
			return j
		}
	}
	return -1
}

// PrevNonWhitespace returns the index of the last non-trivia token strictly
// before index i, or -1 when none precedes it.
func PrevNonWhitespace(toks []tokenizer.Token, i int) int {
	if i > len(toks) {
		i = len(toks)
	}
	for j := i - 1; j >= 0; j-- {
		if !toks[j].IsTrivia() {
			return j
		}
	}
	return -1
}

// MatchingCloseBrace returns the index of the } that balances the { at index
// open. Returns -1 when open does not point at a { token or the stream ends
// before the brace closes. String and comment contents never affect the
// depth, since they are single tokens.
func MatchingCloseBrace(toks []tokenizer.Token, open int) int {
	if open < 0 || open >= len(toks) {
		return -1
	}
	if toks[open].Kind != tokenizer.KindBraceOpen {
		return -1
	}
	depth := 0
	for j := open; j < len(toks); j++ {
		switch toks[j].Kind {
		case tokenizer.KindBraceOpen:
			depth++
		case tokenizer.KindBraceClose:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}
