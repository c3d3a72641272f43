// Package position converts between Go's byte-indexed strings and the
// UTF-16 code unit positions the language server protocol uses.
package position

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16ToByteOffset converts a UTF-16 code unit offset within a line to a
// byte offset. Offsets that land inside a surrogate pair clamp back to the
// start of the rune; offsets past the end clamp to the line length.
func UTF16ToByteOffset(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}

	units := 0
	byteOffset := 0
	for byteOffset < len(s) && units < utf16Col {
		r, size := utf8.DecodeRuneInString(s[byteOffset:])
		if r == utf8.RuneError && size == 1 {
			// Invalid byte counts as one unit.
			byteOffset++
			units++
			continue
		}
		runeLen := utf16.RuneLen(r)
		if runeLen == 2 && units+1 == utf16Col {
			break
		}
		units += runeLen
		byteOffset += size
	}
	return byteOffset
}

// ByteOffsetToUTF16 converts a byte offset within a line to a UTF-16 code
// unit offset. Offsets that land inside a rune clamp back to its start.
func ByteOffsetToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	units := 0
	at := 0
	for at < byteOffset {
		r, size := utf8.DecodeRuneInString(s[at:])
		if size == 0 || at+size > byteOffset {
			break
		}
		units += utf16.RuneLen(r)
		at += size
	}
	return units
}

// StringLengthUTF16 returns the length of s in UTF-16 code units.
func StringLengthUTF16(s string) int {
	units := 0
	for _, r := range s {
		units += utf16.RuneLen(r)
	}
	return units
}
