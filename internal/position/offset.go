package position

import "strings"

// OffsetToPosition converts a byte offset in a document to a zero-based
// line and UTF-16 column. Offsets past the end clamp to the final position.
func OffsetToPosition(content string, offset int) (line, character int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line = strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1
	character = ByteOffsetToUTF16(content[lineStart:], offset-lineStart)
	return line, character
}

// PositionToOffset converts a zero-based line and UTF-16 column to a byte
// offset in the document. Lines past the end clamp to the document length.
func PositionToOffset(content string, line, character int) int {
	offset := 0
	for line > 0 {
		nl := strings.IndexByte(content[offset:], '\n')
		if nl < 0 {
			return len(content)
		}
		offset += nl + 1
		line--
	}
	rest := content[offset:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return offset + UTF16ToByteOffset(rest, character)
}
