package style

import "strings"

// selectorSpecials are the characters that must be backslash-escaped when a
// class name is used in a CSS selector.
const selectorSpecials = `:/.[]#%!,()'@`

// EscapeSelector backslash-escapes special characters in a class name for use
// in a selector, e.g. "w-1/2" becomes "w-1\\/2".
func EscapeSelector(class string) string {
	var sb strings.Builder
	sb.Grow(len(class) + 8)
	for _, c := range class {
		if c < 128 && strings.ContainsRune(selectorSpecials, c) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
