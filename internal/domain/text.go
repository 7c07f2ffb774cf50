package domain

import (
	"strings"
	"unicode/utf8"
)

// IsStorableText reports whether s is valid UTF-8 without NUL bytes, the
// text every storage engine accepts in a TEXT column.
func IsStorableText(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
