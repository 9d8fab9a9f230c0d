package content

import (
	"strings"
	"unicode/utf8"
)

// Lossy converts b to a string, replacing each run of invalid UTF-8 with U+FFFD.
func Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}

// TrimCR drops one trailing carriage return.
func TrimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
