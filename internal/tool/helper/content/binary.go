package content

import "bytes"

// binarySampleSize is how many leading bytes are scanned for NUL, as git does.
const binarySampleSize = 8000

// IsBinaryContent reports whether content looks binary: a NUL byte in the leading sample.
// UTF-16 and UTF-32 text legitimately contains NULs, so a byte order mark exempts it.
func IsBinaryContent(content []byte) bool {
	if hasWideBOM(content) {
		return false
	}
	sample := content[:min(len(content), binarySampleSize)]
	return bytes.IndexByte(sample, 0) >= 0
}

func hasWideBOM(b []byte) bool {
	switch {
	case bytes.HasPrefix(b, []byte{0x00, 0x00, 0xFE, 0xFF}):
		return true
	case bytes.HasPrefix(b, []byte{0xFF, 0xFE}), bytes.HasPrefix(b, []byte{0xFE, 0xFF}):
		return true
	}
	return false
}
