package content

import "bytes"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SplitLines splits data on "\n", dropping one trailing "\r" per line and a leading UTF-8
// byte order mark. A final newline does not produce a trailing empty line.
func SplitLines(data []byte) []string {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(data) == 0 {
		return nil
	}
	data = bytes.TrimSuffix(data, []byte{'\n'})

	parts := bytes.Split(data, []byte{'\n'})
	lines := make([]string, len(parts))
	for i, p := range parts {
		lines[i] = string(TrimCR(p))
	}
	return lines
}
