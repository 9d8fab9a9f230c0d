package search

import (
	"bytes"

	"github.com/Cyclone1070/gitfs/internal/tool/helper/content"
)

// lineIndex holds the byte offset at which each line starts.
// A newline that is the final byte of the file does not open a new line.
type lineIndex []int

func newLineIndex(data []byte) lineIndex {
	idx := lineIndex{0}
	for off := 0; ; {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			break
		}
		next := off + i + 1
		if next >= len(data) {
			break
		}
		idx = append(idx, next)
		off = next
	}
	return idx
}

// line returns line i without its terminator or a trailing carriage return.
func (ix lineIndex) line(data []byte, i int) []byte {
	start := ix[i]
	end := len(data)
	if i+1 < len(ix) {
		end = ix[i+1] - 1
	} else if end > start && data[end-1] == '\n' {
		end--
	}
	return content.TrimCR(data[start:end])
}

// context returns up to n lossily decoded lines on each side of line i.
func (ix lineIndex) context(data []byte, i, n int) (before, after []string) {
	lo := max(0, i-n)
	hi := min(len(ix), i+1+n)
	before = make([]string, 0, i-lo)
	after = make([]string, 0, max(0, hi-i-1))
	for j := lo; j < hi; j++ {
		switch {
		case j < i:
			before = append(before, content.Lossy(ix.line(data, j)))
		case j > i:
			after = append(after, content.Lossy(ix.line(data, j)))
		}
	}
	return before, after
}
