package lexsource

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/ropelex/internal/engine/scan"
)

var _ scan.Source[[]byte] = Bytes(nil)

// Bytes is a source over contiguous memory. Reads only fail past the end.
type Bytes []byte

// Len returns the number of bytes in the source.
func (b Bytes) Len() int {
	return len(b)
}

// Read copies len(dst) bytes starting at offset into dst.
func (b Bytes) Read(offset int, dst []byte) bool {
	if offset < 0 || offset >= len(b) || len(b)-offset < len(dst) {
		return false
	}
	copy(dst, b[offset:])
	return true
}

// ReadUnchecked is Read that panics when the read is not available.
func (b Bytes) ReadUnchecked(offset int, dst []byte) {
	if !b.Read(offset, dst) {
		panic(fmt.Sprintf("lexsource: %d-byte read at offset %d is not available", len(dst), offset))
	}
}

// Slice returns b[start:end] without copying.
func (b Bytes) Slice(start, end int) ([]byte, bool) {
	if start < 0 || start > end || end > len(b) {
		return nil, false
	}
	return b[start:end:end], true
}

// SliceUnchecked is Slice that panics on an invalid range.
func (b Bytes) SliceUnchecked(start, end int) []byte {
	s, ok := b.Slice(start, end)
	if !ok {
		panic(fmt.Sprintf("lexsource: slice [%d, %d) out of range for length %d", start, end, len(b)))
	}
	return s
}

// FindBoundary returns the smallest character boundary >= index.
func (b Bytes) FindBoundary(index int) int {
	if index <= 0 {
		return 0
	}
	for index < len(b) && !utf8.RuneStart(b[index]) {
		index++
	}
	return min(index, len(b))
}

// IsBoundary reports whether index falls on a character boundary.
func (b Bytes) IsBoundary(index int) bool {
	if index < 0 || index > len(b) {
		return false
	}
	return index == 0 || index == len(b) || utf8.RuneStart(b[index])
}
