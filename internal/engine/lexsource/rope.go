package lexsource

import (
	"fmt"

	"github.com/dshills/ropelex/internal/engine/rope"
	"github.com/dshills/ropelex/internal/engine/scan"
)

var _ scan.Source[rope.View] = Rope{}

// Rope is a chunked byte source over a rope view.
type Rope struct {
	view rope.View
}

// New returns a source over the whole rope.
func New(r rope.Rope) Rope {
	return Rope{view: r.View()}
}

// FromView returns a source over a view.
func FromView(v rope.View) Rope {
	return Rope{view: v}
}

// View returns the underlying view.
func (s Rope) View() rope.View {
	return s.view
}

// Equal reports whether two sources hold the same bytes.
func (s Rope) Equal(other Rope) bool {
	return s.view.Equal(other.view)
}

// Compare orders two sources by their bytes, as strings.Compare does.
func (s Rope) Compare(other Rope) int {
	return s.view.Compare(other.view)
}

// Len returns the number of bytes in the source.
func (s Rope) Len() int {
	return int(s.view.Len())
}

// String returns the source text.
func (s Rope) String() string {
	return s.view.String()
}

// Read copies len(dst) bytes starting at offset into dst. It fails when
// offset is out of range or when the chunk holding offset has fewer than
// len(dst) bytes left, even if the following chunk would supply them.
func (s Rope) Read(offset int, dst []byte) bool {
	if offset < 0 {
		return false
	}
	chunk, start, ok := s.view.ChunkAt(rope.ByteOffset(offset))
	if !ok {
		return false
	}

	data := chunk[offset-int(start):]
	if len(data) < len(dst) {
		return false
	}
	copy(dst, data)
	return true
}

// ReadUnchecked is Read for call sites that already established the read
// succeeds. It panics if it does not.
func (s Rope) ReadUnchecked(offset int, dst []byte) {
	if !s.Read(offset, dst) {
		panic(fmt.Sprintf("lexsource: %d-byte read at offset %d is not available", len(dst), offset))
	}
}

// Slice returns a view of [start, end). The range may split characters.
// Returns false if start is negative, start > end, or end > Len().
func (s Rope) Slice(start, end int) (rope.View, bool) {
	if start < 0 || start > end {
		return rope.View{}, false
	}
	return s.view.Sub(rope.ByteOffset(start), rope.ByteOffset(end))
}

// SliceUnchecked is Slice for ranges already known to be valid. It panics
// if the range is not.
func (s Rope) SliceUnchecked(start, end int) rope.View {
	v, ok := s.Slice(start, end)
	if !ok {
		panic(fmt.Sprintf("lexsource: slice [%d, %d) out of range for length %d", start, end, s.Len()))
	}
	return v
}

// FindBoundary returns the smallest character boundary >= index. An index
// inside a multi-byte sequence advances to the start of the next character.
// Negative indexes return 0 and indexes past the end return Len().
func (s Rope) FindBoundary(index int) int {
	if index <= 0 {
		return 0
	}
	if index >= s.Len() {
		return s.Len()
	}

	offset := rope.ByteOffset(index)
	c := s.view.ByteToChar(offset)
	if s.view.CharToByte(c) == offset {
		return index
	}
	return int(s.view.CharToByte(c + 1))
}

// IsBoundary reports whether index falls on a character boundary.
// Offsets past Len() are never boundaries.
func (s Rope) IsBoundary(index int) bool {
	if index < 0 {
		return false
	}
	offset := rope.ByteOffset(index)
	c, ok := s.view.TryByteToChar(offset)
	return ok && s.view.CharToByte(c) == offset
}
