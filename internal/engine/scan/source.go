package scan

import "fmt"

// Reader is the fixed-width read primitive of a Source.
type Reader interface {
	// Read copies exactly len(dst) bytes starting at offset into dst.
	// It returns false, leaving dst untouched, when those bytes are not
	// available as one contiguous window. Callers retry with a narrower
	// dst; a one-byte read only fails at or past the end of the input.
	Read(offset int, dst []byte) bool
}

// Source is the input contract a Lexer consumes. S is the type of the
// sub-range values returned by Slice.
//
// A Source is a read-only view. Implementations must tolerate any offset,
// reporting out-of-range requests through their boolean results rather
// than panicking.
type Source[S any] interface {
	Reader

	// Len returns the total number of bytes.
	Len() int

	// Slice returns the bytes in [start, end). The range does not need to
	// fall on character boundaries. Returns false if start > end, start is
	// negative, or end > Len().
	Slice(start, end int) (S, bool)

	// FindBoundary returns the smallest character boundary >= index.
	FindBoundary(index int) int

	// IsBoundary reports whether index is a character boundary.
	// Len() is always a boundary.
	IsBoundary(index int) bool
}

// Chunk is a fixed-width byte window returned by value.
type Chunk interface {
	[1]byte | [2]byte | [4]byte | [8]byte | [16]byte
}

// ReadChunk reads a fixed-width chunk at offset.
func ReadChunk[C Chunk](r Reader, offset int) (C, bool) {
	var c C
	var ok bool
	switch p := any(&c).(type) {
	case *[1]byte:
		ok = r.Read(offset, p[:])
	case *[2]byte:
		ok = r.Read(offset, p[:])
	case *[4]byte:
		ok = r.Read(offset, p[:])
	case *[8]byte:
		ok = r.Read(offset, p[:])
	case *[16]byte:
		ok = r.Read(offset, p[:])
	}
	if !ok {
		var zero C
		return zero, false
	}
	return c, true
}

// MustReadChunk is ReadChunk for call sites that already know the read
// succeeds. It panics if it does not.
func MustReadChunk[C Chunk](r Reader, offset int) C {
	c, ok := ReadChunk[C](r, offset)
	if !ok {
		panic(fmt.Sprintf("scan: %d-byte read at offset %d is not available", len(c), offset))
	}
	return c
}
