package rope

import (
	"errors"
	"io"
)

// readBufferSize is the read size used by FromReader.
const readBufferSize = 64 * 1024

// FromReader reads r to EOF and builds a rope from the bytes read.
// Input is cut into chunks as it arrives, so chunk boundaries may fall
// inside a UTF-8 sequence when a read ends mid-character.
func FromReader(r io.Reader) (Rope, error) {
	var chunks []Chunk
	buf := make([]byte, readBufferSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunks = append(chunks, splitIntoChunks(string(buf[:n]))...)
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return FromChunks(chunks), nil
		}
		if err != nil {
			return Rope{}, err
		}
	}
}

// FromChunks creates a rope directly from chunks, keeping their layout.
// Chunk boundaries may fall inside a UTF-8 sequence.
func FromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}
	return buildFromChunks(chunks)
}
