// Package rope provides an immutable rope data structure for text storage.
//
// A rope is a B+ tree where leaf nodes hold text chunks and internal nodes
// store aggregated metrics (bytes, characters, newlines). Operations return
// new ropes; the original is never modified, so a Rope can be read from any
// number of goroutines while other code derives edited copies from it.
//
// Besides editing, the package exposes the queries a scanner needs to read
// a rope in place:
//   - ChunkAt locates the internal chunk holding a byte offset
//   - ByteToChar and CharToByte convert between byte and character indexes
//   - View is a non-owning window over a byte range with the same queries
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	v, _ := r.ViewRange(7, 12)     // "world"
//	chunk, start, _ := v.ChunkAt(2)
//
// A character starts at every byte that is not a UTF-8 continuation byte.
// Character metrics are computed on the logical byte stream, so a multi-byte
// sequence split across two chunks still counts once.
package rope
