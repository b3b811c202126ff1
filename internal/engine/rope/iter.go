package rope

// ChunkIterator walks the chunks of a View in order, clipped to the view.
//
//	it := v.Chunks()
//	for it.Next() {
//		process(it.Offset(), it.Text())
//	}
type ChunkIterator struct {
	view  View
	pos   ByteOffset
	text  string
	start ByteOffset
}

// Chunks returns an iterator over all chunks of the rope.
func (r Rope) Chunks() *ChunkIterator {
	return r.View().Chunks()
}

// Chunks returns an iterator over the view's chunks.
func (v View) Chunks() *ChunkIterator {
	return &ChunkIterator{view: v}
}

// Next advances to the next chunk and reports whether there is one.
func (it *ChunkIterator) Next() bool {
	text, start, ok := it.view.ChunkAt(it.pos)
	if !ok {
		it.text = ""
		return false
	}
	it.text = text
	it.start = start
	it.pos = start + ByteOffset(len(text))
	return true
}

// Text returns the current chunk's bytes within the view.
func (it *ChunkIterator) Text() string {
	return it.text
}

// Offset returns the view-relative offset of the current chunk.
func (it *ChunkIterator) Offset() ByteOffset {
	return it.start
}
