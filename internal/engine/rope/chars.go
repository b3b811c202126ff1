package rope

// CharCount returns the number of characters in the rope.
func (r Rope) CharCount() CharOffset {
	return r.View().CharCount()
}

// ByteToChar returns the index of the character covering offset.
// See View.ByteToChar.
func (r Rope) ByteToChar(offset ByteOffset) CharOffset {
	return r.View().ByteToChar(offset)
}

// TryByteToChar is ByteToChar that reports false for offset > Len().
func (r Rope) TryByteToChar(offset ByteOffset) (CharOffset, bool) {
	return r.View().TryByteToChar(offset)
}

// CharToByte returns the byte offset where character c starts.
// See View.CharToByte.
func (r Rope) CharToByte(c CharOffset) ByteOffset {
	return r.View().CharToByte(c)
}
