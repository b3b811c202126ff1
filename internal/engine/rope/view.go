package rope

import "strings"

// View is a read-only window over the byte range [start, end) of a Rope.
// It shares the rope's tree and copies nothing, so it is cheap to pass by
// value. Because ropes are persistent, a View stays valid for as long as it
// is reachable even if new ropes are derived from the original.
//
// All offsets taken and returned by View methods are relative to the start
// of the view.
type View struct {
	root  *Node
	start ByteOffset
	end   ByteOffset

	// base is the number of character starts before start.
	base uint64
	// lead is 1 when the view opens on a continuation byte: the partial
	// sequence counts as one character.
	lead uint64
}

// View returns a view over the whole rope.
func (r Rope) View() View {
	return newView(r.root, 0, r.Len())
}

// ViewRange returns a view over [start, end).
// The range does not have to fall on character boundaries.
// Returns false if start > end or end > Len().
func (r Rope) ViewRange(start, end ByteOffset) (View, bool) {
	if start > end || end > r.Len() {
		return View{}, false
	}
	return newView(r.root, start, end), true
}

func newView(root *Node, start, end ByteOffset) View {
	v := View{root: root, start: start, end: end}
	if root == nil || start == end {
		return v
	}
	v.base = root.charsBefore(start)
	if chunk, cs, ok := root.locate(start); ok && !isUTF8Start(chunk.data[start-cs]) {
		v.lead = 1
	}
	return v
}

// Len returns the byte length of the view.
func (v View) Len() ByteOffset {
	return v.end - v.start
}

// IsEmpty returns true if the view covers no bytes.
func (v View) IsEmpty() bool {
	return v.start == v.end
}

// Bounds returns the view's range in the underlying rope.
func (v View) Bounds() (start, end ByteOffset) {
	return v.start, v.end
}

// String copies the viewed text into a string.
func (v View) String() string {
	if v.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(v.Len()))
	for it := v.Chunks(); it.Next(); {
		sb.WriteString(it.Text())
	}
	return sb.String()
}

// Rope returns the viewed text as a new rope.
func (v View) Rope() Rope {
	if v.root == nil || v.IsEmpty() {
		return New()
	}
	r := Rope{root: v.root}
	if v.end < r.Len() {
		r, _ = r.Split(v.end)
	}
	_, r = r.Split(v.start)
	return r
}

// Sub returns a narrower view over [start, end) of this view.
// Returns false if start > end or end > Len().
func (v View) Sub(start, end ByteOffset) (View, bool) {
	if start > end || end > v.Len() {
		return View{}, false
	}
	return newView(v.root, v.start+start, v.start+end), true
}

// ByteAt returns the byte at offset.
func (v View) ByteAt(offset ByteOffset) (byte, bool) {
	text, start, ok := v.ChunkAt(offset)
	if !ok {
		return 0, false
	}
	return text[offset-start], true
}

// ChunkAt returns the part of the internal chunk containing offset that
// lies inside the view, along with the offset where that part starts.
// Returns false if offset is at or past the end of the view.
func (v View) ChunkAt(offset ByteOffset) (string, ByteOffset, bool) {
	if offset >= v.Len() {
		return "", 0, false
	}
	chunk, cs, ok := v.root.locate(v.start + offset)
	if !ok {
		return "", 0, false
	}

	lo := max(cs, v.start)
	hi := min(cs+ByteOffset(chunk.Len()), v.end)
	return chunk.data[lo-cs : hi-cs], lo - v.start, true
}

// CharCount returns the number of characters in the view.
func (v View) CharCount() CharOffset {
	return CharOffset(v.startsBefore(v.Len()) + v.lead)
}

// ByteToChar returns the index of the character covering offset.
// An offset inside a multi-byte sequence maps to the character that
// sequence encodes. Offsets at or past the end map to CharCount().
func (v View) ByteToChar(offset ByteOffset) CharOffset {
	if offset >= v.Len() {
		return v.CharCount()
	}
	return CharOffset(v.startsBefore(offset+1) + v.lead - 1)
}

// TryByteToChar is ByteToChar that reports false for offset > Len().
func (v View) TryByteToChar(offset ByteOffset) (CharOffset, bool) {
	if offset > v.Len() {
		return 0, false
	}
	return v.ByteToChar(offset), true
}

// CharToByte returns the byte offset where character c starts.
// Indexes at or past CharCount() map to Len().
func (v View) CharToByte(c CharOffset) ByteOffset {
	if c == 0 {
		return 0
	}
	if c >= v.CharCount() {
		return v.Len()
	}
	abs, _ := v.root.charStart(v.base + uint64(c) - v.lead)
	return abs - v.start
}

// startsBefore counts character start bytes in [0, offset) of the view.
func (v View) startsBefore(offset ByteOffset) uint64 {
	if v.root == nil || offset == 0 {
		return 0
	}
	return v.root.charsBefore(v.start+offset) - v.base
}

// Equal reports whether two views hold the same bytes.
func (v View) Equal(other View) bool {
	return v.Len() == other.Len() && v.Compare(other) == 0
}

// Compare orders two views by their bytes, lexicographically. The result
// is -1, 0 or +1 as with strings.Compare. Chunk layout is ignored.
func (v View) Compare(other View) int {
	a, b := v.Chunks(), other.Chunks()
	var ta, tb string
	for {
		if ta == "" && a.Next() {
			ta = a.Text()
		}
		if tb == "" && b.Next() {
			tb = b.Text()
		}
		switch {
		case ta == "" && tb == "":
			return 0
		case ta == "":
			return -1
		case tb == "":
			return 1
		}

		n := min(len(ta), len(tb))
		if c := strings.Compare(ta[:n], tb[:n]); c != 0 {
			return c
		}
		ta, tb = ta[n:], tb[n:]
	}
}
