package rope

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset uint64

// CharOffset is a zero-based character index.
type CharOffset uint64

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid so subtree metrics are the sum of their children.
type TextSummary struct {
	// Bytes is the byte count.
	Bytes ByteOffset

	// Chars is the number of bytes that start a character.
	Chars uint64

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

// FlagASCII marks spans where every byte is below 0x80. In such a span
// byte and character offsets coincide.
const FlagASCII TextFlags = 1 << 0

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Chars: s.Chars + other.Chars,
		Flags: s.Flags & other.Flags,
	}
}

// IsASCII reports whether the span holds only ASCII bytes.
func (s TextSummary) IsASCII() bool {
	return s.Flags&FlagASCII != 0
}

// ComputeSummary calculates metrics for a string.
// It works byte by byte so that chunks holding part of a multi-byte
// sequence still produce summaries that add up correctly.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: ByteOffset(len(s)), Flags: FlagASCII}
	for i := 0; i < len(s); i++ {
		if isUTF8Start(s[i]) {
			sum.Chars++
		}
		if s[i] >= 0x80 {
			sum.Flags = 0
		}
	}
	return sum
}

// countCharStarts returns the number of character start bytes in s.
func countCharStarts(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		if isUTF8Start(s[i]) {
			n++
		}
	}
	return n
}
