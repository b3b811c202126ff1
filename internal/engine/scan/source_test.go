package scan

import (
	"unicode/utf8"
)

// chunkedSource serves reads from fixed-size segments of text, failing any
// read that would cross a segment. It counts reads by width.
type chunkedSource struct {
	text  string
	size  int
	reads map[int]int
}

func newChunkedSource(text string, size int) *chunkedSource {
	return &chunkedSource{text: text, size: size, reads: make(map[int]int)}
}

func (s *chunkedSource) Len() int { return len(s.text) }

func (s *chunkedSource) Read(offset int, dst []byte) bool {
	s.reads[len(dst)]++
	if offset < 0 || offset >= len(s.text) {
		return false
	}
	end := min((offset/s.size+1)*s.size, len(s.text))
	if end-offset < len(dst) {
		return false
	}
	copy(dst, s.text[offset:])
	return true
}

func (s *chunkedSource) Slice(start, end int) (string, bool) {
	if start < 0 || start > end || end > len(s.text) {
		return "", false
	}
	return s.text[start:end], true
}

func (s *chunkedSource) FindBoundary(index int) int {
	if index <= 0 {
		return 0
	}
	for index < len(s.text) && !utf8.RuneStart(s.text[index]) {
		index++
	}
	return min(index, len(s.text))
}

func (s *chunkedSource) IsBoundary(index int) bool {
	if index < 0 || index > len(s.text) {
		return false
	}
	return index == 0 || index == len(s.text) || utf8.RuneStart(s.text[index])
}
