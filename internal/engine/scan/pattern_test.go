package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadChunk(t *testing.T) {
	src := newChunkedSource("0123456789abcdef", 8)

	c4, ok := ReadChunk[[4]byte](src, 2)
	require.True(t, ok)
	assert.Equal(t, [4]byte{'2', '3', '4', '5'}, c4)

	_, ok = ReadChunk[[8]byte](src, 2)
	assert.False(t, ok, "window crosses a segment")

	c8, ok := ReadChunk[[8]byte](src, 8)
	require.True(t, ok)
	assert.Equal(t, "89abcdef", string(c8[:]))

	_, ok = ReadChunk[[16]byte](src, 0)
	assert.False(t, ok)
	_, ok = ReadChunk[[1]byte](src, 16)
	assert.False(t, ok)

	c1 := MustReadChunk[[1]byte](src, 15)
	assert.Equal(t, byte('f'), c1[0])
	assert.Panics(t, func() { MustReadChunk[[2]byte](src, 15) })
}

func TestPatternMatch(t *testing.T) {
	field := NewPattern(Run(Bytes(",").Not()), One(Bytes(",")))
	ident := NewPattern(One(namedClasses["alpha"]), Run(namedClasses["word"]))
	number := NewPattern(Run1(namedClasses["digit"]))
	arrow := NewPattern(Lit("=>"))
	comment := NewPattern(Lit("//"), Run(Bytes("\n").Not()))

	tests := []struct {
		name    string
		pattern Pattern
		text    string
		pos     int
		end     int
		ok      bool
	}{
		{"field", field, "abc,def", 0, 4, true},
		{"empty field", field, ",x", 0, 1, true},
		{"field without comma", field, "abc", 0, 0, false},
		{"ident", ident, "foo_1 bar", 0, 5, true},
		{"ident needs letter", ident, "1foo", 0, 0, false},
		{"number", number, "12345x", 0, 5, true},
		{"number needs digit", number, "x", 0, 0, false},
		{"number at end", number, "ab7", 2, 3, true},
		{"literal", arrow, "a => b", 2, 4, true},
		{"literal mismatch", arrow, "a =< b", 2, 0, false},
		{"literal past end", arrow, "=", 0, 0, false},
		{"comment", comment, "x // note\ny", 2, 9, true},
		{"out of range", number, "123", 5, 0, false},
	}

	for _, tt := range tests {
		for _, size := range []int{1, 3, 16, 64} {
			src := newChunkedSource(tt.text, size)
			end, ok := tt.pattern.Match(src, tt.pos, DefaultWidths)
			assert.Equalf(t, tt.ok, ok, "%s (segments of %d)", tt.name, size)
			if tt.ok {
				assert.Equalf(t, tt.end, end, "%s (segments of %d)", tt.name, size)
			}
		}
	}
}

func TestRunFallsBackToNarrowerReads(t *testing.T) {
	text := strings.Repeat("x", 37) + ","
	src := newChunkedSource(text, 10)

	end, ok := NewPattern(Run(Bytes("x")), One(Bytes(","))).Match(src, 0, DefaultWidths)
	require.True(t, ok)
	assert.Equal(t, len(text), end)

	assert.Positive(t, src.reads[16], "wide reads are attempted first")
	assert.Positive(t, src.reads[8])
	assert.Positive(t, src.reads[2])
	assert.Positive(t, src.reads[1])
}

func TestRunWithSingleWidth(t *testing.T) {
	src := newChunkedSource("aaaab", 64)

	end, ok := NewPattern(Run(Bytes("a"))).Match(src, 0, []int{1})
	require.True(t, ok)
	assert.Equal(t, 4, end)
	assert.Zero(t, src.reads[16])
}

func TestMatchSkipsOutOfRangeWidths(t *testing.T) {
	run := NewPattern(Run(Bytes("x")))
	arrow := NewPattern(Lit("=>"))

	for _, widths := range [][]int{{32, 1}, {0, 1}, {-4, 1}, {64, 0, 16, 1}} {
		src := newChunkedSource("xxxxy", 64)
		end, ok := run.Match(src, 0, widths)
		require.Truef(t, ok, "widths %v", widths)
		assert.Equalf(t, 4, end, "widths %v", widths)
		assert.Zerof(t, src.reads[0], "widths %v: zero-width reads are never issued", widths)
		assert.Zerof(t, src.reads[32], "widths %v", widths)

		end, ok = arrow.Match(newChunkedSource("=>", 64), 0, widths)
		require.Truef(t, ok, "widths %v", widths)
		assert.Equalf(t, 2, end, "widths %v", widths)
	}

	_, ok := run.Match(newChunkedSource("xxxx", 64), 0, []int{0})
	assert.True(t, ok, "a run with no usable width matches nothing and stops")
}
