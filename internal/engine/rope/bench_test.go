package rope

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

var benchSizes = []int{1000, 100000, 1000000}

// generateText returns about size bytes of words, a quarter of them
// non-ASCII so that character queries leave the ASCII fast path.
func generateText(size int) string {
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "ünïcödé", "日本語", "🎉,"}

	var sb strings.Builder
	sb.Grow(size)
	for sb.Len() < size {
		sb.WriteString(words[rand.Intn(len(words))])
		sb.WriteByte(' ')
	}
	return sb.String()
}

// fragmented builds text the way an editor would: one small append at a time.
func fragmented(text string) Rope {
	r := New()
	for i := 0; i < len(text); i += 7 {
		r = r.Append(text[i:min(i+7, len(text))])
	}
	return r
}

func BenchmarkFromString(b *testing.B) {
	for _, size := range benchSizes {
		text := generateText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_ = FromString(text)
			}
		})
	}
}

func BenchmarkAppend(b *testing.B) {
	text := generateText(100000)
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		_ = fragmented(text)
	}
}

func BenchmarkChunkAt(b *testing.B) {
	for _, size := range benchSizes {
		text := generateText(size)
		r := FromString(text)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = r.ChunkAt(ByteOffset(rand.Intn(len(text))))
			}
		})
	}
}

func BenchmarkViewChunkAt(b *testing.B) {
	text := generateText(100000)
	v, _ := FromString(text).ViewRange(1000, ByteOffset(len(text)-1000))
	n := int(v.Len())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = v.ChunkAt(ByteOffset(rand.Intn(n)))
	}
}

func BenchmarkViewRange(b *testing.B) {
	text := generateText(100000)
	r := FromString(text)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := ByteOffset(rand.Intn(len(text) - 100))
		_, _ = r.ViewRange(start, start+100)
	}
}

func BenchmarkByteToChar(b *testing.B) {
	for _, size := range benchSizes {
		text := generateText(size)
		r := FromString(text)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c := r.ByteToChar(ByteOffset(rand.Intn(len(text))))
				_ = r.CharToByte(c)
			}
		})
	}
}

func BenchmarkByteToCharASCII(b *testing.B) {
	text := strings.Repeat("plain ascii text ", 10000)
	r := FromString(text)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := r.ByteToChar(ByteOffset(rand.Intn(len(text))))
		_ = r.CharToByte(c)
	}
}

func BenchmarkChunks(b *testing.B) {
	text := generateText(100000)
	for name, r := range map[string]Rope{"built": FromString(text), "appended": fragmented(text)} {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				it := r.Chunks()
				for it.Next() {
					_ = it.Text()
				}
			}
		})
	}
}
