package scan

// DefaultWidths are the read widths tried by a Lexer, widest first.
var DefaultWidths = []int{16, 8, 4, 2, 1}

// maxWidth is the widest read a Lexer performs.
const maxWidth = 16

type stepKind uint8

const (
	stepOne stepKind = iota
	stepRun
	stepRun1
	stepLit
)

// Step is one element of a Pattern.
type Step struct {
	kind  stepKind
	class Class
	lit   string
}

// One matches exactly one byte in c.
func One(c Class) Step {
	return Step{kind: stepOne, class: c}
}

// Run matches zero or more bytes in c, greedily.
func Run(c Class) Step {
	return Step{kind: stepRun, class: c}
}

// Run1 matches one or more bytes in c, greedily.
func Run1(c Class) Step {
	return Step{kind: stepRun1, class: c}
}

// Lit matches the bytes of s exactly.
func Lit(s string) Step {
	return Step{kind: stepLit, lit: s}
}

// Pattern is a sequence of steps matched left to right without
// backtracking.
type Pattern struct {
	steps []Step
}

// NewPattern creates a pattern from steps.
func NewPattern(steps ...Step) Pattern {
	return Pattern{steps: steps}
}

// Match matches p at pos and returns the end offset of the match.
// widths lists the read widths to try, widest first, and should end in 1.
// Widths outside 1..16 are skipped.
func (p Pattern) Match(r Reader, pos int, widths []int) (int, bool) {
	m := matcher{r: r, widths: widths}
	for _, s := range p.steps {
		var ok bool
		switch s.kind {
		case stepOne:
			pos, ok = m.one(pos, &s.class)
		case stepRun:
			pos, ok = m.run(pos, &s.class), true
		case stepRun1:
			if pos, ok = m.one(pos, &s.class); ok {
				pos = m.run(pos, &s.class)
			}
		case stepLit:
			pos, ok = m.lit(pos, s.lit)
		}
		if !ok {
			return 0, false
		}
	}
	return pos, true
}

func validWidth(w int) bool {
	return w > 0 && w <= maxWidth
}

type matcher struct {
	r      Reader
	widths []int
	buf    [maxWidth]byte
}

func (m *matcher) one(pos int, c *Class) (int, bool) {
	b, ok := ReadChunk[[1]byte](m.r, pos)
	if !ok || !c.Has(b[0]) {
		return pos, false
	}
	return pos + 1, true
}

// run advances pos over bytes in c.
func (m *matcher) run(pos int, c *Class) int {
	for {
		n, full := m.span(pos, c)
		pos += n
		if !full {
			return pos
		}
	}
}

// span reads the widest window available at pos and reports how many of
// its leading bytes are in c, and whether all of them were.
func (m *matcher) span(pos int, c *Class) (int, bool) {
	for _, w := range m.widths {
		if !validWidth(w) {
			continue
		}
		window := m.buf[:w]
		if !m.r.Read(pos, window) {
			continue
		}
		for i, b := range window {
			if !c.Has(b) {
				return i, false
			}
		}
		return w, true
	}
	return 0, false
}

func (m *matcher) lit(pos int, s string) (int, bool) {
	for len(s) > 0 {
		read := false
		for _, w := range m.widths {
			if !validWidth(w) || w > len(s) {
				continue
			}
			window := m.buf[:w]
			if !m.r.Read(pos, window) {
				continue
			}
			if string(window) != s[:w] {
				return pos, false
			}
			pos += w
			s = s[w:]
			read = true
			break
		}
		if !read {
			return pos, false
		}
	}
	return pos, true
}
