package scan

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	kindIdent Kind = iota + 1
	kindKeyword
	kindNumber
	kindSpace
)

func testRules() []Rule {
	return []Rule{
		{Name: "ident", Kind: kindIdent, Pattern: NewPattern(One(namedClasses["alpha"]), Run(namedClasses["word"]))},
		{Name: "keyword", Kind: kindKeyword, Pattern: NewPattern(Lit("let"))},
		{Name: "number", Kind: kindNumber, Pattern: NewPattern(Run1(namedClasses["digit"]))},
		{Name: "space", Kind: kindSpace, Pattern: NewPattern(Run1(namedClasses["space"]))},
	}
}

func tokens[S any](lx *Lexer[S]) []Token {
	var out []Token
	for tok := range lx.All() {
		out = append(out, tok)
	}
	return out
}

func TestLexerLongestMatchAndTies(t *testing.T) {
	src := newChunkedSource("let letter 42", 4)
	lx := New[string](src, testRules())

	got := tokens(lx)
	want := []Token{
		{Kind: kindIdent, Start: 0, End: 3},
		{Kind: kindSpace, Start: 3, End: 4},
		{Kind: kindIdent, Start: 4, End: 10},
		{Kind: kindSpace, Start: 10, End: 11},
		{Kind: kindNumber, Start: 11, End: 13},
	}
	assert.Equal(t, want, got, "ties go to the first rule, longer matches win")

	text, ok := lx.Text(got[2])
	require.True(t, ok)
	assert.Equal(t, "letter", text)
}

func TestLexerErrorTokensCoverWholeCharacters(t *testing.T) {
	src := newChunkedSource("ab€12🎉", 2)
	lx := New[string](src, testRules())

	got := tokens(lx)
	want := []Token{
		{Kind: kindIdent, Start: 0, End: 2},
		{Kind: Error, Start: 2, End: 5},
		{Kind: kindNumber, Start: 5, End: 7},
		{Kind: Error, Start: 7, End: 11},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "error", lx.RuleName(Error))
	assert.Equal(t, "number", lx.RuleName(kindNumber))
	assert.Empty(t, lx.RuleName(99))
}

func TestLexerExtendsMatchesToBoundary(t *testing.T) {
	// The rule stops after the first byte of "é".
	rules := []Rule{{Name: "lead", Kind: 1, Pattern: NewPattern(One(Bytes("a")), One(Range(0xc0, 0xff)))}}
	src := newChunkedSource("aé", 8)

	got := tokens(New[string](src, rules))
	require.Len(t, got, 1)
	assert.Equal(t, Token{Kind: 1, Start: 0, End: 3}, got[0])
}

func TestLexerResetAndPos(t *testing.T) {
	src := newChunkedSource("ab €cd", 16)
	lx := New[string](src, testRules())

	lx.Reset(4)
	assert.Equal(t, 6, lx.Pos(), "reset rounds up to a boundary")

	tok, ok := lx.Next()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: kindIdent, Start: 6, End: 8}, tok)

	_, ok = lx.Next()
	assert.False(t, ok)

	lx.Reset(-5)
	assert.Zero(t, lx.Pos())
}

func TestLexerStopsEarly(t *testing.T) {
	src := newChunkedSource(strings.Repeat("a1 ", 100), 16)
	lx := New[string](src, testRules())

	n := 0
	for range lx.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	tok, ok := lx.Next()
	require.True(t, ok, "lexer resumes after an early break")
	assert.Equal(t, Token{Kind: kindSpace, Start: 5, End: 6}, tok)
}

func TestLexerLogsUnmatchedInput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := newChunkedSource("a?", 16)
	lx := New[string](src, testRules(), WithLogger(logger), WithWidths(4, 1))
	tokens(lx)

	assert.Contains(t, buf.String(), "no rule matched")
	assert.Contains(t, buf.String(), "offset=1")
	assert.Zero(t, src.reads[16], "configured widths replace the defaults")
	assert.Positive(t, src.reads[4])
}

func TestLexerEmptySource(t *testing.T) {
	lx := New[string](newChunkedSource("", 16), testRules())
	_, ok := lx.Next()
	assert.False(t, ok)
}

func TestLexerRejectsInvalidWidths(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
	}{
		{"too wide", []int{32, 1}},
		{"zero", []int{0, 1}},
		{"negative", []int{-1}},
		{"not ending in one", []int{8, 4}},
		{"increasing", []int{1, 16}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			src := newChunkedSource(strings.Repeat("x", 40)+" 12", 64)
			lx := New[string](src, testRules(), WithWidths(tt.widths...), WithLogger(logger))

			want := []Token{
				{Kind: kindIdent, Start: 0, End: 40},
				{Kind: kindSpace, Start: 40, End: 41},
				{Kind: kindNumber, Start: 41, End: 43},
			}
			assert.Equal(t, want, tokens(lx))
			assert.Contains(t, buf.String(), "using default read widths")
			assert.Positive(t, src.reads[16], "default widths are used")
			assert.Zero(t, src.reads[0])
		})
	}
}

func TestLexerConfigOptionsAreChecked(t *testing.T) {
	cfg := Config{Widths: []int{0, 1}}
	src := newChunkedSource("xxxx", 64)

	got := tokens(New[string](src, testRules(), cfg.Options()...))
	assert.Equal(t, []Token{{Kind: kindIdent, Start: 0, End: 4}}, got)
	assert.Zero(t, src.reads[0])
}
