package scan

import (
	"iter"
	"log/slog"
	"slices"
)

// Kind identifies the rule that produced a token.
type Kind uint16

// Error is the kind of tokens covering input no rule matched.
const Error Kind = 0

// Rule pairs a pattern with the kind of token it produces.
type Rule struct {
	Name    string
	Kind    Kind
	Pattern Pattern
}

// Token is a matched byte range [Start, End).
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Len returns the token's length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Option configures a Lexer.
type Option func(*options)

type options struct {
	widths []int
	logger *slog.Logger
}

// WithWidths sets the read widths, widest first. Each width must be one of
// 1, 2, 4, 8 or 16 and the list must end in 1. New falls back to
// DefaultWidths, logging a warning, when the list is invalid.
func WithWidths(widths ...int) Option {
	return func(o *options) {
		o.widths = slices.Clone(widths)
	}
}

// WithLogger sets the logger for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Lexer produces tokens from a Source. It holds only its position; the
// source is never modified.
type Lexer[S any] struct {
	src    Source[S]
	rules  []Rule
	widths []int
	logger *slog.Logger
	pos    int
}

// New creates a lexer over src.
func New[S any](src Source[S], rules []Rule, opts ...Option) *Lexer[S] {
	o := options{
		widths: DefaultWidths,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateWidths(o.widths); err != nil {
		o.logger.Warn("using default read widths", "error", err)
		o.widths = DefaultWidths
	}

	return &Lexer[S]{
		src:    src,
		rules:  rules,
		widths: o.widths,
		logger: o.logger,
	}
}

// Pos returns the offset where the next token starts.
func (l *Lexer[S]) Pos() int {
	return l.pos
}

// Reset moves the lexer to offset, rounded up to a character boundary.
func (l *Lexer[S]) Reset(offset int) {
	l.pos = l.src.FindBoundary(max(offset, 0))
}

// Next returns the next token, or false at the end of input.
func (l *Lexer[S]) Next() (Token, bool) {
	start := l.pos
	if start >= l.src.Len() {
		return Token{}, false
	}

	best, kind := start, Error
	for _, r := range l.rules {
		end, ok := r.Pattern.Match(l.src, start, l.widths)
		if ok && end > best {
			best, kind = end, r.Kind
		}
	}

	if best == start {
		end := l.src.FindBoundary(start + 1)
		l.logger.Debug("no rule matched", "offset", start, "length", end-start)
		l.pos = end
		return Token{Kind: Error, Start: start, End: end}, true
	}

	if !l.src.IsBoundary(best) {
		best = l.src.FindBoundary(best)
	}
	l.pos = best
	return Token{Kind: kind, Start: start, End: best}, true
}

// All returns an iterator over the remaining tokens.
func (l *Lexer[S]) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Text returns the source range covered by tok.
func (l *Lexer[S]) Text(tok Token) (S, bool) {
	return l.src.Slice(tok.Start, tok.End)
}

// RuleName returns the name of the first rule producing kind.
func (l *Lexer[S]) RuleName(kind Kind) string {
	if kind == Error {
		return "error"
	}
	for _, r := range l.rules {
		if r.Kind == kind {
			return r.Name
		}
	}
	return ""
}
