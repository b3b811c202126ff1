// Package scan is a small byte-class scanning engine.
//
// A Lexer reads its input through the Source contract: a total length,
// fixed-width chunk reads at an offset, sub-range slices, and character
// boundary queries. It never assumes the input is one contiguous buffer.
// Runs of bytes are matched with the widest configured read width first;
// when a read is absent (for example because the window would cross an
// internal chunk of a rope) the engine retries at the next narrower width,
// down to single-byte reads.
//
// Patterns are sequences of steps over byte classes:
//
//	field := scan.NewPattern(
//		scan.Run(scan.Bytes(",").Not()),
//		scan.One(scan.Bytes(",")),
//	)
//	lx := scan.New(src, []scan.Rule{{Name: "field", Kind: 1, Pattern: field}})
//	for tok := range lx.All() {
//		...
//	}
//
// The longest match wins; ties go to the rule listed first. Input that no
// rule matches is reported one character at a time as Error tokens.
package scan
