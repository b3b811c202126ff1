package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRules is returned when a configuration defines no rules.
	ErrNoRules = errors.New("no rules defined")

	// ErrInvalidWidth is returned for read widths outside 1, 2, 4, 8, 16,
	// lists that are not strictly decreasing, or lists not ending in 1.
	ErrInvalidWidth = errors.New("invalid read width")

	// ErrUnknownClass is returned for class expressions that are neither a
	// known name nor a bracket expression.
	ErrUnknownClass = errors.New("unknown class")

	// ErrUnknownStep is returned for step operations other than one, run,
	// run1 and lit.
	ErrUnknownStep = errors.New("unknown step")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
