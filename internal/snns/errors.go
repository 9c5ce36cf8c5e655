package snns

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("snns: parse error")
	// ErrFileNotFound indicates the input file is missing or unreadable.
	ErrFileNotFound = errors.New("snns: input file not found")
)

// ParseError reports the first element of the pattern file that did not
// match the expected grammar.
type ParseError struct {
	Line     int
	Column   int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("snns: line %d, column %d: expected %s, found %s",
		e.Line, e.Column, e.Expected, e.Found)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
