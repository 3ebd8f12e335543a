// Package perr defines the sentinel error values shared by the lexer,
// parser, and writer, plus the offset-carrying wrapper type returned to
// callers. It exists so that jsonurl/internal/lex and the root jsonurl
// package can agree on error identity without either importing the other.
package perr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per parse/write failure class. Compare against
// these with errors.Is.
var (
	ErrBadChar            = errors.New("jsonurl: invalid character")
	ErrBadQuotedString    = errors.New("jsonurl: invalid quoted string")
	ErrBadPercentEncoding = errors.New("jsonurl: invalid percent-encoding")
	ErrBadUTF8            = errors.New("jsonurl: invalid utf-8 sequence")
	ErrNoText             = errors.New("jsonurl: no text")
	ErrExpectLiteral      = errors.New("jsonurl: expected a literal")
	ErrExpectType         = errors.New("jsonurl: value is not one of the allowed types")
	ErrExpectStructChar   = errors.New("jsonurl: expected a structural character")
	ErrExpectObjectKey    = errors.New("jsonurl: expected an object key")
	ErrExpectObjectValue  = errors.New("jsonurl: expected an object value")
	ErrStillOpen          = errors.New("jsonurl: unexpected end of text inside a composite")
	ErrQuoteStillOpen     = errors.New("jsonurl: unexpected end of text inside a quoted string")
	ErrExtraChars         = errors.New("jsonurl: unexpected text after the top-level value")
	ErrLimitMaxChars      = errors.New("jsonurl: maximum parse character limit exceeded")
	ErrLimitMaxValues     = errors.New("jsonurl: maximum parse value limit exceeded")
	ErrLimitMaxDepth      = errors.New("jsonurl: maximum parse depth limit exceeded")
	ErrLimitInteger       = errors.New("jsonurl: integer literal exceeds the configured boundary")
)

// Error carries the offset (and, when known, the line/column and source
// name) of the byte that caused a parse failure.
type Error struct {
	Err    error
	Name   string
	Offset int
	Line   int
	Column int
}

// At builds an *Error wrapping sentinel at the given byte offset.
func At(sentinel error, offset int) *Error {
	return &Error{Err: sentinel, Offset: offset}
}

// WithPos returns a copy of e with line/column/name populated.
func (e *Error) WithPos(name string, line, column int) *Error {
	c := *e
	c.Name = name
	c.Line = line
	c.Column = column

	return &c
}

func (e *Error) Error() string {
	loc := fmt.Sprintf("offset %d", e.Offset)
	if e.Line > 0 {
		loc = fmt.Sprintf("%d:%d", e.Line, e.Column)
	}

	if e.Name != "" {
		return fmt.Sprintf("%s: %s: %s", e.Name, loc, e.Err)
	}

	return fmt.Sprintf("%s: %s", loc, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
