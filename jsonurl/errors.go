package jsonurl

import "github.com/jsonurl/jsonurl-go/jsonurl/internal/perr"

// Sentinel errors, one per failure class in the parser's error taxonomy. Compare
// against these with errors.Is; a failed [Parse] always returns a
// *[ParseError] wrapping one of them.
var (
	ErrBadChar            = perr.ErrBadChar
	ErrBadQuotedString    = perr.ErrBadQuotedString
	ErrBadPercentEncoding = perr.ErrBadPercentEncoding
	ErrBadUTF8            = perr.ErrBadUTF8
	ErrNoText             = perr.ErrNoText
	ErrExpectLiteral      = perr.ErrExpectLiteral
	ErrExpectType         = perr.ErrExpectType
	ErrExpectStructChar   = perr.ErrExpectStructChar
	ErrExpectObjectKey    = perr.ErrExpectObjectKey
	ErrExpectObjectValue  = perr.ErrExpectObjectValue
	ErrStillOpen          = perr.ErrStillOpen
	ErrQuoteStillOpen     = perr.ErrQuoteStillOpen
	ErrExtraChars         = perr.ErrExtraChars
	ErrLimitMaxChars      = perr.ErrLimitMaxChars
	ErrLimitMaxValues     = perr.ErrLimitMaxValues
	ErrLimitMaxDepth      = perr.ErrLimitMaxDepth
	ErrLimitInteger       = perr.ErrLimitInteger
)

// ParseError carries the offset (and, when the [CharIterator] reports it,
// line/column and source name) of the byte that caused a parse failure.
// Unwrap returns one of the sentinels above.
type ParseError = perr.Error

// wrapErr attaches the iterator's source name and current line/column to a
// *perr.Error produced during parsing. The offset itself is set by whichever
// lex/parser call built the error in the first place.
func wrapErr(err error, it CharIterator) error {
	if err == nil {
		return nil
	}

	pe, ok := err.(*perr.Error)
	if !ok {
		return err
	}

	return pe.WithPos(it.Name(), it.Line(), it.Column())
}
