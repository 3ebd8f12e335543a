package jsonurl

import (
	"strings"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/charclass"
	"github.com/jsonurl/jsonurl-go/jsonurl/internal/lex"
)

// EncodeString returns the literal text -- quotes included when used -- that
// encodes s so that parsing it back without [ImpliedStringLiterals]
// reproduces s exactly. EncodeString takes no options: when the result is
// quoted (including the empty literal "''"), a parse under
// ImpliedStringLiterals keeps the quote characters as part of the string.
//
// Five outcomes are possible: the empty literal "''", the string written
// as-is, the string merely wrapped in quotes, the string percent-encoded
// without quotes, and the string quoted with only the bytes that are unsafe
// even inside quotes percent-encoded. asValue controls whether "true",
// "false", "null", and number-shaped text must be quoted to keep their
// literal string type on the way back in; pass false when s is already
// known to end up in a position (e.g. an object key) where type ambiguity
// does not apply.
func EncodeString(s string, asValue bool) string {
	if s == "" {
		return "''"
	}

	forceQuote := asValue && looksTyped(s)

	if !forceQuote && isSafe(s, charclass.EncStrSafe) {
		return s
	}

	if isSafe(s, charclass.EncQStrSafe) {
		return "'" + s + "'"
	}

	return encodeWithPercent(s)
}

// looksTyped reports whether s, written unquoted, would parse back as
// something other than a string literal: true, false, null, or a number.
func looksTyped(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	}

	return lex.IsNumber([]byte(s), 0, len(s), false)
}

// isSafe reports whether every byte of s carries want; non-ASCII bytes
// never do, since they only ever occur as UTF-8 continuation data.
func isSafe(s string, want charclass.Bit) bool {
	for i := range len(s) {
		if s[i] >= 0x80 || !charclass.Is(s[i], want) {
			return false
		}
	}

	return true
}

// encodeWithPercent builds the percent-encoded form of s. Quoting is used
// when at least one byte is safe inside quotes but not outside -- that
// trades a pair of quote characters for avoiding percent-encoding those
// bytes. Otherwise the unquoted form is used, since adding quotes would buy
// nothing.
func encodeWithPercent(s string) string {
	quotedHelps := false

	for i := range len(s) {
		b := s[i]
		if b < 0x80 && !charclass.Is(b, charclass.EncStrSafe) && charclass.Is(b, charclass.EncQStrSafe) {
			quotedHelps = true

			break
		}
	}

	var buf strings.Builder

	if quotedHelps {
		buf.WriteByte('\'')

		for i := range len(s) {
			b := s[i]
			if b < 0x80 && charclass.Is(b, charclass.EncQStrSafe) {
				buf.WriteByte(b)
			} else {
				buf.WriteString(charclass.PercentEncodeQuoted(b))
			}
		}

		buf.WriteByte('\'')

		return buf.String()
	}

	for i := range len(s) {
		b := s[i]
		if b < 0x80 && charclass.Is(b, charclass.EncStrSafe) {
			buf.WriteByte(b)
		} else {
			buf.WriteString(charclass.PercentEncode(b))
		}
	}

	return buf.String()
}
