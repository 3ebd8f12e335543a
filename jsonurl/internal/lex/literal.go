package lex

import (
	"bytes"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/charclass"
	"github.com/jsonurl/jsonurl-go/jsonurl/internal/perr"
)

// ParseLiteralLength advances through a literal without decoding it and
// returns the number of source bytes it occupies.
//
// wfuActive marks that '&' and '=' terminate an unquoted literal without
// being consumed (WFU_COMPOSITE at depth 1); outside that mode they are
// ordinary, always-illegal-unescaped bytes like any other STRUCTCHAR
// neighbor.
func ParseLiteralLength(text []byte, start, stop int, wfuActive bool) (int, error) {
	if start == stop {
		return 0, nil
	}

	if text[start] == '\'' {
		i := start + 1
		for i < stop {
			c := text[i]
			if c == '\'' {
				return i + 1 - start, nil
			}

			if !charclass.Is(c, charclass.QStrChar) {
				return 0, perr.At(perr.ErrBadQuotedString, i)
			}

			i++
		}

		return 0, perr.At(perr.ErrQuoteStillOpen, stop)
	}

	i := start
	for i < stop {
		c := text[i]
		if wfuActive && (c == '&' || c == '=') {
			break
		}

		if charclass.Is(c, charclass.Struct) {
			break
		}

		if !charclass.Is(c, charclass.LitChar) {
			return 0, perr.At(perr.ErrBadChar, i)
		}

		i++
	}

	return i - start, nil
}

// Kind tags the variant a literal decoded to.
type Kind int

const (
	KindString Kind = iota
	KindTrue
	KindFalse
	KindNull
	KindNumber
)

// Literal is the decoded result of [ToLiteral].
type Literal struct {
	Str  string
	Num  NumberText
	Kind Kind
}

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)

// ToLiteral decodes text[start:stop] -- a span already measured by
// [ParseLiteralLength] -- into a string, boolean keyword, null keyword, or
// NumberText, per that precedence order.
func ToLiteral(dec *Decoder, text []byte, start, stop int, impliedStringLiterals, emptyAllowed bool) (Literal, error) {
	if start == stop {
		if emptyAllowed {
			return Literal{Kind: KindString, Str: ""}, nil
		}

		return Literal{}, perr.At(perr.ErrExpectLiteral, start)
	}

	if impliedStringLiterals {
		s, err := dec.Decode(text, start, stop, false)
		if err != nil {
			return Literal{}, err
		}

		return Literal{Kind: KindString, Str: s}, nil
	}

	if text[start] == '\'' {
		s, err := dec.Decode(text, start+1, stop-1, true)
		if err != nil {
			return Literal{}, err
		}

		return Literal{Kind: KindString, Str: s}, nil
	}

	switch {
	case matchKeyword(text, start, stop, trueBytes):
		return Literal{Kind: KindTrue}, nil
	case matchKeyword(text, start, stop, falseBytes):
		return Literal{Kind: KindFalse}, nil
	case matchKeyword(text, start, stop, nullBytes):
		return Literal{Kind: KindNull}, nil
	}

	var nt NumberText
	if nt.Parse(text, start, stop) {
		return Literal{Kind: KindNumber, Num: nt}, nil
	}

	s, err := dec.Decode(text, start, stop, false)
	if err != nil {
		return Literal{}, err
	}

	return Literal{Kind: KindString, Str: s}, nil
}

func matchKeyword(text []byte, start, stop int, kw []byte) bool {
	return stop-start == len(kw) && bytes.Equal(text[start:stop], kw)
}
