// Package lex implements the literal lexer, number lexer, and percent/UTF-8
// decoder that the composite parser drives. It has no knowledge of the
// composite grammar itself -- that lives in the parent jsonurl package.
package lex

import (
	"github.com/jsonurl/jsonurl-go/jsonurl/internal/charclass"
	"github.com/jsonurl/jsonurl-go/jsonurl/internal/perr"
)

// Decoder percent-decodes and UTF-8-reassembles literal text. A Decoder's
// scratch buffer is reused across calls so repeated decodes inside one
// parse do not allocate per literal.
type Decoder struct {
	buf []byte
}

// Decode decodes src[start:stop]: '+' becomes a space, '%HH' is a
// percent-escape, a bare ''' ends the string when quoted is true, and every
// other byte is the next raw byte of a UTF-8 sequence. Decoded bytes are
// validated as well-formed UTF-8 (RFC 3629: lead bytes in {0xxxxxxx,
// 110xxxxx, 1110xxxx, 11110xxx}, strict 10xxxxxx continuations, no 5/6-byte
// forms) as they are produced, one byte at a time.
func (d *Decoder) Decode(src []byte, start, stop int, quoted bool) (string, error) {
	d.buf = d.buf[:0]

	contRemaining := 0
	leadAt := 0

	i := start
	for i < stop {
		at := i

		var b byte

		switch c := src[i]; {
		case c == '\'' && quoted:
			if contRemaining > 0 {
				return "", perr.At(perr.ErrBadUTF8, leadAt)
			}

			return string(d.buf), nil

		case c == '+':
			b = ' '
			i++

		case c == '%':
			if stop-i < 3 {
				return "", perr.At(perr.ErrBadPercentEncoding, at)
			}

			hi, ok1 := charclass.HexValue(src[i+1])
			lo, ok2 := charclass.HexValue(src[i+2])

			if !ok1 || !ok2 {
				return "", perr.At(perr.ErrBadPercentEncoding, at)
			}

			b = hi<<4 | lo
			i += 3

		default:
			b = c
			i++
		}

		switch {
		case contRemaining > 0:
			if b&0xC0 != 0x80 {
				return "", perr.At(perr.ErrBadUTF8, leadAt)
			}

			d.buf = append(d.buf, b)
			contRemaining--

		case b < 0x80:
			d.buf = append(d.buf, b)

		case b&0xE0 == 0xC0:
			leadAt = at
			contRemaining = 1
			d.buf = append(d.buf, b)

		case b&0xF0 == 0xE0:
			leadAt = at
			contRemaining = 2
			d.buf = append(d.buf, b)

		case b&0xF8 == 0xF0:
			leadAt = at
			contRemaining = 3
			d.buf = append(d.buf, b)

		default:
			return "", perr.At(perr.ErrBadUTF8, at)
		}
	}

	if contRemaining > 0 {
		return "", perr.At(perr.ErrBadUTF8, leadAt)
	}

	return string(d.buf), nil
}
