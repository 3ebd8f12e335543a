package jsonurl

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrInfiniteNumber is returned by [Appender.Write] when asked to write a
// [Number] of Kind NumberPositiveInfinity or NumberNegativeInfinity that
// carries no source Text: the grammar has no literal for either.
var ErrInfiniteNumber = errors.New("jsonurl: cannot write an infinite number")

// ErrNotObject is returned by [Appender.Write] when [WFUComposite] is set
// and v is not an object (or the empty composite): the implied top-level
// form has no representation for a bare array or scalar.
var ErrNotObject = errors.New("jsonurl: WFUComposite output requires an object value")

// ErrNullNotRepresentable is returned by [Appender.Write] when
// [ImpliedStringLiterals] is set, a null value must be written, and
// [CoerceNullToEmptyString] is not also set: every literal is read back as
// a string under that option, so there is no text that decodes to null.
var ErrNullNotRepresentable = errors.New("jsonurl: null is not representable under ImpliedStringLiterals")

// Appender writes [Value]s as JSON->URL text. Create one with
// [NewAppender]; the zero value has no output writer.
type Appender struct {
	w    io.Writer
	opts Options
	err  error
}

// NewAppender returns an *Appender writing to w with opts.
func NewAppender(w io.Writer, opts Options) *Appender {
	return &Appender{w: w, opts: opts}
}

// Write serializes v. Under [WFUComposite], v must be an object or the
// distinguished empty composite, and is written as "key=value&key=value"
// with no surrounding parens; otherwise v is written as an ordinary value,
// wrapping arrays and objects in parens.
func (a *Appender) Write(v Value) error {
	if a.opts.Has(WFUComposite) {
		return a.writeWFUTop(v)
	}

	a.writeValue(v)

	return a.err
}

// ToString renders v to a string using opts, for callers that don't need a
// streaming [io.Writer].
func ToString(v Value, opts Options) (string, error) {
	var b strings.Builder

	if err := NewAppender(&b, opts).Write(v); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (a *Appender) writeWFUTop(v Value) error {
	members, ok := v.AsObject()
	if !ok {
		return ErrNotObject
	}

	first := true

	for _, m := range members {
		if a.opts.Has(SkipNulls) && m.Value.IsNull() {
			continue
		}

		if !first {
			a.writeByte('&')
		}

		first = false

		a.writeString(m.Key, false)
		a.writeByte('=')
		a.writeValue(m.Value)
	}

	return a.err
}

func (a *Appender) writeValue(v Value) {
	if a.err != nil {
		return
	}

	switch v.Kind {
	case KindNull:
		a.writeNull()
	case KindBool:
		if v.Bool {
			a.writeLiteral("true")
		} else {
			a.writeLiteral("false")
		}
	case KindString:
		a.writeString(v.Str, true)
	case KindNumber:
		a.writeNumber(v.Num)
	case KindArray:
		a.writeArray(v.Arr)
	case KindObject:
		a.writeObject(v.Obj)
	case KindEmptyComposite:
		a.writeLiteral("()")
	}
}

// writeNull writes the null value per option precedence: CoerceNullToEmptyString
// always wins (so the ImpliedStringLiterals+CoerceNullToEmptyString
// combination writes '' rather than erroring); otherwise
// ImpliedStringLiterals has no literal that reads back as null and fails
// the write; otherwise the bare "null" keyword is written.
func (a *Appender) writeNull() {
	switch {
	case a.opts.Has(CoerceNullToEmptyString):
		a.writeString("", true)
	case a.opts.Has(ImpliedStringLiterals):
		if a.err == nil {
			a.err = ErrNullNotRepresentable
		}
	default:
		a.writeLiteral("null")
	}
}

func (a *Appender) writeArray(elems []Value) {
	a.writeByte('(')

	first := true

	for _, e := range elems {
		if a.opts.Has(SkipNulls) && e.IsNull() {
			continue
		}

		if !first {
			a.writeByte(',')
		}

		first = false

		a.writeValue(e)
	}

	a.writeByte(')')
}

func (a *Appender) writeObject(members []Member) {
	a.writeByte('(')

	first := true

	for _, m := range members {
		if a.opts.Has(SkipNulls) && m.Value.IsNull() {
			continue
		}

		if !first {
			a.writeByte(',')
		}

		first = false

		a.writeString(m.Key, false)
		a.writeByte(':')
		a.writeValue(m.Value)
	}

	a.writeByte(')')
}

func (a *Appender) writeNumber(n Number) {
	if n.Text != "" {
		a.writeLiteral(n.Text)

		return
	}

	switch n.Kind {
	case NumberLong:
		a.writeLiteral(strconv.FormatInt(n.Long, 10))
	case NumberBigInt:
		a.writeLiteral(n.BigInt.String())
	case NumberBigDecimal:
		a.writeLiteral(n.Dec.String())
	case NumberDouble:
		a.writeLiteral(strconv.FormatFloat(n.Double, 'g', -1, 64))
	default:
		if a.err == nil {
			a.err = ErrInfiniteNumber
		}
	}
}

// writeString writes s as a literal, percent-encoding and/or quoting it per
// [EncodeString]. asValue must be true for values (where "true"/"false"/
// "null"/number-shaped text needs quoting to survive a round trip) and
// false for object keys (always read back as a string, so no such
// ambiguity applies).
func (a *Appender) writeString(s string, asValue bool) {
	a.writeLiteral(EncodeString(s, asValue))
}

func (a *Appender) writeLiteral(s string) {
	if a.err != nil {
		return
	}

	_, a.err = io.WriteString(a.w, s)
}

func (a *Appender) writeByte(b byte) {
	if a.err != nil {
		return
	}

	_, a.err = a.w.Write([]byte{b})
}
