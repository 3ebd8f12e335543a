package jsonurl

import (
	"io"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/lex"
	"github.com/jsonurl/jsonurl-go/jsonurl/internal/perr"
)

const (
	structOpen  = '('
	structClose = ')'
	structComma = ','
	structColon = ':'
	structAmp   = '&'
	structEq    = '='
)

// Parser parses JSON->URL text into a caller-chosen representation V. The
// zero value is not usable; build one with [NewParser] or [NewParserFor].
// A *Parser is safe to reuse across many [Parser.Parse] calls but not safe
// for concurrent use by multiple goroutines at once.
type Parser[V any] struct {
	vf        ValueFactory[V]
	opts      Options
	limits    Limits
	valueType ValueType
}

// NewParser returns a *[Parser] producing the built-in [Value] tagged union.
func NewParser() *Parser[Value] {
	return &Parser[Value]{vf: NativeFactory{}, limits: NewLimits()}
}

// NewParserFor returns a *[Parser] producing V via vf.
func NewParserFor[V any](vf ValueFactory[V]) *Parser[V] {
	return &Parser[V]{vf: vf, limits: NewLimits()}
}

// WithOptions returns a copy of p using o.
func (p *Parser[V]) WithOptions(o Options) *Parser[V] {
	c := *p
	c.opts = o

	return &c
}

// WithLimits returns a copy of p using l.
func (p *Parser[V]) WithLimits(l Limits) *Parser[V] {
	c := *p
	c.limits = l

	return &c
}

// WithValueType returns a copy of p that requires the top-level value to
// match vt.
func (p *Parser[V]) WithValueType(vt ValueType) *Parser[V] {
	c := *p
	c.valueType = vt

	return &c
}

// Parse parses text as a single JSON->URL value.
func (p *Parser[V]) Parse(text string) (V, error) {
	return p.parse(NewStringIterator(text, ""))
}

// ParseReader parses the remainder of r as a single JSON->URL value. name
// identifies the source in error messages; pass "" if there is none.
func (p *Parser[V]) ParseReader(r io.Reader, name string) (V, error) {
	return p.parse(NewReaderIterator(r, name))
}

func (p *Parser[V]) parse(it CharIterator) (V, error) {
	var zero V

	core := &parserCore[V]{
		src:    newSource(it, p.limits.MaxParseChars),
		opts:   p.opts,
		limits: p.limits,
		vf:     p.vf,
	}

	v, err := core.run()
	if err != nil {
		return zero, wrapErr(err, it)
	}

	if !anyMatches(v, p.valueType) {
		return zero, wrapErr(perr.At(perr.ErrExpectType, 0), it)
	}

	return v, nil
}

// anyMatches adapts [Value.matches] to an arbitrary V: only the native
// factory's V (= Value) can be checked structurally, since an arbitrary
// caller-supplied V carries no Kind. Other V's are always accepted.
func anyMatches[V any](v V, vt ValueType) bool {
	if vt == ValueAny {
		return true
	}

	if nv, ok := any(v).(Value); ok {
		return nv.matches(vt)
	}

	return true
}

// Parse parses text into the built-in [Value] representation, using default
// [Options] and [Limits].
func Parse(text string) (Value, error) {
	return NewParser().Parse(text)
}

// parserCore drives one parse call. It tracks the byte cursor into the
// buffered [source] and the [resultBuilder] stack; everything else is
// stateless per-call configuration copied from the owning [Parser].
type parserCore[V any] struct {
	src    *source
	vf     ValueFactory[V]
	rb     *resultBuilder[V]
	dec    lex.Decoder
	opts   Options
	limits Limits
	pos    int
	values int
}

func (c *parserCore[V]) run() (V, error) {
	var zero V

	c.rb = newResultBuilder(c.vf, c.opts.Has(SkipNulls))

	if _, ok := c.peekByte(); !ok {
		return zero, perr.At(perr.ErrNoText, 0)
	}

	var err error

	if c.opts.Has(WFUComposite) {
		err = c.parseImpliedTop()
	} else {
		err = c.parseValue(0, false)
	}

	if err != nil {
		return zero, err
	}

	if _, ok := c.peekByte(); ok {
		return zero, perr.At(perr.ErrExtraChars, c.pos)
	}

	v, have := c.rb.finish()
	if !have {
		return zero, perr.At(perr.ErrNoText, 0)
	}

	return v, nil
}

func (c *parserCore[V]) peekByte() (byte, bool) {
	return c.src.byteAt(c.pos)
}

func (c *parserCore[V]) checkCharLimit() error {
	if c.pos > c.limits.MaxParseChars {
		return perr.At(perr.ErrLimitMaxChars, c.pos)
	}

	return nil
}

func (c *parserCore[V]) countValue() error {
	c.values++
	if c.values > c.limits.MaxParseValues {
		return perr.At(perr.ErrLimitMaxValues, c.pos)
	}

	return nil
}

// parseValue parses one value (literal or composite) at the given nesting
// depth and pushes it into the current result-builder frame. wfuActive
// marks that an unquoted literal ends at '&' or '=' without consuming them
// (depth 1 of an implied top-level composite under WFUComposite).
func (c *parserCore[V]) parseValue(depth int, wfuActive bool) error {
	ch, ok := c.peekByte()
	if !ok {
		return perr.At(perr.ErrExpectLiteral, c.pos)
	}

	if ch == structOpen {
		return c.parseComposite(depth)
	}

	return c.parseLiteralValue(wfuActive)
}

// parseLiteralValue decodes one literal and routes it into the current
// frame as a value.
func (c *parserCore[V]) parseLiteralValue(wfuActive bool) error {
	start := c.pos

	n, err := c.src.literalLength(start, wfuActive)
	if err != nil {
		return err
	}

	c.pos = start + n
	if err := c.checkCharLimit(); err != nil {
		return err
	}

	buf := c.src.slice(0, c.pos)

	lit, err := lex.ToLiteral(&c.dec, buf, start, c.pos,
		c.opts.Has(ImpliedStringLiterals), c.opts.Has(EmptyUnquotedValue))
	if err != nil {
		return err
	}

	if err := c.countValue(); err != nil {
		return err
	}

	v, err := c.literalToValue(lit, buf)
	if err != nil {
		return err
	}

	c.rb.addValue(v)

	return nil
}

func (c *parserCore[V]) literalToValue(lit lex.Literal, buf []byte) (V, error) {
	var zero V

	switch lit.Kind {
	case lex.KindString:
		return c.vf.String(lit.Str), nil
	case lex.KindTrue:
		return c.vf.Bool(true), nil
	case lex.KindFalse:
		return c.vf.Bool(false), nil
	case lex.KindNull:
		return c.vf.Null(), nil
	case lex.KindNumber:
		text := string(buf[lit.Num.Start:lit.Num.Stop])

		p, err := lit.Num.Build(buf, false, nil)
		if err != nil {
			return zero, err
		}

		return c.vf.Number(numberFromPromoted(p, text)), nil
	default:
		return zero, perr.At(perr.ErrExpectLiteral, 0)
	}
}

// parseKeyText decodes the literal at text[start:stop] as a raw object key:
// unlike a value literal, a key is always a string regardless of whether it
// looks like a number or keyword.
func (c *parserCore[V]) parseKeyText(start, stop int) (string, error) {
	if stop == start {
		if c.opts.Has(EmptyUnquotedKey) {
			return "", nil
		}

		return "", perr.At(perr.ErrExpectObjectKey, start)
	}

	buf := c.src.slice(0, stop)

	if buf[start] == '\'' {
		return c.dec.Decode(buf, start+1, stop-1, true)
	}

	return c.dec.Decode(buf, start, stop, false)
}

// parseComposite parses "(" ... ")" starting at the current position,
// distinguishing array from object by whether ':' follows the first
// element's literal span -- the one token of lookahead the grammar needs
// depth is the nesting depth of the composite being opened's
// parent; the composite itself is at depth+1.
func (c *parserCore[V]) parseComposite(depth int) error {
	c.pos++ // '('

	newDepth := depth + 1
	if newDepth > c.limits.MaxParseDepth {
		return perr.At(perr.ErrLimitMaxDepth, c.pos)
	}

	if err := c.checkCharLimit(); err != nil {
		return err
	}

	ch, ok := c.peekByte()
	if !ok {
		return perr.At(perr.ErrStillOpen, c.pos)
	}

	if ch == structClose {
		c.pos++

		c.rb.pushArray()
		c.rb.closeComposite()

		return nil
	}

	if ch == structOpen {
		c.rb.pushArray()

		if err := c.parseValue(newDepth, false); err != nil {
			return err
		}

		return c.parseArrayBody(newDepth)
	}

	start := c.pos

	n, err := c.src.literalLength(start, false)
	if err != nil {
		return err
	}

	after := start + n

	next, ok := c.src.byteAt(after)

	switch {
	case ok && next == structColon:
		c.rb.pushObject()
		c.pos = start

		return c.parseObjectBodyFromFirstKey(newDepth, start, after)
	default:
		c.rb.pushArray()
		c.pos = start

		if err := c.parseValue(newDepth, false); err != nil {
			return err
		}

		return c.parseArrayBody(newDepth)
	}
}

// parseArrayBody parses the ","-separated remainder of an array whose
// opening "(" (and, if present, first element) has already been consumed
// and pushed, then the closing ")".
func (c *parserCore[V]) parseArrayBody(depth int) error {
	for {
		ch, ok := c.peekByte()
		if !ok {
			return perr.At(perr.ErrStillOpen, c.pos)
		}

		switch ch {
		case structClose:
			c.pos++
			c.rb.closeComposite()

			return nil
		case structComma:
			c.pos++

			if err := c.parseValue(depth, false); err != nil {
				return err
			}
		default:
			return perr.At(perr.ErrExpectStructChar, c.pos)
		}
	}
}

// parseObjectBodyFromFirstKey decodes the already-measured first key span,
// parses its value, and then parses the "," key ":" value remainder.
func (c *parserCore[V]) parseObjectBodyFromFirstKey(depth, keyStart, keyStop int) error {
	key, err := c.parseKeyText(keyStart, keyStop)
	if err != nil {
		return err
	}

	c.rb.setKey(key)
	c.pos = keyStop + 1 // ':'

	if err := c.parseValue(depth, false); err != nil {
		return err
	}

	for {
		ch, ok := c.peekByte()
		if !ok {
			return perr.At(perr.ErrStillOpen, c.pos)
		}

		switch ch {
		case structClose:
			c.pos++
			c.rb.closeComposite()

			return nil
		case structComma:
			c.pos++

			if err := c.parseMember(depth); err != nil {
				return err
			}
		default:
			return perr.At(perr.ErrExpectStructChar, c.pos)
		}
	}
}

func (c *parserCore[V]) parseMember(depth int) error {
	start := c.pos

	n, err := c.src.literalLength(start, false)
	if err != nil {
		return err
	}

	stop := start + n

	next, ok := c.src.byteAt(stop)
	if !ok || next != structColon {
		return perr.At(perr.ErrExpectObjectKey, stop)
	}

	key, err := c.parseKeyText(start, stop)
	if err != nil {
		return err
	}

	c.rb.setKey(key)
	c.pos = stop + 1 // ':'

	return c.parseValue(depth, false)
}

// parseImpliedTop parses the whole input as an implied top-level composite
// under WFUComposite: '&' separates members at depth 1 and '=' (or ':')
// separates a member's key from its value, with no surrounding parens.
// Nested values still use explicit "(" ")" with the usual ',' and ':'
// separators. A bare key with no '=' or ':' (e.g. a lone "a" in "a&b=2")
// is given a null value.
func (c *parserCore[V]) parseImpliedTop() error {
	c.rb.pushObject()

	for {
		if err := c.parseImpliedMember(); err != nil {
			return err
		}

		ch, ok := c.peekByte()
		if !ok {
			break
		}

		if ch != structAmp {
			return perr.At(perr.ErrExpectStructChar, c.pos)
		}

		c.pos++
	}

	c.rb.closeComposite()

	return nil
}

func (c *parserCore[V]) parseImpliedMember() error {
	start := c.pos

	n, err := c.src.literalLength(start, true)
	if err != nil {
		return err
	}

	stop := start + n

	key, err := c.parseKeyText(start, stop)
	if err != nil {
		return err
	}

	c.rb.setKey(key)
	c.pos = stop

	ch, ok := c.peekByte()

	switch {
	case ok && (ch == structEq || ch == structColon):
		c.pos++

		return c.parseValue(1, true)
	default:
		// Bare key, e.g. "a" in "a&b=2": default to an explicit null
		// rather than rejecting the member.
		if err := c.countValue(); err != nil {
			return err
		}

		c.rb.addValue(c.vf.Null())

		return nil
	}
}
