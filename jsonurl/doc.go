// Package jsonurl implements JSON->URL, a text encoding that represents
// JSON-shaped data using only characters legal in a URI component, so that
// structured values can travel in a query string or path segment without
// being base64'd or otherwise opaque.
//
// [Parse] and [NewParser] read JSON->URL text into the built-in [Value]
// tagged union. [Appender] writes a [Value] back out. Callers needing a
// different in-memory representation -- map[string]any, a domain struct,
// a streaming SAX-style consumer -- implement [ValueFactory] instead of
// consuming [Value] directly; [Parser.Parse] drives it the same way.
//
// # Grammar
//
// A JSON->URL value is either a literal or a composite:
//
//	value     := composite | literal
//	composite := "(" ")" | "(" items ")"
//	items     := value ("," value)* | member ("," member)*
//	member    := key ":" value
//	literal   := "'" qstrchar* "'" | litchar*
//
// An empty composite "()" is ambiguous between an empty array and an empty
// object; it parses to the distinguished [KindEmptyComposite] value, and
// both [Value.AsArray] and [Value.AsObject] accept it.
//
// Whether a composite is an array or an object is decided by one token of
// lookahead: if the character immediately after the first element's
// literal span is ':', it is an object member key and the composite is an
// object; otherwise the composite is an array.
//
// Literals decode to a string, true, false, null, or a number, using the
// same keyword/number-shape precedence a JSON parser uses, unless
// [ImpliedStringLiterals] is set, in which case every literal is a string.
//
// # Numeric Promotion
//
// A non-fractional literal with a non-negative exponent promotes to an
// int64 when it fits, otherwise to [math/big.Int]. Fractional literals and
// literals with a negative exponent promote to
// [github.com/shopspring/decimal.Decimal]. A [Parser] takes no integer
// boundary or overflow policy: no setting widens a large integer to
// float64 or saturates it to +/-Infinity, and a non-fractional literal
// whose exponent exceeds 1,000,000 fails with ErrLimitInteger.
//
// # Limits
//
// Every parse is bounded by a [Limits]: maximum input length, maximum
// composite nesting depth, and maximum number of literal values. These
// exist to keep a hostile or malformed query string from parsing into an
// unbounded amount of memory; [NewLimits] returns conservative defaults
// appropriate for a single HTTP request's worth of query parameters.
//
// # WFU Composite Mode
//
// Setting [WFUComposite] switches the top level of the document from an
// explicit "(" ")" composite to an implied object whose members are
// separated by '&' and whose keys and values are separated by '=' -- the
// familiar application/x-www-form-urlencoded shape, so that ordinary query
// strings like "a=1&b=(2,3)" parse without any extra wrapping. ':' is
// accepted in place of '=' at that level too. Nested values are
// unaffected: a value that opens with '(' still uses ',' and ':' as usual.
// A bare key with no '=' or ':' (e.g. "a" in "a&b=2") is given a null
// value rather than being rejected.
//
// # Errors
//
// Parse failures return a *[ParseError] wrapping one of the sentinel
// errors defined in this package (ErrBadChar, ErrExpectLiteral,
// ErrLimitMaxDepth, and so on); compare with errors.Is. [ParseError]
// additionally carries the offset, and when the [CharIterator] reports it,
// the line, column, and source name of the byte that caused the failure.
//
// # Subpackages
//
// [github.com/jsonurl/jsonurl-go/jsonurl/schema] infers a JSON Schema from
// a [Value] tree, analogous to what a structural type inference pass does
// for loosely-typed config formats. [github.com/jsonurl/jsonurl-go/jsonurl/yamlconv]
// converts between [Value] and YAML, for round-tripping a query string
// through a YAML config representation. [github.com/jsonurl/jsonurl-go/cmd/jsonurl]
// is a CLI exposing encode, decode, and schema-inference operations.
//
// # Basic Usage
//
//	v, err := jsonurl.Parse("(name:Felix,age:6,tags:(indoor,orange))")
//
//	var b strings.Builder
//	err = jsonurl.NewAppender(&b, 0).Write(v)
//
// # Query-String Usage
//
//	v, err := jsonurl.NewParser().
//	    WithOptions(jsonurl.WFUComposite).
//	    Parse(r.URL.RawQuery)
package jsonurl
