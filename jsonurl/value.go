package jsonurl

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/lex"
)

// Kind tags the variant held by a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	// KindEmptyComposite tags the distinguished "()" literal: a composite
	// with no elements, which carries no information about whether the
	// writer meant an array or an object. Callers that care pick one with
	// [Value.AsArray] or [Value.AsObject]; both succeed on this Kind.
	KindEmptyComposite
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindEmptyComposite:
		return "empty composite"
	default:
		return "unknown"
	}
}

// NumberKind classifies how a [Number]'s magnitude was promoted.
type NumberKind int

const (
	NumberLong NumberKind = iota
	NumberBigInt
	NumberBigDecimal
	NumberDouble
	NumberPositiveInfinity
	NumberNegativeInfinity
)

func (k NumberKind) String() string {
	switch k {
	case NumberLong:
		return "long"
	case NumberBigInt:
		return "big integer"
	case NumberBigDecimal:
		return "big decimal"
	case NumberDouble:
		return "double"
	case NumberPositiveInfinity:
		return "positive infinity"
	case NumberNegativeInfinity:
		return "negative infinity"
	default:
		return "unknown"
	}
}

// Number is the public, immutable view of a parsed numeric literal. Exactly
// one of the Long/BigInt/Dec/Double fields is meaningful, selected by Kind.
type Number struct {
	BigInt *big.Int
	Dec    decimal.Decimal
	Text   string
	Long   int64
	Double float64
	Kind   NumberKind
}

// NewLongNumber returns a [Number] holding an exact int64.
func NewLongNumber(v int64) Number {
	return Number{Kind: NumberLong, Long: v}
}

// NewBigIntNumber returns a [Number] holding an arbitrary-precision integer.
func NewBigIntNumber(v *big.Int) Number {
	return Number{Kind: NumberBigInt, BigInt: v}
}

// NewDecimalNumber returns a [Number] holding an arbitrary-precision decimal.
func NewDecimalNumber(v decimal.Decimal) Number {
	return Number{Kind: NumberBigDecimal, Dec: v}
}

// NewDoubleNumber returns a [Number] holding a float64.
func NewDoubleNumber(v float64) Number {
	return Number{Kind: NumberDouble, Double: v}
}

func numberFromPromoted(p lex.Promoted, text string) Number {
	return Number{
		Kind:   NumberKind(p.Kind),
		Long:   p.Long,
		BigInt: p.BigInt,
		Dec:    p.Dec,
		Double: p.Double,
		Text:   text,
	}
}

// Float64 returns n as a float64 regardless of Kind, for callers that don't
// need exact precision.
func (n Number) Float64() float64 {
	switch n.Kind {
	case NumberLong:
		return float64(n.Long)
	case NumberBigInt:
		f := new(big.Float).SetInt(n.BigInt)
		v, _ := f.Float64()

		return v
	case NumberBigDecimal:
		v, _ := n.Dec.Float64()

		return v
	default:
		return n.Double
	}
}

// MarshalJSON renders n as a raw JSON number token, reusing the original
// source text when available so round-tripping doesn't lose precision.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.Text != "" {
		return []byte(n.Text), nil
	}

	switch n.Kind {
	case NumberLong:
		return []byte(strconv.FormatInt(n.Long, 10)), nil
	case NumberBigInt:
		return []byte(n.BigInt.String()), nil
	case NumberBigDecimal:
		return []byte(n.Dec.String()), nil
	case NumberPositiveInfinity, NumberNegativeInfinity:
		return nil, fmt.Errorf("jsonurl: cannot encode %s as JSON", n.Kind)
	default:
		return []byte(strconv.FormatFloat(n.Double, 'g', -1, 64)), nil
	}
}

// Member is one key/value pair of an [Value] object. Objects preserve
// source order and permit duplicate keys; last-key-wins semantics,
// if wanted, are a caller's choice to apply, not this type's.
type Member struct {
	Key   string
	Value Value
}

// Value is the tagged union every parse produces by default: Null,
// Bool, Number, String, Array, Object, plus the distinguished empty
// composite. Callers wanting a different in-memory representation should
// implement [ValueFactory] instead of consuming Value directly.
type Value struct {
	Str  string
	Num  Number
	Arr  []Value
	Obj  []Member
	Kind Kind
	Bool bool
}

// Null returns the null [Value].
func Null() Value { return Value{Kind: KindNull} }

// BoolValue returns a boolean [Value].
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// StringValue returns a string [Value].
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// NumberValue returns a numeric [Value].
func NumberValue(n Number) Value { return Value{Kind: KindNumber, Num: n} }

// ArrayValue returns an array [Value]. A nil or empty elems yields the
// distinguished empty composite, matching what the parser produces for "()".
func ArrayValue(elems []Value) Value {
	if len(elems) == 0 {
		return Value{Kind: KindEmptyComposite}
	}

	return Value{Kind: KindArray, Arr: elems}
}

// ObjectValue returns an object [Value]. A nil or empty members yields the
// distinguished empty composite, matching what the parser produces for "()".
func ObjectValue(members []Member) Value {
	if len(members) == 0 {
		return Value{Kind: KindEmptyComposite}
	}

	return Value{Kind: KindObject, Obj: members}
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// AsArray returns v's elements, treating the empty composite as an empty
// array. ok is false for any other Kind.
func (v Value) AsArray() (elems []Value, ok bool) {
	switch v.Kind {
	case KindArray:
		return v.Arr, true
	case KindEmptyComposite:
		return nil, true
	default:
		return nil, false
	}
}

// AsObject returns v's members, treating the empty composite as an empty
// object. ok is false for any other Kind.
func (v Value) AsObject() (members []Member, ok bool) {
	switch v.Kind {
	case KindObject:
		return v.Obj, true
	case KindEmptyComposite:
		return nil, true
	default:
		return nil, false
	}
}

// ValueType is the per-call restriction a [Parser] can be given: only
// values of the named Kind are accepted at the top level. A zero ValueType
// (ValueAny) accepts anything.
type ValueType int

const (
	ValueAny ValueType = iota
	ValueObjectOnly
	ValueArrayOnly
)

func (v Value) matches(vt ValueType) bool {
	switch vt {
	case ValueObjectOnly:
		return v.Kind == KindObject || v.Kind == KindEmptyComposite
	case ValueArrayOnly:
		return v.Kind == KindArray || v.Kind == KindEmptyComposite
	default:
		return true
	}
}

// ValueFactory lets a [Parser] build a caller-chosen representation V
// instead of the built-in [Value] tagged union.
type ValueFactory[V any] interface {
	Null() V
	Bool(b bool) V
	Number(n Number) V
	String(s string) V
	NewArrayBuilder() ArrayBuilder[V]
	NewObjectBuilder() ObjectBuilder[V]
	// IsNull reports whether v is the null value, so the parser can honor
	// [SkipNulls] without knowing V's concrete representation.
	IsNull(v V) bool
}

// ArrayBuilder accumulates a parser's array elements into a V.
type ArrayBuilder[V any] interface {
	Add(v V)
	Build() V
}

// ObjectBuilder accumulates a parser's object members into a V.
type ObjectBuilder[V any] interface {
	Add(key string, v V)
	Build() V
}

// NativeFactory is the [ValueFactory] that produces the built-in [Value]
// type. [Parse] uses it; [NewParserFor] takes another factory.
type NativeFactory struct{}

func (NativeFactory) Null() Value           { return Null() }
func (NativeFactory) Bool(b bool) Value     { return BoolValue(b) }
func (NativeFactory) Number(n Number) Value { return NumberValue(n) }
func (NativeFactory) String(s string) Value { return StringValue(s) }
func (NativeFactory) IsNull(v Value) bool   { return v.IsNull() }

func (NativeFactory) NewArrayBuilder() ArrayBuilder[Value] {
	return &nativeArrayBuilder{}
}

func (NativeFactory) NewObjectBuilder() ObjectBuilder[Value] {
	return &nativeObjectBuilder{}
}

type nativeArrayBuilder struct {
	elems []Value
}

func (b *nativeArrayBuilder) Add(v Value) { b.elems = append(b.elems, v) }
func (b *nativeArrayBuilder) Build() Value { return ArrayValue(b.elems) }

type nativeObjectBuilder struct {
	members []Member
}

func (b *nativeObjectBuilder) Add(key string, v Value) {
	b.members = append(b.members, Member{Key: key, Value: v})
}

func (b *nativeObjectBuilder) Build() Value { return ObjectValue(b.members) }
