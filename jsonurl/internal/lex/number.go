package lex

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/perr"
)

// ExponentKind classifies the exponent span of a parsed number.
type ExponentKind int

const (
	ExpNone ExponentKind = iota
	ExpJustValue
	ExpPositiveSign
	ExpNegativeSign
)

// NumberText is a non-owning view over a number literal's source spans
// start/stop bound the whole literal, and the integer/fractional/
// exponent spans are indices into the same backing text.
type NumberText struct {
	Start      int
	IntStart   int
	IntStop    int
	FractStart int
	FractStop  int
	ExpStart   int
	ExpStop    int
	Stop       int
	ExpKind    ExponentKind
}

// IsNegative reports whether the literal carries a leading '-'.
func (n NumberText) IsNegative() bool { return n.IntStart > n.Start }

// HasFraction reports whether a non-empty fractional span was recorded.
func (n NumberText) HasFraction() bool { return n.FractStop > n.FractStart }

// HasInteger reports whether a non-empty integer span was recorded.
func (n NumberText) HasInteger() bool { return n.IntStop > n.IntStart }

// IsNonFractional reports whether n has an integer part, no fractional
// part, and a non-negative exponent -- i.e. it can promote to an exact
// integer type rather than Double/BigDecimal.
func (n NumberText) IsNonFractional() bool {
	return n.HasInteger() && !n.HasFraction() && n.ExpKind != ExpNegativeSign
}

// Parse walks the number grammar
//
//	-? (0 | [1-9][0-9]*) ('.' [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// over text[start:stop], recording the spans above. It returns false
// without consuming anything on a grammar mismatch.
func (n *NumberText) Parse(text []byte, start, stop int) bool {
	i := start

	if i < stop && text[i] == '-' {
		i++
	}

	intStart := i

	switch {
	case i < stop && text[i] == '0':
		i++
	case i < stop && isDigit19(text[i]):
		i++
		for i < stop && isDigit(text[i]) {
			i++
		}
	default:
		return false
	}

	intStop := i

	fractStart, fractStop := i, i

	if i < stop && text[i] == '.' {
		j := i + 1
		fractStart = j

		for j < stop && isDigit(text[j]) {
			j++
		}

		fractStop = j

		if fractStop == fractStart {
			return false
		}

		i = j
	}

	expStart, expStop := i, i
	expKind := ExpNone

	if i < stop && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1

		switch {
		case j < stop && text[j] == '+':
			expKind = ExpPositiveSign
			j++
		case j < stop && text[j] == '-':
			expKind = ExpNegativeSign
			j++
		default:
			expKind = ExpJustValue
		}

		expStart = j

		for j < stop && isDigit(text[j]) {
			j++
		}

		expStop = j

		if expStop == expStart {
			return false
		}

		i = j
	}

	if i != stop {
		return false
	}

	n.Start = start
	n.IntStart = intStart
	n.IntStop = intStop
	n.FractStart = fractStart
	n.FractStop = fractStop
	n.ExpStart = expStart
	n.ExpStop = expStop
	n.Stop = stop
	n.ExpKind = expKind

	return true
}

// IsNumber reports whether text[start:stop] matches the number grammar,
// without recording spans. When nonFractionalOnly is true, a fractional
// part or a negative exponent disqualifies the match.
func IsNumber(text []byte, start, stop int, nonFractionalOnly bool) bool {
	var nt NumberText
	if !nt.Parse(text, start, stop) {
		return false
	}

	if nonFractionalOnly && !nt.IsNonFractional() {
		return false
	}

	return true
}

func isDigit(b byte) bool   { return b >= '0' && b <= '9' }
func isDigit19(b byte) bool { return b >= '1' && b <= '9' }

// NumberKind tags the promoted representation [NumberText.Build] chose.
type NumberKind int

const (
	NumLong NumberKind = iota
	NumBigInt
	NumBigDecimal
	NumDouble
	NumPositiveInfinity
	NumNegativeInfinity
)

// Promoted is the materialized numeric value produced by [NumberText.Build].
type Promoted struct {
	BigInt *big.Int
	Dec    decimal.Decimal
	Long   int64
	Double float64
	Kind   NumberKind
}

// OverflowPolicy selects what happens when a non-fractional literal's
// magnitude exceeds [BigMath.IntegerBoundary].
type OverflowPolicy int

const (
	OverflowNone OverflowPolicy = iota
	OverflowDouble
	OverflowBigDecimal
	OverflowInfinity
)

// BigMath configures promotion of numbers that don't fit in an int64.
// A nil *BigMath means "promote to BigInteger/BigDecimal with no bound".
type BigMath struct {
	IntegerBoundary *big.Int
	Overflow        OverflowPolicy
}

// longMaxDigits and longMinDigits are the decimal digit strings of
// math.MaxInt64 and -math.MinInt64, used for the 19-digit boundary
// comparison in Build.
const (
	longMaxDigits = "9223372036854775807"
	longMinDigits = "9223372036854775808"
)

// Build materializes the literal per the promotion rules:
// fractional or negative-exponent numbers become Double (primitiveOnly) or
// BigDecimal; non-fractional numbers that fit in a signed 64-bit integer
// become a Long; larger ones become Double (primitiveOnly), BigInteger (no
// boundary configured), or follow [BigMath.Overflow] once a boundary is set
// and exceeded.
func (n NumberText) Build(text []byte, primitiveOnly bool, bm *BigMath) (Promoted, error) {
	if n.HasFraction() || n.ExpKind == ExpNegativeSign {
		return n.buildFractional(text, primitiveOnly, bm)
	}

	return n.buildIntegral(text, primitiveOnly, bm)
}

// buildFractional never consults bm.IntegerBoundary: that bound only gates
// non-fractional overflow.
func (n NumberText) buildFractional(text []byte, primitiveOnly bool, _ *BigMath) (Promoted, error) {
	src := string(text[n.Start:n.Stop])

	if primitiveOnly {
		f, err := strconv.ParseFloat(src, 64)
		if err != nil {
			return Promoted{}, err
		}

		return Promoted{Kind: NumDouble, Double: f}, nil
	}

	d, err := decimal.NewFromString(src)
	if err != nil {
		return Promoted{}, err
	}

	return Promoted{Kind: NumBigDecimal, Dec: d}, nil
}

func (n NumberText) buildIntegral(text []byte, primitiveOnly bool, bm *BigMath) (Promoted, error) {
	mantissa := text[n.IntStart:n.IntStop]
	negative := n.IsNegative()

	expValue := 0

	if n.ExpKind != ExpNone {
		v, ok := parseExpValue(text[n.ExpStart:n.ExpStop])
		if !ok {
			return n.buildExponentOverflow(mantissa, negative, primitiveOnly, bm)
		}

		expValue = v
	}

	digitCount := len(mantissa) + expValue

	if digitCount < 19 {
		return n.buildSmallInt(mantissa, expValue, negative), nil
	}

	fullDigits := expandDigits(mantissa, expValue)

	if digitCount == 19 {
		bound := longMaxDigits
		if negative {
			bound = longMinDigits
		}

		if string(fullDigits) <= bound {
			return n.buildSmallIntFromDigits(fullDigits, negative), nil
		}
	}

	return n.buildOverflow(fullDigits, negative, primitiveOnly, bm)
}

func (n NumberText) buildSmallInt(mantissa []byte, expValue int, negative bool) Promoted {
	digits := expandDigits(mantissa, expValue)

	v := parseUint(digits)

	long := int64(v)
	if negative {
		long = -long
	}

	return Promoted{Kind: NumLong, Long: long}
}

func (n NumberText) buildSmallIntFromDigits(digits []byte, negative bool) Promoted {
	bi := new(big.Int)
	bi.SetString(string(digits), 10)

	if negative {
		bi.Neg(bi)
	}

	return Promoted{Kind: NumLong, Long: bi.Int64()}
}

func (n NumberText) buildOverflow(digits []byte, negative bool, primitiveOnly bool, bm *BigMath) (Promoted, error) {
	if primitiveOnly {
		sign := ""
		if negative {
			sign = "-"
		}

		f, err := strconv.ParseFloat(sign+string(digits), 64)
		if err != nil {
			return Promoted{}, err
		}

		return Promoted{Kind: NumDouble, Double: f}, nil
	}

	bi := new(big.Int)
	bi.SetString(string(digits), 10)

	if negative {
		bi.Neg(bi)
	}

	if bm == nil || bm.IntegerBoundary == nil {
		return Promoted{Kind: NumBigInt, BigInt: bi}, nil
	}

	abs := new(big.Int).Abs(bi)
	if abs.Cmp(bm.IntegerBoundary) <= 0 {
		return Promoted{Kind: NumBigInt, BigInt: bi}, nil
	}

	switch bm.Overflow {
	case OverflowDouble:
		f := new(big.Float).SetInt(bi)
		v, _ := f.Float64()

		return Promoted{Kind: NumDouble, Double: v}, nil

	case OverflowBigDecimal:
		return Promoted{Kind: NumBigDecimal, Dec: decimal.NewFromBigInt(bi, 0)}, nil

	case OverflowInfinity:
		if negative {
			return Promoted{Kind: NumNegativeInfinity, Double: math.Inf(-1)}, nil
		}

		return Promoted{Kind: NumPositiveInfinity, Double: math.Inf(1)}, nil

	default:
		return Promoted{}, perr.At(perr.ErrLimitInteger, n.Start)
	}
}

// expandDigits appends expValue trailing zeros to mantissa, the
// fixed-point expansion of mantissa * 10^expValue for a non-fractional,
// non-negative-exponent literal.
func expandDigits(mantissa []byte, expValue int) []byte {
	if expValue == 0 {
		return mantissa
	}

	out := make([]byte, 0, len(mantissa)+expValue)
	out = append(out, mantissa...)

	for range expValue {
		out = append(out, '0')
	}

	return out
}

func parseUint(digits []byte) int {
	v := 0

	for _, c := range digits {
		v = v*10 + int(c-'0')
	}

	return v
}

// maxExponentValue bounds the parsed value of a number literal's exponent.
// The exponent's *value*, not the character length of its digit span
// (which [Limits.MaxParseChars] already bounds), determines how many
// digits mantissa*10^exponent expands to -- a 19-character exponent like
// "9999999999999999999" is a tiny literal but represents a magnitude no
// program can materialize as digits. Past this bound the literal is
// treated as unconditionally overflowing, the same outcome buildOverflow
// already gives an over-64-bit integer past a configured BigMath
// boundary, just reached without ever expanding the digits.
const maxExponentValue = 1_000_000

// parseExpValue parses an all-digit exponent span as a decimal integer,
// reporting ok=false instead of over/underflowing native int arithmetic
// when the span is too long or its value exceeds maxExponentValue.
func parseExpValue(digits []byte) (value int, ok bool) {
	if len(digits) > 9 {
		return 0, false
	}

	v := 0

	for _, c := range digits {
		v = v*10 + int(c-'0')
		if v > maxExponentValue {
			return 0, false
		}
	}

	return v, true
}

// buildExponentOverflow handles a non-fractional literal whose exponent
// exceeded maxExponentValue: mantissa*10^exponent is astronomically
// large, so the exact digit string is never expanded or materialized.
// The outcome mirrors buildOverflow's bm.Overflow switch; the default
// (no bm, or no overflow policy configured) raises ErrLimitInteger
// rather than claiming an exact BigInteger it cannot build.
func (n NumberText) buildExponentOverflow(mantissa []byte, negative, primitiveOnly bool, bm *BigMath) (Promoted, error) {
	if primitiveOnly {
		return Promoted{Kind: NumDouble, Double: signedInf(negative)}, nil
	}

	if bm == nil {
		return Promoted{}, perr.At(perr.ErrLimitInteger, n.Start)
	}

	switch bm.Overflow {
	case OverflowDouble:
		return Promoted{Kind: NumDouble, Double: signedInf(negative)}, nil

	case OverflowBigDecimal:
		mbi := new(big.Int)
		mbi.SetString(string(mantissa), 10)

		if negative {
			mbi.Neg(mbi)
		}
		// maxExponentValue understates the literal's true exponent (it was
		// only a lower bound that triggered overflow), so this BigDecimal
		// preserves sign and the mantissa's exact digits but is an
		// approximation of magnitude, not the literal's exact value.
		return Promoted{Kind: NumBigDecimal, Dec: decimal.NewFromBigInt(mbi, int32(maxExponentValue))}, nil

	case OverflowInfinity:
		if negative {
			return Promoted{Kind: NumNegativeInfinity, Double: math.Inf(-1)}, nil
		}

		return Promoted{Kind: NumPositiveInfinity, Double: math.Inf(1)}, nil

	default:
		return Promoted{}, perr.At(perr.ErrLimitInteger, n.Start)
	}
}

func signedInf(negative bool) float64 {
	if negative {
		return math.Inf(-1)
	}

	return math.Inf(1)
}
