package jsonurl

// Options is a bitset of the presentation/parsing toggles below. The zero
// value has every option off. Pass it by value, not by reference -- it is
// small enough that threading an options object through every lex call
// would only add indirection.
type Options uint16

const (
	// WFUComposite makes '&' act as a value separator and '=' act as a
	// name separator at depth 1 of an implied top-level composite.
	WFUComposite Options = 1 << iota
	// ImpliedStringLiterals treats every literal as a string; true,
	// false, null, and numbers are never recognized as such.
	ImpliedStringLiterals
	// EmptyUnquotedKey allows a zero-length literal in key position.
	EmptyUnquotedKey
	// EmptyUnquotedValue allows a zero-length literal in value position.
	EmptyUnquotedValue
	// SkipNulls drops null values on read and write.
	SkipNulls
	// CoerceNullToEmptyString turns null into "" on write.
	CoerceNullToEmptyString
	// AQF is reserved for an address-bar-query-friendly encoding variant.
	// It is parsed and stored but does not yet change parser or writer
	// behavior, pending a distinct character-class table for it.
	AQF
)

// Has reports whether every bit in want is set in o.
func (o Options) Has(want Options) bool {
	return o&want == want
}

// With returns o with every bit in add set.
func (o Options) With(add Options) Options {
	return o | add
}

// Without returns o with every bit in remove cleared.
func (o Options) Without(remove Options) Options {
	return o &^ remove
}
