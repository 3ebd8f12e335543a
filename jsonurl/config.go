package jsonurl

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for parser configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	MaxParseChars           string
	MaxParseDepth           string
	MaxParseValues          string
	WFUComposite            string
	ImpliedStringLiterals   string
	EmptyUnquotedKey        string
	EmptyUnquotedValue      string
	SkipNulls               string
	CoerceNullToEmptyString string
	AQF                     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	limits := NewLimits()

	return &Config{
		Flags:          f,
		MaxParseChars:  limits.MaxParseChars,
		MaxParseDepth:  limits.MaxParseDepth,
		MaxParseValues: limits.MaxParseValues,
		limits:         limits,
	}
}

// Config holds CLI flag values controlling [Limits] and [Options] used to
// build a [Parser].
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewParser] to build a configured
// [Parser].
type Config struct {
	Flags Flags

	MaxParseChars           int
	MaxParseDepth           int
	MaxParseValues          int
	WFUComposite            bool
	ImpliedStringLiterals   bool
	EmptyUnquotedKey        bool
	EmptyUnquotedValue      bool
	SkipNulls               bool
	CoerceNullToEmptyString bool
	AQF                     bool

	limits Limits
}

// NewConfig returns a new [Config] with default flag names and the
// documented parse-limit defaults.
func NewConfig() *Config {
	f := Flags{
		MaxParseChars:           "max-parse-chars",
		MaxParseDepth:           "max-parse-depth",
		MaxParseValues:          "max-parse-values",
		WFUComposite:            "wfu-composite",
		ImpliedStringLiterals:   "implied-string-literals",
		EmptyUnquotedKey:        "empty-unquoted-key",
		EmptyUnquotedValue:      "empty-unquoted-value",
		SkipNulls:               "skip-nulls",
		CoerceNullToEmptyString: "coerce-null-to-empty-string",
		AQF:                     "aqf",
	}

	return f.NewConfig()
}

// RegisterFlags adds parser configuration flags to the given
// [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	limits := NewLimits()

	flags.IntVar(&c.MaxParseChars, c.Flags.MaxParseChars, limits.MaxParseChars,
		"maximum number of characters in a parsed text")
	flags.IntVar(&c.MaxParseDepth, c.Flags.MaxParseDepth, limits.MaxParseDepth,
		"maximum composite nesting depth")
	flags.IntVar(&c.MaxParseValues, c.Flags.MaxParseValues, limits.MaxParseValues,
		"maximum number of values in a parsed text")
	flags.BoolVar(&c.WFUComposite, c.Flags.WFUComposite, false,
		"parse/write the top level as an implied www-form-urlencoded object")
	flags.BoolVar(&c.ImpliedStringLiterals, c.Flags.ImpliedStringLiterals, false,
		"treat every literal as a string; never recognize true/false/null/numbers")
	flags.BoolVar(&c.EmptyUnquotedKey, c.Flags.EmptyUnquotedKey, false,
		"allow a zero-length unquoted object key")
	flags.BoolVar(&c.EmptyUnquotedValue, c.Flags.EmptyUnquotedValue, false,
		"allow a zero-length unquoted value")
	flags.BoolVar(&c.SkipNulls, c.Flags.SkipNulls, false,
		"drop null values on read and write")
	flags.BoolVar(&c.CoerceNullToEmptyString, c.Flags.CoerceNullToEmptyString, false,
		"write null values as the empty string instead of the null literal")
	flags.BoolVar(&c.AQF, c.Flags.AQF, false,
		"reserved address-bar-query-friendly encoding variant (currently inert)")
}

// RegisterCompletions registers shell completions for parser flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, name := range []string{
		c.Flags.MaxParseChars, c.Flags.MaxParseDepth, c.Flags.MaxParseValues,
		c.Flags.WFUComposite, c.Flags.ImpliedStringLiterals,
		c.Flags.EmptyUnquotedKey, c.Flags.EmptyUnquotedValue,
		c.Flags.SkipNulls, c.Flags.CoerceNullToEmptyString, c.Flags.AQF,
	} {
		err := cmd.RegisterFlagCompletionFunc(name, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// Limits returns the [Limits] described by the current flag values.
func (c *Config) Limits() Limits {
	return Limits{
		MaxParseChars:  c.MaxParseChars,
		MaxParseDepth:  c.MaxParseDepth,
		MaxParseValues: c.MaxParseValues,
	}
}

// ParserOptions returns the [Options] described by the current flag values.
func (c *Config) ParserOptions() Options {
	var o Options

	if c.WFUComposite {
		o = o.With(WFUComposite)
	}

	if c.ImpliedStringLiterals {
		o = o.With(ImpliedStringLiterals)
	}

	if c.EmptyUnquotedKey {
		o = o.With(EmptyUnquotedKey)
	}

	if c.EmptyUnquotedValue {
		o = o.With(EmptyUnquotedValue)
	}

	if c.SkipNulls {
		o = o.With(SkipNulls)
	}

	if c.CoerceNullToEmptyString {
		o = o.With(CoerceNullToEmptyString)
	}

	if c.AQF {
		o = o.With(AQF)
	}

	return o
}

// NewParser builds a [*Parser[Value]] using this [Config]'s limits and
// options.
func (c *Config) NewParser() *Parser[Value] {
	return NewParser().WithLimits(c.Limits()).WithOptions(c.ParserOptions())
}
