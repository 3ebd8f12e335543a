package jsonurl_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

func TestConfigRegisterFlagsDefaults(t *testing.T) {
	t.Parallel()

	cfg := jsonurl.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	limits := jsonurl.NewLimits()
	assert.Equal(t, limits.MaxParseChars, cfg.MaxParseChars)
	assert.Equal(t, limits.MaxParseDepth, cfg.MaxParseDepth)
	assert.Equal(t, limits.MaxParseValues, cfg.MaxParseValues)
	assert.False(t, cfg.WFUComposite)
	assert.False(t, cfg.ImpliedStringLiterals)
	assert.False(t, cfg.EmptyUnquotedKey)
	assert.False(t, cfg.EmptyUnquotedValue)
	assert.False(t, cfg.SkipNulls)
	assert.False(t, cfg.CoerceNullToEmptyString)
	assert.False(t, cfg.AQF)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := jsonurl.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	// RegisterFlagCompletionFunc errors if the named flag doesn't exist, so
	// a nil error here confirms every flag name in cfg.Flags was registered.
	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)
}

func TestConfigNewParserAppliesFlags(t *testing.T) {
	t.Parallel()

	cfg := jsonurl.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cmd.Flags().Set("max-parse-depth", "1")
	require.NoError(t, err)

	err = cmd.Flags().Set("wfu-composite", "true")
	require.NoError(t, err)

	p := cfg.NewParser()

	_, err = p.Parse("a:(b:(c:1))")
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonurl.ErrLimitMaxDepth)
}

func TestConfigSkipNullsOption(t *testing.T) {
	t.Parallel()

	cfg := jsonurl.NewConfig()
	cfg.SkipNulls = true

	o := cfg.ParserOptions()
	assert.True(t, o.Has(jsonurl.SkipNulls))
}

func TestConfigAllOptionFlags(t *testing.T) {
	t.Parallel()

	cfg := jsonurl.NewConfig()
	cfg.ImpliedStringLiterals = true
	cfg.EmptyUnquotedKey = true
	cfg.EmptyUnquotedValue = true
	cfg.CoerceNullToEmptyString = true
	cfg.AQF = true

	o := cfg.ParserOptions()
	assert.True(t, o.Has(jsonurl.ImpliedStringLiterals))
	assert.True(t, o.Has(jsonurl.EmptyUnquotedKey))
	assert.True(t, o.Has(jsonurl.EmptyUnquotedValue))
	assert.True(t, o.Has(jsonurl.CoerceNullToEmptyString))
	assert.True(t, o.Has(jsonurl.AQF))
}
