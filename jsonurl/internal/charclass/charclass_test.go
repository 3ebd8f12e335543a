package charclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonurl/jsonurl-go/jsonurl/internal/charclass"
)

func TestOf(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.Is('a', charclass.Letter))
	assert.True(t, charclass.Is('a', charclass.LitChar))
	assert.True(t, charclass.Is('0', charclass.Digit))
	assert.True(t, charclass.Is('\'', charclass.Quote))
	assert.True(t, charclass.Is('(', charclass.Struct))
	assert.True(t, charclass.Is(')', charclass.Struct))
	assert.True(t, charclass.Is(',', charclass.Struct))
	assert.True(t, charclass.Is(':', charclass.Struct))
	assert.False(t, charclass.Is('&', charclass.Struct))
	assert.False(t, charclass.Is(' ', charclass.LitChar))
	assert.Equal(t, charclass.Bit(0), charclass.Of(0x80))
}

func TestEncSafety(t *testing.T) {
	t.Parallel()

	assert.True(t, charclass.Is('a', charclass.EncStrSafe))
	assert.False(t, charclass.Is('\'', charclass.EncStrSafe))
	assert.False(t, charclass.Is('\'', charclass.EncQStrSafe))
	assert.False(t, charclass.Is('%', charclass.EncStrSafe))
	assert.False(t, charclass.Is(' ', charclass.EncStrSafe))
	assert.True(t, charclass.Is('(', charclass.EncQStrSafe))
	assert.False(t, charclass.Is('(', charclass.EncStrSafe))

	// '+' decodes to a space unconditionally (quoted or not), so it must
	// never be treated as safe to write as-is in either context.
	assert.True(t, charclass.Is('+', charclass.LitChar))
	assert.False(t, charclass.Is('+', charclass.EncStrSafe))
	assert.False(t, charclass.Is('+', charclass.EncQStrSafe))
}

func TestPercentEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "%20", charclass.PercentEncode(' '))
	assert.Equal(t, "%27", charclass.PercentEncode('\''))
}

func TestHexValue(t *testing.T) {
	t.Parallel()

	v, ok := charclass.HexValue('a')
	assert.True(t, ok)
	assert.Equal(t, byte(10), v)

	v, ok = charclass.HexValue('F')
	assert.True(t, ok)
	assert.Equal(t, byte(15), v)

	_, ok = charclass.HexValue('g')
	assert.False(t, ok)
}
