package jsonurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

func TestValueConstructors(t *testing.T) {
	t.Parallel()

	assert.True(t, jsonurl.Null().IsNull())
	assert.Equal(t, jsonurl.KindBool, jsonurl.BoolValue(true).Kind)
	assert.Equal(t, jsonurl.KindString, jsonurl.StringValue("x").Kind)

	assert.Equal(t, jsonurl.KindEmptyComposite, jsonurl.ArrayValue(nil).Kind)
	assert.Equal(t, jsonurl.KindEmptyComposite, jsonurl.ObjectValue(nil).Kind)

	arr := jsonurl.ArrayValue([]jsonurl.Value{jsonurl.Null()})
	assert.Equal(t, jsonurl.KindArray, arr.Kind)

	obj := jsonurl.ObjectValue([]jsonurl.Member{{Key: "a", Value: jsonurl.Null()}})
	assert.Equal(t, jsonurl.KindObject, obj.Kind)
}

func TestValueAsArrayAsObject(t *testing.T) {
	t.Parallel()

	empty := jsonurl.ArrayValue(nil)

	elems, ok := empty.AsArray()
	assert.True(t, ok)
	assert.Empty(t, elems)

	members, ok := empty.AsObject()
	assert.True(t, ok)
	assert.Empty(t, members)

	str := jsonurl.StringValue("x")

	_, ok = str.AsArray()
	assert.False(t, ok)

	_, ok = str.AsObject()
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tcs := map[jsonurl.Kind]string{
		jsonurl.KindNull:           "null",
		jsonurl.KindBool:           "boolean",
		jsonurl.KindNumber:         "number",
		jsonurl.KindString:         "string",
		jsonurl.KindArray:          "array",
		jsonurl.KindObject:         "object",
		jsonurl.KindEmptyComposite: "empty composite",
	}

	for kind, want := range tcs {
		assert.Equal(t, want, kind.String())
	}
}

func TestNumberFloat64(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 42.0, jsonurl.NewLongNumber(42).Float64(), 0)
	assert.InDelta(t, 3.5, jsonurl.NewDoubleNumber(3.5).Float64(), 0)
}
