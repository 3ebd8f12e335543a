package yamlconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonurl/jsonurl-go/jsonurl"
	"github.com/jsonurl/jsonurl-go/jsonurl/yamlconv"
)

func TestToValueScalars(t *testing.T) {
	t.Parallel()

	v, err := yamlconv.ToValue([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, jsonurl.StringValue("hello"), v)

	v, err = yamlconv.ToValue([]byte("42"))
	require.NoError(t, err)
	assert.Equal(t, jsonurl.KindNumber, v.Kind)
	assert.Equal(t, int64(42), v.Num.Long)

	v, err = yamlconv.ToValue([]byte("true"))
	require.NoError(t, err)
	assert.Equal(t, jsonurl.BoolValue(true), v)

	v, err = yamlconv.ToValue([]byte("null"))
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestToValueMapping(t *testing.T) {
	t.Parallel()

	v, err := yamlconv.ToValue([]byte("name: widget\ncount: 3\n"))
	require.NoError(t, err)

	members, ok := v.AsObject()
	require.True(t, ok)
	assert.Len(t, members, 2)

	assert.Equal(t, "count", members[0].Key)
	assert.Equal(t, "name", members[1].Key)
}

func TestToValueSequence(t *testing.T) {
	t.Parallel()

	v, err := yamlconv.ToValue([]byte("- a\n- b\n- c\n"))
	require.NoError(t, err)

	elems, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, elems, 3)
	assert.Equal(t, jsonurl.StringValue("a"), elems[0])
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	v := jsonurl.ObjectValue([]jsonurl.Member{
		{Key: "a", Value: jsonurl.NumberValue(jsonurl.NewLongNumber(1))},
		{Key: "b", Value: jsonurl.StringValue("two")},
	})

	out, err := yamlconv.ToYAML(v)
	require.NoError(t, err)

	back, err := yamlconv.ToValue(out)
	require.NoError(t, err)

	members, ok := back.AsObject()
	require.True(t, ok)
	require.Len(t, members, 2)
}

func TestToYAMLNullAndEmptyComposite(t *testing.T) {
	t.Parallel()

	out, err := yamlconv.ToYAML(jsonurl.Null())
	require.NoError(t, err)
	assert.Contains(t, string(out), "null")

	out, err = yamlconv.ToYAML(jsonurl.ArrayValue(nil))
	require.NoError(t, err)
	assert.Contains(t, string(out), "[]")
}
