package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonurl/jsonurl-go/jsonurl"
	"github.com/jsonurl/jsonurl-go/jsonurl/schema"
)

func TestInferScalars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", schema.Infer(jsonurl.Null()).Type)
	assert.Equal(t, "boolean", schema.Infer(jsonurl.BoolValue(true)).Type)
	assert.Equal(t, "string", schema.Infer(jsonurl.StringValue("hi")).Type)
	assert.Equal(t, "integer", schema.Infer(jsonurl.NumberValue(jsonurl.NewLongNumber(42))).Type)
	assert.Equal(t, "number", schema.Infer(jsonurl.NumberValue(jsonurl.NewDoubleNumber(3.14))).Type)
}

func TestInferEmptyComposite(t *testing.T) {
	t.Parallel()

	v := jsonurl.ArrayValue(nil)
	s := schema.Infer(v)
	assert.Equal(t, "", s.Type)
	assert.Nil(t, s.Not)
}

func TestInferArrayHomogeneous(t *testing.T) {
	t.Parallel()

	v := jsonurl.ArrayValue([]jsonurl.Value{
		jsonurl.NumberValue(jsonurl.NewLongNumber(1)),
		jsonurl.NumberValue(jsonurl.NewLongNumber(2)),
	})

	s := schema.Infer(v)
	assert.Equal(t, "array", s.Type)
	assert.Equal(t, "integer", s.Items.Type)
}

func TestInferArrayWidensIntegerAndNumber(t *testing.T) {
	t.Parallel()

	v := jsonurl.ArrayValue([]jsonurl.Value{
		jsonurl.NumberValue(jsonurl.NewLongNumber(1)),
		jsonurl.NumberValue(jsonurl.NewDoubleNumber(1.5)),
	})

	s := schema.Infer(v)
	assert.Equal(t, "number", s.Items.Type)
}

func TestInferObject(t *testing.T) {
	t.Parallel()

	v := jsonurl.ObjectValue([]jsonurl.Member{
		{Key: "name", Value: jsonurl.StringValue("a")},
		{Key: "age", Value: jsonurl.NumberValue(jsonurl.NewLongNumber(9))},
	})

	s := schema.Infer(v)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"name", "age"}, s.PropertyOrder)
	assert.Equal(t, "string", s.Properties["name"].Type)
	assert.Equal(t, "integer", s.Properties["age"].Type)
	assert.ElementsMatch(t, []string{"name", "age"}, s.Required)
}

func TestInferObjectDuplicateKeyMerges(t *testing.T) {
	t.Parallel()

	v := jsonurl.ObjectValue([]jsonurl.Member{
		{Key: "x", Value: jsonurl.NumberValue(jsonurl.NewLongNumber(1))},
		{Key: "x", Value: jsonurl.NumberValue(jsonurl.NewDoubleNumber(1.5))},
	})

	s := schema.Infer(v)
	assert.Equal(t, []string{"x"}, s.PropertyOrder)
	assert.Equal(t, "number", s.Properties["x"].Type)
}

func TestTrueAndFalseSchema(t *testing.T) {
	t.Parallel()

	assert.Nil(t, schema.TrueSchema().Not)
	assert.NotNil(t, schema.FalseSchema().Not)
}
