// Package schema infers a JSON Schema describing the shape of a
// [jsonurl.Value], the way [github.com/jsonurl/jsonurl-go/jsonurl] decodes
// query-string text.
package schema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
	typeNull    = "null"
)

// Infer returns a [*jsonschema.Schema] describing v's shape.
func Infer(v jsonurl.Value) *jsonschema.Schema {
	switch v.Kind {
	case jsonurl.KindNull:
		return &jsonschema.Schema{Type: typeNull}
	case jsonurl.KindBool:
		return &jsonschema.Schema{Type: typeBoolean}
	case jsonurl.KindNumber:
		return &jsonschema.Schema{Type: inferNumberType(v.Num)}
	case jsonurl.KindString:
		return &jsonschema.Schema{Type: typeString}
	case jsonurl.KindEmptyComposite:
		return TrueSchema()
	case jsonurl.KindArray:
		return inferArray(v.Arr)
	case jsonurl.KindObject:
		return inferObject(v.Obj)
	default:
		return TrueSchema()
	}
}

func inferNumberType(n jsonurl.Number) string {
	switch n.Kind {
	case jsonurl.NumberLong, jsonurl.NumberBigInt:
		return typeInteger
	default:
		return typeNumber
	}
}

func inferArray(elems []jsonurl.Value) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: typeArray}

	var items *jsonschema.Schema

	for i, elem := range elems {
		elemSchema := Infer(elem)
		if i == 0 {
			items = elemSchema

			continue
		}

		items = mergeSchemas(items, elemSchema)
	}

	s.Items = items

	return s
}

func inferObject(members []jsonurl.Member) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: typeObject}

	if len(members) == 0 {
		return s
	}

	s.Properties = make(map[string]*jsonschema.Schema, len(members))

	order := make([]string, 0, len(members))

	for _, m := range members {
		if existing, ok := s.Properties[m.Key]; ok {
			s.Properties[m.Key] = mergeSchemas(existing, Infer(m.Value))

			continue
		}

		s.Properties[m.Key] = Infer(m.Value)
		order = append(order, m.Key)
	}

	s.PropertyOrder = order
	s.Required = order

	return s
}

// mergeSchemas merges two schemas using union semantics: property sets
// union, required lists intersect, and conflicting types widen.
func mergeSchemas(a, b *jsonschema.Schema) *jsonschema.Schema {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	result := &jsonschema.Schema{}

	if merged := widenType(a.Type, b.Type); merged != "" {
		result.Type = merged
	}

	if a.Properties != nil || b.Properties != nil {
		mergeProperties(result, a, b)
	}

	result.Required = intersectStrings(a.Required, b.Required)

	switch {
	case a.Items != nil && b.Items != nil:
		result.Items = mergeSchemas(a.Items, b.Items)
	case a.Items != nil:
		result.Items = a.Items
	default:
		result.Items = b.Items
	}

	return result
}

// widenType returns the widened type when merging two type strings. Returns
// empty string (no constraint) for incompatible types.
func widenType(a, b string) string {
	if a == b {
		return a
	}

	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	if (a == typeInteger && b == typeNumber) || (a == typeNumber && b == typeInteger) {
		return typeNumber
	}

	return ""
}

func mergeProperties(result, a, b *jsonschema.Schema) {
	result.Properties = make(map[string]*jsonschema.Schema)

	var order []string

	if a.Properties != nil {
		for _, k := range propertyKeys(a) {
			result.Properties[k] = a.Properties[k]
			order = append(order, k)
		}
	}

	if b.Properties != nil {
		for _, k := range propertyKeys(b) {
			if existing, ok := result.Properties[k]; ok {
				result.Properties[k] = mergeSchemas(existing, b.Properties[k])
			} else {
				result.Properties[k] = b.Properties[k]
				order = append(order, k)
			}
		}
	}

	result.PropertyOrder = order
}

func propertyKeys(s *jsonschema.Schema) []string {
	if len(s.PropertyOrder) > 0 {
		seen := make(map[string]bool, len(s.PropertyOrder))

		keys := make([]string, 0, len(s.PropertyOrder))

		for _, k := range s.PropertyOrder {
			if _, ok := s.Properties[k]; ok {
				keys = append(keys, k)
				seen[k] = true
			}
		}

		for k := range s.Properties {
			if !seen[k] {
				keys = append(keys, k)
			}
		}

		return keys
	}

	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}

	return keys
}

func intersectStrings(a, b []string) []string {
	if a == nil || b == nil {
		return nil
	}

	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}

	var result []string

	for _, s := range b {
		if set[s] {
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

// TrueSchema returns a schema that validates everything.
func TrueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// FalseSchema returns a schema that validates nothing.
func FalseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
