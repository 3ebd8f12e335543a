// Package yamlconv converts between YAML documents and [jsonurl.Value],
// using [github.com/goccy/go-yaml] for parsing and rendering.
package yamlconv

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/jsonurl/jsonurl-go/jsonurl"
)

// ToValue parses a YAML document into a [jsonurl.Value].
func ToValue(data []byte) (jsonurl.Value, error) {
	var v any

	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return jsonurl.Value{}, fmt.Errorf("parsing yaml: %w", err)
	}

	return anyToValue(v), nil
}

// ToYAML renders v as a YAML document.
func ToYAML(v jsonurl.Value) ([]byte, error) {
	out, err := yaml.Marshal(valueToAny(v))
	if err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}

	return out, nil
}

func anyToValue(v any) jsonurl.Value {
	switch t := v.(type) {
	case nil:
		return jsonurl.Null()
	case bool:
		return jsonurl.BoolValue(t)
	case string:
		return jsonurl.StringValue(t)
	case int:
		return jsonurl.NumberValue(jsonurl.NewLongNumber(int64(t)))
	case int64:
		return jsonurl.NumberValue(jsonurl.NewLongNumber(t))
	case uint64:
		return jsonurl.NumberValue(jsonurl.NewLongNumber(int64(t)))
	case float64:
		return jsonurl.NumberValue(jsonurl.NewDoubleNumber(t))
	case []any:
		elems := make([]jsonurl.Value, len(t))
		for i, e := range t {
			elems[i] = anyToValue(e)
		}

		return jsonurl.ArrayValue(elems)
	case map[string]any:
		return mapToValue(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = val
		}

		return mapToValue(m)
	default:
		return jsonurl.StringValue(fmt.Sprint(t))
	}
}

// mapToValue converts a YAML mapping to an object value, with keys sorted
// for deterministic output since Go maps carry no ordering of their own.
func mapToValue(m map[string]any) jsonurl.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	members := make([]jsonurl.Member, len(keys))
	for i, k := range keys {
		members[i] = jsonurl.Member{Key: k, Value: anyToValue(m[k])}
	}

	return jsonurl.ObjectValue(members)
}

func valueToAny(v jsonurl.Value) any {
	switch v.Kind {
	case jsonurl.KindNull:
		return nil
	case jsonurl.KindBool:
		return v.Bool
	case jsonurl.KindString:
		return v.Str
	case jsonurl.KindNumber:
		return numberToAny(v.Num)
	case jsonurl.KindArray:
		out := make([]any, len(v.Arr))
		for i, e := range v.Arr {
			out[i] = valueToAny(e)
		}

		return out
	case jsonurl.KindObject:
		out := make(map[string]any, len(v.Obj))
		for _, m := range v.Obj {
			out[m.Key] = valueToAny(m.Value)
		}

		return out
	case jsonurl.KindEmptyComposite:
		return []any{}
	default:
		return nil
	}
}

func numberToAny(n jsonurl.Number) any {
	switch n.Kind {
	case jsonurl.NumberLong:
		return n.Long
	case jsonurl.NumberBigInt:
		return n.BigInt.String()
	case jsonurl.NumberBigDecimal:
		return n.Dec.String()
	default:
		return n.Float64()
	}
}
