package ir

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML (or JSON) document into a tree, keeping the
// document order of mapping keys.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return FromAny(v)
}

// FromAny converts decoded YAML values to a tree.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return &Node{Type: NumberType, Number: strconv.FormatUint(x, 10)}, nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(x))
		for i, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: fmt.Sprint(item.Key), Val: n}
		}
		return FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// ToAny converts a tree to values that marshal back in document order.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case StringType:
		return node.String
	case BoolType:
		return node.Bool
	case NumberType:
		if i, err := strconv.ParseInt(node.Number, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
			return f
		}
		return node.Number
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToAny(node.Values[i])}
		}
		return res
	}
	return nil
}

func ToYAML(node *Node) ([]byte, error) {
	return yaml.Marshal(ToAny(node))
}

func ToJSON(node *Node) ([]byte, error) {
	return yaml.MarshalWithOptions(ToAny(node), yaml.JSON())
}

// MustYAML is FromYAML for literals known to be well formed.
func MustYAML(s string) *Node {
	n, err := FromYAML([]byte(s))
	if err != nil {
		panic(err)
	}
	return n
}
