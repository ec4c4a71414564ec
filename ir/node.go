package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one position of a document tree.
//
// For ObjectType, Fields[i] names Values[i] and field order is the
// document order. For ArrayType, Values holds the elements. Leaves
// keep their value in String, Bool or Number.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool
	Number string
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// IsScalar reports whether y is a string, number or boolean.
func (y *Node) IsScalar() bool {
	return y != nil && y.Type != NullType && y.Type.IsLeaf()
}

// Text renders a scalar as the text it would have in a document.
// Non scalars render as the empty string.
func (y *Node) Text() string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		return y.Number
	case BoolType:
		return strconv.FormatBool(y.Bool)
	}
	return ""
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: strconv.FormatInt(v, 10)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Number: strconv.FormatFloat(f, 'f', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// FromMap builds an object with fields in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: yMap[k]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: slices.Clone(ySlice),
	}
}

func ToMap(node *Node) map[string]*Node {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

// Get returns the value of field in y, or nil if y is not an object or
// has no such field.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the value of field in y, appending the field if absent.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Delete removes field from y, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Fields = slices.Delete(y.Fields, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return true
		}
	}
	return false
}
