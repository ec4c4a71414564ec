package ir

// IsEmpty reports whether node carries no content: nil, null, the empty
// string, and objects or arrays without children. Booleans and numbers
// are never empty, false and 0 included.
func IsEmpty(node *Node) bool {
	if node == nil {
		return true
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) == 0
	case ArrayType:
		return len(node.Values) == 0
	case StringType:
		return node.String == ""
	case NumberType, BoolType:
		return false
	case NullType:
		return true
	default:
		panic("type")
	}
}

// EnsureArray normalizes node to list shape: nil and null become an
// empty list, an array yields its values, anything else becomes a one
// element list.
func EnsureArray(node *Node) []*Node {
	if node == nil || node.Type == NullType {
		return nil
	}
	if node.Type == ArrayType {
		return node.Values
	}
	return []*Node{node}
}
