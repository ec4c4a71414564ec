package merge

import (
	"fmt"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/keys"
)

// NodeKind selects how a position present in more than one version is
// merged.
type NodeKind int

const (
	TextArrayNode NodeKind = iota
	PropertyNode
	KeyedArrayNode
	TextNode
	// OpaqueNode values have no structure to merge by and conflict as a
	// whole when local and other differ.
	OpaqueNode
)

func (k NodeKind) String() string {
	switch k {
	case TextArrayNode:
		return "text-array"
	case PropertyNode:
		return "property"
	case KeyedArrayNode:
		return "keyed-array"
	case TextNode:
		return "text"
	case OpaqueNode:
		return "opaque"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// NodeFactory picks the node kind of a position from the shapes of its
// values.
type NodeFactory func(reg *keys.Registry, ancestor, local, other *ir.Node, attribute string) NodeKind

// ClassifyNode is the default factory. In priority order: repeated
// comments are opaque, their order being their meaning; arrays of
// scalars are text arrays; objects of an element without an extractor
// merge by property; other composites are keyed arrays; the rest is
// text.
func ClassifyNode(reg *keys.Registry, ancestor, local, other *ir.Node, attribute string) NodeKind {
	vs := present(ancestor, local, other)
	if attribute == CommentKey && !allScalars(vs) {
		return OpaqueNode
	}
	if isTextArray(vs) {
		return TextArrayNode
	}
	if _, ok := reg.Lookup(attribute); !ok && allObjects(vs) {
		return PropertyNode
	}
	for _, v := range vs {
		if !v.IsScalar() {
			return KeyedArrayNode
		}
	}
	return TextNode
}

// recordNode is the factory for the records of a keyed array once they
// have been paired by identity. Records never go back to the keyed
// array merge.
func recordNode(reg *keys.Registry, ancestor, local, other *ir.Node, attribute string) NodeKind {
	vs := present(ancestor, local, other)
	switch {
	case allObjects(vs):
		return PropertyNode
	case allScalars(vs):
		return TextNode
	}
	return OpaqueNode
}

func present(vs ...*ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(vs))
	for _, v := range vs {
		if v == nil || v.Type == ir.NullType {
			continue
		}
		res = append(res, v)
	}
	return res
}

func allObjects(vs []*ir.Node) bool {
	if len(vs) == 0 {
		return false
	}
	for _, v := range vs {
		if v.Type != ir.ObjectType {
			return false
		}
	}
	return true
}

// isTextArray holds when some value is a non empty array of scalars and
// every value is a scalar or such an array.
func isTextArray(vs []*ir.Node) bool {
	found := false
	for _, v := range vs {
		switch {
		case v.IsScalar():
		case v.Type == ir.ArrayType && allScalars(v.Values):
			found = found || len(v.Values) != 0
		default:
			return false
		}
	}
	return found
}

func allScalars(vs []*ir.Node) bool {
	for _, v := range vs {
		if !v.IsScalar() {
			return false
		}
	}
	return true
}
