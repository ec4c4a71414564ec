package merge

import (
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// Keys of inline fragments.
const (
	TextKey        = "#text"
	CommentKey     = "#xml__comment"
	MarkerKey      = "#conflict"
	AttrPrefix     = "@_"
	DeclarationKey = "?xml"
)

// IsInline reports whether attribute names an inline fragment (text,
// comment, marker or attribute) rather than a child element.
func IsInline(attribute string) bool {
	return strings.HasPrefix(attribute, "#") || strings.HasPrefix(attribute, AttrPrefix)
}

func element(name string, children []*ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{{Key: name, Val: ir.FromSlice(children)}})
}

func textFragment(v *ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{{Key: TextKey, Val: v}})
}

func markerFragment(line string) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{{Key: MarkerKey, Val: ir.FromString(line)}})
}

// leafFragment renders the scalar v found under attribute.
func leafFragment(attribute string, v *ir.Node) *ir.Node {
	if IsInline(attribute) {
		return ir.FromKeyVals([]ir.KeyVal{{Key: attribute, Val: v}})
	}
	return element(attribute, []*ir.Node{textFragment(v)})
}

// Fragments renders v, the value found under attribute in a document
// tree, in fragment form. Arrays render one fragment per element.
func Fragments(attribute string, v *ir.Node) []*ir.Node {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.ArrayType:
		var res []*ir.Node
		for _, e := range v.Values {
			res = append(res, Fragments(attribute, e)...)
		}
		return res
	case ir.ObjectType:
		return []*ir.Node{element(attribute, children(v))}
	default:
		return []*ir.Node{leafFragment(attribute, v)}
	}
}

// children renders the fields of the object v in document order.
func children(v *ir.Node) []*ir.Node {
	if v == nil || v.Type != ir.ObjectType {
		return Fragments(TextKey, v)
	}
	var res []*ir.Node
	for i, f := range v.Fields {
		res = append(res, Fragments(f, v.Values[i])...)
	}
	return res
}

func leaves(attribute string, v *ir.Node) []*ir.Node {
	if v == nil || v.Type == ir.NullType {
		return nil
	}
	return []*ir.Node{leafFragment(attribute, v)}
}
