// Package namespace moves xmlns declarations out of the way of a merge.
//
// Namespace attributes on the root element are the same in nearly
// every version of a metadata file, but a difference in spelling or
// order would otherwise surface as a conflict. They are stripped from
// the parsed documents before the merge and put back on the merged root.
package namespace

import (
	"slices"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/merge"
)

const Prefix = merge.AttrPrefix + "xmlns"

// Strip removes the namespace attributes of the root element of doc
// and returns them by attribute key. doc is modified in place.
func Strip(doc *ir.Node) map[string]string {
	res := map[string]string{}
	name := merge.RootName(doc)
	if name == "" {
		return res
	}
	root := ir.Get(doc, name)
	if root == nil || root.Type != ir.ObjectType {
		return res
	}
	for _, f := range slices.Clone(root.Fields) {
		if !IsNamespace(f) {
			continue
		}
		if v := ir.Get(root, f); v.IsScalar() {
			res[f] = v.Text()
		}
		root.Delete(f)
	}
	if len(root.Fields) == 0 {
		// the root held nothing else and reads as an empty element
		doc.Set(name, ir.FromString(""))
	}
	return res
}

// IsNamespace reports whether key is an xmlns attribute key.
func IsNamespace(key string) bool {
	return key == Prefix || strings.HasPrefix(key, Prefix+":")
}

// Merge unions namespace maps. Earlier maps win.
func Merge(nss ...map[string]string) map[string]string {
	res := map[string]string{}
	for i := len(nss) - 1; i >= 0; i-- {
		for k, v := range nss[i] {
			res[k] = v
		}
	}
	return res
}

// Inject returns frags with the namespace attributes prepended to each
// top level element fragment, the default namespace first. There is
// more than one only when the sides of a root conflict are written out
// whole.
func Inject(frags []*ir.Node, ns map[string]string) []*ir.Node {
	if len(ns) == 0 {
		return frags
	}
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == Prefix:
			return -1
		case b == Prefix:
			return 1
		}
		return strings.Compare(a, b)
	})
	res := slices.Clone(frags)
	for i, f := range res {
		if len(f.Fields) != 1 || merge.IsInline(f.Fields[0]) || f.Fields[0] == merge.DeclarationKey {
			continue
		}
		attrs := make([]*ir.Node, len(keys))
		for j, k := range keys {
			attrs[j] = ir.FromKeyVals([]ir.KeyVal{{Key: k, Val: ir.FromString(ns[k])}})
		}
		kids := append(attrs, f.Values[0].Values...)
		res[i] = ir.FromKeyVals([]ir.KeyVal{{Key: f.Fields[0], Val: ir.FromSlice(kids)}})
	}
	return res
}
