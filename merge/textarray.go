package merge

import (
	"slices"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// mergeTextArray merges lists of plain values as sets: the union of the
// three versions less what either side removed from the ancestor. The
// result is sorted and never conflicts.
func (m *Merger) mergeTextArray(ctx *mergeContext) Result {
	a := textSet(ctx.ancestor)
	l := textSet(ctx.local)
	o := textSet(ctx.other)
	all := map[string]bool{}
	for _, s := range []map[string]bool{a, l, o} {
		for v := range s {
			all[v] = true
		}
	}
	vals := make([]string, 0, len(all))
	for v := range all {
		if a[v] && (!l[v] || !o[v]) {
			continue
		}
		vals = append(vals, v)
	}
	slices.Sort(vals)
	res := Result{Output: make([]*ir.Node, len(vals))}
	for i, v := range vals {
		res.Output[i] = leafFragment(ctx.attribute, ir.FromString(v))
	}
	return res
}

func textSet(v *ir.Node) map[string]bool {
	res := map[string]bool{}
	for _, e := range ir.EnsureArray(v) {
		if e.IsScalar() {
			res[e.Text()] = true
		}
	}
	return res
}
