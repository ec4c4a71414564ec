package merge

import "github.com/signadot/sf-git-merge-driver/ir"

// mergeText is the three-way merge of scalars: a side that left the
// ancestor unchanged yields to the other.
func (m *Merger) mergeText(ctx *mergeContext) Result {
	a, l, o := absentIfEmpty(ctx.ancestor), ctx.local, ctx.other
	attr := ctx.attribute
	switch {
	case ir.Equal(l, o):
		return Result{Output: leaves(attr, l)}
	case a != nil && ir.Equal(a, l):
		return Result{Output: leaves(attr, o)}
	case a != nil && ir.Equal(a, o):
		return Result{Output: leaves(attr, l)}
	}
	return m.conflict(leaves(attr, l), leaves(attr, a), leaves(attr, o))
}

func absentIfEmpty(v *ir.Node) *ir.Node {
	if v == nil || v.Type == ir.NullType {
		return nil
	}
	return v
}

// mergeWhole merges values that have no identity to align by: equal
// sides are adopted, any other difference conflicts as a whole.
func (m *Merger) mergeWhole(ctx *mergeContext) Result {
	if ir.Equal(ctx.local, ctx.other) {
		return Result{Output: m.adopt(ctx, ctx.local)}
	}
	return m.conflict(m.adopt(ctx, ctx.local), m.adopt(ctx, absentIfEmpty(ctx.ancestor)), m.adopt(ctx, ctx.other))
}
