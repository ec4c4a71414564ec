package merge

import (
	"slices"
	"strings"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// mergeProperties merges objects key by key, over the sorted union of
// their keys. Outside the root the output is wrapped in the element,
// and an element whose properties all resolve to nothing is dropped.
func (m *Merger) mergeProperties(ctx *mergeContext) Result {
	fields := propertyUnion(ctx.ancestor, ctx.local, ctx.other)
	rs := make([]Result, len(fields))
	for i, f := range fields {
		rs[i] = m.merge(ClassifyNode, ir.Get(ctx.ancestor, f), ir.Get(ctx.local, f), ir.Get(ctx.other, f), f, nil)
		if rs[i].HasConflict && strings.HasPrefix(f, AttrPrefix) {
			return m.elementConflict(ctx)
		}
	}
	res := Combine(rs...)
	if ctx.root != nil || res.IsEmpty() {
		return res
	}
	return Result{
		Output:      []*ir.Node{element(ctx.attribute, res.Output)},
		HasConflict: res.HasConflict,
	}
}

// elementConflict puts the three versions of the element in one
// conflict. Attributes live in the start tag, where markers cannot go.
func (m *Merger) elementConflict(ctx *mergeContext) Result {
	side := func(v *ir.Node) []*ir.Node {
		if ctx.root == nil {
			return Fragments(ctx.attribute, v)
		}
		if v == nil {
			return nil
		}
		return []*ir.Node{element(ctx.root.Name, children(v))}
	}
	ctx.wrapped = ctx.root != nil
	return m.conflict(side(ctx.local), side(ctx.ancestor), side(ctx.other))
}

func propertyUnion(vs ...*ir.Node) []string {
	seen := map[string]bool{}
	var res []string
	for _, v := range vs {
		if v == nil || v.Type != ir.ObjectType {
			continue
		}
		for _, f := range v.Fields {
			if !seen[f] {
				seen[f] = true
				res = append(res, f)
			}
		}
	}
	slices.Sort(res)
	return res
}
