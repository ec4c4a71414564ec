package merge

import (
	"fmt"

	"github.com/signadot/sf-git-merge-driver/ir"
)

func (m *Merger) dispatch(ctx *mergeContext, s Scenario) Result {
	switch s {
	case None, AncestorOnly:
		// absent everywhere, or deleted by both
		return Result{}
	case OtherOnly:
		return Result{Output: m.adopt(ctx, ctx.other)}
	case LocalOnly:
		return Result{Output: m.adopt(ctx, ctx.local)}
	case AncestorAndLocal:
		return m.deletedBySide(ctx, ctx.local, true)
	case AncestorAndOther:
		return m.deletedBySide(ctx, ctx.other, false)
	case LocalAndOther:
		if ir.Equal(ctx.local, ctx.other) {
			return Result{Output: m.adopt(ctx, ctx.local)}
		}
		return m.mergeNode(ctx)
	case All:
		return m.mergeNode(ctx)
	default:
		panic(fmt.Sprintf("unhandled scenario %s", s))
	}
}

// deletedBySide handles a value one side deleted while the other, kept,
// still holds it. An unmodified kept value follows the deletion.
func (m *Merger) deletedBySide(ctx *mergeContext, kept *ir.Node, keptIsLocal bool) Result {
	if ir.Equal(ctx.ancestor, kept) {
		return Result{}
	}
	keptOut := m.adopt(ctx, kept)
	ancestorOut := m.adopt(ctx, ctx.ancestor)
	if keptIsLocal {
		return m.conflict(keptOut, ancestorOut, nil)
	}
	return m.conflict(nil, ancestorOut, keptOut)
}

func (m *Merger) mergeNode(ctx *mergeContext) Result {
	kind := ctx.factory(m.keys, ctx.ancestor, ctx.local, ctx.other, ctx.attribute)
	switch kind {
	case TextArrayNode:
		return m.mergeTextArray(ctx)
	case PropertyNode:
		return m.mergeProperties(ctx)
	case KeyedArrayNode:
		return m.mergeKeyed(ctx)
	case TextNode:
		return m.mergeText(ctx)
	case OpaqueNode:
		return m.mergeWhole(ctx)
	default:
		panic(fmt.Sprintf("unhandled node kind %s", kind))
	}
}
