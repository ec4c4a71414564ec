package merge

import "github.com/signadot/sf-git-merge-driver/ir"

// Placeholder stands in for an empty side of a conflict so that every
// section of the envelope has content.
func Placeholder() *ir.Node {
	return textFragment(ir.FromString("\n"))
}

// BuildConflict wraps the three sides of a conflict in marker lines:
// local marker, local, ancestor marker, ancestor, separator, other,
// other marker.
func BuildConflict(cfg Config, local, ancestor, other []*ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(local)+len(ancestor)+len(other)+4)
	res = append(res, markerFragment(cfg.LocalMarker()))
	res = appendSide(res, local)
	res = append(res, markerFragment(cfg.AncestorMarker()))
	res = appendSide(res, ancestor)
	res = append(res, markerFragment(cfg.SeparatorMarker()))
	res = appendSide(res, other)
	res = append(res, markerFragment(cfg.OtherMarker()))
	return res
}

func appendSide(dst, side []*ir.Node) []*ir.Node {
	if len(side) == 0 {
		return append(dst, Placeholder())
	}
	return append(dst, side...)
}

func (m *Merger) conflict(local, ancestor, other []*ir.Node) Result {
	return Result{
		Output:      BuildConflict(m.cfg, local, ancestor, other),
		HasConflict: true,
	}
}
