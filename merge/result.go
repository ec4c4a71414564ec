package merge

import "github.com/signadot/sf-git-merge-driver/ir"

// Result is the merged form of one position: its fragments in document
// order, and whether any of them is a conflict.
type Result struct {
	Output      []*ir.Node
	HasConflict bool
}

// Combine concatenates results in order. The empty combination is the
// empty, conflict free result.
func Combine(rs ...Result) Result {
	switch len(rs) {
	case 0:
		return Result{}
	case 1:
		return rs[0]
	}
	n := 0
	for i := range rs {
		n += len(rs[i].Output)
	}
	res := Result{Output: make([]*ir.Node, 0, n)}
	for i := range rs {
		res.Output = append(res.Output, rs[i].Output...)
		res.HasConflict = res.HasConflict || rs[i].HasConflict
	}
	return res
}

func (r Result) IsEmpty() bool {
	return len(r.Output) == 0
}
