package merge

import (
	"cmp"
	"slices"

	"github.com/signadot/sf-git-merge-driver/debug"
	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/libdiff"
)

type side int

const (
	sideLocal side = iota
	sideOther
)

type sideHunk struct {
	side side
	libdiff.Hunk
}

// cluster is a region [os, oe) of the ancestor key sequence together
// with the hunks of either side inside it.
type cluster struct {
	os, oe int
	hunks  []sideHunk
}

// mergeOrdered merges records whose order is significant. Each side is
// aligned with the ancestor; regions changed by one side take that
// side's order, regions changed by both take their common order when
// the changes interleave without ambiguity and conflict otherwise.
// Records outside changed regions merge by content only.
func (m *Merger) mergeOrdered(attribute string, a, l, o *keyedSeq) Result {
	lh := coalesce(libdiff.Align(a.keys, l.keys), a.keys, l.keys)
	oh := coalesce(libdiff.Align(a.keys, o.keys), a.keys, o.keys)
	cs := clusterHunks(a.keys, l.keys, o.keys, lh, oh)
	if debug.Align() {
		debug.Logf("align %s: local %v other %v clusters %v\n", attribute, lh, oh, cs)
	}
	var rs []Result
	pos := 0
	for i := range cs {
		c := &cs[i]
		for ; pos < c.os; pos++ {
			rs = append(rs, m.mergeRecord(attribute, a, l, o, a.keys[pos]))
		}
		rs = append(rs, m.mergeCluster(attribute, a, l, o, c))
		pos = max(pos, c.oe)
	}
	for ; pos < len(a.keys); pos++ {
		rs = append(rs, m.mergeRecord(attribute, a, l, o, a.keys[pos]))
	}
	return Combine(rs...)
}

func (m *Merger) mergeCluster(attribute string, a, l, o *keyedSeq, c *cluster) Result {
	op := a.keys[c.os:c.oe]
	lp, lChanged := c.part(sideLocal, a.keys, l.keys)
	rp, rChanged := c.part(sideOther, a.keys, o.keys)
	var order []string
	switch {
	case lChanged && rChanged && !slices.Equal(lp, rp):
		var ok bool
		order, ok = interleave(op, lp, rp)
		if !ok {
			return m.conflict(records(attribute, l, lp), records(attribute, a, op), records(attribute, o, rp))
		}
	case lChanged:
		order = withDeleted(op, lp)
	default:
		order = withDeleted(op, rp)
	}
	rs := make([]Result, len(order))
	for i, k := range order {
		rs[i] = m.mergeRecord(attribute, a, l, o, k)
	}
	return Combine(rs...)
}

func records(attribute string, seq *keyedSeq, ks []string) []*ir.Node {
	var res []*ir.Node
	for _, k := range ks {
		res = append(res, Fragments(attribute, seq.records[k])...)
	}
	return res
}

// withDeleted lists the keys of op missing from part, then part. The
// missing keys merge as deletions and so produce no output unless the
// other side modified them.
func withDeleted(op, part []string) []string {
	in := set(part)
	res := make([]string, 0, len(op)+len(part))
	for _, k := range op {
		if !in[k] {
			res = append(res, k)
		}
	}
	return append(res, part...)
}

// interleave combines the two side parts of a region both changed. It
// succeeds when the keys they share appear in the same order, keys new
// to one side were not in the ancestor region, and between two shared
// keys at most one side added keys.
func interleave(op, lp, rp []string) ([]string, bool) {
	inO, inL, inR := set(op), set(lp), set(rp)
	for _, k := range lp {
		if !inR[k] && inO[k] {
			return nil, false
		}
	}
	for _, k := range rp {
		if !inL[k] && inO[k] {
			return nil, false
		}
	}
	res := make([]string, 0, len(lp)+len(rp))
	i, j := 0, 0
	for {
		gi, gj := i, j
		for gi < len(lp) && !inR[lp[gi]] {
			gi++
		}
		for gj < len(rp) && !inL[rp[gj]] {
			gj++
		}
		if gi > i && gj > j {
			return nil, false
		}
		res = append(res, lp[i:gi]...)
		res = append(res, rp[j:gj]...)
		if gi == len(lp) || gj == len(rp) {
			if gi != len(lp) || gj != len(rp) {
				return nil, false
			}
			return res, true
		}
		if lp[gi] != rp[gj] {
			return nil, false
		}
		res = append(res, lp[gi])
		i, j = gi+1, gj+1
	}
}

// coalesce joins hunks of one side that share a key, so that a record
// moved within the sequence is one change rather than a deletion and
// an unrelated insertion.
func coalesce(hs []libdiff.Hunk, from, to []string) []libdiff.Hunk {
	hs = slices.Clone(hs)
	for {
		i, j, ok := sharedHunks(hs, from, to)
		if !ok {
			return hs
		}
		joined := libdiff.Hunk{
			OStart: hs[i].OStart,
			OEnd:   hs[j].OEnd,
			SStart: hs[i].SStart,
			SEnd:   hs[j].SEnd,
		}
		hs = slices.Replace(hs, i, j+1, joined)
	}
}

func sharedHunks(hs []libdiff.Hunk, from, to []string) (int, int, bool) {
	for i := range hs {
		ki := hunkKeys(hs[i], from, to)
		for j := i + 1; j < len(hs); j++ {
			if intersects(ki, hunkKeys(hs[j], from, to)) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func hunkKeys(h libdiff.Hunk, from, to []string) map[string]bool {
	res := set(from[h.OStart:h.OEnd])
	for _, k := range to[h.SStart:h.SEnd] {
		res[k] = true
	}
	return res
}

// clusterHunks groups the hunks of both sides into regions: hunks that
// overlap in the ancestor, or whose regions share a key, belong to one
// region. The result is sorted by position, an insertion coming before
// a region starting at the same point.
func clusterHunks(a, l, o []string, lh, oh []libdiff.Hunk) []cluster {
	var cs []cluster
	for _, h := range lh {
		cs = append(cs, cluster{os: h.OStart, oe: h.OEnd, hunks: []sideHunk{{sideLocal, h}}})
	}
	for _, h := range oh {
		cs = append(cs, cluster{os: h.OStart, oe: h.OEnd, hunks: []sideHunk{{sideOther, h}}})
	}
	seqs := [2][]string{l, o}
	for {
		i, j, ok := joinable(cs, a, seqs)
		if !ok {
			break
		}
		cs[i] = join(cs[i], cs[j])
		cs = slices.Delete(cs, j, j+1)
	}
	slices.SortFunc(cs, func(x, y cluster) int {
		return cmp.Or(cmp.Compare(x.os, y.os), cmp.Compare(x.oe, y.oe))
	})
	return cs
}

func joinable(cs []cluster, a []string, seqs [2][]string) (int, int, bool) {
	for i := range cs {
		ki := cs[i].keys(a, seqs)
		for j := i + 1; j < len(cs); j++ {
			if overlaps(cs[i], cs[j]) || intersects(ki, cs[j].keys(a, seqs)) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// overlaps reports whether two regions share ancestor positions. An
// insertion overlaps an insertion at the same point and a region it
// falls strictly inside; regions that only touch do not overlap.
func overlaps(x, y cluster) bool {
	xe, ye := x.os == x.oe, y.os == y.oe
	switch {
	case xe && ye:
		return x.os == y.os
	case xe:
		return y.os < x.os && x.os < y.oe
	case ye:
		return x.os < y.os && y.os < x.oe
	}
	return x.os < y.oe && y.os < x.oe
}

func join(x, y cluster) cluster {
	res := cluster{
		os:    min(x.os, y.os),
		oe:    max(x.oe, y.oe),
		hunks: append(slices.Clone(x.hunks), y.hunks...),
	}
	slices.SortFunc(res.hunks, func(p, q sideHunk) int {
		return cmp.Or(cmp.Compare(p.OStart, q.OStart), cmp.Compare(p.OEnd, q.OEnd), cmp.Compare(p.side, q.side))
	})
	return res
}

func (c *cluster) keys(a []string, seqs [2][]string) map[string]bool {
	res := set(a[c.os:c.oe])
	for _, h := range c.hunks {
		for _, k := range seqs[h.side][h.SStart:h.SEnd] {
			res[k] = true
		}
	}
	return res
}

// part returns the keys of seq, the sequence of side s, that correspond
// to the region, and whether s changed anything in it.
func (c *cluster) part(s side, a, seq []string) ([]string, bool) {
	first, last := -1, -1
	for i := range c.hunks {
		if c.hunks[i].side != s {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first == -1 {
		return a[c.os:c.oe], false
	}
	f, e := c.hunks[first], c.hunks[last]
	start := f.SStart - (f.OStart - c.os)
	end := e.SEnd + (c.oe - e.OEnd)
	return seq[start:end], true
}

func set(ks []string) map[string]bool {
	res := make(map[string]bool, len(ks))
	for _, k := range ks {
		res[k] = true
	}
	return res
}

func intersects(x, y map[string]bool) bool {
	if len(y) < len(x) {
		x, y = y, x
	}
	for k := range x {
		if y[k] {
			return true
		}
	}
	return false
}
