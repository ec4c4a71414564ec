package merge

import (
	"github.com/signadot/sf-git-merge-driver/debug"
	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/keys"
)

// keyedSeq is one version of a keyed array: record identities in
// document order and the records by identity.
type keyedSeq struct {
	keys    []string
	records map[string]*ir.Node
}

func (s *keyedSeq) has(k string) bool {
	_, ok := s.records[k]
	return ok
}

func keyRecords(x keys.Extractor, v *ir.Node) (*keyedSeq, error) {
	elems := ir.EnsureArray(v)
	res := &keyedSeq{
		keys:    make([]string, 0, len(elems)),
		records: make(map[string]*ir.Node, len(elems)),
	}
	for _, e := range elems {
		k, err := x.Key(e)
		if err != nil {
			return nil, err
		}
		if res.has(k) {
			return nil, &duplicateKeyError{key: k}
		}
		res.keys = append(res.keys, k)
		res.records[k] = e
	}
	return res, nil
}

type duplicateKeyError struct {
	key string
}

func (e *duplicateKeyError) Error() string {
	return "duplicate record key " + e.key
}

// mergeKeyed merges repeated records by identity. Without an extractor,
// or when some version's records cannot be identified one to one, the
// array merges as a whole.
func (m *Merger) mergeKeyed(ctx *mergeContext) Result {
	x, ok := m.keys.Lookup(ctx.attribute)
	if !ok {
		return m.mergeWhole(ctx)
	}
	var seqs [3]*keyedSeq
	for i, v := range []*ir.Node{ctx.ancestor, ctx.local, ctx.other} {
		seq, err := keyRecords(x, v)
		if err != nil {
			if debug.Merge() {
				debug.Logf("merge %s: %v, merging as a whole\n", ctx.attribute, err)
			}
			return m.mergeWhole(ctx)
		}
		seqs[i] = seq
	}
	if m.keys.IsOrdered(ctx.attribute) {
		return m.mergeOrdered(ctx.attribute, seqs[0], seqs[1], seqs[2])
	}
	return m.mergeUnordered(ctx.attribute, seqs[0], seqs[1], seqs[2])
}

func (m *Merger) mergeRecord(attribute string, a, l, o *keyedSeq, k string) Result {
	return m.merge(recordNode, a.records[k], l.records[k], o.records[k], attribute, nil)
}

// mergeUnordered emits records in local order; records only other or
// only the ancestor holds follow their nearest preceding neighbour in
// their own version.
func (m *Merger) mergeUnordered(attribute string, a, l, o *keyedSeq) Result {
	order := weave(l.keys, o.keys, a.keys)
	rs := make([]Result, len(order))
	for i, k := range order {
		rs[i] = m.mergeRecord(attribute, a, l, o, k)
	}
	return Combine(rs...)
}

// weave returns base followed by the keys of each extra sequence not
// yet placed, each inserted after its nearest preceding key from the
// same sequence, or in front when it has none.
func weave(base []string, extras ...[]string) []string {
	placed := make(map[string]bool, len(base))
	for _, k := range base {
		placed[k] = true
	}
	var front []string
	after := map[string][]string{}
	for _, extra := range extras {
		prev, first := "", true
		for _, k := range extra {
			if !placed[k] {
				placed[k] = true
				if first {
					front = append(front, k)
				} else {
					after[prev] = append(after[prev], k)
				}
			}
			prev, first = k, false
		}
	}
	res := make([]string, 0, len(placed))
	emit := func(ks []string) {
		stack := [][]string{ks}
		for len(stack) != 0 {
			top := stack[len(stack)-1]
			if len(top) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			k := top[0]
			stack[len(stack)-1] = top[1:]
			res = append(res, k)
			if next := after[k]; len(next) != 0 {
				stack = append(stack, next)
			}
		}
	}
	emit(front)
	for _, k := range base {
		emit([]string{k})
	}
	return res
}
