package libdiff

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Hunk is a region where from[OStart:OEnd] was replaced by
// to[SStart:SEnd]. A hunk with OStart == OEnd is a pure insertion before
// from[OStart], one with SStart == SEnd a pure deletion.
type Hunk struct {
	OStart, OEnd int
	SStart, SEnd int
}

// Align computes the hunks turning from into to. Items are compared by
// identity.
//
// like libdiff's index diff, every distinct item is mapped to a rune and
// the rune sequences are diffed, so the alignment is a longest common
// subsequence of the two.
func Align(from, to []string) []Hunk {
	m := map[string]rune{}
	fromRunes := mapItems(m, from)
	toRunes := mapItems(m, to)
	diffCfg := diffpatch.New()
	// no deadline: approximate diffs are valid but less stable.
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var (
		res  []Hunk
		cur  *Hunk
		o, s int
	)
	open := func() {
		if cur == nil {
			cur = &Hunk{OStart: o, OEnd: o, SStart: s, SEnd: s}
		}
	}
	for i := range diffs {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			if cur != nil {
				res = append(res, *cur)
				cur = nil
			}
			o += n
			s += n
		case diffpatch.DiffDelete:
			open()
			o += n
			cur.OEnd = o
		case diffpatch.DiffInsert:
			open()
			s += n
			cur.SEnd = s
		}
	}
	if cur != nil {
		res = append(res, *cur)
	}
	return res
}

func mapItems(m map[string]rune, items []string) []rune {
	rs := make([]rune, len(items))
	for i, item := range items {
		r, ok := m[item]
		if !ok {
			r = itemRune(len(m))
			m[item] = r
		}
		rs[i] = r
	}
	return rs
}

// itemRune skips the surrogate range, which does not survive the
// rune to string conversions inside diffmatchpatch.
func itemRune(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
