package ir

import (
	"cmp"
	"slices"
	"strings"
)

// typeRank orders node types: Null < Bool < Number < String < Array < Object.
var typeRank = [...]int{
	NullType:   1,
	BoolType:   2,
	NumberType: 3,
	StringType: 4,
	ArrayType:  5,
	ObjectType: 6,
}

// Compare returns -1, 0 or +1 as a sorts before, equal to, or after b.
// nil sorts before any node.
//
// Objects compare by their fields in sorted order, so two objects
// holding the same fields in a different document order are equal.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(typeRank[a.Type], typeRank[b.Type]); c != 0 {
		return c
	}
	switch a.Type {
	case NumberType:
		return strings.Compare(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		return cmp.Compare(boolRank(a.Bool), boolRank(b.Bool))
	case ArrayType:
		return compareSeq(a, b, identity(a), identity(b), false)
	case ObjectType:
		return compareSeq(a, b, byField(a), byField(b), true)
	}
	return 0
}

// Equal reports deep equality of a and b.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}

// compareSeq walks the values of a and b in the given index orders,
// comparing field names first when withFields is set.
func compareSeq(a, b *Node, ia, ib []int, withFields bool) int {
	for k := range min(len(ia), len(ib)) {
		i, j := ia[k], ib[k]
		if withFields {
			if c := strings.Compare(a.Fields[i], b.Fields[j]); c != 0 {
				return c
			}
		}
		if c := Compare(a.Values[i], b.Values[j]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ia), len(ib))
}

func identity(n *Node) []int {
	idx := make([]int, len(n.Values))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func byField(n *Node) []int {
	idx := identity(n)
	slices.SortStableFunc(idx, func(x, y int) int {
		return strings.Compare(n.Fields[x], n.Fields[y])
	})
	return idx
}
