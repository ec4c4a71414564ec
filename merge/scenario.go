package merge

import (
	"fmt"

	"github.com/signadot/sf-git-merge-driver/ir"
)

// Scenario records which of ancestor, local and other hold content at
// one position, as the decimal digits 100*ancestor + 10*local + other.
type Scenario int

const (
	None             Scenario = 0
	OtherOnly        Scenario = 1
	LocalOnly        Scenario = 10
	LocalAndOther    Scenario = 11
	AncestorOnly     Scenario = 100
	AncestorAndOther Scenario = 101
	AncestorAndLocal Scenario = 110
	All              Scenario = 111
)

func Scenarios() []Scenario {
	return []Scenario{None, OtherOnly, LocalOnly, LocalAndOther, AncestorOnly, AncestorAndOther, AncestorAndLocal, All}
}

func (s Scenario) String() string {
	switch s {
	case None:
		return "NONE"
	case OtherOnly:
		return "OTHER_ONLY"
	case LocalOnly:
		return "LOCAL_ONLY"
	case LocalAndOther:
		return "LOCAL_AND_OTHER"
	case AncestorOnly:
		return "ANCESTOR_ONLY"
	case AncestorAndOther:
		return "ANCESTOR_AND_OTHER"
	case AncestorAndLocal:
		return "ANCESTOR_AND_LOCAL"
	case All:
		return "ALL"
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

// Classify computes the scenario of three values. Leaves must already
// be wrapped (see wrapLeaf) so that false, 0 and "" count as present.
func Classify(ancestor, local, other *ir.Node) Scenario {
	s := None
	if !ir.IsEmpty(ancestor) {
		s += 100
	}
	if !ir.IsEmpty(local) {
		s += 10
	}
	if !ir.IsEmpty(other) {
		s++
	}
	return s
}

// wrapLeaf gives a scalar its element form {attribute: [{"#text": v}]}
// ahead of classification. Other values are returned as is.
func wrapLeaf(attribute string, v *ir.Node) *ir.Node {
	if !v.IsScalar() {
		return v
	}
	return element(attribute, []*ir.Node{textFragment(v)})
}
