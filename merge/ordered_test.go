package merge

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/sf-git-merge-driver/ir"
	"github.com/signadot/sf-git-merge-driver/keys"
)

// rec builds a picklist value; "A" is identity A with label A, "A:X"
// identity A with label X.
func rec(s string) *ir.Node {
	key, label, ok := strings.Cut(s, ":")
	if !ok {
		label = key
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "fullName", Val: ir.FromString(key)},
		{Key: "label", Val: ir.FromString(label)},
	})
}

func recs(s string) *ir.Node {
	res := ir.FromSlice(nil)
	if s == "" {
		return res
	}
	for _, r := range strings.Split(s, ",") {
		res.Values = append(res.Values, rec(r))
	}
	return res
}

// tokens renders merge output in the notation L A S O for markers, _
// for a placeholder and the label for a record.
func tokens(cfg Config, frags []*ir.Node) []string {
	var res []string
	for _, f := range frags {
		k, v := f.Fields[0], f.Values[0]
		switch k {
		case MarkerKey:
			switch v.String {
			case cfg.LocalMarker():
				res = append(res, "L")
			case cfg.AncestorMarker():
				res = append(res, "A")
			case cfg.SeparatorMarker():
				res = append(res, "S")
			case cfg.OtherMarker():
				res = append(res, "O")
			default:
				res = append(res, "?"+v.String)
			}
		case TextKey:
			if v.String == "\n" {
				res = append(res, "_")
			} else {
				res = append(res, v.Text())
			}
		case "fullName":
		case "label":
			res = append(res, tokens(cfg, v.Values)...)
		default:
			inner := tokens(cfg, v.Values)
			res = append(res, inner...)
		}
	}
	return res
}

type orderedTest struct {
	ancestor, local, other string
	want                   string
	conflict               bool
}

func TestOrderedMatrix(t *testing.T) {
	tests := []orderedTest{
		// graceful
		{ancestor: "A,B,C", local: "A:A_MOD,B,C", other: "A,B,C:C_MOD", want: "A_MOD,B,C_MOD"},
		{ancestor: "A", local: "A:A_MOD", other: "A:A_MOD", want: "A_MOD"},
		{ancestor: "A,C", local: "A,B,C", other: "A,C", want: "A,B,C"},
		{ancestor: "A,B,C,D", local: "B,A,C,D", other: "A,B,D,C", want: "B,A,D,C"},
		{ancestor: "A,B,C", local: "B,A,C,D", other: "A,B,C", want: "B,A,C,D"},
		{ancestor: "A,B,C", local: "C,A", other: "A,B,C", want: "C,A"},
		// conflicting
		{ancestor: "A", local: "A:A_LOCAL", other: "A:A_OTHER", want: "L,A_LOCAL,A,A,S,A_OTHER,O", conflict: true},
		{ancestor: "A", local: "A,B", other: "A,C", want: "A,L,B,A,_,S,C,O", conflict: true},
		{ancestor: "A", local: "", other: "A:A_MOD", want: "L,_,A,A,S,A_MOD,O", conflict: true},
		{ancestor: "A,B,C", local: "B,A,C", other: "A,C,B", want: "L,B,A,C,A,A,B,C,S,A,C,B,O", conflict: true},
		{ancestor: "A,B,C,D", local: "A,D", other: "A,B,D", want: "A,L,_,A,B,C,S,B,O,D", conflict: true},
	}
	cfg := DefaultConfig()
	m := New(cfg, keys.Default())
	for _, test := range tests {
		name := test.ancestor + "/" + test.local + "/" + test.other
		t.Run(name, func(t *testing.T) {
			res := m.Merge(recs(test.ancestor), recs(test.local), recs(test.other), "value", nil)
			if res.HasConflict != test.conflict {
				t.Errorf("conflict: got %t want %t", res.HasConflict, test.conflict)
			}
			got := strings.Join(tokens(cfg, res.Output), ",")
			if got != test.want {
				t.Errorf("got %s want %s", got, test.want)
			}
		})
	}
}

func TestOrderedIsRegistered(t *testing.T) {
	if !keys.Default().IsOrdered("value") {
		t.Fatal("value is not ordered")
	}
}

func TestUnorderedKeepsLocalOrder(t *testing.T) {
	reg := keys.Empty().With("item", keys.Field("fullName"))
	cfg := DefaultConfig()
	m := New(cfg, reg)
	tests := []orderedTest{
		{ancestor: "A,B,C", local: "C,B,A", other: "A,B,C", want: "C,B,A"},
		{ancestor: "A,B", local: "B,A", other: "A,X,B", want: "B,A,X"},
		{ancestor: "A,B,C", local: "A,C", other: "A,B,C", want: "A,C"},
		{ancestor: "A", local: "A", other: "X,A", want: "X,A"},
		{ancestor: "A,B", local: "A", other: "A,B:B_MOD", want: "A,L,_,A,B,S,B_MOD,O", conflict: true},
	}
	for _, test := range tests {
		name := test.ancestor + "/" + test.local + "/" + test.other
		t.Run(name, func(t *testing.T) {
			res := m.Merge(recs(test.ancestor), recs(test.local), recs(test.other), "item", nil)
			if res.HasConflict != test.conflict {
				t.Errorf("conflict: got %t want %t", res.HasConflict, test.conflict)
			}
			got := strings.Join(tokens(cfg, res.Output), ",")
			if got != test.want {
				t.Errorf("got %s want %s", got, test.want)
			}
		})
	}
}

func TestWeave(t *testing.T) {
	tests := []struct {
		base   []string
		extras [][]string
		want   []string
	}{
		{
			base: []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			base:   []string{"a", "b"},
			extras: [][]string{{"x", "a", "y", "z", "b", "w"}},
			want:   []string{"x", "a", "y", "z", "b", "w"},
		},
		{
			base:   []string{"c", "a"},
			extras: [][]string{{"a", "x"}, {"a", "y", "c"}},
			want:   []string{"c", "a", "x", "y"},
		},
	}
	for i, test := range tests {
		got := weave(test.base, test.extras...)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%d: (-want +got)\n%s", i, diff)
		}
	}
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		op, lp, rp []string
		want       []string
		ok         bool
	}{
		{op: []string{"a", "b"}, lp: []string{"a", "x", "b"}, rp: []string{"a", "b", "y"}, want: []string{"a", "x", "b", "y"}, ok: true},
		{op: []string{"a"}, lp: []string{"x"}, rp: []string{"y"}},
		{op: []string{"a", "b"}, lp: []string{"b", "a"}, rp: []string{"a", "b"}},
		{op: []string{"a", "b"}, lp: []string{"a"}, rp: []string{"b"}},
	}
	for i, test := range tests {
		got, ok := interleave(test.op, test.lp, test.rp)
		if ok != test.ok {
			t.Errorf("%d: ok %t want %t", i, ok, test.ok)
			continue
		}
		if diff := cmp.Diff(test.want, got); ok && diff != "" {
			t.Errorf("%d: (-want +got)\n%s", i, diff)
		}
	}
}
