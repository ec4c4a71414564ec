package ir

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromYAMLKeepsOrder(t *testing.T) {
	n, err := FromYAML([]byte(`
zeta: "1"
alpha:
  - b
  - a
mid:
  inner: true
`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, n.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	alpha := Get(n, "alpha")
	if alpha.Type != ArrayType || alpha.Values[0].String != "b" {
		t.Errorf("alpha = %v", alpha)
	}
	if inner := Get(Get(n, "mid"), "inner"); inner.Type != BoolType || !inner.Bool {
		t.Errorf("inner = %v", inner)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	src := "b: x\na:\n- \"1\"\n- y\n"
	n := MustYAML(src)
	d, err := ToYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(n, back) {
		t.Errorf("round trip changed tree:\n%s", d)
	}
	if !strings.HasPrefix(string(d), "b:") {
		t.Errorf("order lost:\n%s", d)
	}
}

func TestToJSON(t *testing.T) {
	n := FromKeyVals([]KeyVal{
		{Key: "name", Val: FromString("A")},
		{Key: "on", Val: FromBool(false)},
	})
	d, err := ToJSON(n)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(strings.Fields(string(d)), "")
	if got != `{"name":"A","on":false}` {
		t.Errorf("got %s", got)
	}
}
