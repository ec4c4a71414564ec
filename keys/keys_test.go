package keys

import (
	"errors"
	"testing"

	"github.com/signadot/sf-git-merge-driver/ir"
)

func TestSpecKey(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		record  string
		want    string
		wantErr error
	}{
		{"single field", Field("field"), `{field: Account.Name, editable: "true"}`, "Account.Name", nil},
		{"joined", Joined(".", "layout", "recordType"), `{layout: Account-Layout, recordType: Account.Biz}`, "Account-Layout.Account.Biz", nil},
		{"joined optional missing", Joined(".", "layout", "recordType"), `{layout: Account-Layout}`, "Account-Layout", nil},
		{"required missing", Field("field"), `{editable: "true"}`, "", ErrNoKey},
		{"own keys", Spec{OwnKeys: true}, `{b: "1", a: "2"}`, "a,b", nil},
		{"scalar record", Field("field"), `just-text`, "just-text", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Key(ir.MustYAML(tt.record))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	for _, f := range []string{"fieldPermissions", "customValue", "layoutAssignments", "objectPermissions"} {
		if _, ok := r.Lookup(f); !ok {
			t.Errorf("%s not registered", f)
		}
	}
	if _, ok := r.Lookup("description"); ok {
		t.Error("description should not be registered")
	}
	if !r.IsOrdered("customValue") {
		t.Error("customValue should be ordered")
	}
	if r.IsOrdered("fieldPermissions") {
		t.Error("fieldPermissions should not be ordered")
	}
	if n := len(r.Fields()); n < 50 {
		t.Errorf("only %d registered fields", n)
	}
}

func TestRegistryWithIsCopy(t *testing.T) {
	base := Empty()
	ext := base.With("thing", Field("name")).WithOrdered("thing")
	if _, ok := base.Lookup("thing"); ok {
		t.Error("With mutated the receiver")
	}
	if _, ok := ext.Lookup("thing"); !ok {
		t.Error("With lost the extractor")
	}
	if base.IsOrdered("thing") || !ext.IsOrdered("thing") {
		t.Error("WithOrdered not applied to the copy only")
	}
}

func TestCompileExpr(t *testing.T) {
	x, err := CompileExpr(`layout + "." + (recordType ?? "none")`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := x.Key(ir.MustYAML(`{layout: L, recordType: R}`))
	if err != nil {
		t.Fatal(err)
	}
	if got != "L.R" {
		t.Errorf("got %q", got)
	}
	got, err = x.Key(ir.MustYAML(`{layout: L}`))
	if err != nil {
		t.Fatal(err)
	}
	if got != "L.none" {
		t.Errorf("got %q", got)
	}
}

func TestCompileExprErrors(t *testing.T) {
	if _, err := CompileExpr(""); !errors.Is(err, ErrExpr) {
		t.Errorf("empty: err = %v", err)
	}
	if _, err := CompileExpr("layout +"); !errors.Is(err, ErrExpr) {
		t.Errorf("syntax: err = %v", err)
	}
	x, err := CompileExpr(`name ?? ""`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := x.Key(ir.MustYAML(`{other: x}`)); !errors.Is(err, ErrNoKey) {
		t.Errorf("empty key: err = %v", err)
	}
}
