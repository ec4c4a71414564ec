package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Empty string == empty string", FromString(""), FromString(""), 0},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromString("a")}), FromSlice([]*Node{FromString("b")}), -1},

		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"Object Field Order Ignored",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Error("nil != nil")
	}
	if Compare(nil, Null()) != -1 {
		t.Error("nil should sort before null")
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		want bool
	}{
		{"nil", nil, true},
		{"null", Null(), true},
		{"empty string", FromString(""), true},
		{"string", FromString("x"), false},
		{"false", FromBool(false), false},
		{"zero", FromInt(0), false},
		{"empty object", FromKeyVals(nil), true},
		{"object", FromKeyVals([]KeyVal{{Key: "a", Val: Null()}}), false},
		{"empty array", FromSlice(nil), true},
		{"array", FromSlice([]*Node{Null()}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.n); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureArray(t *testing.T) {
	if got := EnsureArray(nil); len(got) != 0 {
		t.Errorf("nil: got %d values", len(got))
	}
	if got := EnsureArray(Null()); len(got) != 0 {
		t.Errorf("null: got %d values", len(got))
	}
	s := FromString("a")
	if got := EnsureArray(s); len(got) != 1 || got[0] != s {
		t.Errorf("scalar: got %v", got)
	}
	arr := FromSlice([]*Node{FromString("a"), FromString("b")})
	if got := EnsureArray(arr); len(got) != 2 {
		t.Errorf("array: got %d values", len(got))
	}
}
