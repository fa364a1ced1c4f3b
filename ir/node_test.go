package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestFromKeyValsOrder(t *testing.T) {
	node := FromKeyVals(
		KeyVal{Key: "z", Val: FromInt(1)},
		KeyVal{Key: "a", Val: FromInt(2)},
		KeyVal{Key: "m", Val: FromInt(3)},
	)
	if !slices.Equal(node.Fields, []string{"z", "a", "m"}) {
		t.Errorf("insertion order not preserved: %v", node.Fields)
	}
}

func TestFromMapSorted(t *testing.T) {
	node := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
	})
	if !slices.Equal(node.Fields, []string{"a", "z"}) {
		t.Errorf("map keys not sorted: %v", node.Fields)
	}
}

func TestGetSet(t *testing.T) {
	node := FromKeyVals(KeyVal{Key: "a", Val: FromInt(1)})
	node.Set("b", FromInt(2))
	node.Set("a", FromInt(3))

	if !slices.Equal(node.Fields, []string{"a", "b"}) {
		t.Errorf("Set changed key order: %v", node.Fields)
	}
	if v := Get(node, "a"); v == nil || v.Int64 == nil || *v.Int64 != 3 {
		t.Error("Set should replace in place")
	}
	if Get(node, "missing") != nil {
		t.Error("Get of a missing field should be nil")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1).WithComment("note")},
		KeyVal{Key: "xs", Val: FromSlice([]*Node{FromString("x")})},
	)
	cl := orig.Clone()
	cl.Values[0].Comment = "changed"
	*cl.Values[0].Int64 = 9
	cl.Values[1].Values[0].String = "y"
	cl.Set("b", Null())

	if orig.Values[0].Comment != "note" || *orig.Values[0].Int64 != 1 {
		t.Error("clone shares scalar state with original")
	}
	if orig.Values[1].Values[0].String != "x" {
		t.Error("clone shares nested nodes with original")
	}
	if len(orig.Fields) != 2 {
		t.Error("clone shares field slices with original")
	}
}

func TestVisit(t *testing.T) {
	node := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "xs", Val: FromSlice([]*Node{FromInt(2), FromInt(3)})},
	)
	pre := 0
	err := node.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 {
		t.Errorf("visited %d nodes, want 5", pre)
	}

	// pruned traversal skips children
	pre = 0
	node.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return false, nil
	})
	if pre != 1 {
		t.Errorf("pruned visit saw %d nodes, want 1", pre)
	}
}

func TestFromAny(t *testing.T) {
	node, err := FromAny(map[string]any{
		"b":    1,
		"a":    "x",
		"flag": true,
		"none": nil,
		"xs":   []any{1.5, "y"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ObjectType {
		t.Fatalf("got %s", node.Type)
	}
	if !slices.Equal(node.Fields, []string{"a", "b", "flag", "none", "xs"}) {
		t.Errorf("keys: %v", node.Fields)
	}
	xs := Get(node, "xs")
	if xs.Type != ArrayType || len(xs.Values) != 2 {
		t.Fatalf("xs: %+v", xs)
	}
	if xs.Values[0].Float64 == nil || *xs.Values[0].Float64 != 1.5 {
		t.Error("float element")
	}
	if Get(node, "none").Type != NullType {
		t.Error("nil should map to null")
	}
}

func TestFromAnyRejectsUnknown(t *testing.T) {
	type opaque struct{}
	if _, err := FromAny(opaque{}); !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
	if _, err := FromAny([]any{opaque{}}); !errors.Is(err, ErrValue) {
		t.Errorf("nested: expected ErrValue, got %v", err)
	}
}

func TestTypeTextRoundTrip(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != tt {
			t.Errorf("type %s: %v %v", tt, back, err)
		}
	}
	var tt Type
	if err := tt.UnmarshalText([]byte("Blob")); err == nil {
		t.Error("Blob should not unmarshal")
	}
}

func TestIsScalar(t *testing.T) {
	for _, tt := range Types() {
		want := tt != ObjectType && tt != ArrayType
		if tt.IsScalar() != want {
			t.Errorf("%s.IsScalar() = %v", tt, tt.IsScalar())
		}
	}
}
