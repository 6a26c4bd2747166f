package gen

import "testing"

func TestGenFuncGenerate(t *testing.T) {
	expected := 42
	g := GenFunc[int]{fn: func(State) Sample[int] { return Sample[int]{Value: expected, Tree: Leaf(expected)} }}

	v := g.Generate(testState(1)).Value
	if v != expected {
		t.Errorf("GenFunc.Generate() = %d, expected %d", v, expected)
	}
}

func TestFrom(t *testing.T) {
	expected := "test"
	g := From(func(State) Sample[string] { return Sample[string]{Value: expected, Tree: Leaf(expected)} })

	v := g.Generate(testState(1)).Value
	if v != expected {
		t.Errorf("From().Generate() = %q, expected %q", v, expected)
	}
}

func TestShrinkTreeLeafHasNoChildren(t *testing.T) {
	tree := Leaf(7)
	if kids := tree.Children(); kids != nil {
		t.Errorf("Leaf.Children() = %v, expected nil", kids)
	}
}

func TestShrinkTreeChildrenDeterministic(t *testing.T) {
	tree := NewTree(7, func() []ShrinkTree[int] { return []ShrinkTree[int]{Leaf(3), Leaf(0)} })
	a := tree.Children()
	b := tree.Children()
	if len(a) != len(b) {
		t.Fatalf("Children() returned different lengths across calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Value != b[i].Value {
			t.Errorf("Children()[%d] differs across calls: %v vs %v", i, a[i].Value, b[i].Value)
		}
	}
}

func TestErase(t *testing.T) {
	inner := Const(5)
	erased := Erase[int](inner)
	s := erased.Generate(testState(1))
	if s.Value.(int) != 5 {
		t.Errorf("Erase().Generate().Value = %v, expected 5", s.Value)
	}
}
