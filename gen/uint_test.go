package gen

import "testing"

func TestUintInRange(t *testing.T) {
	g := Uint(2, 50)
	for seed := Seed(0); seed < 200; seed++ {
		v := g.Generate(testState(seed)).Value
		if v < 2 || v > 50 {
			t.Fatalf("Uint(2,50) produced %d, out of range", v)
		}
	}
}

func TestUintShrinksTowardsLowerBound(t *testing.T) {
	g := Uint(2, 50)
	s := g.Generate(testState(5))
	if s.Value == 2 {
		return
	}
	for _, k := range s.Tree.Children() {
		if k.Value < 2 || k.Value > 50 {
			t.Fatalf("shrink child %d escapes [2,50]", k.Value)
		}
	}
}

func TestUintAllShrinkChildrenAreCloserToLowerBound(t *testing.T) {
	g := Uint(2, 50)
	for seed := Seed(0); seed < 100; seed++ {
		s := g.Generate(testState(seed))
		for _, k := range s.Tree.Children() {
			if k.Value > s.Value {
				t.Fatalf("Uint(%d) shrink child %d is farther from the lower bound than its parent", s.Value, k.Value)
			}
		}
	}
}

func TestUintAtLowerBoundHasNoChildren(t *testing.T) {
	tree := uintTree(2, 2, 50)
	if kids := tree.Children(); kids != nil {
		t.Errorf("uintTree(2,2,50).Children() = %v, expected nil", kids)
	}
}
