package gen

import "testing"

func TestFloat64InRange(t *testing.T) {
	g := Float64(-10, 10)
	for seed := Seed(0); seed < 200; seed++ {
		v := g.Generate(testState(seed)).Value
		if v < -10 || v > 10 {
			t.Fatalf("Float64(-10,10) produced %v, out of range", v)
		}
	}
}

func TestFloat64ShrinksTowardTarget(t *testing.T) {
	g := Float64(-50, 50)
	s := g.Generate(testState(9))
	target := floatTarget[float64](-50, 50)
	if s.Value == target {
		return
	}
	found := false
	for _, k := range s.Tree.Children() {
		if k.Value == target {
			found = true
		}
	}
	if !found {
		t.Errorf("Float64 shrink children for %v never include the target %v", s.Value, target)
	}
}

func TestFloat64AtTargetHasNoChildren(t *testing.T) {
	tree := float64Tree(0, 0, 10)
	if kids := tree.Children(); kids != nil {
		t.Errorf("float64Tree(0,0,10).Children() = %v, expected nil", kids)
	}
}
