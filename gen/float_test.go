package gen

import (
	"math"
	"testing"
)

func TestFloat32InRange(t *testing.T) {
	g := Float32(-10, 10)
	for seed := Seed(0); seed < 200; seed++ {
		v := g.Generate(testState(seed)).Value
		if v < -10 || v > 10 {
			t.Fatalf("Float32(-10,10) produced %v, out of range", v)
		}
	}
}

func TestFloat32ShrinkChildrenStayInRangeAndCapped(t *testing.T) {
	g := Float32(-100, 100)
	s := g.Generate(testState(3))
	kids := s.Tree.Children()
	if len(kids) > 16+3 {
		t.Fatalf("float32 shrink produced %d children, expected a small capped schedule", len(kids))
	}
	for _, k := range kids {
		if k.Value < -100 || k.Value > 100 {
			t.Fatalf("shrink child %v escapes [-100,100]", k.Value)
		}
	}
}

func TestFloat32AllShrinkChildrenAreCloserToTarget(t *testing.T) {
	g := Float32(-100, 100)
	for seed := Seed(0); seed < 100; seed++ {
		s := g.Generate(testState(seed))
		for _, k := range s.Tree.Children() {
			if math.Abs(float64(k.Value)) > math.Abs(float64(s.Value)) {
				t.Fatalf("Float32(%v) shrink child %v is farther from 0 than its parent", s.Value, k.Value)
			}
		}
	}
}

func TestFloatTargetPrefersZeroInRange(t *testing.T) {
	if got := floatTarget[float64](-1, 1); got != 0 {
		t.Errorf("floatTarget(-1,1) = %v, expected 0", got)
	}
}

func TestFloatTargetPicksClosestBoundOutOfRange(t *testing.T) {
	if got := floatTarget[float64](5, 10); got != 5 {
		t.Errorf("floatTarget(5,10) = %v, expected 5", got)
	}
}

func TestFloat32AtTargetHasNoChildren(t *testing.T) {
	tree := float32Tree(0, 0, 10)
	if kids := tree.Children(); kids != nil {
		t.Errorf("float32Tree(0,0,10).Children() = %v, expected nil", kids)
	}
}
