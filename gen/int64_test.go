package gen

import "testing"

func TestInt64InRange(t *testing.T) {
	g := Int64(-1000, 1000)
	for seed := Seed(0); seed < 200; seed++ {
		v := g.Generate(testState(seed)).Value
		if v < -1000 || v > 1000 {
			t.Fatalf("Int64(-1000,1000) produced %d, out of range", v)
		}
	}
}

func TestInt64ShrinkChildrenStayInRange(t *testing.T) {
	g := Int64(5, 500)
	s := g.Generate(testState(11))
	for _, k := range s.Tree.Children() {
		if k.Value < 5 || k.Value > 500 {
			t.Fatalf("shrink child %d escapes [5,500]", k.Value)
		}
	}
}

func TestInt64AtTargetHasNoChildren(t *testing.T) {
	tree := int64Tree(5, 5, 500)
	if kids := tree.Children(); kids != nil {
		t.Errorf("int64Tree(5,5,500).Children() = %v, expected nil", kids)
	}
}
