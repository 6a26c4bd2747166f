package gen

import "testing"

func TestConstAlwaysReturnsSameValueAndNoChildren(t *testing.T) {
	g := Const(42)
	for seed := Seed(0); seed < 10; seed++ {
		s := g.Generate(testState(seed))
		if s.Value != 42 {
			t.Fatalf("Const(42).Generate() = %d", s.Value)
		}
		if kids := s.Tree.Children(); kids != nil {
			t.Fatalf("Const's tree has children: %v", kids)
		}
	}
}

func TestMapAppliesFunctionAndShrinksThroughIt(t *testing.T) {
	g := Map(Int(-10, 10), func(x int) string { return "v" })
	s := g.Generate(testState(3))
	if s.Value != "v" {
		t.Fatalf("Map produced %q, expected \"v\"", s.Value)
	}
	for _, k := range s.Tree.Children() {
		if k.Value != "v" {
			t.Fatalf("Map shrink child %q, expected \"v\"", k.Value)
		}
	}
}

func TestFilterOnlyProducesValuesSatisfyingPredicate(t *testing.T) {
	g := Filter(Int(0, 100), func(x int) bool { return x%2 == 0 }, 0)
	for seed := Seed(0); seed < 50; seed++ {
		v := g.Generate(testState(seed)).Value
		if v%2 != 0 {
			t.Fatalf("Filter(even).Generate() = %d", v)
		}
	}
}

func TestFilterShrinkChildrenSatisfyPredicate(t *testing.T) {
	g := Filter(Int(0, 100), func(x int) bool { return x%2 == 0 }, 0)
	s := g.Generate(testState(5))
	for _, k := range s.Tree.Children() {
		if k.Value%2 != 0 {
			t.Fatalf("Filter shrink child %d is odd", k.Value)
		}
	}
}

func TestFilterExhaustsWithImpossiblePredicate(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Filter to panic with ExhaustedError")
		}
		if _, ok := r.(*ExhaustedError); !ok {
			t.Fatalf("expected *ExhaustedError, got %T", r)
		}
	}()
	g := Filter(Int(0, 10), func(x int) bool { return false }, 5)
	g.Generate(testState(1))
}

func TestFlatMapUsesFirstValueToPickSecondGenerator(t *testing.T) {
	g := FlatMap(Int(1, 3), func(n int) Generator[[]int] {
		return Const(make([]int, n))
	})
	s := g.Generate(testState(2))
	if len(s.Value) < 1 || len(s.Value) > 3 {
		t.Fatalf("FlatMap produced slice of length %d, expected [1,3]", len(s.Value))
	}
}

func TestRecursiveTerminates(t *testing.T) {
	type node struct {
		children []node
	}
	g := Recursive(Const(node{}), func(self Generator[node]) Generator[node] {
		return Map(Collection(self, 0, 3), func(cs []node) node { return node{children: cs} })
	})
	// At size 1 this must still return without running away; depth is
	// bounded by the Dampen factor inside Recursive.
	_ = g.Generate(testState(1)).Value
}

func TestDampenHalvesSize(t *testing.T) {
	var observed Size
	g := Dampen(From(func(st State) Sample[int] {
		observed = st.Size
		return Sample[int]{Value: 0, Tree: Leaf(0)}
	}))
	g.Generate(State{Size: 1, Seed: 1})
	if observed != 0.5 {
		t.Errorf("Dampen halved size to %v, expected 0.5", observed)
	}
}
