// File: gen/tuple.go
package gen

// Pair is the value produced by Tuple2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value produced by Tuple3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 combines two generators, shrinking left-to-right: children
// first shrink First (Second held fixed), then shrink Second (First
// held fixed, at its current value) — so a failing property narrows
// its first component before its second.
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return From(func(st State) Sample[Pair[A, B]] {
		sa := ga.Generate(st.Split(0))
		sb := gb.Generate(st.Split(1))
		v := Pair[A, B]{First: sa.Value, Second: sb.Value}
		return Sample[Pair[A, B]]{Value: v, Tree: pairTree(sa.Tree, sb.Tree)}
	})
}

func pairTree[A, B any](ta ShrinkTree[A], tb ShrinkTree[B]) ShrinkTree[Pair[A, B]] {
	v := Pair[A, B]{First: ta.Value, Second: tb.Value}
	return NewTree(v, func() []ShrinkTree[Pair[A, B]] {
		var out []ShrinkTree[Pair[A, B]]
		for _, ka := range ta.Children() {
			out = append(out, pairTree(ka, tb))
		}
		for _, kb := range tb.Children() {
			out = append(out, pairTree(ta, kb))
		}
		return out
	})
}

// Tuple3 combines three generators with the same left-to-right shrink
// preference as Tuple2.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return From(func(st State) Sample[Triple[A, B, C]] {
		sa := ga.Generate(st.Split(0))
		sb := gb.Generate(st.Split(1))
		sc := gc.Generate(st.Split(2))
		v := Triple[A, B, C]{First: sa.Value, Second: sb.Value, Third: sc.Value}
		return Sample[Triple[A, B, C]]{Value: v, Tree: tripleTree(sa.Tree, sb.Tree, sc.Tree)}
	})
}

func tripleTree[A, B, C any](ta ShrinkTree[A], tb ShrinkTree[B], tc ShrinkTree[C]) ShrinkTree[Triple[A, B, C]] {
	v := Triple[A, B, C]{First: ta.Value, Second: tb.Value, Third: tc.Value}
	return NewTree(v, func() []ShrinkTree[Triple[A, B, C]] {
		var out []ShrinkTree[Triple[A, B, C]]
		for _, ka := range ta.Children() {
			out = append(out, tripleTree(ka, tb, tc))
		}
		for _, kb := range tb.Children() {
			out = append(out, tripleTree(ta, kb, tc))
		}
		for _, kc := range tc.Children() {
			out = append(out, tripleTree(ta, tb, kc))
		}
		return out
	})
}
