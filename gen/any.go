// File: gen/any.go
package gen

// Any picks uniformly among gs and defers to the chosen generator for
// both sampling and shrinking. Per §4.1 its shrink tree tries earlier
// (lower-indexed) branches before the chosen branch's own children:
// branch choice is itself a shrink dimension, and earlier branches are
// the ones an author lists first as the "simpler" alternatives.
func Any[T any](gs ...Generator[T]) Generator[T] {
	return Weighted(uniformBranches(gs)...)
}

func uniformBranches[T any](gs []Generator[T]) []WeightedBranch[T] {
	branches := make([]WeightedBranch[T], len(gs))
	for i, g := range gs {
		branches[i] = WeightedBranch[T]{Weight: 1, Gen: g}
	}
	return branches
}

// WeightedBranch pairs a generator with its relative selection weight.
type WeightedBranch[T any] struct {
	Weight float64
	Gen    Generator[T]
}

// Weighted picks among branches with probability proportional to
// their weight, and shrinks the same way Any does: lower-indexed
// branches before the chosen branch's own shrink children.
func Weighted[T any](branches ...WeightedBranch[T]) Generator[T] {
	if len(branches) == 0 {
		panic("gen.Weighted: needs at least one branch")
	}
	return From(func(st State) Sample[T] {
		idx := pickWeighted(st.Rand().Float64(), branches)
		s := branches[idx].Gen.Generate(st.Split(int64(idx)))
		gens := make([]Generator[T], len(branches))
		for i, b := range branches {
			gens[i] = b.Gen
		}
		return Sample[T]{Value: s.Value, Tree: anyTree(s.Tree, gens, idx, st)}
	})
}

func pickWeighted[T any](u float64, branches []WeightedBranch[T]) int {
	var total float64
	for _, b := range branches {
		if b.Weight > 0 {
			total += b.Weight
		}
	}
	if total <= 0 {
		return 0
	}
	target := u * total
	var acc float64
	for i, b := range branches {
		if b.Weight <= 0 {
			continue
		}
		acc += b.Weight
		if target < acc {
			return i
		}
	}
	return len(branches) - 1
}

func anyTree[T any](chosen ShrinkTree[T], gens []Generator[T], idx int, st State) ShrinkTree[T] {
	return NewTree(chosen.Value, func() []ShrinkTree[T] {
		var out []ShrinkTree[T]
		for i := 0; i < idx; i++ {
			s := gens[i].Generate(st.Split(int64(i)))
			out = append(out, s.Tree)
		}
		out = append(out, chosen.Children()...)
		return out
	})
}
