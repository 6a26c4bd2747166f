// File: gen/collection.go
package gen

// Collection generates []T of length in [minLen, maxLen] from an
// element generator, the reachable length growing with state size the
// same way Int's reachable range does.
//
// Its shrink tree offers three families of children, in order (§4.1):
//
//	(1) shorter collections: halved lengths down to minLen, so large
//	    inputs collapse quickly instead of losing one element at a time;
//	(2) single-element removals, tried right-to-left;
//	(3) per-element substitution, each element replaced by one of its
//	    own shrink tree's children while the rest of the collection is
//	    held fixed.
//
// Families (1) and (2) are skipped once the collection is already at
// minLen.
func Collection[T any](elem Generator[T], minLen, maxLen int) Generator[[]T] {
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return From(func(st State) Sample[[]T] {
		r := st.Rand()
		top := minLen + int(st.Size.Clamp()*Size(maxLen-minLen))
		if top > maxLen {
			top = maxLen
		}
		n := minLen
		if top > minLen {
			n += r.Intn(top - minLen + 1)
		}
		vals := make([]T, n)
		trees := make([]ShrinkTree[T], n)
		for i := 0; i < n; i++ {
			s := elem.Generate(st.Split(int64(i)))
			vals[i], trees[i] = s.Value, s.Tree
		}
		return Sample[[]T]{Value: vals, Tree: collectionTree(vals, trees, minLen)}
	})
}

func collectionTree[T any](vals []T, trees []ShrinkTree[T], minLen int) ShrinkTree[[]T] {
	out := make([]T, len(vals))
	copy(out, vals)
	return NewTree(out, func() []ShrinkTree[[]T] {
		return collectionChildren(vals, trees, minLen)
	})
}

func collectionChildren[T any](vals []T, trees []ShrinkTree[T], minLen int) []ShrinkTree[[]T] {
	n := len(vals)
	var kids []ShrinkTree[[]T]

	removeRange := func(i, j int) ([]T, []ShrinkTree[T]) {
		nv := make([]T, 0, n-(j-i))
		nt := make([]ShrinkTree[T], 0, n-(j-i))
		nv = append(nv, vals[:i]...)
		nv = append(nv, vals[j:]...)
		nt = append(nt, trees[:i]...)
		nt = append(nt, trees[j:]...)
		return nv, nt
	}

	if n > minLen {
		chunk := n / 2
		for chunk >= 1 {
			for i := 0; i+chunk <= n && n-chunk >= minLen; i += chunk {
				nv, nt := removeRange(i, i+chunk)
				kids = append(kids, collectionTree(nv, nt, minLen))
			}
			chunk /= 2
		}
		for i := n - 1; i >= 0; i-- {
			nv, nt := removeRange(i, i+1)
			kids = append(kids, collectionTree(nv, nt, minLen))
		}
	}

	for i := n - 1; i >= 0; i-- {
		for _, child := range trees[i].Children() {
			nv := make([]T, n)
			copy(nv, vals)
			nv[i] = child.Value
			nt := make([]ShrinkTree[T], n)
			copy(nt, trees)
			nt[i] = child
			kids = append(kids, collectionTree(nv, nt, minLen))
		}
	}

	return kids
}

// Array generates []T of exactly n elements: like Collection but with
// no length-shrink family, only per-element substitution.
func Array[T any](elem Generator[T], n int) Generator[[]T] {
	if n < 0 {
		n = 0
	}
	return From(func(st State) Sample[[]T] {
		vals := make([]T, n)
		trees := make([]ShrinkTree[T], n)
		for i := 0; i < n; i++ {
			s := elem.Generate(st.Split(int64(i)))
			vals[i], trees[i] = s.Value, s.Tree
		}
		return Sample[[]T]{Value: vals, Tree: collectionTree(vals, trees, n)}
	})
}
