// File: gen/rune.go
package gen

// Rune generates a code point uniformly from [lo, hi] (a Unicode
// sub-range), shrinking towards 'a' when it lies in range, otherwise
// towards the bound closest to it (§4.1).
func Rune(lo, hi rune) Generator[rune] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[rune] {
		r := st.Rand()
		v := lo + rune(r.Int63n(int64(hi-lo)+1))
		return Sample[rune]{Value: v, Tree: runeTree(v, lo, hi)}
	})
}

func runeTarget(lo, hi rune) rune {
	const canonical = 'a'
	if lo <= canonical && canonical <= hi {
		return canonical
	}
	if absRune(lo-canonical) < absRune(hi-canonical) {
		return lo
	}
	return hi
}

func absRune(r rune) rune {
	if r < 0 {
		return -r
	}
	return r
}

func runeTree(v, lo, hi rune) ShrinkTree[rune] {
	return NewTree(v, func() []ShrinkTree[rune] {
		target := runeTarget(lo, hi)
		kids := signedChildrenTowards(int64(v), int64(lo), int64(hi), int64(target), func(x int64) ShrinkTree[int64] {
			return Leaf(x)
		})
		var out []ShrinkTree[rune]
		for _, k := range kids {
			out = append(out, runeTree(rune(k.Value), lo, hi))
		}
		return out
	})
}
