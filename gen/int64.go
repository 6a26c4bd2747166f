// File: gen/int64.go
package gen

import "math"

// Int64 is the 64-bit analogue of Int.
func Int64(lo, hi int64) Generator[int64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[int64] {
		r := st.Rand()
		top := scaledBound64(lo, hi, st.Size)
		v := lo + r.Int63n(top-lo+1)
		return Sample[int64]{Value: v, Tree: int64Tree(v, lo, hi)}
	})
}

func scaledBound64(lo, hi int64, size Size) int64 {
	top := lo + int64(math.Ceil(float64(size)*float64(hi-lo)))
	if top < lo {
		return lo
	}
	if top > hi {
		return hi
	}
	return top
}

func int64Tree(v, lo, hi int64) ShrinkTree[int64] {
	return NewTree(v, func() []ShrinkTree[int64] {
		return signedChildren(v, lo, hi, func(x int64) ShrinkTree[int64] { return int64Tree(x, lo, hi) })
	})
}
