// File: gen/int.go
package gen

import "math"

// Int generates integers uniformly from [lo, ceil(lerp(lo, hi, size))],
// clamped to [lo, hi] (§4.1). The upper bound grows with the state's
// size, giving small values early in a run and the full range by
// size 1.
func Int(lo, hi int) Generator[int] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[int] {
		r := st.Rand()
		top := scaledBound(lo, hi, st.Size)
		v := lo + r.Intn(top-lo+1)
		return Sample[int]{Value: v, Tree: intTree(v, lo, hi)}
	})
}

// scaledBound computes ceil(lerp(lo, hi, size)) clamped to [lo, hi].
func scaledBound(lo, hi int, size Size) int {
	top := lo + int(math.Ceil(float64(size)*float64(hi-lo)))
	return clamp(top, lo, hi)
}

func intTree(v, lo, hi int) ShrinkTree[int] {
	return NewTree(v, func() []ShrinkTree[int] {
		return signedChildren(v, lo, hi, func(x int) ShrinkTree[int] { return intTree(x, lo, hi) })
	})
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
