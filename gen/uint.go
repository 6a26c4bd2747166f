// File: gen/uint.go
package gen

import "math"

// Uint generates unsigned integers uniformly from [lo, ceil(lerp(lo, hi, size))].
func Uint(lo, hi uint) Generator[uint] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[uint] {
		r := st.Rand()
		top := scaledBoundUint(lo, hi, st.Size)
		v := lo + uint(r.Int63n(int64(top-lo)+1))
		return Sample[uint]{Value: v, Tree: uintTree(v, lo, hi)}
	})
}

func scaledBoundUint(lo, hi uint, size Size) uint {
	top := lo + uint(math.Ceil(float64(size)*float64(hi-lo)))
	if top < lo {
		return lo
	}
	if top > hi {
		return hi
	}
	return top
}

func uintTree(v, lo, hi uint) ShrinkTree[uint] {
	return NewTree(v, func() []ShrinkTree[uint] {
		return unsignedChildren(v, lo, hi, func(x uint) ShrinkTree[uint] { return uintTree(x, lo, hi) })
	})
}
