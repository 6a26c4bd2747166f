// File: gen/uint64.go
package gen

import "math"

// Uint64 is the 64-bit analogue of Uint.
func Uint64(lo, hi uint64) Generator[uint64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[uint64] {
		r := st.Rand()
		top := scaledBoundUint64(lo, hi, st.Size)
		span := top - lo
		var v uint64
		if span == 0 {
			v = lo
		} else {
			v = lo + uint64(r.Int63n(int64(span)+1))
		}
		return Sample[uint64]{Value: v, Tree: uint64Tree(v, lo, hi)}
	})
}

func scaledBoundUint64(lo, hi uint64, size Size) uint64 {
	top := lo + uint64(math.Ceil(float64(size)*float64(hi-lo)))
	if top < lo {
		return lo
	}
	if top > hi {
		return hi
	}
	return top
}

func uint64Tree(v, lo, hi uint64) ShrinkTree[uint64] {
	return NewTree(v, func() []ShrinkTree[uint64] {
		return unsignedChildren(v, lo, hi, func(x uint64) ShrinkTree[uint64] { return uint64Tree(x, lo, hi) })
	})
}
