// File: gen/float64.go
package gen

// Float64 is the 64-bit analogue of Float32.
func Float64(lo, hi float64) Generator[float64] {
	if lo > hi {
		lo, hi = hi, lo
	}
	return From(func(st State) Sample[float64] {
		r := st.Rand()
		top := lo + float64(st.Size)*(hi-lo)
		v := lo + r.Float64()*(top-lo)
		return Sample[float64]{Value: v, Tree: float64Tree(v, lo, hi)}
	})
}

func float64Tree(v, lo, hi float64) ShrinkTree[float64] {
	return NewTree(v, func() []ShrinkTree[float64] {
		return floatChildren(v, lo, hi, func(x float64) ShrinkTree[float64] { return float64Tree(x, lo, hi) })
	})
}
