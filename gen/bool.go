// File: gen/bool.go
package gen

// Bool generates booleans uniformly. Per §4.1 it shrinks true -> false
// only — false has nowhere smaller to go.
func Bool() Generator[bool] {
	return From(func(st State) Sample[bool] {
		v := st.Rand().Intn(2) == 0
		return Sample[bool]{Value: v, Tree: boolTree(v)}
	})
}

func boolTree(v bool) ShrinkTree[bool] {
	if !v {
		return Leaf(false)
	}
	return NewTree(true, func() []ShrinkTree[bool] { return []ShrinkTree[bool]{Leaf(false)} })
}
