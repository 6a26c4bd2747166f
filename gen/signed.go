// File: gen/signed.go
package gen

// signedTarget is the natural shrink target for a signed range: 0 if
// in range, otherwise the bound closest to 0. Shared by Int and Int64.
func signedTarget[T ~int | ~int64](lo, hi T) T {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if lo > 0 {
		return lo
	}
	return hi
}

func signedMidpoint[T ~int | ~int64](a, b T) T {
	if a == b {
		return a
	}
	d := b - a
	step := d / 2
	if step == 0 {
		if d > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	return a + step
}

func signedStep[T ~int | ~int64](a, b T) T {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}

func signedAbs[T ~int | ~int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// signedCloser reports whether x is strictly closer to target than v
// is, so a bound is only offered as a shrink child when it is an
// actual reduction (§4.2, Testable Property 3: each child ⊏ v).
func signedCloser[T ~int | ~int64](x, target, v T) bool {
	return signedAbs(x-target) < signedAbs(v-target)
}

// signedChildren computes the shrink children for Int and Int64,
// shrinking towards 0 (or the bound closest to it).
func signedChildren[T ~int | ~int64](v, lo, hi T, wrap func(T) ShrinkTree[T]) []ShrinkTree[T] {
	return signedChildrenTowards(v, lo, hi, signedTarget(lo, hi), wrap)
}

// signedChildrenTowards is signedChildren generalized to an arbitrary
// target, so callers with a different "natural zero" (e.g. Rune's
// canonical 'a') can reuse the same binary-descent heuristic.
func signedChildrenTowards[T ~int | ~int64](v, lo, hi, target T, wrap func(T) ShrinkTree[T]) []ShrinkTree[T] {
	if v == target {
		return nil
	}
	seen := map[T]struct{}{v: {}}
	var out []ShrinkTree[T]
	push := func(x T) {
		if x < lo || x > hi {
			return
		}
		if _, ok := seen[x]; ok {
			return
		}
		seen[x] = struct{}{}
		out = append(out, wrap(x))
	}
	series := v
	for i := 0; i < 9 && series != target; i++ {
		series = signedMidpoint(series, target)
		push(series)
	}
	push(signedStep(v, target))
	push(target)
	if signedCloser(lo, target, v) {
		push(lo)
	}
	if signedCloser(hi, target, v) {
		push(hi)
	}
	return out
}
