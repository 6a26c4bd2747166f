// File: gen/comb.go
package gen

import "fmt"

// Const always returns the same value, with an empty shrink tree: it
// has nowhere smaller to go.
func Const[T any](v T) Generator[T] {
	return From(func(_ State) Sample[T] {
		return Sample[T]{Value: v, Tree: Leaf(v)}
	})
}

// ExhaustedError is panicked by Filter when it cannot satisfy its
// predicate within its retry budget (§7). The check driver recognizes
// this sentinel and reports it as a dedicated Exhausted outcome rather
// than propagating it as a generic panic.
type ExhaustedError struct {
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gen: filter exhausted after %d attempts", e.Retries)
}

// Map applies f: A -> B, preserving shrinkability: the resulting tree
// is A's tree with f applied pointwise to every node. f must be
// deterministic and total over g's range.
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] {
	return From(func(st State) Sample[B] {
		sa := ga.Generate(st)
		return Sample[B]{Value: f(sa.Value), Tree: mapTree(sa.Tree, f)}
	})
}

func mapTree[A, B any](t ShrinkTree[A], f func(A) B) ShrinkTree[B] {
	return NewTree(f(t.Value), func() []ShrinkTree[B] {
		kids := t.Children()
		out := make([]ShrinkTree[B], len(kids))
		for i, k := range kids {
			out[i] = mapTree(k, f)
		}
		return out
	})
}

// Filter draws up to retries samples from g until pred holds. If
// retries is exhausted, generation panics with *ExhaustedError (caught
// by the check driver, never by the property). Shrink children are
// filtered by pred; a candidate failing pred is skipped and its own
// children are promoted in its place, so valid reductions reachable
// only through an invalid intermediate stay reachable.
func Filter[T any](g Generator[T], pred func(T) bool, retries int) Generator[T] {
	if retries <= 0 {
		retries = 1000
	}
	return From(func(st State) Sample[T] {
		for i := 0; i < retries; i++ {
			s := g.Generate(st.Split(int64(i)))
			if pred(s.Value) {
				return Sample[T]{Value: s.Value, Tree: filterTree(s.Tree, pred)}
			}
		}
		panic(&ExhaustedError{Retries: retries})
	})
}

func filterTree[T any](t ShrinkTree[T], pred func(T) bool) ShrinkTree[T] {
	return NewTree(t.Value, func() []ShrinkTree[T] {
		var out []ShrinkTree[T]
		for _, k := range t.Children() {
			if pred(k.Value) {
				out = append(out, filterTree(k, pred))
			} else {
				out = append(out, filterTree(k, pred).Children()...)
			}
		}
		return out
	})
}

// FlatMap draws v from ga, then uses f(v) as a generator for w. Per
// §4.1/§9, the inner generator is sampled by reusing the same state
// lineage the outer value was drawn with (rather than a fresh one) —
// the spec's chosen resolution of the flat_map correlation question,
// since it yields smaller shrunk inputs. The resulting shrink tree has
// two families of children, structure before contents: (i) results of
// shrinking v and re-feeding it through f, re-sampled with the same
// state; (ii) results of shrinking w with v held fixed.
func FlatMap[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return From(func(st State) Sample[B] {
		sa := ga.Generate(st)
		gb := f(sa.Value)
		sb := gb.Generate(st)
		return Sample[B]{Value: sb.Value, Tree: flatMapTree(sa.Tree, f, st, sb.Tree)}
	})
}

func flatMapTree[A, B any](ta ShrinkTree[A], f func(A) Generator[B], st State, tb ShrinkTree[B]) ShrinkTree[B] {
	return NewTree(tb.Value, func() []ShrinkTree[B] {
		var out []ShrinkTree[B]
		for _, ka := range ta.Children() {
			sb2 := f(ka.Value).Generate(st)
			out = append(out, flatMapTree(ka, f, st, sb2.Tree))
		}
		for _, kb := range tb.Children() {
			out = append(out, flatMapTree(ta, f, st, kb))
		}
		return out
	})
}

// SizeMap transforms the size passed to g via f, for user-defined size
// remapping.
func SizeMap[T any](g Generator[T], f func(Size) Size) Generator[T] {
	return From(func(st State) Sample[T] {
		return g.Generate(st.WithSize(f(st.Size)))
	})
}

// Dampen multiplies the size passed to g by a fixed factor below 1,
// guaranteeing termination for recursive generators when combined with
// a size-0 leaf alternative (see Recursive).
func Dampen[T any](g Generator[T]) Generator[T] {
	const factor = 0.5
	return SizeMap(g, func(s Size) Size { return s * factor })
}

// recursionFloor is the size at or below which Recursive always picks
// base, so repeated halving terminates in a bounded number of steps
// instead of chasing an exact-zero float that floating point division
// may never land on for an arbitrary damping factor.
const recursionFloor Size = 1e-3

// Recursive builds a self-referential generator that is guaranteed to
// terminate: at or below recursionFloor it always produces base, and
// at every other size it dampens before calling rec with itself, so
// the recursion depth is bounded by how many times size can be halved
// before it reaches recursionFloor.
func Recursive[T any](base Generator[T], rec func(self Generator[T]) Generator[T]) Generator[T] {
	var self Generator[T]
	self = From(func(st State) Sample[T] {
		if st.Size <= recursionFloor {
			return base.Generate(st)
		}
		return Dampen(rec(self)).Generate(st)
	})
	return self
}
