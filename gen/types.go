// Package gen provides the generator algebra for qcheck: leaf and
// combinator generators that produce a value together with its shrink
// tree. It includes generators for the common primitive types and the
// combinators (Map, Filter, FlatMap, Any, Tuple, Collection, Dampen)
// needed to build composite ones.
package gen

import "github.com/lucaskalb/qcheck/rng"

// State is the input every generator consumes: a size dial plus a
// seed lineage. Re-exported from rng so callers of this package rarely
// need to import rng directly.
type State = rng.State

// Seed is the 64-bit root of a pseudo-random lineage.
type Seed = rng.Seed

// Size is the [0, 1] dial carried by State.
type Size = rng.Size

// ShrinkTree is a lazy rose tree of candidate reductions. Its root is
// a value; its children are "one step smaller" candidates of the same
// type, each carrying its own subtree. Children are produced on
// demand by a pure function of the node (never precomputed eagerly),
// and re-deriving them is deterministic: calling Children() twice on
// the same tree returns equal slices, because the closure captures no
// state besides the value it closed over.
type ShrinkTree[T any] struct {
	Value    T
	children func() []ShrinkTree[T]
}

// Children returns this node's shrink candidates. A nil children func
// means the node is a leaf of the shrink tree (e.g. Const's empty
// tree, or a value already at its generator's target).
func (t ShrinkTree[T]) Children() []ShrinkTree[T] {
	if t.children == nil {
		return nil
	}
	return t.children()
}

// Leaf builds a ShrinkTree with no children.
func Leaf[T any](v T) ShrinkTree[T] {
	return ShrinkTree[T]{Value: v}
}

// NewTree builds a ShrinkTree whose children are computed lazily by fn.
func NewTree[T any](v T, fn func() []ShrinkTree[T]) ShrinkTree[T] {
	return ShrinkTree[T]{Value: v, children: fn}
}

// Sample is a generated value paired with its shrink tree.
type Sample[T any] struct {
	Value T
	Tree  ShrinkTree[T]
}

// Generator is the public contract for all generators: a pure function
// of State producing a Sample.
type Generator[T any] interface {
	Generate(st State) Sample[T]
}

// GenFunc adapts a plain function to the Generator interface.
type GenFunc[T any] struct {
	fn func(State) Sample[T]
}

// Generate implements Generator for GenFunc.
func (g GenFunc[T]) Generate(st State) Sample[T] { return g.fn(st) }

// From creates a Generator from a function, the escape hatch for
// hand-written generators that don't fit an existing combinator.
func From[T any](fn func(State) Sample[T]) Generator[T] {
	return GenFunc[T]{fn: fn}
}

// Erased is a uniform generator handle that hides the concrete element
// type behind `any`, for heterogeneous storage (e.g. a registry keyed
// by name, or a slice of otherwise-incompatible generators).
type Erased = Generator[any]

// Erase boxes a Generator[T] as an Erased generator.
func Erase[T any](g Generator[T]) Erased {
	return From(func(st State) Sample[any] {
		s := g.Generate(st)
		return Sample[any]{
			Value: s.Value,
			Tree:  mapTree(s.Tree, func(v T) any { return v }),
		}
	})
}
