package check

import (
	"github.com/lucaskalb/qcheck/gen"
	"github.com/lucaskalb/qcheck/prove"
	"github.com/lucaskalb/qcheck/rng"
	"github.com/lucaskalb/qcheck/shrink"
)

// NamedProperty pairs a Property with a label, for Checks's report.
type NamedProperty[T any] struct {
	Name string
	Prop prove.Property[T]
}

// Checks runs several independent properties against the same
// generator, one full Check per property. Each property draws its own
// stream of examples (derived from cfg.Seed via its position in
// props), so one property's counterexample never depends on another's
// having run first. If cfg.StopOnFirstFailure, Checks returns as soon
// as one property fails, without running the remaining ones.
func Checks[T any](g gen.Generator[T], props []NamedProperty[T], cfg Config) map[string]CheckReport[T] {
	out := make(map[string]CheckReport[T], len(props))
	base := cfg.effectiveSeed()
	for i, np := range props {
		sub := cfg
		sub.Seed = int64(rng.DeriveIterationSeed(rng.Seed(base), i))
		report := Check(g, np.Prop, sub)
		out[np.Name] = report
		if cfg.StopOnFirstFailure && report.Outcome.Failed() {
			return out
		}
	}
	return out
}

// Samples draws n values from g at size 1, seeded from cfg (or a
// time-derived seed if cfg.Seed is zero). Useful for inspecting what
// a generator produces without running a property against it.
func Samples[T any](g gen.Generator[T], n int, cfg Config) []T {
	seed := cfg.effectiveSeed()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		st := rng.New(rng.DeriveIterationSeed(rng.Seed(seed), i)).WithSize(1)
		out[i] = g.Generate(st).Value
	}
	return out
}

// Shrink runs shrink.Search directly against a known-failing value's
// tree, for callers that already have a counterexample (e.g. replaying
// a CheckReport) and want to re-derive its minimal form against a
// possibly-changed predicate.
func Shrink[T any](tree gen.ShrinkTree[T], stillFails func(T) bool, cfg Config) (T, shrink.Stats) {
	return shrink.Search(tree, stillFails, cfg.MaxShrink)
}
