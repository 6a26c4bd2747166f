// Package qtest bridges the check driver to Go's testing package, in
// the style of the teacher's prop.ForAll: each generated example (and
// each shrink candidate) becomes a real t.Run subtest, so go test's
// -run, -v and failure output all work exactly as they would for a
// hand-written table-driven test.
package qtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/lucaskalb/qcheck/check"
	"github.com/lucaskalb/qcheck/gen"
	"github.com/lucaskalb/qcheck/rng"
	"github.com/lucaskalb/qcheck/shrink"
)

// ForAll generates cfg.Examples values from g, ramping size linearly
// the same way check.Check does, and runs each through body as a
// subtest. On the first failing example it shrinks the counterexample
// (each candidate also run as a subtest) and fails t with the minimal
// reproduction and a seed that replays the run.
//
// Example usage:
//
//	qtest.ForAll(t, check.Default(), gen.Int(0, 100))(func(t *testing.T, x int) {
//	    if x+0 != x {
//	        t.Errorf("addition identity failed for %d", x)
//	    }
//	})
func ForAll[T any](t *testing.T, cfg check.Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return func(body func(*testing.T, T)) {
		seed := cfg.EffectiveSeed()
		t.Logf("[qcheck] seed=%d examples=%d maxshrink=%d parallelism=%d",
			seed, cfg.Examples, cfg.MaxShrink, cfg.Parallelism)

		var deadline time.Time
		if cfg.Timeout > 0 {
			deadline = time.Now().Add(cfg.Timeout)
		}

		for i := 0; i < cfg.Examples; i++ {
			if !deadline.IsZero() && time.Now().After(deadline) {
				t.Logf("[qcheck] deadline exceeded after %d examples", i)
				return
			}

			st := rng.New(rng.DeriveIterationSeed(rng.Seed(seed), i)).WithSize(forAllRampSize(i, cfg.Examples, cfg))
			sample := g.Generate(st)
			name := fmt.Sprintf("ex#%d", i+1)

			if t.Run(name, func(st *testing.T) { body(st, sample.Value) }) {
				continue
			}

			min, stats := shrink.Search(sample.Tree, func(v T) bool {
				if !deadline.IsZero() && time.Now().After(deadline) {
					return false
				}
				return !t.Run(name+"/shrink", func(st *testing.T) { body(st, v) })
			}, cfg.MaxShrink)

			t.Errorf("[qcheck] property failed; seed=%d example=%d shrink_steps=%d\n"+
				"counterexample: %#v\nreplay: CHECKITO_GENERATE_SEED=%d go test -run '^%s$'",
				seed, i+1, stats.Accepted+stats.Rejected, min, seed, t.Name())

			if cfg.StopOnFirstFailure {
				return
			}
		}
	}
}

// forAllRampSize mirrors check's rampSize: it honors cfg.SizeFixed and
// cfg.SizeLo/SizeHi, falling back to the 0→1 ramp when a caller builds
// a Config literal without going through Default().
func forAllRampSize(i, n int, cfg check.Config) rng.Size {
	if cfg.SizeFixed != nil {
		return rng.Size(*cfg.SizeFixed).Clamp()
	}
	lo, hi := cfg.SizeLo, cfg.SizeHi
	if lo == 0 && hi == 0 {
		hi = 1
	}
	if n <= 1 {
		return rng.Size(hi).Clamp()
	}
	return rng.Size(lo + float64(i)/float64(n-1)*(hi-lo)).Clamp()
}
