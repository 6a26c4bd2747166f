// Package qcheck is a property-based testing library for Go. It
// generates random inputs, runs a property against them, and when one
// fails, shrinks it to a minimal reproduction.
//
// This is the main entry point: it re-exports the commonly used types
// and functions from the internal packages (gen, prove, check, qtest,
// quick) so most callers only need this one import.
//
// Example usage:
//
//	import "github.com/lucaskalb/qcheck"
//
//	func TestAdditionIdentity(t *testing.T) {
//		qcheck.ForAll(t, qcheck.Default(), qcheck.Int(0, 1000))(func(t *testing.T, x int) {
//			if x+0 != x {
//				t.Errorf("addition identity failed for %d", x)
//			}
//		})
//	}
package qcheck

import (
	"testing"

	"github.com/lucaskalb/qcheck/check"
	"github.com/lucaskalb/qcheck/gen"
	"github.com/lucaskalb/qcheck/prove"
	"github.com/lucaskalb/qcheck/qtest"
	"github.com/lucaskalb/qcheck/quick"
)

// Config holds the configuration for a check run.
type Config = check.Config

// Default returns a Config with sensible defaults, overridable via
// CHECKITO_GENERATE_*/CHECKITO_SHRINK_* environment variables.
func Default() Config { return check.Default() }

// ForAll runs a property-based test: it generates cfg.Examples values
// from g and checks each against the function it returns, shrinking
// and failing t on the first counterexample found.
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return qtest.ForAll(t, cfg, g)
}

// Check runs a Property (rather than a *testing.T-shaped function)
// against g and returns the full CheckReport, for callers that want
// to inspect or log outcomes themselves instead of failing a test.
func Check[T any](g gen.Generator[T], prop prove.Property[T], cfg Config) check.CheckReport[T] {
	return check.Check(g, prop, cfg)
}

// Checks runs several independent properties against the same
// generator. See check.Checks.
func Checks[T any](g gen.Generator[T], props []check.NamedProperty[T], cfg Config) map[string]check.CheckReport[T] {
	return check.Checks(g, props, cfg)
}

// Samples draws n example values from g, for inspecting a generator's
// output without running a property.
func Samples[T any](g gen.Generator[T], n int, cfg Config) []T {
	return check.Samples(g, n, cfg)
}

// Generator is the interface every generator satisfies.
type Generator[T any] = gen.Generator[T]

// ShrinkTree is a lazy rose tree of shrink candidates.
type ShrinkTree[T any] = gen.ShrinkTree[T]

// Property is the contract a checked predicate satisfies.
type Property[T any] = prove.Property[T]

// Outcome is the result of invoking a Property once.
type Outcome = prove.Outcome

// Bool adapts a plain predicate to a Property.
func Bool[T any](pred func(T) bool) Property[T] { return prove.Bool(pred) }

// Err adapts an error-returning function to a Property.
func Err[T any](f func(T) error) Property[T] { return prove.Err(f) }

// Equal fails t with a diff unless got and want are deeply equal.
// Handy inside a ForAll/Check body for asserting a shrunk value's
// expected shape without hand-rolling a comparison.
func Equal[T any](t *testing.T, got, want T) { quick.Equal(t, got, want) }

// -----------------------------------------------------------------
// Generators
// -----------------------------------------------------------------

func Int(lo, hi int) Generator[int]         { return gen.Int(lo, hi) }
func Int64(lo, hi int64) Generator[int64]   { return gen.Int64(lo, hi) }
func Uint(lo, hi uint) Generator[uint]      { return gen.Uint(lo, hi) }
func Uint64(lo, hi uint64) Generator[uint64] { return gen.Uint64(lo, hi) }
func Float32(lo, hi float32) Generator[float32] { return gen.Float32(lo, hi) }
func Float64(lo, hi float64) Generator[float64] { return gen.Float64(lo, hi) }
func Boolean() Generator[bool] { return gen.Bool() }
func Rune(lo, hi rune) Generator[rune]      { return gen.Rune(lo, hi) }
func String(alphabet string, minLen, maxLen int) Generator[string] {
	return gen.String(alphabet, minLen, maxLen)
}
func Regex(pattern string) Generator[string] { return gen.Regex(pattern) }

func Const[T any](v T) Generator[T] { return gen.Const(v) }
func Map[A, B any](ga Generator[A], f func(A) B) Generator[B] { return gen.Map(ga, f) }
func Filter[T any](g Generator[T], pred func(T) bool, retries int) Generator[T] {
	return gen.Filter(g, pred, retries)
}
func FlatMap[A, B any](ga Generator[A], f func(A) Generator[B]) Generator[B] {
	return gen.FlatMap(ga, f)
}
func Any[T any](gs ...Generator[T]) Generator[T] { return gen.Any(gs...) }
func Collection[T any](elem Generator[T], minLen, maxLen int) Generator[[]T] {
	return gen.Collection(elem, minLen, maxLen)
}
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[gen.Pair[A, B]] {
	return gen.Tuple2(ga, gb)
}
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[gen.Triple[A, B, C]] {
	return gen.Tuple3(ga, gb, gc)
}
func Recursive[T any](base Generator[T], rec func(self Generator[T]) Generator[T]) Generator[T] {
	return gen.Recursive(base, rec)
}
