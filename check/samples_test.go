package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/qcheck/gen"
	"github.com/lucaskalb/qcheck/prove"
)

func TestSamplesDrawsRequestedCount(t *testing.T) {
	vals := Samples(gen.Int(0, 10), 15, Config{Seed: 5})
	require.Len(t, vals, 15)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestSamplesDeterministicForSameSeed(t *testing.T) {
	cfg := Config{Seed: 123}
	a := Samples(gen.Int(0, 1000), 10, cfg)
	b := Samples(gen.Int(0, 1000), 10, cfg)
	assert.Equal(t, a, b)
}

func TestChecksRunsEachPropertyIndependently(t *testing.T) {
	g := gen.Int(0, 10)
	props := []NamedProperty[int]{
		{Name: "always-true", Prop: prove.Bool(func(int) bool { return true })},
		{Name: "always-false", Prop: prove.Bool(func(int) bool { return false })},
	}
	reports := Checks(g, props, Config{Seed: 1, Examples: 5, MaxShrink: 10})
	assert.Equal(t, prove.Pass, reports["always-true"].Outcome.Kind)
	assert.Equal(t, prove.Disprove, reports["always-false"].Outcome.Kind)
}

func TestChecksStopOnFirstFailureSkipsLaterProperties(t *testing.T) {
	g := gen.Int(0, 10)
	props := []NamedProperty[int]{
		{Name: "fails", Prop: prove.Bool(func(int) bool { return false })},
		{Name: "never-runs", Prop: prove.Bool(func(int) bool { return true })},
	}
	reports := Checks(g, props, Config{Seed: 1, Examples: 5, MaxShrink: 10, StopOnFirstFailure: true})
	_, ran := reports["never-runs"]
	assert.False(t, ran, "Checks ran the property after the first failure despite StopOnFirstFailure")
}

func TestShrinkDelegatesToShrinkSearch(t *testing.T) {
	tree := gen.NewTree(20, func() []gen.ShrinkTree[int] {
		return []gen.ShrinkTree[int]{gen.Leaf(10)}
	})
	min, stats := Shrink(tree, func(v int) bool { return v >= 10 }, Config{MaxShrink: 10})
	require.Equal(t, 10, min)
	assert.Equal(t, 1, stats.Accepted)
}
