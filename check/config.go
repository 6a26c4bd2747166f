// Package check drives property execution: it ramps generation size
// across a run of examples, invokes the property under test, and on
// failure hands the counterexample's shrink tree to the shrink
// package to find a smaller reproduction.
package check

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config controls a check run. Default() starts from the baseline
// values and then applies the environment overrides bound through
// viper (CHECKITO_GENERATE_* and CHECKITO_SHRINK_*), so the
// environment wins over the baseline. Check does not read the
// environment itself: fields a caller sets on the struct, on a bare
// literal or after Default(), are used as they are.
type Config struct {
	// Seed seeds the run's RNG lineage. Zero means derive one from
	// the current time.
	Seed int64

	// Examples is how many generated values to check.
	Examples int

	// MaxShrink bounds how many property invocations the shrink
	// search may spend per failure.
	MaxShrink int

	// Parallelism is how many workers run examples concurrently.
	// 1 (the default) runs sequentially.
	Parallelism int

	// Timeout bounds the wall-clock time a whole check run may take;
	// checked between iterations and between shrink candidates (§5),
	// zero means no deadline.
	Timeout time.Duration

	// StopOnFirstFailure stops the run as soon as one example fails
	// (after shrinking it), rather than continuing to the next. In a
	// parallel run (Parallelism > 1) every example is still executed;
	// only the lowest-index failure is shrunk and reported.
	StopOnFirstFailure bool

	// FilterRetries holds a retry budget, resolved from
	// CHECKITO_GENERATE_FILTER_RETRIES by Default(). Neither Check nor
	// gen.Filter reads it: a Filter's budget is the retries argument it
	// was built with.
	FilterRetries int

	// SizeLo and SizeHi bound the size ramp (§4.5 step 3a): the first
	// example draws at SizeLo, the last at SizeHi, linearly
	// interpolated in between.
	SizeLo float64
	SizeHi float64

	// SizeFixed, when non-nil, overrides the ramp entirely: every
	// example draws at this fixed size instead of following SizeLo/Hi.
	SizeFixed *float64

	// LogItems, when true, logs a structured entry for every passing
	// example, not just failures.
	LogItems bool

	// ShrinkLogItems logs each accepted (strictly smaller) shrink
	// candidate found during a shrink search.
	ShrinkLogItems bool

	// ShrinkLogErrors logs each rejected shrink candidate.
	ShrinkLogErrors bool

	// Logger receives the driver's structured observability events
	// (pass, disprove, shrink-accept, shrink-reject). Default() sets
	// this to logrus.StandardLogger(); callers may inject their own.
	Logger logrus.FieldLogger
}

// Default returns the baseline Config, then applies any
// CHECKITO_GENERATE_*/CHECKITO_SHRINK_* environment overrides found
// via viper's automatic env binding.
func Default() Config {
	cfg := Config{
		Seed:               0,
		Examples:           100,
		MaxShrink:          500,
		Parallelism:        1,
		Timeout:            0,
		StopOnFirstFailure: true,
		FilterRetries:      1000,
		SizeLo:             0,
		SizeHi:             1,
		SizeFixed:          nil,
		LogItems:           true,
		ShrinkLogItems:     true,
		ShrinkLogErrors:    true,
		Logger:             logrus.StandardLogger(),
	}
	return cfg.withEnvOverrides()
}

func (c Config) withEnvOverrides() Config {
	v := viper.New()
	v.SetEnvPrefix("CHECKITO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("generate.seed", c.Seed)
	v.SetDefault("generate.examples", c.Examples)
	v.SetDefault("generate.parallelism", c.Parallelism)
	v.SetDefault("generate.timeout_ms", c.Timeout.Milliseconds())
	v.SetDefault("generate.filter_retries", c.FilterRetries)
	v.SetDefault("generate.size_lo", c.SizeLo)
	v.SetDefault("generate.size_hi", c.SizeHi)
	v.SetDefault("generate.items", c.LogItems)
	v.SetDefault("shrink.max_steps", c.MaxShrink)
	v.SetDefault("shrink.stop_on_first_failure", c.StopOnFirstFailure)
	v.SetDefault("shrink.items", c.ShrinkLogItems)
	v.SetDefault("shrink.errors", c.ShrinkLogErrors)

	c.Seed = v.GetInt64("generate.seed")
	c.Examples = v.GetInt("generate.examples")
	c.Parallelism = v.GetInt("generate.parallelism")
	if ms := v.GetInt64("generate.timeout_ms"); ms > 0 {
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	c.FilterRetries = v.GetInt("generate.filter_retries")
	c.SizeLo = v.GetFloat64("generate.size_lo")
	c.SizeHi = v.GetFloat64("generate.size_hi")
	c.LogItems = v.GetBool("generate.items")
	c.MaxShrink = v.GetInt("shrink.max_steps")
	c.StopOnFirstFailure = v.GetBool("shrink.stop_on_first_failure")
	c.ShrinkLogItems = v.GetBool("shrink.items")
	c.ShrinkLogErrors = v.GetBool("shrink.errors")
	if v.IsSet("generate.size_fixed") {
		fixed := v.GetFloat64("generate.size_fixed")
		c.SizeFixed = &fixed
	}
	return c
}

func (c Config) effectiveSeed() int64 { return c.EffectiveSeed() }

// EffectiveSeed returns c.Seed, or a seed derived from the current
// time if c.Seed is zero. Exported so callers outside this package
// (qtest's ForAll in particular) can log/replay the same seed Check
// itself will use.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
