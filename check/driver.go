package check

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lucaskalb/qcheck/gen"
	"github.com/lucaskalb/qcheck/prove"
	"github.com/lucaskalb/qcheck/rng"
	"github.com/lucaskalb/qcheck/shrink"
	"github.com/sirupsen/logrus"
)

// Check runs cfg.Examples generated values from g through prop,
// ramping the generation size linearly from cfg.SizeLo at the first
// example to cfg.SizeHi at the last, or holding cfg.SizeFixed (see
// rampSize, §4.5 step 3a), and shrinks the first failure it
// finds. With cfg.Parallelism > 1, examples are dispatched to a
// worker pool; the first failure observed (by example index) is the
// one reported, and shrinking always runs single-threaded afterward.
func Check[T any](g gen.Generator[T], prop prove.Property[T], cfg Config) CheckReport[T] {
	runID := uuid.New()
	seed := cfg.effectiveSeed()
	deadline := cfg.deadline()

	if cfg.Parallelism <= 1 {
		return checkSequential(g, prop, cfg, runID, seed, deadline)
	}
	return checkParallel(g, prop, cfg, runID, seed, deadline)
}

// deadline returns the wall-clock instant a run started now must stop
// by, or the zero time.Time if Timeout is unset (no deadline).
func (c Config) deadline() time.Time {
	if c.Timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.Timeout)
}

func pastDeadline(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

type iterationResult[T any] struct {
	index   int
	state   rng.State
	sample  gen.Sample[T]
	outcome prove.Outcome
}

func runIteration[T any](g gen.Generator[T], prop prove.Property[T], cfg Config, seed int64, i, n int) (res iterationResult[T]) {
	res.index = i
	defer func() {
		if r := recover(); r != nil {
			res.outcome = generationPanicOutcome(r)
		}
	}()
	res.state = rng.New(rng.DeriveIterationSeed(rng.Seed(seed), i)).WithSize(rampSize(i, n, cfg))
	res.sample = g.Generate(res.state)
	res.outcome = prove.Run(prop, res.sample.Value)
	return res
}

// rampSize interpolates between cfg.SizeLo (the first example) and
// cfg.SizeHi (the last), or returns cfg.SizeFixed unconditionally when
// set (§4.5 step 3a, §6's size.lo/size.hi/size.fixed knobs). A caller
// that builds a Config literal without going through Default() and
// leaves SizeLo/SizeHi both at their zero value gets the same 0→1
// ramp Default() would have given it, rather than size pinned at 0.
func rampSize(i, n int, cfg Config) rng.Size {
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
	t := float64(i) / float64(n-1)
	return rng.Size(lo + t*(hi-lo)).Clamp()
}

func generationPanicOutcome(r any) prove.Outcome {
	if ee, ok := r.(*gen.ExhaustedError); ok {
		return prove.Outcome{Kind: prove.Exhausted, Reason: ee.Error()}
	}
	if err, ok := r.(error); ok {
		return prove.Outcome{Kind: prove.Error, Reason: err.Error(), Failure: err}
	}
	return prove.Outcome{Kind: prove.Error, Reason: "panic during generation"}
}

func checkSequential[T any](g gen.Generator[T], prop prove.Property[T], cfg Config, runID uuid.UUID, seed int64, deadline time.Time) CheckReport[T] {
	report := CheckReport[T]{RunID: runID, Seed: seed}
	e := runLogger(cfg, runID)
	for i := 0; i < cfg.Examples; i++ {
		if pastDeadline(deadline) {
			e.WithField("examples_run", i).Warn("check run hit its deadline")
			report.Outcome = prove.Outcome{Kind: prove.Timeout, Reason: "deadline exceeded between iterations"}
			return report
		}
		report.ExamplesRun = i + 1
		res := runIteration(g, prop, cfg, seed, i, cfg.Examples)
		if !res.outcome.Failed() {
			logPass(cfg, e, i+1)
			continue
		}
		logDisprove(e, i+1, res.outcome)
		if !report.Outcome.Failed() {
			finishFailure(&report, prop, cfg, e, res, deadline)
		}
		if cfg.StopOnFirstFailure {
			return report
		}
	}
	if !report.Outcome.Failed() {
		report.Outcome = prove.Outcome{Kind: prove.Pass}
	}
	return report
}

func checkParallel[T any](g gen.Generator[T], prop prove.Property[T], cfg Config, runID uuid.UUID, seed int64, deadline time.Time) CheckReport[T] {
	e := runLogger(cfg, runID)
	results := make(chan iterationResult[T], cfg.Examples)
	indices := make(chan int, cfg.Examples)
	for i := 0; i < cfg.Examples; i++ {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				if pastDeadline(deadline) {
					return
				}
				results <- runIteration(g, prop, cfg, seed, i, cfg.Examples)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	report := CheckReport[T]{RunID: runID, Seed: seed}
	var firstFailure *iterationResult[T]
	examplesSeen := 0
	for res := range results {
		examplesSeen++
		if examplesSeen > report.ExamplesRun {
			report.ExamplesRun = examplesSeen
		}
		if res.outcome.Failed() {
			logDisprove(e, res.index+1, res.outcome)
			if firstFailure == nil || res.index < firstFailure.index {
				r := res
				firstFailure = &r
			}
		} else {
			logPass(cfg, e, res.index+1)
		}
	}

	if firstFailure == nil {
		if pastDeadline(deadline) {
			report.Outcome = prove.Outcome{Kind: prove.Timeout, Reason: "deadline exceeded between iterations"}
			return report
		}
		report.Outcome = prove.Outcome{Kind: prove.Pass}
		return report
	}
	finishFailure(&report, prop, cfg, e, *firstFailure, deadline)
	return report
}

// finishFailure records the original failing sample and, for both
// Disprove and Error outcomes, runs the shrink search to find a
// smaller reproduction (spec §3, §7: Error is treated as equivalent
// to Disprove for search purposes).
func finishFailure[T any](report *CheckReport[T], prop prove.Property[T], cfg Config, e *logrus.Entry, res iterationResult[T], deadline time.Time) {
	report.Outcome = res.outcome
	if res.outcome.Kind != prove.Disprove && res.outcome.Kind != prove.Error {
		return
	}

	report.HasCounterexample = true
	report.Original = res.sample.Value
	report.OriginalOutcome = res.outcome
	report.StateAtOriginal = res.state

	step := 0
	min, stats := shrink.Search(res.sample.Tree, func(v T) bool {
		if pastDeadline(deadline) {
			return false
		}
		step++
		out := prove.Run(prop, v)
		if out.Kind == prove.Disprove || out.Kind == prove.Error {
			logShrinkAccept(cfg, e, step)
			return true
		}
		logShrinkReject(cfg, e, step)
		return false
	}, cfg.MaxShrink)
	report.Shrunk = &min
	report.ShrunkOutcome = prove.Run(prop, min)
	report.ShrinkStats = stats
}
