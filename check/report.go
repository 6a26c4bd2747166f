package check

import (
	"github.com/google/uuid"
	"github.com/lucaskalb/qcheck/prove"
	"github.com/lucaskalb/qcheck/rng"
	"github.com/lucaskalb/qcheck/shrink"
	"github.com/sirupsen/logrus"
)

// CheckReport summarizes a completed run of Check. Original and Shrunk
// are kept distinct (spec §3's original/shrunk pair) so callers can
// inspect both the first failing value and its minimized form, rather
// than one field overwriting the other.
type CheckReport[T any] struct {
	// RunID uniquely identifies this run, so a replayed or parallel
	// run's log lines can be correlated back to the report that
	// spawned them.
	RunID uuid.UUID

	// Seed is the root seed the run used (§4.5): the same value
	// replays the run exactly.
	Seed int64

	// ExamplesRun is how many top-level examples were checked before
	// the run stopped (by exhausting Config.Examples, or by hitting
	// a failure with StopOnFirstFailure).
	ExamplesRun int

	// Outcome is the final outcome: Pass if every example passed,
	// otherwise the run-level outcome (Disprove, Error, Timeout,
	// Exhausted) of the first failure.
	Outcome prove.Outcome

	// Original is the first failing value found, before shrinking.
	// Valid only when HasCounterexample is true.
	Original T

	// OriginalOutcome is the outcome Original produced.
	OriginalOutcome prove.Outcome

	// StateAtOriginal is the generator state that produced Original,
	// letting a caller reproduce the exact draw.
	StateAtOriginal rng.State

	// Shrunk is the minimal failing value the shrink search found, or
	// nil if no shrink search ran (the run passed, or the failure was
	// Exhausted or Timeout). When the search found nothing smaller,
	// *Shrunk equals Original.
	Shrunk *T

	// ShrunkOutcome is the outcome of re-running the property on
	// *Shrunk, valid only when Shrunk is non-nil.
	ShrunkOutcome prove.Outcome

	// HasCounterexample reports whether Original is populated.
	HasCounterexample bool

	// ShrinkStats describes the shrink search performed against the
	// counterexample, zero value if none was needed.
	ShrinkStats shrink.Stats
}

func runLogger(cfg Config, runID uuid.UUID) *logrus.Entry {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger.WithField("run_id", runID.String())
}

func logPass(cfg Config, entry *logrus.Entry, example int) {
	if !cfg.LogItems {
		return
	}
	entry.WithField("example", example).Debug("property passed")
}

func logDisprove(entry *logrus.Entry, example int, outcome prove.Outcome) {
	entry.WithFields(logrus.Fields{
		"example": example,
		"kind":    outcome.Kind.String(),
		"reason":  outcome.Reason,
	}).Warn("property failed")
}

func logShrinkAccept(cfg Config, entry *logrus.Entry, step int) {
	if !cfg.ShrinkLogItems {
		return
	}
	entry.WithField("step", step).Debug("shrink candidate accepted")
}

func logShrinkReject(cfg Config, entry *logrus.Entry, step int) {
	if !cfg.ShrinkLogErrors {
		return
	}
	entry.WithField("step", step).Debug("shrink candidate rejected")
}
