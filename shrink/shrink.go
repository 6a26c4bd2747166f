// Package shrink performs the greedy, depth-first descent search over
// a gen.ShrinkTree that narrows a failing value to a smaller
// counterexample, under a fixed budget of property invocations.
package shrink

import "github.com/lucaskalb/qcheck/gen"

// Stats records how many candidates the search tried and how many it
// accepted as a new (smaller) counterexample.
type Stats struct {
	Accepted int
	Rejected int
}

// Search performs a greedy depth-first descent: at each node it tries
// children in order, and on the first child that still fails
// (check returns true), descends into that child's own children
// immediately rather than finishing the sibling list — the search
// never backtracks to a sibling once a smaller failing value has been
// accepted. A child for which check returns false is rejected and the
// search moves on to the next sibling. It stops once a node has no
// failing child, or once budget invocations have been spent, whichever
// comes first. Determinism follows from ShrinkTree's contract: the
// same parent always yields the same children in the same order.
func Search[T any](tree gen.ShrinkTree[T], check func(T) bool, budget int) (T, Stats) {
	best := tree.Value
	var stats Stats
	node := tree
	for stats.Accepted+stats.Rejected < budget {
		kids := node.Children()
		progressed := false
		for _, kid := range kids {
			if stats.Accepted+stats.Rejected >= budget {
				break
			}
			if !check(kid.Value) {
				stats.Rejected++
				continue
			}
			stats.Accepted++
			best = kid.Value
			node = kid
			progressed = true
			break
		}
		if !progressed {
			break
		}
	}
	return best, stats
}
