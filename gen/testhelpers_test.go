package gen

// testState builds a State at size 1 (the full reachable range) for
// a given seed, shared by this package's test files.
func testState(seed Seed) State {
	return State{Size: 1, Seed: seed}
}
