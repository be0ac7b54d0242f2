package espresso

import "math/rand"

// Solver wraps a Geometry and exposes its two operations, Expand and
// MakeSparse, behind a small stateful type instead of passing the geometry
// to every call.
type Solver struct {
	Geometry *Geometry

	// RandomMinCov selects the random-pick variant of mincov: a
	// uniformly random free part instead of the greedy unate-cover solve.
	// Off by default; it exists as an opt-in debugging/benchmarking
	// mode, not the default path.
	RandomMinCov bool

	// Seed, when RandomMinCov is set, seeds the random source used by
	// mincov so a run can be reproduced. Zero means an unseeded,
	// time-varying source.
	Seed int64
}

// NewSolver returns a Solver over g with RandomMinCov off.
func NewSolver(g *Geometry) *Solver {
	return &Solver{Geometry: g}
}

func (s *Solver) rand() *rand.Rand {
	if s.Seed != 0 {
		return rand.New(rand.NewSource(s.Seed))
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
