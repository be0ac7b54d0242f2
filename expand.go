package espresso

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// Expand enlarges every non-prime cube of F into a prime implicant against
// the OFF-set R, absorbing other cubes of F where possible, and returns a
// compacted cover in which every cube is Prime.
//
// If nonsparse is true, only non-output variables are expanded; the output
// variable's parts are frozen exactly as given in each input cube. This is
// the mode MakeSparse uses when re-expanding after mvReduce.
func (s *Solver) Expand(F, R *Cover, nonsparse bool) *Cover {
	F = miniSort(F)

	initLower := s.Geometry.NewCube()
	if nonsparse {
		initLower.Or(initLower, s.Geometry.VarMask[s.Geometry.Output])
	}

	for _, p := range F.Entries {
		p.reset(Covered)
		p.reset(NonEssen)
	}

	var rng *rand.Rand
	if s.RandomMinCov {
		rng = s.rand()
	}

	for _, p := range F.Entries {
		if !p.Is(Prime) && !p.Is(Covered) {
			expand1(s.Geometry, R, F, initLower, p, s.RandomMinCov, rng)
		}
	}

	F.ActiveCount = 0
	changed := false
	for _, p := range F.Entries {
		if p.Is(Covered) {
			p.reset(Active)
			changed = true
		} else {
			p.set(Active)
			F.ActiveCount++
		}
	}
	if changed {
		F = sfInactive(F)
	}
	return F
}

// miniSort stably reorders a cover's cubes by ascending weight (part
// count): smaller, more easily expanded cubes are considered first so
// their expansions have the best chance to absorb the larger ones.
func miniSort(F *Cover) *Cover {
	out := NewCover(len(F.Entries))
	out.Entries = append(out.Entries, F.Entries...)
	out.ActiveCount = F.ActiveCount
	slices.SortStableFunc(out.Entries, func(a, b *Entry) int {
		return a.Cube.Weight() - b.Cube.Weight()
	})
	return out
}
