package espresso

import "math/rand"

// mincovSizeGuard bounds the unravelled minimum-cover problem's size; a
// row that would explode past this, or a running total that does, sends
// mincov down the cheaper heuristic branch instead.
const mincovSizeGuard = 500

// mincov transforms the residual OFF-set blocking constraint into a
// unate-cover problem and solves it (or falls back to a heuristic pick
// when the unravelled problem would be too large), removing at least one
// blocking OFF cube's worth of freedom on every call.
//
// randomMinCov selects the random-pick variant: a uniformly random free
// part is chosen instead of running the unate-cover solver. It is off by default
// (see Solver.RandomMinCov) and exists only as an opt-in
// benchmarking/debugging mode; rng must be non-nil when it is true.
func mincov(g *Geometry, BB *Cover, raise, freeset Cube, randomMinCov bool, rng *rand.Rand) {
	if randomMinCov {
		mincovRandom(g, BB, raise, freeset, rng)
		return
	}

	B := NewCover(BB.ActiveCount)
	BB.forEachActive(func(p *Entry) {
		plower := g.NewCube()
		g.ForceLower(plower, p.Cube, raise)
		B.Add(plower, Active)
	})
	B.ActiveCount = len(B.Entries)

	outMask := g.VarMask[g.Output]
	nset := 0
	for _, row := range B.Entries {
		expansion := 1
		if dist := SetDist(row.Cube, outMask); dist > 1 {
			expansion = dist
			if expansion > mincovSizeGuard {
				mincovHeuristic(g, BB, raise, freeset)
				return
			}
		}
		nset += expansion
		if nset > mincovSizeGuard {
			mincovHeuristic(g, BB, raise, freeset)
			return
		}
	}

	unraveled := unravelOutput(g, B)
	xlower := doSMMinimumCover(g, unraveled)

	raise.Or(raise, g.NewCube().Diff(freeset, xlower))
	freeset.Clear()
	BB.deactivateAll()
}

// mincovRandom implements the random-pick variant: raise a uniformly
// random free part instead of solving the unate cover.
func mincovRandom(g *Geometry, BB *Cover, raise, freeset Cube, rng *rand.Rand) {
	ord := freeset.Weight()
	if ord == 0 {
		return
	}
	pick := rng.Intn(ord)
	part := -1
	forEachPart(freeset, func(i int) {
		if part >= 0 {
			return
		}
		if pick == 0 {
			part = i
			return
		}
		pick--
	})
	raise.Insert(part)
	freeset.Remove(part)
	essenParts(g, BB, nil, raise, freeset)
}

// mincovHeuristic is the fallback taken when the unate-cover formulation
// would be too expensive to unravel: raise a single free part and let the
// caller's loop iterate. mostFrequent is called with no covering set, so
// every count is zero and the lowest-indexed free part is raised.
func mincovHeuristic(g *Geometry, BB *Cover, raise, freeset Cube) {
	part := mostFrequent(g, nil, freeset)
	raise.Insert(part)
	freeset.Diff(freeset, raise)
	essenParts(g, BB, nil, raise, freeset)
}

// unravelOutput expands B so that every row fixes at most a single part of
// the output variable, splitting a row with several output-variable parts
// into one row per part.
func unravelOutput(g *Geometry, B *Cover) *Cover {
	outMask := g.VarMask[g.Output]
	out := NewCover(B.ActiveCount)

	B.forEachActive(func(row *Entry) {
		outBits := g.NewCube().And(row.Cube, outMask)
		if outBits.Weight() <= 1 {
			out.Add(row.Cube.Clone(), Active)
			return
		}
		nonOutput := g.NewCube().Diff(row.Cube, outMask)
		forEachPart(outBits, func(i int) {
			r := nonOutput.Clone()
			r.Insert(i)
			out.Add(r, Active)
		})
	})
	out.ActiveCount = len(out.Entries)
	return out
}

// doSMMinimumCover greedily selects a small set of parts that hits every
// active row of B (a unate covering problem): repeatedly pick the part
// covering the most still-uncovered rows until none remain.
func doSMMinimumCover(g *Geometry, B *Cover) Cube {
	xlower := g.NewCube()

	remaining := make([]*Entry, 0, len(B.Entries))
	for _, e := range B.Entries {
		if e.Is(Active) {
			remaining = append(remaining, e)
		}
	}

	for len(remaining) > 0 {
		counts := make([]int, g.Size)
		for _, e := range remaining {
			forEachPart(e.Cube, func(i int) { counts[i]++ })
		}
		bestPart, bestCount := -1, 0
		for i, c := range counts {
			if c > bestCount {
				bestPart, bestCount = i, c
			}
		}
		if bestPart < 0 {
			break
		}
		xlower.Insert(bestPart)

		next := remaining[:0]
		for _, e := range remaining {
			if !e.Cube.Test(bestPart) {
				next = append(next, e)
			}
		}
		remaining = next
	}
	return xlower
}
