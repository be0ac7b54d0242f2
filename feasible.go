package espresso

import "math"

// feasibleCandidate pairs a still-possibly-feasible ON cube with the parts
// that would be forced into lowering if it were chosen.
type feasibleCandidate struct {
	entry    *Entry
	newLower Cube
}

// selectFeasible repeatedly absorbs ON-set cubes of CC into raise while
// preserving feasibility, using one-level lookahead to prefer the
// candidate that keeps the most peers feasible.
func selectFeasible(g *Geometry, BB, CC *Cover, raise, freeset, superCube Cube, numCovered *int) {
	feas := make([]feasibleCandidate, 0, CC.ActiveCount)
	CC.forEachActive(func(p *Entry) {
		feas = append(feas, feasibleCandidate{entry: p, newLower: g.NewCube()})
	})

	for {
		// Raising any part unblocked by the remaining OFF-set can only
		// help; it may itself cover some candidates outright.
		essenRaising(g, BB, raise, freeset)

		next := make([]feasibleCandidate, 0, len(feas))
		for _, c := range feas {
			p := c.entry
			if !p.Is(Active) {
				// deactivated by essenParts/elimLowering since we last saw it
				continue
			}
			if p.Cube.Implies(raise) {
				*numCovered++
				superCube.Or(superCube, p.Cube)
				CC.setActive(p, false)
				p.set(Covered)
			} else if feasiblyCovered(g, BB, p.Cube, raise, c.newLower) {
				next = append(next, c)
			}
		}
		feas = next
		if len(feas) == 0 {
			return
		}

		bestCount := 0
		bestSize := math.MaxInt
		var best feasibleCandidate
		for i := range feas {
			size := SetDist(feas[i].entry.Cube, freeset)
			count := 0
			for j := range feas {
				if feas[i].newLower.DisjointFrom(feas[j].entry.Cube) {
					count++
				}
			}
			if count > bestCount {
				bestCount = count
				best = feas[i]
				bestSize = size
			} else if count == bestCount && size < bestSize {
				best = feas[i]
				bestSize = size
			}
		}

		raise.Or(raise, best.entry.Cube)
		freeset.Diff(freeset, raise)
		essenParts(g, BB, CC, raise, freeset)
	}
}

// feasiblyCovered reports whether raising to cover c is still compatible
// with orthogonality against BB, and if so records into newLower the parts
// that choosing c would force into lowering.
func feasiblyCovered(g *Geometry, BB *Cover, c, raise, newLower Cube) bool {
	r := g.NewCube().Or(raise, c)
	newLower.Clear()

	feasible := true
	BB.forEachActive(func(p *Entry) {
		if !feasible {
			return
		}
		switch g.Dist01(p.Cube, r) {
		case 0:
			feasible = false
		case 1:
			g.ForceLower(newLower, p.Cube, r)
		}
	})
	return feasible
}
