package espresso

// MakeSparse alternates a reduction of the output-variable parts against
// F's cover with a restricted re-expansion of the remaining (dense)
// variables, stopping at the first pass that fails to improve total
// literal cost: recompute cost after each pass, compare it to the best
// cost seen so far, and stop as soon as a pass fails to improve on it.
func (s *Solver) MakeSparse(F, D, R *Cover) *Cover {
	g := s.Geometry
	if D == nil {
		D = NewCover(0)
	}

	best := coverCost(g, F)
	for {
		F = mvReduce(g, F, D)
		cost := coverCost(g, F)
		if cost.Total >= best.Total {
			break
		}
		best = copyCost(cost)

		F = s.Expand(F, R, true)
		cost = coverCost(g, F)
		if cost.Total >= best.Total {
			break
		}
		best = copyCost(cost)
	}
	return F
}

// mvReduce performs an "optimal" reduction of the output variable: for
// each output part i, it cofactors F and D against part i, marks which
// cofactored cubes are redundant, and removes part i from the
// corresponding original cubes of F that turned out redundant. Cubes whose
// output projection becomes empty are dropped.
func mvReduce(g *Geometry, F, D *Cover) *Cover {
	outMask := g.VarMask[g.Output]

	for i := g.FirstPart[g.Output]; i <= g.LastPart[g.Output]; i++ {
		var cubeTable []*Entry
		F1 := NewCover(len(F.Entries))
		for _, p := range F.Entries {
			if p.Cube.Test(i) {
				cubeTable = append(cubeTable, p)
				p1 := g.NewCube().Diff(p.Cube, outMask)
				p1.Insert(i)
				F1.Add(p1, Active)
			}
		}
		F1.ActiveCount = len(F1.Entries)

		D1 := NewCover(len(D.Entries))
		for _, p := range D.Entries {
			if p.Cube.Test(i) {
				p1 := g.NewCube().Diff(p.Cube, outMask)
				p1.Insert(i)
				D1.Add(p1, Active)
			}
		}
		D1.ActiveCount = len(D1.Entries)

		markIrredundant(F1, D1)

		for idx, p1 := range F1.Entries {
			if !p1.Is(Active) {
				p := cubeTable[idx]
				p.Cube.Remove(i)
				p.reset(Prime)
			}
		}
	}

	sfActive(F)
	for _, p := range F.Entries {
		if p.Is(Active) && outMask.DisjointFrom(p.Cube) {
			F.setActive(p, false)
		}
	}

	if F.ActiveCount != len(F.Entries) {
		F = sfInactive(F)
	}
	return F
}
