package espresso

// markIrredundant sets Active on cubes of F1 that are essential and clears
// Active on cubes that are redundant against the rest of F1 plus the
// don't-care set D1. Both covers must already have every entry marked
// Active before the call.
//
// This only detects the cheap, sound case, a cube wholly contained in a
// single other active cube of F1 or D1, rather than the full set-covering
// test a general irredundant-cover pass performs. It never marks a cube
// redundant unless that single-cube containment actually holds, so it
// never drops a cube a full irredundant pass would have kept.
func markIrredundant(F1, D1 *Cover) {
	for _, p := range F1.Entries {
		if !p.Is(Active) {
			continue
		}
		redundant := false
		for _, q := range F1.Entries {
			if q == p || !q.Is(Active) {
				continue
			}
			if p.Cube.Implies(q.Cube) {
				redundant = true
				break
			}
		}
		if !redundant && D1 != nil {
			for _, q := range D1.Entries {
				if !q.Is(Active) {
					continue
				}
				if p.Cube.Implies(q.Cube) {
					redundant = true
					break
				}
			}
		}
		F1.setActive(p, !redundant)
	}
}
