package espresso

// Cost is the literal-count accounting used to decide whether a sparsening
// pass improved the cover. It marshals to JSON so a caller can log or
// compare cost snapshots across passes.
type Cost struct {
	Cubes    int `json:"cubes"`
	Literals int `json:"literals"`
	Total    int `json:"total"`
}

// coverCost computes the literal cost of cv's active cubes: one cube for
// each active entry, plus one literal per non-output variable that the
// entry does not cover in full.
func coverCost(g *Geometry, cv *Cover) Cost {
	var c Cost
	cv.forEachActive(func(e *Entry) {
		c.Cubes++
		for v := 0; v < g.NumVars(); v++ {
			if v == g.Output {
				continue
			}
			if !g.VarMask[v].Implies(e.Cube) {
				c.Literals++
			}
		}
	})
	c.Total = c.Literals
	return c
}

// copyCost copies src into a fresh Cost value.
func copyCost(src Cost) Cost {
	return src
}
