package espresso

// essenParts determines which parts are forced into the lowering set to
// keep the raising cube orthogonal to the OFF-set BB. Any OFF cube at
// distance 1 from raise forces its own parts in the separating variable to
// stay lowered (see ForceLower); any OFF cube at distance 0 means F and R were not
// orthogonal, a fatal precondition violation.
//
// CC may be nil (mincov's heuristic branch calls essen_parts with CC ==
// NULL); elimLowering handles that the same way.
func essenParts(g *Geometry, BB, CC *Cover, raise, freeset Cube) {
	xlower := g.NewCube()

	BB.forEachActive(func(p *Entry) {
		switch g.Dist01(p.Cube, raise) {
		case 0:
			panic(&Fault{Msg: "ON-set and OFF-set are not orthogonal", Cube: p.Cube.Clone()})
		case 1:
			g.ForceLower(xlower, p.Cube, raise)
			BB.setActive(p, false)
		}
	})

	if !xlower.IsEmpty() {
		freeset.Diff(freeset, xlower)
		elimLowering(g, BB, CC, raise, freeset)
	}
}

// essenRaising determines which free parts are blocked by no remaining
// active OFF cube and therefore can always be raised without restricting
// any future expansion.
func essenRaising(g *Geometry, BB *Cover, raise, freeset Cube) {
	union := g.NewCube()
	BB.forEachActive(func(p *Entry) {
		union.Or(union, p.Cube)
	})

	xraise := g.NewCube().Diff(freeset, union)
	raise.Or(raise, xraise)
	freeset.Diff(freeset, xraise)
}
