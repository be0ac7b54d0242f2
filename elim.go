package espresso

// elimLowering prunes BB and CC after FREESET has shrunk: any OFF cube that
// no longer intersects the over-expanded cube (raise ∪ freeset) can never
// block a future expansion of this cube, and any ON cube not implied by it
// can never be absorbed. This is pure pruning; it never touches raise or
// freeset itself.
//
// CC may be nil, when mincov's heuristic branch expands with no covering
// set to prune.
func elimLowering(g *Geometry, BB, CC *Cover, raise, freeset Cube) {
	r := g.NewCube().Or(raise, freeset)

	BB.forEachActive(func(p *Entry) {
		if !g.Dist0(p.Cube, r) {
			BB.setActive(p, false)
		}
	})

	if CC != nil {
		CC.forEachActive(func(p *Entry) {
			if !p.Cube.Implies(r) {
				CC.setActive(p, false)
			}
		})
	}
}
