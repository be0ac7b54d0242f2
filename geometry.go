package espresso

import "fmt"

// GeometryConfig describes the multi-valued variables of a problem instance
// before any cubes are built: how many parts each variable owns, and which
// variable is the output variable.
type GeometryConfig struct {
	// VarSizes[v] is the number of parts (alphabet size) of variable v.
	VarSizes []int
	// Output is the index of the output variable in VarSizes.
	Output int
}

// ApplyDefaults fills in a single-part, single-variable placeholder
// geometry when VarSizes is empty. Real callers always supply VarSizes
// explicitly; this only prevents a zero Geometry from panicking on
// construction.
func (cfg *GeometryConfig) ApplyDefaults() {
	if len(cfg.VarSizes) == 0 {
		cfg.VarSizes = []int{1}
	}
}

// Verify checks cfg for internal consistency. Call ApplyDefaults first.
func (cfg *GeometryConfig) Verify() error {
	if len(cfg.VarSizes) == 0 {
		return fmt.Errorf("espresso: GeometryConfig.VarSizes must be non-empty")
	}
	for v, n := range cfg.VarSizes {
		if n <= 0 {
			return fmt.Errorf("espresso: GeometryConfig.VarSizes[%d]=%d; must be positive", v, n)
		}
	}
	if !(0 <= cfg.Output && cfg.Output < len(cfg.VarSizes)) {
		return fmt.Errorf("espresso: GeometryConfig.Output=%d out of range [0,%d)", cfg.Output, len(cfg.VarSizes))
	}
	return nil
}

// Geometry is the immutable part layout shared by every cube of a problem
// instance: the total part count, the first/last part of each variable, the
// per-variable mask, and the distinguished output variable. It is an
// explicit context object that can be constructed more than once per
// process, so distinct problem instances never share mutable state.
type Geometry struct {
	Size      int
	Output    int
	FirstPart []int
	LastPart  []int
	VarMask   []Cube
	Fullset   Cube
	Emptyset  Cube
}

// NewGeometry builds a Geometry from cfg. cfg is defaulted and verified
// first; an invalid configuration returns an error rather than panicking,
// since this is an ordinary construction-time failure, not the algorithm's
// one fatal condition.
func NewGeometry(cfg GeometryConfig) (*Geometry, error) {
	cfg.ApplyDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	g := &Geometry{
		Output:    cfg.Output,
		FirstPart: make([]int, len(cfg.VarSizes)),
		LastPart:  make([]int, len(cfg.VarSizes)),
	}
	part := 0
	for v, n := range cfg.VarSizes {
		g.FirstPart[v] = part
		part += n
		g.LastPart[v] = part - 1
	}
	g.Size = part

	g.Fullset = newCubeWords(g.Size)
	for i := 0; i < g.Size; i++ {
		g.Fullset.Insert(i)
	}
	g.Emptyset = newCubeWords(g.Size)

	g.VarMask = make([]Cube, len(cfg.VarSizes))
	for v := range cfg.VarSizes {
		m := newCubeWords(g.Size)
		for i := g.FirstPart[v]; i <= g.LastPart[v]; i++ {
			m.Insert(i)
		}
		g.VarMask[v] = m
	}
	return g, nil
}

// NewCube returns a fresh, empty cube sized for this geometry.
func (g *Geometry) NewCube() Cube {
	return newCubeWords(g.Size)
}

// CubeFromParts returns a fresh cube of this geometry with exactly the
// given parts set. Convenience for building test fixtures and small
// hand-written covers; the core algorithm never calls it itself.
func (g *Geometry) CubeFromParts(parts ...int) Cube {
	c := g.NewCube()
	for _, p := range parts {
		c.Insert(p)
	}
	return c
}

// NumVars returns the number of multi-valued variables in the geometry.
func (g *Geometry) NumVars() int {
	return len(g.VarMask)
}

// varOf returns the variable index owning part i.
func (g *Geometry) varOf(i int) int {
	for v := range g.VarMask {
		if i >= g.FirstPart[v] && i <= g.LastPart[v] {
			return v
		}
	}
	return -1
}

// Dist0 reports whether a and b intersect in every variable (distance 0).
// Mirrors cdist0(a,b).
func (g *Geometry) Dist0(a, b Cube) bool {
	tmp := g.NewCube()
	for v := range g.VarMask {
		m := g.VarMask[v]
		if tmp.And(a, m).DisjointFrom(b) {
			return false
		}
	}
	return true
}

// Dist01 returns 0 if a and b are at distance 0 (intersect in every
// variable), 1 if exactly one variable separates them, or 2 if two or more
// variables separate them. Mirrors cdist01(a,b).
func (g *Geometry) Dist01(a, b Cube) int {
	sep := 0
	tmp := g.NewCube()
	for v := range g.VarMask {
		m := g.VarMask[v]
		if tmp.And(a, m).DisjointFrom(b) {
			sep++
			if sep >= 2 {
				return 2
			}
		}
	}
	return sep
}

// ForceLower computes, into dst, the parts that must never be added to
// raise to preserve orthogonality with offCube: for every variable v in
// which offCube and raise are currently disjoint, offCube's own parts in
// v. Raising any of those parts would close that variable's separation and
// risks driving offCube and raise to distance 0, a fatal orthogonality
// violation. essenParts and feasiblyCovered only ever see a single
// separating variable, so the union has one term there; mincov calls this
// on OFF cubes with two or more separating variables, where the union
// across all of them is the row a unate cover needs.
func (g *Geometry) ForceLower(dst, offCube, raise Cube) Cube {
	tmp := g.NewCube()
	for _, m := range g.VarMask {
		if tmp.And(offCube, m).DisjointFrom(raise) {
			dst.Or(dst, tmp)
		}
	}
	return dst
}
