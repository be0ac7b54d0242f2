package espresso

import "math/bits"

const wordBits = 64

// Cube is a bit vector over parts. Bit i set means "part i is permitted";
// the cube represents the Cartesian product, over each variable, of the
// subset of its parts whose bits are set.
//
// All Cube values produced by the same *Geometry share the same length and
// may be freely combined. Combining cubes from different geometries is a
// programmer error and is not guarded against, matching the C source's
// treatment of cube.size as an implicit global invariant.
type Cube struct {
	w []uint64
}

func newCubeWords(nparts int) Cube {
	return Cube{w: make([]uint64, (nparts+wordBits-1)/wordBits)}
}

// Clone returns an independent copy of c.
func (c Cube) Clone() Cube {
	w := make([]uint64, len(c.w))
	copy(w, c.w)
	return Cube{w: w}
}

// Test reports whether part i is set in c.
func (c Cube) Test(i int) bool {
	return c.w[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Insert sets part i in c and returns c.
func (c Cube) Insert(i int) Cube {
	c.w[i/wordBits] |= 1 << uint(i%wordBits)
	return c
}

// Remove clears part i in c and returns c.
func (c Cube) Remove(i int) Cube {
	c.w[i/wordBits] &^= 1 << uint(i%wordBits)
	return c
}

// Clear resets every part of c to zero and returns c.
func (c Cube) Clear() Cube {
	for i := range c.w {
		c.w[i] = 0
	}
	return c
}

// Copy sets c to a and returns c. Mirrors the source's set_copy(dst, src).
func (c Cube) Copy(a Cube) Cube {
	copy(c.w, a.w)
	return c
}

// Or sets c to a|b and returns c. Mirrors set_or(dst, a, b).
func (c Cube) Or(a, b Cube) Cube {
	for i := range c.w {
		c.w[i] = a.w[i] | b.w[i]
	}
	return c
}

// And sets c to a&b and returns c. Mirrors set_and(dst, a, b).
func (c Cube) And(a, b Cube) Cube {
	for i := range c.w {
		c.w[i] = a.w[i] & b.w[i]
	}
	return c
}

// Diff sets c to a&^b and returns c. Mirrors set_diff(dst, a, b).
func (c Cube) Diff(a, b Cube) Cube {
	for i := range c.w {
		c.w[i] = a.w[i] &^ b.w[i]
	}
	return c
}

// IsEmpty reports whether c has no parts set. Mirrors setp_empty.
func (c Cube) IsEmpty() bool {
	for _, x := range c.w {
		if x != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether c and o have identical parts. Mirrors setp_equal.
func (c Cube) Equal(o Cube) bool {
	for i := range c.w {
		if c.w[i] != o.w[i] {
			return false
		}
	}
	return true
}

// Implies reports whether every part of c is also a part of o.
// Mirrors setp_implies(c, o).
func (c Cube) Implies(o Cube) bool {
	for i := range c.w {
		if c.w[i]&^o.w[i] != 0 {
			return false
		}
	}
	return true
}

// DisjointFrom reports whether c and o share no part. Mirrors setp_disjoint.
func (c Cube) DisjointFrom(o Cube) bool {
	for i := range c.w {
		if c.w[i]&o.w[i] != 0 {
			return false
		}
	}
	return true
}

// Weight returns the number of parts set in c.
func (c Cube) Weight() int {
	n := 0
	for _, x := range c.w {
		n += bits.OnesCount64(x)
	}
	return n
}

// SetDist returns the number of parts in a∩b. Mirrors set_dist(a,b).
func SetDist(a, b Cube) int {
	n := 0
	for i := range a.w {
		n += bits.OnesCount64(a.w[i] & b.w[i])
	}
	return n
}

// SetAdjCnt adds delta to counters[i] for every part i set in set.
// Mirrors set_adjcnt(set, counters, delta).
func SetAdjCnt(set Cube, counters []int, delta int) {
	for wi, x := range set.w {
		for x != 0 {
			bit := bits.TrailingZeros64(x)
			counters[wi*wordBits+bit] += delta
			x &= x - 1
		}
	}
}

// forEachPart calls fn for every part set in c, in ascending order.
func forEachPart(c Cube, fn func(i int)) {
	for wi, x := range c.w {
		for x != 0 {
			bit := bits.TrailingZeros64(x)
			fn(wi*wordBits + bit)
			x &= x - 1
		}
	}
}
