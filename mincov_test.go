package espresso

import "testing"

func TestUnravelOutputSplitsMultiPartRows(t *testing.T) {
	g := binaryGeometry(t, 1)
	// A row fixing x0=0 but leaving the whole output variable free should
	// split into one row per output part.
	row := g.CubeFromParts(lit(g, 0, 0), lit(g, 1, 0), lit(g, 1, 1))
	B := CoverFromCubes(row)

	out := unravelOutput(g, B)
	if len(out.Entries) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out.Entries))
	}
	for _, e := range out.Entries {
		outBits := g.NewCube().And(e.Cube, g.VarMask[g.Output])
		if outBits.Weight() != 1 {
			t.Errorf("unravelled row %v has %d output parts, want 1", e.Cube, outBits.Weight())
		}
		if !e.Cube.Test(lit(g, 0, 0)) {
			t.Errorf("unravelled row %v lost its non-output part", e.Cube)
		}
	}
}

func TestUnravelOutputLeavesSinglePartRowsAlone(t *testing.T) {
	g := binaryGeometry(t, 1)
	row := g.CubeFromParts(lit(g, 0, 0), lit(g, 1, 1))
	B := CoverFromCubes(row)

	out := unravelOutput(g, B)
	if len(out.Entries) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out.Entries))
	}
	if !out.Entries[0].Cube.Equal(row) {
		t.Errorf("single-output-part row was altered: got %v, want %v", out.Entries[0].Cube, row)
	}
}

func TestDoSMMinimumCoverHitsEveryRow(t *testing.T) {
	g := binaryGeometry(t, 2)
	rowA := g.CubeFromParts(lit(g, 0, 0))
	rowB := g.CubeFromParts(lit(g, 0, 0), lit(g, 1, 0))
	rowC := g.CubeFromParts(lit(g, 1, 0))
	B := CoverFromCubes(rowA, rowB, rowC)

	cover := doSMMinimumCover(g, B)

	for _, row := range B.Entries {
		if row.Cube.DisjointFrom(cover) {
			t.Errorf("row %v not hit by cover %v", row.Cube, cover)
		}
	}
}

func TestDoSMMinimumCoverEmptyInput(t *testing.T) {
	g := binaryGeometry(t, 1)
	B := NewCover(0)
	cover := doSMMinimumCover(g, B)
	if !cover.IsEmpty() {
		t.Errorf("cover of no rows should be empty, got %v", cover)
	}
}

// TestExpandMincovPerRowSizeGuard exercises mincov's per-row bail branch
// (spec §4.F step 2, §8 scenario S6): force_lower's row for the OFF cube
// below spans nearly the whole 600-part output variable, so its expansion
// alone exceeds mincovSizeGuard on the very first row mincov looks at.
func TestExpandMincovPerRowSizeGuard(t *testing.T) {
	g, err := NewGeometry(GeometryConfig{VarSizes: []int{2, 2, 600}, Output: 2})
	if err != nil {
		t.Fatalf("NewGeometry: %v", err)
	}

	f := g.CubeFromParts(lit(g, 0, 1), lit(g, 1, 1), g.FirstPart[2])
	F := CoverFromCubes(f)

	// Separated from f in both input variables, and covering every output
	// part except f's single one.
	offParts := []int{lit(g, 0, 0), lit(g, 1, 0)}
	for i := g.FirstPart[2] + 1; i <= g.LastPart[2]; i++ {
		offParts = append(offParts, i)
	}
	off := g.CubeFromParts(offParts...)
	R := CoverFromCubes(off)
	orig := snapshotCubes(F)

	s := NewSolver(g)
	result := s.Expand(F, R, false)

	if len(result.Entries) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result.Entries))
	}
	assertOrthogonal(t, g, result, R)
	assertCoversOriginal(t, orig, result)
	assertAllPrime(t, result)
}

// TestExpandMincovAggregateSizeGuard exercises mincov's running-total bail
// branch (spec §4.F step 2, §8 scenario S6): 501 identical, individually
// small OFF rows each contribute an expansion of 1, and their running sum
// crosses mincovSizeGuard on the last of them.
func TestExpandMincovAggregateSizeGuard(t *testing.T) {
	g := binaryGeometry(t, 2)
	f := g.CubeFromParts(lit(g, 0, 1), lit(g, 1, 1), lit(g, 2, 1))
	F := CoverFromCubes(f)

	const numOff = mincovSizeGuard + 1
	offCubes := make([]Cube, numOff)
	for i := range offCubes {
		offCubes[i] = g.CubeFromParts(lit(g, 0, 0), lit(g, 1, 0), lit(g, 2, 1))
	}
	R := CoverFromCubes(offCubes...)
	orig := snapshotCubes(F)

	s := NewSolver(g)
	result := s.Expand(F, R, false)

	if len(result.Entries) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result.Entries))
	}
	assertOrthogonal(t, g, result, R)
	assertCoversOriginal(t, orig, result)
	assertAllPrime(t, result)
}

// TestExpandRandomMinCov exercises the opt-in RANDOM_MINCOV variant
// (spec §4.F, §9): mincovRandom's uniform pick over FREESET, seeded for
// reproducibility. Spec §8 property 7 (determinism) is only claimed with
// RANDOM_MINCOV disabled, but the variant still has to preserve
// orthogonality and primality (§8 properties 1-2) under its own contract.
func TestExpandRandomMinCov(t *testing.T) {
	g := binaryGeometry(t, 2)
	f := g.CubeFromParts(lit(g, 0, 1), lit(g, 1, 1), lit(g, 2, 1))
	F := CoverFromCubes(f)
	// Distance 2 from f: essenParts cannot resolve it, so it survives to
	// mincov and exercises mincovRandom instead of the exact solve.
	off := g.CubeFromParts(lit(g, 0, 0), lit(g, 1, 0), lit(g, 2, 1))
	R := CoverFromCubes(off)
	orig := snapshotCubes(F)

	s := &Solver{Geometry: g, RandomMinCov: true, Seed: 42}
	result := s.Expand(F, R, false)

	if len(result.Entries) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result.Entries))
	}
	assertOrthogonal(t, g, result, R)
	assertCoversOriginal(t, orig, result)
	assertAllPrime(t, result)
}
