package espresso

import "testing"

func TestMarkIrredundantDropsContainedCube(t *testing.T) {
	small := newCubeWords(8).Insert(1)
	big := newCubeWords(8).Insert(1).Insert(2)

	F1 := CoverFromCubes(small, big)
	markIrredundant(F1, nil)

	if F1.Entries[0].Is(Active) {
		t.Errorf("cube wholly contained in another active cube should be marked inactive")
	}
	if !F1.Entries[1].Is(Active) {
		t.Errorf("the containing cube should remain active")
	}
}

func TestMarkIrredundantKeepsIncomparableCubes(t *testing.T) {
	a := newCubeWords(8).Insert(1)
	b := newCubeWords(8).Insert(2)

	F1 := CoverFromCubes(a, b)
	markIrredundant(F1, nil)

	for i, e := range F1.Entries {
		if !e.Is(Active) {
			t.Errorf("entry %d incorrectly marked redundant: neither cube contains the other", i)
		}
	}
}

func TestMarkIrredundantChecksDontCareSet(t *testing.T) {
	small := newCubeWords(8).Insert(1)
	dc := newCubeWords(8).Insert(1).Insert(2)

	F1 := CoverFromCubes(small)
	D1 := CoverFromCubes(dc)
	markIrredundant(F1, D1)

	if F1.Entries[0].Is(Active) {
		t.Errorf("cube contained in an active don't-care cube should be marked redundant")
	}
}
