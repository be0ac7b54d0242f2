package espresso

import "fmt"

// Flags holds the per-cube state bits carried alongside a Cube's semantic
// bit vector: PRIME, COVERED, ACTIVE, NONESSEN. Keeping them in a small
// independent bitmask gives O(1) get/set independent of the semantic bits.
type Flags uint8

const (
	// Prime marks a cube that cannot be enlarged without intersecting the
	// OFF-set; set on every cube expand() returns.
	Prime Flags = 1 << iota
	// Covered marks an ON-set cube absorbed by an earlier cube's
	// expansion; removed on the next compaction.
	Covered
	// Active marks a cube as part of the current working sub-selection
	// of a Cover, without physically removing it.
	Active
	// NonEssen marks an inessential prime: expand1 absorbed nothing and
	// did not reach the cube's over-expanded extent.
	NonEssen
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// MarshalText renders f as a compact, order-stable label list, e.g.
// "PRIME|ACTIVE".
func (f Flags) MarshalText() ([]byte, error) {
	if f == 0 {
		return []byte("-"), nil
	}
	s := ""
	for _, e := range []struct {
		bit  Flags
		name string
	}{
		{Prime, "PRIME"},
		{Covered, "COVERED"},
		{Active, "ACTIVE"},
		{NonEssen, "NONESSEN"},
	} {
		if f.has(e.bit) {
			if s != "" {
				s += "|"
			}
			s += e.name
		}
	}
	return []byte(s), nil
}

func (f Flags) String() string {
	b, _ := f.MarshalText()
	return string(b)
}

func (f Flags) GoString() string {
	return fmt.Sprintf("espresso.Flags(%s)", f.String())
}
