// Ownership bit-set, per-tick delta types, the blend combination table,
// and sentinel errors.

package compare

import (
	"errors"
	"math/bits"

	"github.com/aneeshsunganahalli/PathVisualiser/grid"
	"github.com/aneeshsunganahalli/PathVisualiser/search"
)

// Sentinel errors for aggregation construction.
var (
	// ErrNoResults indicates New was called with no results.
	ErrNoResults = errors.New("compare: at least one result is required")
	// ErrNilResult indicates a nil *search.Result in the input slice.
	ErrNilResult = errors.New("compare: nil result")
)

// OwnerSet is a fixed-size bit-set over the search.Algorithm
// enumeration: bit i is set when algorithm i has explored the position.
// The zero value owns nothing.
type OwnerSet uint8

// With returns the set with a's bit added.
func (s OwnerSet) With(a search.Algorithm) OwnerSet {
	return s | 1<<uint(a)
}

// Has reports whether a's bit is set.
func (s OwnerSet) Has(a search.Algorithm) bool {
	return s&(1<<uint(a)) != 0
}

// Count returns the number of owning algorithms.
func (s OwnerSet) Count() int {
	return bits.OnesCount8(uint8(s))
}

// Stops returns the blend stops for this ownership combination: the
// owning algorithms in enum order. One stop means a solid owner color,
// two a pairwise blend, three or more a multi-stop blend. The table is
// precomputed, so dispatch is a direct index.
func (s OwnerSet) Stops() []search.Algorithm {
	return blendTable[s]
}

// blendTable maps every possible OwnerSet value to its blend stops.
var blendTable [1 << search.NumAlgorithms][]search.Algorithm

func init() {
	for set := range blendTable {
		var stops []search.Algorithm
		for a := 0; a < search.NumAlgorithms; a++ {
			if OwnerSet(set).Has(search.Algorithm(a)) {
				stops = append(stops, search.Algorithm(a))
			}
		}
		blendTable[set] = stops
	}
}

// Delta reports one position whose ownership grew during a tick.
type Delta struct {
	Pos    grid.Position
	Owners OwnerSet
}

// Tick is the merged contribution of all results for one step of the
// shared virtual clock. All deltas of a tick are computed before the
// tick is handed out — a consumer never observes a partial tick.
type Tick struct {
	// Index is the 0-based tick number.
	Index int
	// Deltas lists positions whose ownership set changed this tick, in
	// result order. A position explored by several engines on the same
	// tick appears once, with the merged set.
	Deltas []Delta
}

// CellState is the ephemeral visual classification of one cell for one
// frame: base cell type, current ownership, and whether the final path
// overlay covers it. Start/Goal precedence is applied at construction —
// marker cells carry no ownership state.
type CellState struct {
	Type   grid.CellType
	Owners OwnerSet
	OnPath bool
}
