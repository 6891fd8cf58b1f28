package engine

import (
	"github.com/katalvlaran/topomorph/topology"
	"github.com/katalvlaran/topomorph/voxel"
)

// propagationOffsets is the fixed 18-offset face-and-edge propagation
// neighborhood (spec §4.3.1): 6 face neighbors plus 12 edge neighbors. This
// is deliberately narrower than the 26-neighborhood the invariant tests use
// — propagation only needs to reach every soft voxel adjacent to a
// committed one, and 18-connectivity suffices on the face-and-edge graph.
// Transcribed literally from the original C++ neighbor-offset table.
var propagationOffsets = [18][3]int{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
	{1, 0, 1}, {1, 0, -1}, {-1, 0, 1}, {-1, 0, -1},
	{0, 1, 1}, {0, 1, -1}, {0, -1, 1}, {0, -1, -1},
}

// Variant is the descriptor spec §9 calls for in place of a class
// hierarchy: a small record carrying everything that differs between
// carve-outside and carve-inside, so Propagate's hot loop calls each field
// directly with no virtual dispatch.
type Variant struct {
	// Name identifies the variant for progress/error messages.
	Name string
	// Less is the heap comparator: true max-heap semantics for
	// carve-outside (farthest-first), min-heap for carve-inside
	// (deepest-inside-first).
	Less func(a, b float32) bool
	// CommitLabel is the label a successfully-tested voxel is promoted to.
	CommitLabel voxel.Label
	// Relax enables the outer relaxation loop (carve-inside only): rerun
	// the inner drain, re-seeding from any still-Queued voxel, until a
	// pass commits nothing.
	Relax bool
	// PatchOccupied maps a neighboring voxel's label to the occupied bit
	// the patch extraction uses — different per variant (spec §4.3.2 uses
	// "label != Background", §4.3.3 uses "label == HardForeground"). Only
	// consulted when Extract is nil.
	PatchOccupied func(l voxel.Label) bool
	// Extract builds the 3x3x3 patch around (x,y,z) directly, for variants
	// whose occupancy rule is a plain label equality and can go through
	// topology.Extract instead of the general ExtractFunc. nil falls back
	// to ExtractFunc(v, x, y, z, PatchOccupied) (spec §4.3.2's "label !=
	// Background" is not a single-label equality and always takes this
	// path).
	Extract func(v *voxel.Volume, x, y, z int) topology.Patch
	// Checks is the ordered list of invariant tests that must all hold for
	// a candidate to be committed.
	Checks []func(p topology.Patch) bool
	// Seed returns the initial set of interior coordinates to enqueue.
	Seed func(r *Run) [][3]int
}

// ProgressSnapshot is the read-only view passed to a ProgressSink: the hook
// must not be able to mutate core engine state (spec §5), so it never
// receives *Run.
type ProgressSnapshot struct {
	Committed int
	Total     int
}

// Fraction returns Committed/Total, or 1 when Total is zero (nothing to do).
func (s ProgressSnapshot) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Committed) / float64(s.Total)
}

// ProgressSink is an optional observer invoked after each commit. No
// ordering guarantee is made beyond a monotonically non-decreasing
// fraction across a single Propagate call.
type ProgressSink func(ProgressSnapshot)
