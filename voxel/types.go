package voxel

// Label is the per-voxel state tracked by the propagation engine.
//
// Legal transitions (Invariant I1): SoftForeground -> Queued -> {HardForeground,
// Background}. Apart from the preparation-time labeling Background ->
// {HardForeground, SoftForeground}, no other transition is legal;
// HardForeground, once committed, is terminal within a single run.
type Label byte

const (
	// Background marks a voxel definitely outside the final foreground.
	Background Label = iota
	// HardForeground marks a voxel definitely inside the final foreground.
	// Immutable after initialization.
	HardForeground
	// SoftForeground marks a candidate voxel the engine may add or remove.
	SoftForeground
	// Queued marks a soft voxel currently live in the propagation engine's
	// priority queue.
	Queued
)

// String renders a Label for debugging and test failure messages.
func (l Label) String() string {
	switch l {
	case Background:
		return "Background"
	case HardForeground:
		return "HardForeground"
	case SoftForeground:
		return "SoftForeground"
	case Queued:
		return "Queued"
	default:
		return "Label(?)"
	}
}

// Region describes an axis-aligned sub-box of interior coordinates, used by
// Iterate. Lo is inclusive, Hi is exclusive, both in interior (unpadded)
// coordinates.
type Region struct {
	LoX, LoY, LoZ int
	HiX, HiY, HiZ int
}
