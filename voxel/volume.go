// Package voxel: dense padded volume implementation.
//
// Grounded on matrix.Dense's flat-array storage idiom (row-major index
// arithmetic, "validate shape, then allocate" constructor) generalized from
// two axes to three, plus one voxel of permanent background padding on
// every face so the propagation engine never bounds-checks a neighbor.
package voxel

// Volume is a dense W×H×D grid of Labels with a fixed one-voxel background
// shell (the "padded region" R⁺\R of spec §3). All public coordinate
// methods except AtPadded address only the interior region R; the shell is
// read solely through AtPadded, which topology.Extract/ExtractFunc use to
// build a voxel's full 3×3×3 neighborhood.
type Volume struct {
	Width, Height, Depth int // interior dimensions (R)
	Spacing              [3]float64

	pw, ph, pd int     // padded dimensions (R+): Width+2, Height+2, Depth+2
	data       []Label // flat backing store, length pw*ph*pd
}

// NewVolume allocates a Width×Height×Depth Volume, every voxel (interior and
// padding) initialized to Background. Spacing defaults to {1,1,1} when the
// zero value is passed.
//
// Stage 1 (Validate): width, height, depth must all be > 0.
// Stage 2 (Allocate): flat backing slice sized for the padded region.
// Stage 3 (Finalize): return the initialized Volume.
//
// Complexity: O(W×H×D) time and memory.
func NewVolume(width, height, depth int, spacing [3]float64) (*Volume, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, ErrEmptyVolume
	}
	if spacing == ([3]float64{}) {
		spacing = [3]float64{1, 1, 1}
	}
	pw, ph, pd := width+2, height+2, depth+2
	return &Volume{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Spacing: spacing,
		pw:      pw,
		ph:      ph,
		pd:      pd,
		data:    make([]Label, pw*ph*pd),
	}, nil
}

// InBounds reports whether (x,y,z) is a valid interior coordinate.
// Complexity: O(1).
func (v *Volume) InBounds(x, y, z int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height && z >= 0 && z < v.Depth
}

// paddedIndex maps an interior-or-padding coordinate (where -1 and
// Width/Height/Depth address the one-voxel shell) to a flat index with no
// bounds checking. Callers outside this package reach padding coordinates
// only via AtPadded from topology's patch extraction, which never steps more
// than one voxel past the interior in any direction.
func (v *Volume) paddedIndex(x, y, z int) int {
	return (z+1)*v.pw*v.ph + (y+1)*v.pw + (x + 1)
}

// At returns the label at interior coordinate (x,y,z).
// Complexity: O(1).
func (v *Volume) At(x, y, z int) Label {
	return v.data[v.paddedIndex(x, y, z)]
}

// AtPadded returns the label at a coordinate that may address the one-voxel
// padding shell (i.e. any of -1..Width, -1..Height, -1..Depth). Used by
// topology's patch extraction; the shell always reads Background
// (Invariant I2).
// Complexity: O(1).
func (v *Volume) AtPadded(x, y, z int) Label {
	return v.data[v.paddedIndex(x, y, z)]
}

// Set assigns label l at interior coordinate (x,y,z).
//
// Debug builds (build tag "debug") enforce Invariant I1: besides the
// preparation-time labeling Background->{HardForeground, SoftForeground},
// the only legal transitions are SoftForeground->Queued and
// Queued->{HardForeground, Background}. Release builds elide the check per
// spec §4.2.
// Complexity: O(1).
func (v *Volume) Set(x, y, z int, l Label) {
	idx := v.paddedIndex(x, y, z)
	checkTransition(v.data[idx], l)
	v.data[idx] = l
}

// Iterate walks region in row-major (z outer, y middle, x inner) order,
// calling fn for each interior voxel. Iteration stops early if fn returns
// false.
// Complexity: O(region volume).
func (v *Volume) Iterate(region Region, fn func(x, y, z int, l Label) bool) {
	for z := region.LoZ; z < region.HiZ; z++ {
		for y := region.LoY; y < region.HiY; y++ {
			for x := region.LoX; x < region.HiX; x++ {
				if !fn(x, y, z, v.At(x, y, z)) {
					return
				}
			}
		}
	}
}

// FullRegion returns a Region covering the entire interior volume.
func (v *Volume) FullRegion() Region {
	return Region{HiX: v.Width, HiY: v.Height, HiZ: v.Depth}
}
