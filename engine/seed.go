package engine

import "github.com/katalvlaran/topomorph/voxel"

// inReferenceMask reports whether l is part of the reference-mask region
// (the dilated/eroded membership a carve pass is reconciling the hard
// foreground against): either already committed (HardForeground) or still
// eligible (SoftForeground).
func inReferenceMask(l voxel.Label) bool {
	return l == voxel.SoftForeground || l == voxel.HardForeground
}

// lineScanSeed implements carve-outside's seed detection (spec §4.3.2): a
// three-axis line scan recording every mask/non-mask transition plus the
// first and last mask voxel of each scan line. A coordinate surfaced by more
// than one axis is returned only once, so no voxel is pushed twice in the
// first pass (seedOne also pushes voxels that are already Queued).
func lineScanSeed(r *Run) [][3]int {
	v := r.Volume
	var seeds [][3]int
	seen := make(map[[3]int]bool)
	addIfSoft := func(x, y, z int) {
		c := [3]int{x, y, z}
		if v.At(x, y, z) == voxel.SoftForeground && !seen[c] {
			seen[c] = true
			seeds = append(seeds, c)
		}
	}

	// Scan along x, for every (y, z) line.
	for z := 0; z < v.Depth; z++ {
		for y := 0; y < v.Height; y++ {
			prev := false
			for x := 0; x < v.Width; x++ {
				cur := inReferenceMask(v.At(x, y, z))
				switch {
				case x == 0 && cur:
					addIfSoft(x, y, z)
				case x > 0 && cur != prev:
					if cur {
						addIfSoft(x, y, z)
					} else {
						addIfSoft(x-1, y, z)
					}
				}
				if x == v.Width-1 && cur {
					addIfSoft(x, y, z)
				}
				prev = cur
			}
		}
	}

	// Scan along y, for every (x, z) line.
	for z := 0; z < v.Depth; z++ {
		for x := 0; x < v.Width; x++ {
			prev := false
			for y := 0; y < v.Height; y++ {
				cur := inReferenceMask(v.At(x, y, z))
				switch {
				case y == 0 && cur:
					addIfSoft(x, y, z)
				case y > 0 && cur != prev:
					if cur {
						addIfSoft(x, y, z)
					} else {
						addIfSoft(x, y-1, z)
					}
				}
				if y == v.Height-1 && cur {
					addIfSoft(x, y, z)
				}
				prev = cur
			}
		}
	}

	// Scan along z, for every (x, y) line.
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			prev := false
			for z := 0; z < v.Depth; z++ {
				cur := inReferenceMask(v.At(x, y, z))
				switch {
				case z == 0 && cur:
					addIfSoft(x, y, z)
				case z > 0 && cur != prev:
					if cur {
						addIfSoft(x, y, z)
					} else {
						addIfSoft(x, y, z-1)
					}
				}
				if z == v.Depth-1 && cur {
					addIfSoft(x, y, z)
				}
				prev = cur
			}
		}
	}

	return seeds
}

// allSoftSeed implements carve-inside's seed detection (spec §4.3.3): every
// SoftForeground voxel is a seed, ordering left to the heap.
func allSoftSeed(r *Run) [][3]int {
	v := r.Volume
	var seeds [][3]int
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.SoftForeground {
			seeds = append(seeds, [3]int{x, y, z})
		}
		return true
	})
	return seeds
}

// requeueSeed re-seeds carve-inside's outer relaxation loop (spec §4.3.3):
// every voxel still labeled Queued from the previous pass — a voxel that
// failed its invariant test earlier may become simple once its neighbors
// have been filled, so it must be re-tested rather than abandoned.
func requeueSeed(r *Run) [][3]int {
	v := r.Volume
	var seeds [][3]int
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.Queued {
			seeds = append(seeds, [3]int{x, y, z})
		}
		return true
	})
	return seeds
}
