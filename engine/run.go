package engine

import (
	"container/heap"

	"github.com/katalvlaran/topomorph/distance"
	"github.com/katalvlaran/topomorph/topology"
	"github.com/katalvlaran/topomorph/voxel"
)

// CarveOutside is the topological-closing variant (spec §4.3.2): erodes
// voxels from the outside inward, starting from the rim of the reference
// mask, refusing any erosion that would change topology.
var CarveOutside = Variant{
	Name:          "carve-outside",
	Less:          func(a, b float32) bool { return a > b }, // max-heap: farthest first
	CommitLabel:   voxel.Background,
	Relax:         false,
	PatchOccupied: func(l voxel.Label) bool { return l != voxel.Background },
	Checks: []func(topology.Patch) bool{
		func(p topology.Patch) bool { return topology.EulerInvariant(p, true) },
		func(p topology.Patch) bool { return topology.CCInvariant(p, true) },
		func(p topology.Patch) bool { return topology.CCInvariant(p, false) },
	},
	Seed: lineScanSeed,
}

// CarveInside is the topological-opening variant (spec §4.3.3): restores
// voxels from the inside outward, starting from every soft voxel, refusing
// any restoration that would change topology. Relax enables the outer
// fixed-point relaxation loop.
var CarveInside = Variant{
	Name:          "carve-inside",
	Less:          func(a, b float32) bool { return a < b }, // min-heap: deepest inside first
	CommitLabel:   voxel.HardForeground,
	Relax:         true,
	PatchOccupied: func(l voxel.Label) bool { return l == voxel.HardForeground },
	Extract: func(v *voxel.Volume, x, y, z int) topology.Patch {
		return topology.Extract(v, x, y, z, voxel.HardForeground)
	},
	Checks: []func(topology.Patch) bool{
		func(p topology.Patch) bool { return topology.EulerInvariant(p, false) },
		func(p topology.Patch) bool { return topology.CCInvariant(p, false) },
	},
	Seed: allSoftSeed,
}

// Run is the mutable per-invocation state shared by a single Propagate
// call, the engine's analogue of bfs.walker.
type Run struct {
	Volume *voxel.Volume
	Dist   *distance.Map
	Sink   ProgressSink

	committed int
	total     int
}

// NewRun constructs a Run over vol/dist. sink may be nil.
func NewRun(vol *voxel.Volume, dist *distance.Map, sink ProgressSink) *Run {
	return &Run{Volume: vol, Dist: dist, Sink: sink}
}

// Propagate drains variant v's queue to completion (spec §4.3.2/§4.3.3):
// seed, pop, stale-check, patch-test, commit-or-leave-queued, enqueue newly
// exposed soft neighbors over the 18-offset propagation neighborhood. When
// v.Relax is set, repeats the whole drain, re-seeding from every voxel
// still Queued, until a pass commits nothing (spec §4.3.3's fixed point).
//
// Complexity: O(|R| log |R|) per pass (spec §4.3.5).
func (r *Run) Propagate(v Variant) error {
	r.total = countSoft(r.Volume)

	seeds := v.Seed(r)
	for {
		numChanged := r.drainPass(v, seeds)
		if !v.Relax || numChanged == 0 {
			r.resolveRemainingQueued(v)
			return nil
		}
		seeds = requeueSeed(r)
		if len(seeds) == 0 {
			r.resolveRemainingQueued(v)
			return nil
		}
	}
}

// resolveRemainingQueued settles any voxel left Queued when a pass produces
// no further commits: it failed every admissibility test it was offered, so
// it permanently takes the label opposite of v.CommitLabel — carve-outside
// leaves an unremovable voxel HardForeground (it must stay in the
// foreground to preserve topology); carve-inside leaves an unfillable voxel
// Background (it must stay out). Queued is never a valid terminal label.
func (r *Run) resolveRemainingQueued(v Variant) {
	final := voxel.HardForeground
	if v.CommitLabel == voxel.HardForeground {
		final = voxel.Background
	}
	r.Volume.Iterate(r.Volume.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.Queued {
			r.Volume.Set(x, y, z, final)
		}
		return true
	})
}

// drainPass runs one full inner loop (spec §4.3.1's "common structure"):
// seed the heap from seeds, then pop until empty, returning the number of
// voxels committed during this pass.
func (r *Run) drainPass(v Variant, seeds [][3]int) int {
	pq := &voxelPQ{less: v.Less}
	heap.Init(pq)

	for _, s := range seeds {
		r.seedOne(pq, s[0], s[1], s[2])
	}

	numChanged := 0
	for pq.Len() > 0 {
		it := heap.Pop(pq).(*voxelItem)
		x, y, z := r.coordinate(it.index)
		if r.Volume.At(x, y, z) != voxel.Queued {
			continue // stale entry (spec §4.3.4)
		}

		var patch topology.Patch
		if v.Extract != nil {
			patch = v.Extract(r.Volume, x, y, z)
		} else {
			patch = topology.ExtractFunc(r.Volume, x, y, z, v.PatchOccupied)
		}
		admissible := true
		for _, check := range v.Checks {
			if !check(patch) {
				admissible = false
				break
			}
		}

		if admissible {
			r.Volume.Set(x, y, z, v.CommitLabel)
			numChanged++
			r.committed++
			if r.Sink != nil {
				r.Sink(ProgressSnapshot{Committed: r.committed, Total: r.total})
			}
		}
		// Either way, push newly-exposed soft neighbors (spec: "Then
		// enqueue each soft neighbor" applies whether or not this pop
		// committed).
		for _, d := range propagationOffsets {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if !r.Volume.InBounds(nx, ny, nz) {
				continue
			}
			r.tryEnqueue(pq, nx, ny, nz)
		}
	}
	return numChanged
}

// seedOne marks (x,y,z) Queued if it is SoftForeground, or pushes it
// directly if it is already Queued (the outer relaxation loop's re-seed
// case, where the voxel was left Queued by a prior pass).
func (r *Run) seedOne(pq *voxelPQ, x, y, z int) {
	switch r.Volume.At(x, y, z) {
	case voxel.SoftForeground:
		r.Volume.Set(x, y, z, voxel.Queued)
		r.push(pq, x, y, z)
	case voxel.Queued:
		r.push(pq, x, y, z)
	}
}

// tryEnqueue marks a SoftForeground neighbor Queued and pushes it. A
// neighbor that is already Queued, HardForeground, or Background is left
// untouched — spec §4.3.4's "never push the same voxel twice in the same
// pass".
func (r *Run) tryEnqueue(pq *voxelPQ, x, y, z int) {
	if r.Volume.At(x, y, z) != voxel.SoftForeground {
		return
	}
	r.Volume.Set(x, y, z, voxel.Queued)
	r.push(pq, x, y, z)
}

func (r *Run) push(pq *voxelPQ, x, y, z int) {
	heap.Push(pq, &voxelItem{index: r.index(x, y, z), priority: r.Dist.At(x, y, z)})
}

func (r *Run) index(x, y, z int) int {
	return z*r.Volume.Width*r.Volume.Height + y*r.Volume.Width + x
}

func (r *Run) coordinate(idx int) (x, y, z int) {
	w, h := r.Volume.Width, r.Volume.Height
	z = idx / (w * h)
	rem := idx % (w * h)
	y = rem / w
	x = rem % w
	return x, y, z
}

func countSoft(v *voxel.Volume) int {
	n := 0
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.SoftForeground {
			n++
		}
		return true
	})
	return n
}
