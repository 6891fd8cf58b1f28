package topology

// cubeOccupied reports whether the cube at patch offset (dx,dy,dz) is
// fg-occupied. dx,dy,dz must already be within -1..1; callers here only ever
// derive offsets from the center cube's own corners, which stays in range.
func cubeOccupied(p Patch, fg bool, dx, dy, dz int) bool {
	return occupiedAt(p, fg, patchIndex(dx, dy, dz))
}

// edgeRingTransitions counts how many of the 4 cyclically-adjacent cubes
// surrounding a center-cube edge differ in occupancy from their neighbor in
// the ring. A proper 2-manifold boundary edge has 0 or 2 transitions
// (the occupied cubes form a single contiguous arc around the edge); 4
// transitions is the diagonal "checkerboard" case where two occupied cubes
// touch only along the edge with two unoccupied cubes filling the other
// diagonal — a non-manifold junction.
func edgeRingTransitions(ring [4]bool) int {
	n := 0
	for i := 0; i < 4; i++ {
		if ring[i] != ring[(i+1)%4] {
			n++
		}
	}
	return n
}

// NonmanifoldRemove reports whether any of the 12 edges of the patch's own
// center voxel is a non-manifold junction of the fg-occupied complex: more
// than two occupied/unoccupied transitions among the 4 cubes that share the
// edge. This is a diagnostic only — the propagation engine's admissibility
// test never consults it, since Euler and connected-component invariance
// already bound the legal topology changes; callers may use it to flag
// already-ambiguous input geometry.
//
// Complexity: O(1) — 12 fixed edges, 4 cubes each.
func NonmanifoldRemove(p Patch, fg bool) bool {
	// axis 0 (x-edges): fixed (y,z) in {0,1}^2, ring of cubes at dx=0,
	// dy in {y-1,y}, dz in {z-1,z}.
	for y := 0; y <= 1; y++ {
		for z := 0; z <= 1; z++ {
			ring := [4]bool{
				cubeOccupied(p, fg, 0, y-1, z-1),
				cubeOccupied(p, fg, 0, y, z-1),
				cubeOccupied(p, fg, 0, y, z),
				cubeOccupied(p, fg, 0, y-1, z),
			}
			if edgeRingTransitions(ring) > 2 {
				return true
			}
		}
	}
	// axis 1 (y-edges): fixed (x,z), ring at dy=0, dx in {x-1,x}, dz in {z-1,z}.
	for x := 0; x <= 1; x++ {
		for z := 0; z <= 1; z++ {
			ring := [4]bool{
				cubeOccupied(p, fg, x-1, 0, z-1),
				cubeOccupied(p, fg, x, 0, z-1),
				cubeOccupied(p, fg, x, 0, z),
				cubeOccupied(p, fg, x-1, 0, z),
			}
			if edgeRingTransitions(ring) > 2 {
				return true
			}
		}
	}
	// axis 2 (z-edges): fixed (x,y), ring at dz=0, dx in {x-1,x}, dy in {y-1,y}.
	for x := 0; x <= 1; x++ {
		for y := 0; y <= 1; y++ {
			ring := [4]bool{
				cubeOccupied(p, fg, x-1, y-1, 0),
				cubeOccupied(p, fg, x, y-1, 0),
				cubeOccupied(p, fg, x, y, 0),
				cubeOccupied(p, fg, x-1, y, 0),
			}
			if edgeRingTransitions(ring) > 2 {
				return true
			}
		}
	}
	return false
}
