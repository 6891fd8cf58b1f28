package topology

// vertexKey, edgeKey and faceKey identify the lattice cells of the cubical
// complex spanned by a Patch's occupied unit cubes. Coordinates are offsets
// from the patch center, so the whole complex fits in a tiny fixed range
// and these keys are cheap, comparable map keys.
type vertexKey struct{ x, y, z int8 }
type edgeKey struct {
	axis    int8 // 0=x, 1=y, 2=z
	x, y, z int8
}
type faceKey struct {
	axis    int8 // normal direction: 0=x, 1=y, 2=z
	x, y, z int8
}

// occupiedAt reports whether patch cell idx belongs to the complex under
// test: p[idx] directly when fg is the foreground sense, its complement
// when fg is false (the background sense), per spec's dual
// foreground/background admissibility check.
func occupiedAt(p Patch, fg bool, idx int) bool {
	if fg {
		return p[idx]
	}
	return !p[idx]
}

// eulerCharacteristic computes χ = n1 - n2 + n3 - n4 (vertices - edges +
// faces - cubes) of the cubical complex formed by the union of occupied
// unit cubes in p, under connectivity sense fg. See DESIGN.md for why this
// direct combinatorial count replaces the classical octant lookup table.
func eulerCharacteristic(p Patch, fg bool) int {
	vertices := make(map[vertexKey]struct{}, 64)
	edges := make(map[edgeKey]struct{}, 144)
	faces := make(map[faceKey]struct{}, 96)
	cubes := 0

	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if !occupiedAt(p, fg, patchIndex(dx, dy, dz)) {
					continue
				}
				cubes++

				for a := 0; a <= 1; a++ {
					for b := 0; b <= 1; b++ {
						for c := 0; c <= 1; c++ {
							vertices[vertexKey{int8(dx + a), int8(dy + b), int8(dz + c)}] = struct{}{}
						}
					}
				}

				for b := 0; b <= 1; b++ {
					for c := 0; c <= 1; c++ {
						edges[edgeKey{0, int8(dx), int8(dy + b), int8(dz + c)}] = struct{}{}
					}
				}
				for a := 0; a <= 1; a++ {
					for c := 0; c <= 1; c++ {
						edges[edgeKey{1, int8(dx + a), int8(dy), int8(dz + c)}] = struct{}{}
					}
				}
				for a := 0; a <= 1; a++ {
					for b := 0; b <= 1; b++ {
						edges[edgeKey{2, int8(dx + a), int8(dy + b), int8(dz)}] = struct{}{}
					}
				}

				for a := 0; a <= 1; a++ {
					faces[faceKey{0, int8(dx + a), int8(dy), int8(dz)}] = struct{}{}
				}
				for b := 0; b <= 1; b++ {
					faces[faceKey{1, int8(dx), int8(dy + b), int8(dz)}] = struct{}{}
				}
				for c := 0; c <= 1; c++ {
					faces[faceKey{2, int8(dx), int8(dy), int8(dz + c)}] = struct{}{}
				}
			}
		}
	}

	return len(vertices) - len(edges) + len(faces) - cubes
}

// EulerInvariant reports whether toggling the patch center's occupancy
// leaves the Euler characteristic of the fg-sense cubical complex
// unchanged. A simple point must be Euler-invariant: removing or adding it
// may not alter the local topology's hole/tunnel/cavity count.
//
// Complexity: O(1) — two passes over a fixed 27-cell patch.
func EulerInvariant(p Patch, fg bool) bool {
	before := eulerCharacteristic(p, fg)
	toggled := p.With(!p[Center])
	after := eulerCharacteristic(toggled, fg)
	return before == after
}
