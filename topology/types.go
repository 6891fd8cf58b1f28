package topology

import "github.com/katalvlaran/topomorph/voxel"

// Patch is a flat row-major snapshot of a 3×3×3 neighborhood: index
// (dz+1)*9+(dy+1)*3+(dx+1) for offsets dx,dy,dz in -1..1. Index 13 is the
// center. A cell is true when it is occupied by the foreground value the
// caller extracted against.
type Patch [27]bool

// Center is the flat index of the patch's own voxel.
const Center = 13

// patchIndex maps an offset in -1..1 per axis to its flat Patch index.
func patchIndex(dx, dy, dz int) int {
	return (dz+1)*9 + (dy+1)*3 + (dx + 1)
}

// Extract reads the 3×3×3 neighborhood of (x,y,z) out of v, marking a cell
// true when its label equals fg. v's padding shell makes this safe at the
// volume's boundary: no bounds check is needed.
//
// Complexity: O(1) (27 reads).
func Extract(v *voxel.Volume, x, y, z int, fg voxel.Label) Patch {
	return ExtractFunc(v, x, y, z, func(l voxel.Label) bool { return l == fg })
}

// ExtractFunc is the general form of Extract: occupied decides, per label,
// whether a patch cell counts as occupied. Used by callers whose notion of
// "foreground" is not a single label equality (e.g. "anything but
// Background").
//
// Complexity: O(1) (27 reads).
func ExtractFunc(v *voxel.Volume, x, y, z int, occupied func(voxel.Label) bool) Patch {
	var p Patch
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				p[patchIndex(dx, dy, dz)] = occupied(v.AtPadded(x+dx, y+dy, z+dz))
			}
		}
	}
	return p
}

// With returns a copy of p with the center cell set to occupied.
func (p Patch) With(occupied bool) Patch {
	p[Center] = occupied
	return p
}
