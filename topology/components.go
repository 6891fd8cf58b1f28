package topology

import "github.com/katalvlaran/topomorph/voxel"

// offsets26 and offsets6 are the interior-volume neighbor offset tables for
// 26- and 6-connectivity, generalizing gridgraph's 4/8-neighbor 2D table to
// three dimensions.
var offsets26 = func() [][3]int {
	var offs [][3]int
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offs = append(offs, [3]int{dx, dy, dz})
			}
		}
	}
	return offs
}()

var offsets6 = [][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Components counts the number of fg-connected components of the label
// equal to target within v's interior, using 26-connectivity when fg is
// true and 6-connectivity when fg is false — the standard dual pairing that
// keeps a foreground object and its background complement digitally
// consistent. Used by end-to-end property tests to assert that a carve
// operation has not changed the global component count.
//
// Complexity: O(Width×Height×Depth) time and memory.
func Components(v *voxel.Volume, target voxel.Label, fg bool) int {
	offsets := offsets6
	if fg {
		offsets = offsets26
	}

	total := v.Width * v.Height * v.Depth
	visited := make([]bool, total)
	index := func(x, y, z int) int { return z*v.Width*v.Height + y*v.Width + x }

	count := 0
	region := v.FullRegion()
	v.Iterate(region, func(x, y, z int, l voxel.Label) bool {
		start := index(x, y, z)
		if l != target || visited[start] {
			return true
		}
		count++
		visited[start] = true
		queue := [][3]int{{x, y, z}}
		for qi := 0; qi < len(queue); qi++ {
			cx, cy, cz := queue[qi][0], queue[qi][1], queue[qi][2]
			for _, d := range offsets {
				nx, ny, nz := cx+d[0], cy+d[1], cz+d[2]
				if !v.InBounds(nx, ny, nz) {
					continue
				}
				if v.At(nx, ny, nz) != target {
					continue
				}
				nIdx := index(nx, ny, nz)
				if !visited[nIdx] {
					visited[nIdx] = true
					queue = append(queue, [3]int{nx, ny, nz})
				}
			}
		}
		return true
	})
	return count
}
