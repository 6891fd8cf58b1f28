package topology

// dsu is a fixed-size union-find over the 26 non-center patch cells, path
// compression plus union-by-rank exactly as prim_kruskal's map-based DSU,
// reshaped to a flat [26]int8 array since the domain size never varies.
type dsu struct {
	parent [26]int8
	rank   [26]int8
}

func newDSU() dsu {
	var d dsu
	for i := range d.parent {
		d.parent[i] = int8(i)
	}
	return d
}

func (d *dsu) find(x int8) int8 {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // path compression (halving)
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b int8) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// neighborOffsets lists the 26 non-center patch offsets in a fixed order,
// used by CCInvariant to build the DSU domain (cell i of the DSU is
// neighborOffsets[i], whose flat Patch index comes from patchIndex).
var neighborOffsets = func() [26][3]int {
	var offs [26][3]int
	n := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				offs[n] = [3]int{dx, dy, dz}
				n++
			}
		}
	}
	return offs
}()

// adjacent26 reports whether two distinct offsets, each a unit step from the
// patch center, are themselves mutually adjacent under 26-connectivity
// (Chebyshev distance 1, i.e. they share a face, edge, or vertex).
func adjacent26(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if abs(a[i]-b[i]) > 1 {
			return false
		}
	}
	return true
}

// adjacent6 reports whether two distinct offsets are mutually adjacent
// under 6-connectivity (share a face: exactly one axis differs, by 1).
func adjacent6(a, b [3]int) bool {
	diff := 0
	for i := 0; i < 3; i++ {
		d := abs(a[i] - b[i])
		if d > 1 {
			return false
		}
		if d == 1 {
			diff++
		}
	}
	return diff == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CCInvariant reports whether the fg-sense-occupied cells among the patch's
// 26 non-center neighbors form at most one connected component: 26-connected
// when fg is true (foreground), 6-connected when fg is false (background),
// per the standard (26,6) connectivity pair that keeps foreground and
// background digitally consistent. A solitary occupied neighbor, or none at
// all, is vacuously connectivity-invariant.
//
// Complexity: O(1) — a union-find over 26 fixed cells.
func CCInvariant(p Patch, fg bool) bool {
	d := newDSU()
	occupied := make([]bool, 26)
	for i, off := range neighborOffsets {
		idx := patchIndex(off[0], off[1], off[2])
		occupied[i] = occupiedAt(p, fg, idx)
	}

	adjacent := adjacent6
	if fg {
		adjacent = adjacent26
	}

	for i := 0; i < 26; i++ {
		if !occupied[i] {
			continue
		}
		for j := i + 1; j < 26; j++ {
			if !occupied[j] {
				continue
			}
			if adjacent(neighborOffsets[i], neighborOffsets[j]) {
				d.union(int8(i), int8(j))
			}
		}
	}

	roots := make(map[int8]struct{}, 26)
	for i := 0; i < 26; i++ {
		if occupied[i] {
			roots[d.find(int8(i))] = struct{}{}
		}
	}
	return len(roots) <= 1
}
