package topology_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/topology"
	"github.com/stretchr/testify/require"
)

// buildPatch constructs a Patch directly from a set of occupied offsets,
// mirroring topology.Extract without needing a voxel.Volume.
func buildPatch(occupied [][3]int, center bool) topology.Patch {
	var p topology.Patch
	for _, o := range occupied {
		idx := (o[2]+1)*9 + (o[1]+1)*3 + (o[0] + 1)
		p[idx] = true
	}
	p = p.With(center)
	return p
}

func TestEulerInvariantIsolatedCenterIsNotInvariant(t *testing.T) {
	// Scenario D: isolated foreground center, otherwise all background.
	p := buildPatch(nil, true)
	require.False(t, topology.EulerInvariant(p, true))
}

func TestEulerInvariantAddingIsolatedPointIsNotInvariant(t *testing.T) {
	// All background including the center: toggling the center on creates
	// an isolated foreground point, the mirror image of Scenario D's
	// removal case, and likewise not invariant.
	p := buildPatch(nil, false)
	require.False(t, topology.EulerInvariant(p, true))
}

func TestEulerInvariantFullyInteriorVoxelIsNotInvariant(t *testing.T) {
	// Center fully surrounded by foreground on all 26 sides: removing it
	// opens an interior cavity, changing the Euler characteristic (a
	// fully-interior voxel is never a simple point).
	var all [][3]int
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				all = append(all, [3]int{dx, dy, dz})
			}
		}
	}
	p := buildPatch(all, true)
	require.False(t, topology.EulerInvariant(p, true))
}
