package topology_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/topology"
	"github.com/stretchr/testify/require"
)

func TestCCInvariantIsolatedCenterVacuouslyHolds(t *testing.T) {
	// Scenario D: isolated foreground center, no occupied neighbors at all.
	p := buildPatch(nil, true)
	require.True(t, topology.CCInvariant(p, true))
}

func TestCCInvariantSingleNeighborHolds(t *testing.T) {
	p := buildPatch([][3]int{{1, 0, 0}}, true)
	require.True(t, topology.CCInvariant(p, true))
}

func TestCCInvariantBridgingTwoHalvesFails(t *testing.T) {
	// Scenario D: center bridges two otherwise-disconnected neighbor
	// clusters; with the center's own contribution excluded from the DSU
	// domain, the two clusters remain separate components.
	p := buildPatch([][3]int{{-1, 0, 0}, {1, 0, 0}}, true)
	require.False(t, topology.CCInvariant(p, true))
}

func TestCCInvariantBackgroundUsesSixConnectivity(t *testing.T) {
	// Two background neighbors only diagonally adjacent (edge-adjacent, not
	// face-adjacent) are separate components under 6-connectivity even
	// though they would merge under 26-connectivity.
	occupied := [][3]int{{1, 0, 0}, {0, 1, 0}}
	// Extract marks these two offsets as fg(=true) in buildPatch, so build
	// the background-sense patch by leaving them unoccupied and occupying
	// everything else.
	var bg [][3]int
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				skip := false
				for _, o := range occupied {
					if o == [3]int{dx, dy, dz} {
						skip = true
					}
				}
				if !skip {
					bg = append(bg, [3]int{dx, dy, dz})
				}
			}
		}
	}
	p := buildPatch(bg, false)
	// Background cells are the two left unoccupied in p (they read false,
	// and occupiedAt(fg=false) treats false cells as background-occupied).
	require.False(t, topology.CCInvariant(p, false))
}
