package topology_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/topology"
	"github.com/katalvlaran/topomorph/voxel"
	"github.com/stretchr/testify/require"
)

func TestComponentsCountsDisjointForegroundBlobs(t *testing.T) {
	v, err := voxel.NewVolume(5, 1, 1, [3]float64{})
	require.NoError(t, err)
	v.Set(0, 0, 0, voxel.HardForeground)
	v.Set(4, 0, 0, voxel.HardForeground)

	require.Equal(t, 2, topology.Components(v, voxel.HardForeground, true))
}

func TestComponentsMergesDiagonalUnder26Connectivity(t *testing.T) {
	v, err := voxel.NewVolume(2, 2, 1, [3]float64{})
	require.NoError(t, err)
	v.Set(0, 0, 0, voxel.HardForeground)
	v.Set(1, 1, 0, voxel.HardForeground)

	require.Equal(t, 1, topology.Components(v, voxel.HardForeground, true))
	require.Equal(t, 2, topology.Components(v, voxel.HardForeground, false))
}

func TestComponentsEmptyVolumeHasZeroComponents(t *testing.T) {
	v, err := voxel.NewVolume(3, 3, 3, [3]float64{})
	require.NoError(t, err)

	require.Equal(t, 0, topology.Components(v, voxel.HardForeground, true))
}
