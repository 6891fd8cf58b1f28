package structelem_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/structelem"
	"github.com/katalvlaran/topomorph/voxel"
	"github.com/stretchr/testify/require"
)

func TestBinaryDilateGrowsBySixConnectedRing(t *testing.T) {
	v, err := voxel.NewVolume(5, 5, 5, [3]float64{})
	require.NoError(t, err)
	v.Set(2, 2, 2, voxel.HardForeground)

	b, err := structelem.NewBall(1)
	require.NoError(t, err)
	out, err := structelem.BinaryDilate(v, b)
	require.NoError(t, err)

	require.Equal(t, voxel.HardForeground, out.At(2, 2, 2))
	for _, n := range [][3]int{{3, 2, 2}, {1, 2, 2}, {2, 3, 2}, {2, 1, 2}, {2, 2, 3}, {2, 2, 1}} {
		require.Equal(t, voxel.HardForeground, out.At(n[0], n[1], n[2]))
	}
	require.Equal(t, voxel.Background, out.At(3, 3, 2)) // diagonal, not 6-connected
}

func TestBinaryErodeIsDualOfDilate(t *testing.T) {
	v, err := voxel.NewVolume(5, 5, 5, [3]float64{})
	require.NoError(t, err)
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			for z := 1; z <= 3; z++ {
				v.Set(x, y, z, voxel.HardForeground)
			}
		}
	}

	b, err := structelem.NewBall(1)
	require.NoError(t, err)
	out, err := structelem.BinaryErode(v, b)
	require.NoError(t, err)

	// Only the solid block's own center survives a radius-1 6-connected
	// erosion of a 3x3x3 block.
	require.Equal(t, voxel.HardForeground, out.At(2, 2, 2))
	require.Equal(t, voxel.Background, out.At(1, 1, 1))
}

func TestBinaryDilateRejectsNilVolume(t *testing.T) {
	b, err := structelem.NewBall(1)
	require.NoError(t, err)
	_, err = structelem.BinaryDilate(nil, b)
	require.ErrorIs(t, err, structelem.ErrNilVolume)
}
