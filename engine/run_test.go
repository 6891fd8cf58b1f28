package engine_test

import (
	"testing"

	"github.com/katalvlaran/topomorph/distance"
	"github.com/katalvlaran/topomorph/engine"
	"github.com/katalvlaran/topomorph/voxel"
	"github.com/stretchr/testify/require"
)

func buildSolidBlockWithShell(t *testing.T) (*voxel.Volume, *distance.Map) {
	t.Helper()
	v, err := voxel.NewVolume(7, 7, 7, [3]float64{1, 1, 1})
	require.NoError(t, err)
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			for z := 2; z <= 4; z++ {
				v.Set(x, y, z, voxel.HardForeground)
			}
		}
	}
	// One voxel of soft shell around the solid block.
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.HardForeground {
			return true
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					nx, ny, nz := x+dx, y+dy, z+dz
					if v.InBounds(nx, ny, nz) && v.At(nx, ny, nz) == voxel.HardForeground {
						v.Set(x, y, z, voxel.SoftForeground)
						return true
					}
				}
			}
		}
		return true
	})

	var xf distance.ExactTransform
	m, err := xf.SignedEuclidean(v, v.Spacing)
	require.NoError(t, err)
	return v, m
}

func TestCarveOutsideErodesShellBackToOriginalBlock(t *testing.T) {
	v, dist := buildSolidBlockWithShell(t)
	run := engine.NewRun(v, dist, nil)
	require.NoError(t, run.Propagate(engine.CarveOutside))

	// The solid block itself must survive untouched.
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			for z := 2; z <= 4; z++ {
				require.Equal(t, voxel.HardForeground, v.At(x, y, z))
			}
		}
	}
	// No voxel should be left dangling in Queued state, and the whole shell
	// is carved away: nothing outside the block stays HardForeground.
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		require.NotEqual(t, voxel.Queued, l)
		inBlock := x >= 2 && x <= 4 && y >= 2 && y <= 4 && z >= 2 && z <= 4
		if !inBlock {
			require.NotEqual(t, voxel.HardForeground, l, "shell voxel (%d,%d,%d)", x, y, z)
		}
		return true
	})
}

func TestCarveInsideFillsErodedCoreBackToSolidBlock(t *testing.T) {
	v, err := voxel.NewVolume(7, 7, 7, [3]float64{1, 1, 1})
	require.NoError(t, err)
	// Hard core, soft shell one voxel thick, matching a block eroded from a
	// larger reference.
	for x := 3; x <= 3; x++ {
		for y := 3; y <= 3; y++ {
			for z := 3; z <= 3; z++ {
				v.Set(x, y, z, voxel.HardForeground)
			}
		}
	}
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			for z := 2; z <= 4; z++ {
				if v.At(x, y, z) != voxel.HardForeground {
					v.Set(x, y, z, voxel.SoftForeground)
				}
			}
		}
	}

	var xf distance.ExactTransform
	dist, err := xf.SignedEuclidean(v, v.Spacing)
	require.NoError(t, err)

	run := engine.NewRun(v, dist, nil)
	require.NoError(t, run.Propagate(engine.CarveInside))

	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		require.NotEqual(t, voxel.Queued, l)
		return true
	})
	// The whole 3x3x3 block is restored.
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			for z := 2; z <= 4; z++ {
				require.Equal(t, voxel.HardForeground, v.At(x, y, z))
			}
		}
	}
}

func TestPropagateInvokesProgressSinkMonotonically(t *testing.T) {
	v, dist := buildSolidBlockWithShell(t)
	var fractions []float64
	run := engine.NewRun(v, dist, func(s engine.ProgressSnapshot) {
		fractions = append(fractions, s.Fraction())
	})
	require.NoError(t, run.Propagate(engine.CarveOutside))

	for i := 1; i < len(fractions); i++ {
		require.GreaterOrEqual(t, fractions[i], fractions[i-1])
	}
}
