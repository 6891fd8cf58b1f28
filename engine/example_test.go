package engine_test

import (
	"fmt"

	"github.com/katalvlaran/topomorph/distance"
	"github.com/katalvlaran/topomorph/engine"
	"github.com/katalvlaran/topomorph/voxel"
)

// ExampleRun_Propagate demonstrates carve-outside eroding a one-voxel-thick
// soft shell back down to its single hard center: each arm of the shell is
// a simple point whose removal neither disconnects the foreground nor
// opens a background cavity, so every arm is carved away.
func ExampleRun_Propagate() {
	v, err := voxel.NewVolume(5, 5, 5, [3]float64{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v.Set(2, 2, 2, voxel.HardForeground)
	for _, d := range [6][3]int{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		v.Set(2+d[0], 2+d[1], 2+d[2], voxel.SoftForeground)
	}

	var xf distance.ExactTransform
	dist, err := xf.SignedEuclidean(v, v.Spacing)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	run := engine.NewRun(v, dist, nil)
	if err := run.Propagate(engine.CarveOutside); err != nil {
		fmt.Println("error:", err)
		return
	}

	hard := 0
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.HardForeground {
			hard++
		}
		return true
	})
	fmt.Println(v.At(2, 2, 2))
	fmt.Println(hard)
	// Output:
	// HardForeground
	// 1
}
