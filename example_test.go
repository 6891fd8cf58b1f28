package topomorph_test

import (
	"fmt"

	"github.com/katalvlaran/topomorph"
)

// ExampleCarveOutside demonstrates closing a single-voxel hole punched into
// an otherwise solid plane: the hole is foreground in the output, while the
// voxel directly below the hole — the one voxel of that slice the radius-1
// dilation never reaches — keeps its input value.
func ExampleCarveOutside() {
	const size = 8
	img := topomorph.NewDenseImage(size, size, size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			img.Set(x, y, 4, 1)
		}
	}
	img.Set(4, 4, 4, 0) // punch a hole in the plane

	out, err := topomorph.CarveOutside(img, topomorph.WithRadius(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out.At(4, 4, 4))
	fmt.Println(out.At(4, 4, 3))
	// Output:
	// 1
	// 0
}
