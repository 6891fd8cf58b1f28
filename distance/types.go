package distance

import "github.com/katalvlaran/topomorph/voxel"

// Map is a dense, voxel-shaped signed distance field: one float32 per
// interior voxel, negative inside the current hard foreground, positive
// outside, magnitude the Euclidean distance in physical units to the
// nearest foreground/background boundary.
type Map struct {
	Width, Height, Depth int
	Spacing              [3]float64
	values               []float32
}

// newMap allocates a zero-initialized Map of the given interior extent.
func newMap(width, height, depth int, spacing [3]float64) *Map {
	return &Map{
		Width:   width,
		Height:  height,
		Depth:   depth,
		Spacing: spacing,
		values:  make([]float32, width*height*depth),
	}
}

func (m *Map) index(x, y, z int) int {
	return z*m.Width*m.Height + y*m.Width + x
}

// At returns the signed distance at interior coordinate (x,y,z).
// Complexity: O(1).
func (m *Map) At(x, y, z int) float32 {
	return m.values[m.index(x, y, z)]
}

func (m *Map) set(x, y, z int, v float32) {
	m.values[m.index(x, y, z)] = v
}

// Transform computes the signed Euclidean distance field of the
// HardForeground set in fg, the external collaborator interface the
// propagation engine depends on rather than a concrete type, so a caller
// may substitute an approximate or GPU-accelerated transform.
type Transform interface {
	SignedEuclidean(fg *voxel.Volume, spacing [3]float64) (*Map, error)
}
