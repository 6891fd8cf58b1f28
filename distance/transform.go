package distance

import (
	"math"

	"github.com/katalvlaran/topomorph/voxel"
)

// ExactTransform is the default Transform: a dimension-separable exact
// Euclidean distance transform, one 1D lower-envelope pass per axis
// (Felzenszwalt & Huttenlocher), run twice — once against the background
// set and once against the foreground set — then combined and signed.
type ExactTransform struct{}

const infinity = math.MaxFloat32

// SignedEuclidean computes the signed distance field of fg's HardForeground
// voxels. spacing scales each axis independently, so distances are reported
// in physical units rather than voxel counts.
//
// Complexity: O(Width×Height×Depth) time and memory (three separable 1D
// passes, each linear in the number of voxels).
func (ExactTransform) SignedEuclidean(fg *voxel.Volume, spacing [3]float64) (*Map, error) {
	if fg == nil || fg.Width == 0 || fg.Height == 0 || fg.Depth == 0 {
		return nil, ErrEmptyVolume
	}

	toBackground := squaredDistanceField(fg, spacing, func(l voxel.Label) bool { return l != voxel.HardForeground })
	toForeground := squaredDistanceField(fg, spacing, func(l voxel.Label) bool { return l == voxel.HardForeground })

	out := newMap(fg.Width, fg.Height, fg.Depth, spacing)
	for z := 0; z < fg.Depth; z++ {
		for y := 0; y < fg.Height; y++ {
			for x := 0; x < fg.Width; x++ {
				idx := out.index(x, y, z)
				if fg.At(x, y, z) == voxel.HardForeground {
					out.values[idx] = -float32(math.Sqrt(float64(toBackground[idx])))
				} else {
					out.values[idx] = float32(math.Sqrt(float64(toForeground[idx])))
				}
			}
		}
	}
	return out, nil
}

// squaredDistanceField returns, per interior voxel, the squared Euclidean
// distance to the nearest voxel for which site returns true. Voxels for
// which site is true have distance 0. Computed as three separable 1D
// lower-envelope passes (x, then y, then z).
func squaredDistanceField(v *voxel.Volume, spacing [3]float64, site func(voxel.Label) bool) []float64 {
	w, h, d := v.Width, v.Height, v.Depth
	f := make([]float64, w*h*d)
	index := func(x, y, z int) int { return z*w*h + y*w + x }

	// The one-voxel background shell (spec's padded region) is an implicit
	// site-or-not boundary sample at both ends of every line, exactly like
	// an extra interior voxel whose label is always Background.
	boundary := infinity
	if site(voxel.Background) {
		boundary = 0
	}

	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if site(v.At(x, y, z)) {
					f[index(x, y, z)] = 0
				} else {
					f[index(x, y, z)] = infinity
				}
			}
		}
	}

	// Pass 1: along x, independently for every (y,z) line.
	line := make([]float64, w+2)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			line[0], line[w+1] = boundary, boundary
			for x := 0; x < w; x++ {
				line[x+1] = f[index(x, y, z)]
			}
			out := distanceTransform1D(line, spacing[0])
			for x := 0; x < w; x++ {
				f[index(x, y, z)] = out[x+1]
			}
		}
	}

	// Pass 2: along y, independently for every (x,z) line.
	lineY := make([]float64, h+2)
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			lineY[0], lineY[h+1] = boundary, boundary
			for y := 0; y < h; y++ {
				lineY[y+1] = f[index(x, y, z)]
			}
			out := distanceTransform1D(lineY, spacing[1])
			for y := 0; y < h; y++ {
				f[index(x, y, z)] = out[y+1]
			}
		}
	}

	// Pass 3: along z, independently for every (x,y) line.
	lineZ := make([]float64, d+2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lineZ[0], lineZ[d+1] = boundary, boundary
			for z := 0; z < d; z++ {
				lineZ[z+1] = f[index(x, y, z)]
			}
			out := distanceTransform1D(lineZ, spacing[2])
			for z := 0; z < d; z++ {
				f[index(x, y, z)] = out[z+1]
			}
		}
	}

	return f
}

// distanceTransform1D is the Felzenszwalt–Huttenlocher lower-envelope exact
// distance transform of a 1D sampled function f, scaling sample position q
// by step (the axis spacing) so the result is in squared physical units.
func distanceTransform1D(f []float64, step float64) []float64 {
	n := len(f)
	d := make([]float64, n)
	if n == 0 {
		return d
	}

	pos := make([]float64, n)
	for q := 0; q < n; q++ {
		pos[q] = float64(q) * step
	}

	v := make([]int, n)
	z := make([]float64, n+1)
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, pos, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, pos, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < pos[q] {
			k++
		}
		delta := pos[q] - pos[v[k]]
		d[q] = delta*delta + f[v[k]]
	}
	return d
}

// intersect returns the x-coordinate where the parabolas rooted at q and r
// (in the lower-envelope construction) intersect.
func intersect(f, pos []float64, q, r int) float64 {
	return ((f[q] + pos[q]*pos[q]) - (f[r] + pos[r]*pos[r])) / (2*pos[q] - 2*pos[r])
}
