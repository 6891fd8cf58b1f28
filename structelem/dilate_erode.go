package structelem

import "github.com/katalvlaran/topomorph/voxel"

// BinaryDilate returns a new volume in which every voxel within ball's
// offsets of a HardForeground voxel of v is itself HardForeground. v is
// left unmodified.
//
// Grounded on gridgraph.ConnectedComponents's visited-array flood idiom,
// generalized from a fixed 4/8-neighbor table to a radius-parameterized 3D
// ball: every HardForeground voxel is a BFS source that stamps its whole
// ball footprint in one step.
//
// Complexity: O(Width×Height×Depth×|ball.Offsets()|).
func BinaryDilate(v *voxel.Volume, ball Ball) (*voxel.Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	out, err := voxel.NewVolume(v.Width, v.Height, v.Depth, v.Spacing)
	if err != nil {
		return nil, err
	}
	offsets := ball.Offsets()

	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l != voxel.HardForeground {
			return true
		}
		out.Set(x, y, z, voxel.HardForeground)
		for _, d := range offsets {
			nx, ny, nz := x+d[0], y+d[1], z+d[2]
			if !v.InBounds(nx, ny, nz) {
				continue
			}
			if out.At(nx, ny, nz) != voxel.HardForeground {
				out.Set(nx, ny, nz, voxel.HardForeground)
			}
		}
		return true
	})
	return out, nil
}

// BinaryErode returns a new volume in which a voxel stays HardForeground
// only if every voxel within ball's offsets of it is also HardForeground in
// v — the dual operator, implemented as dilation of the background
// complement.
//
// Complexity: O(Width×Height×Depth×|ball.Offsets()|).
func BinaryErode(v *voxel.Volume, ball Ball) (*voxel.Volume, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	complement, err := voxel.NewVolume(v.Width, v.Height, v.Depth, v.Spacing)
	if err != nil {
		return nil, err
	}
	v.Iterate(v.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l != voxel.HardForeground {
			complement.Set(x, y, z, voxel.HardForeground)
		}
		return true
	})

	dilatedComplement, err := BinaryDilate(complement, ball)
	if err != nil {
		return nil, err
	}

	out, err := voxel.NewVolume(v.Width, v.Height, v.Depth, v.Spacing)
	if err != nil {
		return nil, err
	}
	out.Iterate(out.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if dilatedComplement.At(x, y, z) != voxel.HardForeground {
			out.Set(x, y, z, voxel.HardForeground)
		}
		return true
	})
	return out, nil
}
