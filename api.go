package topomorph

import (
	"fmt"

	"github.com/katalvlaran/topomorph/distance"
	"github.com/katalvlaran/topomorph/engine"
	"github.com/katalvlaran/topomorph/structelem"
	"github.com/katalvlaran/topomorph/voxel"
)

// CarveOutside performs topology-preserving closing on input (spec §4.3.2):
// voxels within the reference mask (input dilated by Radius, or MaskImage
// when supplied) but outside the hard foreground are peeled away from the
// outside in wherever removing them leaves the reference's topology
// unchanged; the voxels whose removal would change it stay foreground, so
// holes the reference closes stay closed.
func CarveOutside(input Image, opts ...Option) (Image, error) {
	return run(input, engine.CarveOutside, opts)
}

// CarveInside performs topology-preserving opening on input (spec §4.3.3):
// voxels in the hard foreground but outside the reference mask (input
// eroded by Radius, or MaskImage when supplied) are removed wherever doing
// so leaves the region's topology unchanged, trimming protrusions without
// splitting or merging a connected component.
func CarveInside(input Image, opts ...Option) (Image, error) {
	return run(input, engine.CarveInside, opts)
}

func run(input Image, variant engine.Variant, optFns []Option) (Image, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Radius <= 0 {
		return nil, ErrInvalidRadius
	}

	// Preparation step 1: allocate a padded volume shaped like input.
	w, h, d := input.Dims()
	vol, err := voxel.NewVolume(w, h, d, [3]float64{1, 1, 1})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
	}

	// Preparation step 2: label HardForeground from InsideValue.
	vol.Iterate(vol.FullRegion(), func(x, y, z int, _ voxel.Label) bool {
		if input.At(x, y, z) == opts.InsideValue {
			vol.Set(x, y, z, voxel.HardForeground)
		}
		return true
	})

	// Preparation step 3: compute the signed Euclidean distance field.
	var xf distance.ExactTransform
	dist, err := xf.SignedEuclidean(vol, vol.Spacing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
	}

	// Preparation step 4: obtain the reference mask.
	reference := opts.MaskImage
	if reference != nil {
		if rw, rh, rd := reference.Width, reference.Height, reference.Depth; rw != w || rh != h || rd != d {
			return nil, ErrDimensionMismatch
		}
	} else {
		ball, err := structelem.NewBall(opts.Radius)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
		}
		if variant.CommitLabel == voxel.Background {
			// Carve-outside: reference is the dilated hard foreground
			// (spec §4.3.2's "close up to the dilation").
			reference, err = structelem.BinaryDilate(vol, ball)
		} else {
			// Carve-inside: reference is the eroded hard foreground
			// (spec §4.3.3's "open down to the erosion").
			reference, err = structelem.BinaryErode(vol, ball)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
		}
	}

	// Preparation step 5: mark SoftForeground where the reference mask's
	// membership differs from the current hard foreground's.
	vol.Iterate(vol.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		inHard := l == voxel.HardForeground
		inRef := reference.At(x, y, z) == voxel.HardForeground
		if inHard != inRef {
			vol.Set(x, y, z, voxel.SoftForeground)
		}
		return true
	})

	var sink engine.ProgressSink
	if opts.Sink != nil {
		sink = func(s engine.ProgressSnapshot) { opts.Sink(s.Fraction()) }
	}
	r := engine.NewRun(vol, dist, sink)
	if err := r.Propagate(variant); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCollaboratorFailure, err)
	}

	return finalize(vol, input, opts.InsideValue), nil
}

// finalize implements spec §4.4's finalization table for both variants:
// write InsideValue where the voxel is HardForeground, otherwise copy the
// input's original value through unchanged (spec §9's Open Question,
// resolved in favor of copy-input finalization for both variants).
func finalize(vol *voxel.Volume, input Image, insideValue int) Image {
	w, h, d := input.Dims()
	out := newDenseImage(w, h, d)
	vol.Iterate(vol.FullRegion(), func(x, y, z int, l voxel.Label) bool {
		if l == voxel.HardForeground {
			out.Set(x, y, z, insideValue)
		} else {
			out.Set(x, y, z, input.At(x, y, z))
		}
		return true
	})
	return out
}
