package topomorph

import "github.com/katalvlaran/topomorph/voxel"

// Options configures a single CarveOutside/CarveInside call.
//
//	– InsideValue: the Image value meaning "foreground" on input, and the
//	  value written back to a voxel that finalizes HardForeground.
//	– Radius:      structuring-element radius for the default reference
//	  mask, in voxel-index units (spec §6 DistanceTransform's "ball").
//	– MaskImage:   an optional caller-supplied reference mask, bypassing
//	  the default dilate/erode synthesis entirely.
type Options struct {
	InsideValue int
	Radius      int
	MaskImage   *voxel.Volume
	Sink        ProgressSink
}

// ProgressSink is an optional observer invoked after each commit with the
// fraction of soft voxels resolved so far (spec §6). No ordering guarantee
// is made beyond a monotonically non-decreasing fraction across one call.
type ProgressSink func(fraction float64)

// Option is a functional option for configuring Options.
type Option func(*Options)

// WithInsideValue overrides the Image value treated as foreground.
func WithInsideValue(v int) Option {
	return func(o *Options) {
		o.InsideValue = v
	}
}

// WithRadius overrides the default reference mask's structuring-element
// radius. Must be called with a positive value; non-positive values cause
// ErrInvalidRadius at call time.
func WithRadius(r int) Option {
	return func(o *Options) {
		o.Radius = r
	}
}

// WithMaskImage supplies a precomputed reference mask, skipping the
// default ball dilate/erode synthesis (spec §6's "MaskImage ... optional").
func WithMaskImage(mask *voxel.Volume) Option {
	return func(o *Options) {
		o.MaskImage = mask
	}
}

// WithProgressSink attaches an observer invoked after each voxel commit.
func WithProgressSink(sink ProgressSink) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}

// DefaultOptions returns Options initialized with sensible defaults.
//
// Defaults:
//   - InsideValue: 1 (the conventional binary-mask foreground value).
//   - Radius:      1 (the smallest meaningful structuring element).
//   - MaskImage:   nil (synthesize the reference mask by dilate/erode).
func DefaultOptions() Options {
	return Options{
		InsideValue: 1,
		Radius:      1,
	}
}
