package distance

import "errors"

var (
	// ErrEmptyVolume is returned when SignedEuclidean is given a nil or
	// zero-sized volume.
	ErrEmptyVolume = errors.New("distance: volume must not be nil or empty")
)
