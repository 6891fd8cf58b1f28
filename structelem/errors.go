package structelem

import "errors"

var (
	// ErrInvalidRadius is returned when a Ball is constructed with a
	// non-positive radius.
	ErrInvalidRadius = errors.New("structelem: radius must be > 0")
	// ErrNilVolume is returned when BinaryDilate/BinaryErode are given a
	// nil volume.
	ErrNilVolume = errors.New("structelem: volume must not be nil")
)
