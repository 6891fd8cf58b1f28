package voxel

import "errors"

// Sentinel errors for the voxel package.
var (
	// ErrEmptyVolume indicates a requested volume has a non-positive dimension.
	ErrEmptyVolume = errors.New("voxel: width, height and depth must all be > 0")
)
