package topomorph

import "errors"

// Sentinel errors returned by CarveOutside/CarveInside.
var (
	// ErrDimensionMismatch indicates that a supplied MaskImage's
	// Width/Height/Depth do not match the input Image's Dims().
	ErrDimensionMismatch = errors.New("topomorph: mask dimensions do not match input dimensions")

	// ErrInvalidRadius indicates that Radius <= 0.
	ErrInvalidRadius = errors.New("topomorph: radius must be > 0")

	// ErrCollaboratorFailure wraps an error returned by one of the
	// distance/structelem collaborators during preparation.
	ErrCollaboratorFailure = errors.New("topomorph: collaborator failed")
)
