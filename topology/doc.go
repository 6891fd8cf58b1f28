// Package topology implements the three per-voxel admissibility tests a
// simple-point candidate must pass before the propagation engine is allowed
// to commit it: Euler characteristic invariance, connected-component
// invariance, and a non-manifold diagnostic.
//
// All three operate on a Patch, a flattened snapshot of a voxel's 3×3×3
// neighborhood, so they never touch a voxel.Volume directly and allocate
// only small per-call scratch maps and slices. This keeps them pure, safe to
// call from any goroutine, and trivial to unit-test in isolation from the
// engine that calls them.
package topology
