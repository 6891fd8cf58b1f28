// Package distance computes the signed Euclidean distance field the
// propagation engine uses as its priority ordering: negative inside the
// current hard foreground, positive outside, magnitude equal to the
// Euclidean distance (in physical, spacing-scaled units) to the nearest
// foreground/background boundary.
//
// ExactTransform is the only shipped implementation, a dimension-separable
// exact transform (Felzenszwalt & Huttenlocher's lower-envelope algorithm)
// run once per axis. No library in the retrieved reference set computes a
// distance transform, so this package is original code over the standard
// library's math package only — see DESIGN.md.
package distance
