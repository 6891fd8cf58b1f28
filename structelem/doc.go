// Package structelem provides the structuring-element collaborators used to
// synthesize a default reference mask when the caller supplies none: a Ball
// of a given integer radius, and the binary dilation/erosion operators built
// on it.
//
// Dilation stamps the ball's offsets (every lattice point within Euclidean
// distance Radius) around each HardForeground voxel, generalizing
// gridgraph's 2D 4/8-connectivity neighbor-offset table to a
// radius-parameterized 3D ball; erosion is dilation of the complement.
package structelem
