// Package engine implements the priority-queue propagation core shared by
// carve-outside (topological closing) and carve-inside (topological
// opening): a stale-entry binary heap draining Queued voxels, testing each
// popped candidate against topology's Euler and connected-component
// invariants before committing it, and pushing newly-exposed soft
// neighbors over a fixed 18-offset face-and-edge propagation neighborhood.
//
// The two variants are expressed as package-level Variant descriptors
// rather than a type hierarchy, so the hot per-voxel test is a direct,
// monomorphized call with no virtual dispatch.
package engine
