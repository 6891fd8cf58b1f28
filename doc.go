// Package topomorph is a topology-preserving binary morphology engine for
// 3D voxel volumes.
//
// 🚀 What is topomorph?
//
//	A small, single-threaded, zero-cgo library that closes holes or removes
//	protrusions in a binary foreground region without ever changing its
//	topology:
//
//	  • CarveOutside — topological closing: fill holes, never re-open them.
//	  • CarveInside  — topological opening: remove protrusions, never split
//	    or merge connected components.
//
// ✨ Why choose topomorph?
//
//   - Deterministic    — identical inputs and tie-break rules reproduce the
//     same output bit-for-bit (see engine.Run).
//   - Provably safe    — every label flip is gated by a classical
//     simple-point test (Euler characteristic + connected-component count)
//     on the 3×3×3 neighborhood; see package topology.
//   - Extensible       — attach a ProgressSink hook for progress reporting.
//   - Pure Go          — no cgo, no image-processing SDK dependency.
//
// Under the hood, everything is organized into per-concern subpackages:
//
//	voxel/      — padded labeled volume, the dense data model (§3–§4.2)
//	topology/   — Euler/connected-component simple-point invariants (§4.1)
//	distance/   — signed Euclidean distance transform, the priority field (§3)
//	structelem/ — ball structuring element, default reference-mask synthesis (§6)
//	engine/     — the priority-queue propagation core itself (§4.3)
//
// The root package wires these together into CarveOutside/CarveInside per
// the preparation-and-finalization steps of §4.4.
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale and the
// grounding ledger this implementation was built against.
package topomorph
