// Package voxel provides the dense, padded 3D volume that the topomorph
// engine reads and mutates.
//
// What:
//
//   - Volume wraps a flat []Label backing a rectangular W×H×D voxel grid,
//     plus a fixed one-voxel background shell on every face (the "padded
//     region"). Interior coordinates are addressed in 0..W-1 / 0..H-1 /
//     0..D-1 through At/Set; the padding shell is readable only through
//     AtPadded.
//   - Label is a four-valued per-voxel tag: Background, HardForeground,
//     SoftForeground, Queued. During a run only Queued may transition to
//     a terminal label (HardForeground or Background).
//
// Why:
//
//   - The padding shell removes every bounds check from the 3×3×3 patch
//     extraction the engine performs for each popped voxel: any of the 26
//     neighbors of an interior voxel is guaranteed addressable (the
//     engine's neighbor enqueue still checks InBounds). At/Set/AtPadded
//     trust the caller's coordinate
//     and never bounds-check it (spec §4.2's O(1), no-bounds-check
//     contract); an out-of-range coordinate is a caller bug and panics via
//     the backing slice rather than returning an error.
//   - A flat array keyed by row-major index is the cache-friendly,
//     allocation-light storage a multi-million-voxel volume needs; a
//     sparse/string-keyed structure would not scale to this domain.
//
// Complexity: NewVolume is O(W×H×D) to allocate and zero. At/Set are O(1).
// Iterate is O(region size).
//
// Errors:
//
//   - ErrEmptyVolume: W, H, or D is <= 0.
package voxel
