//go:build debug

package voxel

// checkTransition panics if (from -> to) is not one of the legal label
// transitions of Invariant I1: the preparation-time initial labeling
// Background->HardForeground / Background->SoftForeground, or the in-run
// SoftForeground->Queued, Queued->HardForeground, Queued->Background. Only
// built into "debug" builds; release builds elide this check entirely
// (spec §4.2).
func checkTransition(from, to Label) {
	switch {
	case from == to:
		return
	case from == Background && (to == HardForeground || to == SoftForeground):
		return
	case from == SoftForeground && to == Queued:
		return
	case from == Queued && (to == HardForeground || to == Background):
		return
	default:
		panic("voxel: illegal label transition " + from.String() + " -> " + to.String())
	}
}
