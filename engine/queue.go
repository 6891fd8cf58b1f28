package engine

// voxelItem pairs a flat voxel index with the priority (distance-map value)
// it was enqueued under, mirroring dijkstra.nodeItem's (id, dist) shape.
type voxelItem struct {
	index    int
	priority float32
}

// voxelPQ is a binary heap of *voxelItem, directly adapted from
// dijkstra.nodePQ: same Len/Less/Swap/Push/Pop shape over container/heap,
// same lazy-decrease-key discipline (stale entries are discarded on pop by
// checking the voxel's current label rather than removing them from the
// heap). less reports ordering direction, swapped between the two variants
// (max-heap for carve-outside, min-heap for carve-inside).
type voxelPQ struct {
	items []*voxelItem
	less  func(a, b float32) bool
}

func (pq voxelPQ) Len() int { return len(pq.items) }

func (pq voxelPQ) Less(i, j int) bool {
	return pq.less(pq.items[i].priority, pq.items[j].priority)
}

func (pq voxelPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *voxelPQ) Push(x interface{}) { pq.items = append(pq.items, x.(*voxelItem)) }

func (pq *voxelPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}
