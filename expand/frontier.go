package expand

import "container/heap"

// frontierItem is one pending entry in the best-first search: a label
// already stored in the LabelSet, plus the edge it terminates on so the
// settle step can match it against destinations without a second lookup.
type frontierItem struct {
	labelIdx int
	edgeID   string
	cost     float64
	approx   float64 // DistanceApproximator.DistanceTo, 0 if unused
	useApprox bool
}

// frontierPQ is a min-heap ordered by (cost asc, approx asc if present,
// labelIdx asc) — labelIdx doubles as insertion order since LabelSet
// indices are assigned monotonically, satisfying the "lower label
// insertion index" tie-break the expander must guarantee.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.useApprox && b.useApprox && a.approx != b.approx {
		return a.approx < b.approx
	}
	return a.labelIdx < b.labelIdx
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*frontierItem))
}

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return it
}

var _ = heap.Interface(&frontierPQ{})
