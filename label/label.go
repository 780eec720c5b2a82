package label

// NoPredecessor marks a Label with no predecessor in the shortest-path
// tree (it was reached directly from the search origin).
const NoPredecessor = -1

// Cost bundles the accumulated routing cost and elapsed time of a label,
// mirroring the mode-costing "cost" accumulator a routing engine exposes
// per edge.
type Cost struct {
	Cost float64 // unitless, monotonic in path length
	Secs float64
}

// Label is a node in the shortest-path tree built by the expander.
// Immutable once inserted into a LabelSet.
type Label struct {
	// EdgeID is the road-graph edge this label terminates on.
	EdgeID string

	// Predecessor is the index, within the same LabelSet, of the label
	// this one was relaxed from, or NoPredecessor if this label was
	// reached directly from the search origin.
	Predecessor int

	// Cost is the accumulated routing cost and elapsed time to reach this
	// label.
	Cost Cost

	// Distance is the accumulated path distance, in meters, to reach this
	// label.
	Distance float64

	// TurnCost is the turn-angle penalty accrued at this label's edge's
	// origin (i.e. the junction this label's edge was entered through).
	TurnCost float64
}
