package expand

import (
	"container/heap"

	"github.com/corvidlabs/mapmatch/geo"
	"github.com/corvidlabs/mapmatch/label"
	"github.com/corvidlabs/mapmatch/routing"
	"github.com/corvidlabs/mapmatch/trace"
)

// Params bundles everything a single Expand call needs.
type Params struct {
	Reader       routing.GraphReader
	Costing      routing.Costing
	TurnTable    geo.TurnCostTable
	Origin       trace.PathLocation
	Destinations []trace.PathLocation
	LabelSet     *label.LabelSet
	Approximator routing.DistanceApproximator // optional, may be nil
	SearchRadius float64
	Inbound      *label.Label // optional, may be nil
	MaxDistance  float64      // meters
	MaxTime      float64      // seconds
}

// Expand runs a single bounded best-first search from Origin, returning,
// for each entry in Destinations, the index into LabelSet of the best
// reached label, or -1 if that destination was never reached within
// MaxDistance/MaxTime.
func Expand(p Params) ([]int, error) {
	if p.Reader == nil || p.Costing == nil || p.LabelSet == nil {
		return nil, ErrNilCollaborator
	}
	if len(p.Origin.Edges) == 0 {
		return nil, ErrNoOrigin
	}

	r := &runner{Params: p}
	r.destEdges = indexDestinations(p.Destinations)
	r.reached = make([]int, len(p.Destinations))
	for i := range r.reached {
		r.reached[i] = -1
	}
	r.settled = make(map[string]bool)

	r.seed()
	r.loop()

	return r.reached, nil
}

// indexDestinations maps an edge ID to every destination index that
// lists it as a candidate edge.
func indexDestinations(dests []trace.PathLocation) map[string][]int {
	idx := make(map[string][]int)
	for i, d := range dests {
		for _, e := range d.Edges {
			idx[e.EdgeID] = append(idx[e.EdgeID], i)
		}
	}
	return idx
}

// runner holds the state of one Expand call.
type runner struct {
	Params

	destEdges map[string][]int
	reached   []int
	settled   map[string]bool
	remaining int
	pq        frontierPQ
}

// seed inserts one label per origin candidate edge, scaled to the
// remaining length past its percent-along offset, and pushes it onto the
// frontier. If an inbound label is present, its edge feeds a turn-angle
// calculation against each origin edge's start bearing.
func (r *runner) seed() {
	r.remaining = len(r.Destinations)

	var inboundEdge routing.Edge
	haveInbound := false
	if r.Inbound != nil {
		if e, ok := r.Reader.Edge(r.Inbound.EdgeID); ok {
			inboundEdge = e
			haveInbound = true
		}
	}

	heap.Init(&r.pq)
	for _, cand := range r.Origin.Edges {
		edge, ok := r.Reader.Edge(cand.EdgeID)
		if !ok || !r.Costing.Allowed(edge) {
			continue
		}
		frac := 1 - cand.PercentAlong
		if frac < 0 {
			frac = 0
		}
		edgeCost, edgeSecs := r.Costing.EdgeCost(edge)

		var turnCost float64
		if haveInbound {
			angle := geo.TurnAngle(inboundEdge.EndBearing, edge.StartBearing)
			turnCost = r.TurnTable.Lookup(angle) + r.Costing.TurnCost(inboundEdge, edge, angle)
		}

		l := label.Label{
			EdgeID:      edge.ID,
			Predecessor: label.NoPredecessor,
			Cost:        label.Cost{Cost: edgeCost*frac + turnCost, Secs: edgeSecs * frac},
			Distance:    edge.Length * frac,
			TurnCost:    turnCost,
		}
		if l.Distance > r.MaxDistance || l.Cost.Secs > r.MaxTime {
			continue
		}
		idx, ok := r.LabelSet.Add(l)
		if !ok {
			continue
		}
		r.push(idx, edge.ID, l.Cost.Cost, edge)
	}
}

// loop pops the frontier until it is empty or every destination has been
// reached.
func (r *runner) loop() {
	for r.pq.Len() > 0 && r.remaining > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		if r.settled[item.edgeID] {
			continue // stale entry for an edge already finalized more cheaply
		}
		r.settled[item.edgeID] = true
		r.settle(item)
		r.relax(item)
	}
}

// settle records item's label as the answer for any destination whose
// candidate edges include this edge, the first time (and therefore the
// cheapest time, by Dijkstra's exchange argument) it is finalized.
func (r *runner) settle(item *frontierItem) {
	for _, destIdx := range r.destEdges[item.edgeID] {
		if r.reached[destIdx] == -1 {
			r.reached[destIdx] = item.labelIdx
			r.remaining--
		}
	}
}

// relax expands every successor of the just-settled edge, inserting and
// pushing a new label for each one that is allowed, unsettled, and within
// the distance/time ceilings.
func (r *runner) relax(item *frontierItem) {
	settledLabel, ok := r.LabelSet.Get(item.labelIdx)
	if !ok {
		return
	}
	settledEdge, ok := r.Reader.Edge(item.edgeID)
	if !ok {
		return
	}

	for _, next := range r.Reader.Successors(item.edgeID) {
		if r.settled[next.ID] || !r.Costing.Allowed(next) {
			continue
		}
		angle := geo.TurnAngle(settledEdge.EndBearing, next.StartBearing)
		turnCost := r.TurnTable.Lookup(angle) + r.Costing.TurnCost(settledEdge, next, angle)

		edgeCost, edgeSecs := r.Costing.EdgeCost(next)
		newDistance := settledLabel.Distance + next.Length
		newSecs := settledLabel.Cost.Secs + edgeSecs
		if newDistance > r.MaxDistance || newSecs > r.MaxTime {
			continue
		}
		newCost := settledLabel.Cost.Cost + edgeCost + turnCost

		l := label.Label{
			EdgeID:      next.ID,
			Predecessor: item.labelIdx,
			Cost:        label.Cost{Cost: newCost, Secs: newSecs},
			Distance:    newDistance,
			TurnCost:    turnCost,
		}
		idx, ok := r.LabelSet.Add(l)
		if !ok {
			continue
		}
		r.push(idx, next.ID, newCost, next)
	}
}

// push builds a frontierItem for the label at idx and pushes it onto the
// heap, consulting the DistanceApproximator for a secondary tie-break key
// when one is configured.
func (r *runner) push(idx int, edgeID string, cost float64, edge routing.Edge) {
	item := &frontierItem{labelIdx: idx, edgeID: edgeID, cost: cost}
	if r.Approximator != nil {
		item.approx = r.Approximator.DistanceTo(edge)
		item.useApprox = true
	}
	heap.Push(&r.pq, item)
}
