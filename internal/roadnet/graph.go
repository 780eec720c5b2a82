// Package roadnet is a minimal, in-memory routing.GraphReader and
// routing.Costing implementation used to exercise the transition cost
// engine end to end — in a demo, in tests, and as a reference for a real
// graph-service adapter.
package roadnet

import (
	"errors"
	"sync"

	"github.com/corvidlabs/mapmatch/routing"
)

// ErrUnknownEdge is returned by AddSuccessor when either endpoint has not
// been added to the graph yet.
var ErrUnknownEdge = errors.New("roadnet: unknown edge id")

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithCapacityHint preallocates internal maps for n edges, avoiding
// rehashing when the edge count is known up front (e.g. from a fixture's
// length).
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		g.edges = make(map[string]routing.Edge, n)
		g.successors = make(map[string][]string, n)
	}
}

// Graph is a directed edge graph: edges are road segments (with length and
// bearings), successors are the edges reachable from the end of another
// edge. All access is protected by a mutex so a single Graph can be
// shared read-mostly across matcher instances, per the concurrency
// model's "graph reader may be shared read-only" contract.
type Graph struct {
	mu         sync.RWMutex
	edges      map[string]routing.Edge
	successors map[string][]string
}

// NewGraph constructs an empty Graph, applying opts in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges:      make(map[string]routing.Edge),
		successors: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddEdge inserts or replaces edge e, keyed by e.ID.
func (g *Graph) AddEdge(e routing.Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges[e.ID] = e
}

// AddSuccessor records that toID is reachable directly from the end of
// fromID. Both edges must already have been added with AddEdge.
func (g *Graph) AddSuccessor(fromID, toID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.edges[fromID]; !ok {
		return ErrUnknownEdge
	}
	if _, ok := g.edges[toID]; !ok {
		return ErrUnknownEdge
	}
	g.successors[fromID] = append(g.successors[fromID], toID)
	return nil
}

// Edge implements routing.GraphReader.
func (g *Graph) Edge(id string) (routing.Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	return e, ok
}

// Successors implements routing.GraphReader.
func (g *Graph) Successors(edgeID string) []routing.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := g.successors[edgeID]
	out := make([]routing.Edge, 0, len(ids))
	for _, id := range ids {
		if e, ok := g.edges[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of edges currently held.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
