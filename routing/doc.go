// Package routing defines the abstract contracts the shortest-path
// expander needs from the road graph and the per-mode cost model:
// GraphReader (edge lookup and successor enumeration), Costing (edge
// admissibility, edge cost, turn cost), and DistanceApproximator
// (optional A*-style tie-breaking toward a destination).
//
// Production implementations of these (a tiled road-graph reader, a
// travel-mode costing model) are external collaborators and live outside
// this module; package internal/roadnet supplies a minimal in-memory
// implementation used by this module's own tests and its demo binary.
package routing
