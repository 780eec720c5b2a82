// Package geo provides the geometric and temporal primitives the
// transition cost core is built on: great-circle distance between two
// measurements, elapsed time between them, and the turn-angle lookup
// table used to penalize sharp junctions along a routed path.
//
// Nothing here depends on the road graph, the costing model, or the
// Viterbi search — these are pure functions of coordinates and angles.
package geo
