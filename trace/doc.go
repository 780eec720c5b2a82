// Package trace holds the data model shared between the Viterbi driver
// and the transition cost core: measurements, candidate projections onto
// the road graph (PathLocation), state identity (StateID), and the
// per-state routing cache (State) grouped into time-ordered Columns.
//
// Nothing in this package performs routing; it only models the trace
// being matched and the bookkeeping the transition cost functor needs to
// memoize one bounded shortest-path search per left state.
package trace
