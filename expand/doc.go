/*
Package expand implements the bounded shortest-path expander: a
Dijkstra-like best-first search from one origin PathLocation to many
destination PathLocations at once, amortizing a single expansion across
every destination.

Description:
  Labels are road-graph edges that have been fully relaxed (arrived at
  their downstream junction). The frontier is a min-heap ordered by
  accumulated cost, tie-broken by label insertion index (an optional
  DistanceApproximator may be consulted for a secondary, best-effort
  tie-break before insertion index, but never overrides cost ordering).

Algorithm outline:
 1. Seed the frontier: one label per candidate edge of the origin,
    scaled to the remaining length from its percent-along offset. If an
    inbound label is given, its edge's end bearing feeds a turn-angle
    calculation against each origin candidate edge's start bearing.
 2. Pop the lowest-cost unsettled label.
    - If its edge is already settled, it is a stale heap entry; skip.
    - Mark its edge settled. If the edge matches any destination's
      candidate edges, record that destination as reached at this
      label's index.
    - If every destination has been reached, stop.
 3. Relax successors: for each edge departing the settled edge's end
    junction that the costing model allows, compute the turn angle at
    the junction, accumulate cost/time/distance, and — if within the
    distance and time ceilings — insert a new label and push it.
 4. Stop when the frontier is empty or every destination is reached.
    Destinations never reached are reported as -1 ("unreached").

Complexity: O((V' + E') log V') where V'/E' are the edges and
relaxations actually explored before the ceilings or destination set
stop the search — bounded, not the full graph.
*/
package expand
