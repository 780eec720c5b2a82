/*
Package label defines the shortest-path-tree node (Label) produced by the
expander, and LabelSet, the bounded container that holds them.

Description:
  A Label is immutable once inserted: edge id, predecessor back-pointer
  (an index into the same LabelSet, never an owning reference — cycles
  are impossible by construction since cost is monotonically
  non-decreasing along a path), accumulated cost/time/distance, and the
  turn cost paid at this label's edge's origin.

  LabelSet is arena-plus-indices: a distance ceiling is fixed at
  construction and any candidate label whose accumulated distance would
  exceed it is never inserted. During expansion the arena is read/written
  as a min-priority frontier (by the expander, which keeps its own heap of
  indices); once expansion finishes it is a plain append-only log that
  outlives the expansion itself, shared by every right-column State that
  references one of its labels.

Complexity: O(1) amortized insertion; O(1) indexed lookup.
*/
package label
