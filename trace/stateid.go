package trace

import "fmt"

// StateID identifies a candidate at a given column: the pair (Time, ID).
// Totally ordered lexicographically (Time first, then ID); Time is
// monotonically non-decreasing along a trace.
type StateID struct {
	Time int
	ID   int
}

// InvalidStateID is the sentinel returned by a predecessor lookup when a
// state has no Viterbi predecessor (e.g. the first column of a trace).
var InvalidStateID = StateID{Time: -1, ID: -1}

// Valid reports whether id is not the InvalidStateID sentinel.
func (id StateID) Valid() bool {
	return id != InvalidStateID
}

// Less reports whether id sorts strictly before other: first by Time,
// then by ID.
func (id StateID) Less(other StateID) bool {
	if id.Time != other.Time {
		return id.Time < other.Time
	}
	return id.ID < other.ID
}

// String renders id as "time:id" for diagnostics.
func (id StateID) String() string {
	return fmt.Sprintf("%d:%d", id.Time, id.ID)
}
