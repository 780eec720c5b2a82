package trace

import (
	"errors"

	"github.com/corvidlabs/mapmatch/label"
)

// ErrAlreadyRouted is returned by SetRoute if the State has already been
// routed; routed transitions false -> true exactly once over a State's
// lifetime, and only inside the transition cost functor's UpdateRoute.
var ErrAlreadyRouted = errors.New("trace: state already routed")

// State is associated with a StateID and holds the candidate it was
// projected to, whether it has been routed yet, and — once routed — the
// shared LabelSet produced by that routing and a lookup from right
// StateID to the best label reached for that candidate.
//
// State mutation is confined to SetRoute, called at most once per State;
// all other access is read-only, matching the single-threaded cooperative
// model one matcher instance runs under.
type State struct {
	ID        StateID
	Candidate PathLocation

	routed   bool
	labelSet *label.LabelSet
	bestFor  map[StateID]int // right StateID -> index into labelSet
}

// NewState constructs an unrouted State for id with the given candidate.
func NewState(id StateID, candidate PathLocation) *State {
	return &State{ID: id, Candidate: candidate}
}

// Routed reports whether this State has already been routed.
func (s *State) Routed() bool {
	return s.routed
}

// SetRoute atomically marks the State routed, retaining labelSet by
// shared reference and recording, for each right-hand StateID, the index
// of its best reached label within labelSet. rightIDs and labelIdx must
// be parallel slices (as produced by the expander plus the caller's
// destination bookkeeping); an index of -1 means that right candidate
// was unreached and is simply omitted from the lookup.
//
// Returns ErrAlreadyRouted if called more than once.
func (s *State) SetRoute(rightIDs []StateID, labelIdx []int, labelSet *label.LabelSet) error {
	if s.routed {
		return ErrAlreadyRouted
	}
	bestFor := make(map[StateID]int, len(rightIDs))
	for i, rid := range rightIDs {
		if i >= len(labelIdx) || labelIdx[i] < 0 {
			continue
		}
		bestFor[rid] = labelIdx[i]
	}
	s.labelSet = labelSet
	s.bestFor = bestFor
	s.routed = true
	return nil
}

// LastLabel returns the best label this State reached for the right
// StateID rid, or ok=false if rid was unreached (or this State has not
// been routed at all).
func (s *State) LastLabel(rid StateID) (label.Label, bool) {
	if !s.routed {
		return label.Label{}, false
	}
	idx, ok := s.bestFor[rid]
	if !ok {
		return label.Label{}, false
	}
	return s.labelSet.Get(idx)
}
