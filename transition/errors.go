package transition

import "errors"

// ErrInvalidBeta is returned by NewConfig when beta <= 0.
var ErrInvalidBeta = errors.New("transition: beta must be > 0")

// ErrInvalidTurnPenalty is returned by NewConfig when turnPenaltyFactor < 0.
var ErrInvalidTurnPenalty = errors.New("transition: turn_penalty_factor must be >= 0")

// ErrPredecessorNotRouted is a contract-violation fault: UpdateRoute was
// invoked for a left state whose Viterbi predecessor exists but has not
// itself been routed yet. This indicates caller misuse of the ordering
// guarantee in the concurrency model, not a data condition — callers
// should treat it as a fatal logic fault, never retry.
var ErrPredecessorNotRouted = errors.New("transition: predecessor state is not yet routed")

// ErrStateNotFound indicates a StateID did not resolve to a State within
// its column, which is itself a caller contract violation (StateIDs must
// name real candidates).
var ErrStateNotFound = errors.New("transition: state id not found in its column")
