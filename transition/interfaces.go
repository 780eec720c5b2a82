package transition

import "github.com/corvidlabs/mapmatch/trace"

// IViterbiSearch is the read-only predecessor lookup the functor consumes
// from the external dynamic-program driver. Predecessor returns
// trace.InvalidStateID if lhs has no predecessor yet.
type IViterbiSearch interface {
	Predecessor(id trace.StateID) trace.StateID
}
