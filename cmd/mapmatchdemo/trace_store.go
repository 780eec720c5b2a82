package main

import "github.com/corvidlabs/mapmatch/trace"

// inMemoryTrace is the demo's stand-in for the Viterbi driver and its
// column/measurement storage — deliberately tiny, since the real
// versions of these collaborators live outside this engine's scope.
type inMemoryTrace struct {
	columns      map[int]trace.Column
	measurements map[int]trace.Measurement
	pred         map[trace.StateID]trace.StateID
}

func newInMemoryTrace() *inMemoryTrace {
	return &inMemoryTrace{
		columns:      make(map[int]trace.Column),
		measurements: make(map[int]trace.Measurement),
		pred:         make(map[trace.StateID]trace.StateID),
	}
}

func (m *inMemoryTrace) addMeasurement(t int, meas trace.Measurement, loc trace.PathLocation) {
	m.measurements[t] = meas
	st := trace.NewState(trace.StateID{Time: t, ID: 0}, loc)
	m.columns[t] = trace.Column{Time: t, States: []*trace.State{st}}
}

func (m *inMemoryTrace) Column(t int) (trace.Column, bool) {
	c, ok := m.columns[t]
	return c, ok
}

func (m *inMemoryTrace) Measurement(t int) (trace.Measurement, bool) {
	v, ok := m.measurements[t]
	return v, ok
}

// Predecessor implements transition.IViterbiSearch: a real Viterbi driver
// would return the predecessor chosen by the dynamic program; this demo
// simply replays the one path it walked.
func (m *inMemoryTrace) Predecessor(id trace.StateID) trace.StateID {
	if p, ok := m.pred[id]; ok {
		return p
	}
	return trace.InvalidStateID
}

func (m *inMemoryTrace) setPredecessor(id, pred trace.StateID) {
	m.pred[id] = pred
}
