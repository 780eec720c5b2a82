package transition

import (
	"errors"
	"math"
	"testing"

	"github.com/corvidlabs/mapmatch/geo"
	"github.com/corvidlabs/mapmatch/routing"
	"github.com/corvidlabs/mapmatch/trace"
)

// fakeGraph is a minimal directed-edge graph shared by the functor tests.
type fakeGraph struct {
	edges      map[string]routing.Edge
	successors map[string][]string
}

func (g *fakeGraph) Edge(id string) (routing.Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

func (g *fakeGraph) Successors(edgeID string) []routing.Edge {
	var out []routing.Edge
	for _, id := range g.successors[edgeID] {
		out = append(out, g.edges[id])
	}
	return out
}

// flatCosting costs an edge at its length in meters, at 10 m/s.
type flatCosting struct{}

func (flatCosting) Allowed(e routing.Edge) bool { return true }
func (flatCosting) EdgeCost(e routing.Edge) (float64, float64) {
	return e.Length, e.Length / 10
}
func (flatCosting) TurnCost(prev, next routing.Edge, angle float64) float64 { return 0 }

// fakeColumns is an in-memory ColumnGetter/MeasurementGetter double.
type fakeColumns struct {
	columns      map[int]trace.Column
	measurements map[int]trace.Measurement
}

func (f *fakeColumns) Column(t int) (trace.Column, bool) {
	c, ok := f.columns[t]
	return c, ok
}

func (f *fakeColumns) Measurement(t int) (trace.Measurement, bool) {
	m, ok := f.measurements[t]
	return m, ok
}

// fakeViterbi reports predecessors from a plain map, trace.InvalidStateID
// meaning "no predecessor yet".
type fakeViterbi struct {
	pred map[trace.StateID]trace.StateID
}

func (v *fakeViterbi) Predecessor(id trace.StateID) trace.StateID {
	if p, ok := v.pred[id]; ok {
		return p
	}
	return trace.InvalidStateID
}

func locAt(edgeID string, pct float64) trace.PathLocation {
	return trace.PathLocation{Edges: []trace.EdgeCandidate{{EdgeID: edgeID, PercentAlong: pct}}}
}

func straightLineGraph() *fakeGraph {
	return &fakeGraph{
		edges: map[string]routing.Edge{
			"AB": {ID: "AB", Length: 100, StartBearing: 90, EndBearing: 90},
		},
	}
}

func mustConfig(t *testing.T, beta, breakage, distFactor, timeFactor, turnFactor float64) *Config {
	t.Helper()
	c, err := NewConfig(beta, breakage, distFactor, timeFactor, turnFactor)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return c
}

// TestCost_S1_Coincident covers the coincident-measurement scenario:
// gc=0, clk=0, expander finds a zero-length path, cost = 0.
func TestCost_S1_Coincident(t *testing.T) {
	g := straightLineGraph()
	cfg := mustConfig(t, 1, 1000, 2, 2, 0)

	lhsID := trace.StateID{Time: 0, ID: 0}
	rhsID := trace.StateID{Time: 1, ID: 0}
	// Both candidates sit at the very end of the same edge: a genuinely
	// zero-length path between them, not merely the same edge at
	// different offsets (which the expander would still charge for).
	loc := locAt("AB", 1)

	left := trace.NewState(lhsID, loc)
	right := trace.NewState(rhsID, loc)

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{left}},
			1: {Time: 1, States: []*trace.State{right}},
		},
		measurements: map[int]trace.Measurement{
			0: {Coord: geo.Point{Lng: 0, Lat: 0}, Epoch: 1000},
			1: {Coord: geo.Point{Lng: 0, Lat: 0}, Epoch: 1000},
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{}}

	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	got, err := f.Cost(lhsID, rhsID)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if got != 0 {
		t.Errorf("cost = %v, want 0", got)
	}
}

// TestCost_S2_StraightLine covers the straight-line match where the
// route exactly reproduces the great-circle distance and clock delta.
func TestCost_S2_StraightLine(t *testing.T) {
	g := straightLineGraph()
	cfg := mustConfig(t, 1, 1000, 2, 2, 0)

	lhsID := trace.StateID{Time: 0, ID: 0}
	rhsID := trace.StateID{Time: 1, ID: 0}

	left := trace.NewState(lhsID, locAt("AB", 0))
	right := trace.NewState(rhsID, locAt("AB", 1))

	// The second measurement sits ~100m east of the first, matching the
	// route's actual edge length so the route reproduces the straight
	// line exactly (S2 in the scenario table). One degree of longitude at
	// the equator is ~111195m on the sphere GreatCircleDistance uses.
	m0 := geo.Point{Lng: 0, Lat: 0}
	m1 := geo.Point{Lng: 100.0 / 111195.0, Lat: 0}

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{left}},
			1: {Time: 1, States: []*trace.State{right}},
		},
		measurements: map[int]trace.Measurement{
			0: {Coord: m0, Epoch: 0},
			1: {Coord: m1, Epoch: 10},
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{}}
	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	got, err := f.Cost(lhsID, rhsID)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	gc := geo.GreatCircleDistance(m0, m1)
	want := CalculateTransitionCost(0, 100, 10, gc, 10, cfg.InvBeta)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cost = %v, want %v", got, want)
	}
	if math.Abs(got) > 0.05 {
		t.Errorf("cost = %v, want ~0 (route matches the straight line)", got)
	}
}

// TestCalculateTransitionCost_S3_Detour is the worked detour scenario
// from the scenario table: route 250m/20s vs straight 100m/10s, beta=5.
func TestCalculateTransitionCost_S3_Detour(t *testing.T) {
	got := CalculateTransitionCost(0, 250, 20, 100, 10, 1.0/5)
	want := 32.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cost = %v, want %v", got, want)
	}
}

// TestCost_S4_Unreachable covers a right candidate that cannot be reached
// (there is no path from AB to CD) under a 50m breakage distance: the
// sentinel -1.0 is returned, not an error.
func TestCost_S4_Unreachable(t *testing.T) {
	g := &fakeGraph{
		edges: map[string]routing.Edge{
			"AB": {ID: "AB", Length: 10, StartBearing: 90, EndBearing: 90},
			"CD": {ID: "CD", Length: 10, StartBearing: 90, EndBearing: 90},
		},
	}
	cfg := mustConfig(t, 1, 50, 1, 1, 0)

	lhsID := trace.StateID{Time: 0, ID: 0}
	rhsID := trace.StateID{Time: 1, ID: 0}
	left := trace.NewState(lhsID, locAt("AB", 0))
	right := trace.NewState(rhsID, locAt("CD", 0)) // unreachable: no edge AB->CD

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{left}},
			1: {Time: 1, States: []*trace.State{right}},
		},
		measurements: map[int]trace.Measurement{
			0: {Coord: geo.Point{Lng: 0, Lat: 0}, Epoch: 0},
			1: {Coord: geo.Point{Lng: 0.002, Lat: 0}, Epoch: 10}, // gc ~= 222m
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{}}
	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	got, err := f.Cost(lhsID, rhsID)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if got != NoTransition {
		t.Errorf("cost = %v, want sentinel %v", got, NoTransition)
	}
}

// TestUpdateRoute_S5_PredecessorNotRouted covers the contract-violation
// fault: a predecessor exists but hasn't been routed itself.
func TestUpdateRoute_S5_PredecessorNotRouted(t *testing.T) {
	g := straightLineGraph()
	cfg := mustConfig(t, 1, 1000, 2, 2, 0)

	predID := trace.StateID{Time: 0, ID: 0}
	lhsID := trace.StateID{Time: 1, ID: 0}
	rhsID := trace.StateID{Time: 2, ID: 0}

	pred := trace.NewState(predID, locAt("AB", 0)) // never routed
	left := trace.NewState(lhsID, locAt("AB", 0.5))
	right := trace.NewState(rhsID, locAt("AB", 1))

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{pred}},
			1: {Time: 1, States: []*trace.State{left}},
			2: {Time: 2, States: []*trace.State{right}},
		},
		measurements: map[int]trace.Measurement{
			0: {Epoch: 0},
			1: {Epoch: 5},
			2: {Epoch: 10},
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{lhsID: predID}}
	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	_, err := f.Cost(lhsID, rhsID)
	if !errors.Is(err, ErrPredecessorNotRouted) {
		t.Fatalf("expected ErrPredecessorNotRouted, got %v", err)
	}
}

// TestCost_S6_ReuseAcrossRightCandidates covers idempotent routing: N
// calls against the same lhs against different right candidates trigger
// exactly one expansion and the rest are served from cache.
func TestCost_S6_ReuseAcrossRightCandidates(t *testing.T) {
	g := &fakeGraph{
		edges: map[string]routing.Edge{
			"AB": {ID: "AB", Length: 10, StartBearing: 90, EndBearing: 90},
			"BC": {ID: "BC", Length: 10, StartBearing: 90, EndBearing: 90},
			"BD": {ID: "BD", Length: 10, StartBearing: 90, EndBearing: 90},
		},
		successors: map[string][]string{"AB": {"BC", "BD"}},
	}
	cfg := mustConfig(t, 1, 1000, 5, 5, 0)

	lhsID := trace.StateID{Time: 0, ID: 0}
	r1 := trace.StateID{Time: 1, ID: 0}
	r2 := trace.StateID{Time: 1, ID: 1}

	left := trace.NewState(lhsID, locAt("AB", 0))
	right1 := trace.NewState(r1, locAt("BC", 0))
	right2 := trace.NewState(r2, locAt("BD", 0))

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{left}},
			1: {Time: 1, States: []*trace.State{right1, right2}},
		},
		measurements: map[int]trace.Measurement{
			0: {Coord: geo.Point{Lng: 0, Lat: 0}, Epoch: 0},
			1: {Coord: geo.Point{Lng: 0.001, Lat: 0}, Epoch: 10},
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{}}
	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	if _, err := f.Cost(lhsID, r1); err != nil {
		t.Fatalf("Cost(r1): %v", err)
	}
	if !left.Routed() {
		t.Fatalf("expected lhs routed after first Cost call")
	}
	if _, err := f.Cost(lhsID, r2); err != nil {
		t.Fatalf("Cost(r2): %v", err)
	}

	// A second UpdateRoute must be a no-op (idempotent), not an error or
	// a re-expansion that would clobber the cached route.
	if err := f.UpdateRoute(lhsID, r1); err != nil {
		t.Fatalf("UpdateRoute should be idempotent, got %v", err)
	}
}

// TestCost_UsesRightIndexNotLeft is the regression test for the Open
// Question: the right state looked up for the final label must be keyed
// by rhs itself, not by the left state's index within the right column.
func TestCost_UsesRightIndexNotLeft(t *testing.T) {
	g := &fakeGraph{
		edges: map[string]routing.Edge{
			"AB": {ID: "AB", Length: 10, StartBearing: 90, EndBearing: 90},
			"BC": {ID: "BC", Length: 10, StartBearing: 90, EndBearing: 90},
			"BD": {ID: "BD", Length: 10, StartBearing: 90, EndBearing: 90},
		},
		successors: map[string][]string{"AB": {"BC", "BD"}},
	}
	cfg := mustConfig(t, 1, 1000, 5, 5, 0)

	// lhs.ID == 1, so a buggy implementation indexing the right column by
	// lhs.ID (1) instead of rhs.ID would read right2's label when asked
	// about right1 (ID 0).
	lhsID := trace.StateID{Time: 0, ID: 1}
	r1 := trace.StateID{Time: 1, ID: 0}
	r2 := trace.StateID{Time: 1, ID: 1}

	left := trace.NewState(lhsID, locAt("AB", 0))
	right1 := trace.NewState(r1, locAt("BC", 0))
	right2 := trace.NewState(r2, locAt("BD", 0))

	cols := &fakeColumns{
		columns: map[int]trace.Column{
			0: {Time: 0, States: []*trace.State{left}},
			1: {Time: 1, States: []*trace.State{right1, right2}},
		},
		measurements: map[int]trace.Measurement{
			0: {Coord: geo.Point{Lng: 0, Lat: 0}, Epoch: 0},
			1: {Coord: geo.Point{Lng: 0.001, Lat: 0}, Epoch: 10},
		},
	}
	vit := &fakeViterbi{pred: map[trace.StateID]trace.StateID{}}
	f := &Functor{Config: cfg, Reader: g, Costing: flatCosting{}, Columns: cols, Measurements: cols, Viterbi: vit}

	if _, err := f.Cost(lhsID, r1); err != nil {
		t.Fatalf("Cost(r1): %v", err)
	}
	lbl1, ok := left.LastLabel(r1)
	if !ok || lbl1.EdgeID != "BC" {
		t.Fatalf("expected r1 to resolve to edge BC, got %+v ok=%v", lbl1, ok)
	}
	lbl2, ok := left.LastLabel(r2)
	if !ok || lbl2.EdgeID != "BD" {
		t.Fatalf("expected r2 to resolve to edge BD, got %+v ok=%v", lbl2, ok)
	}
}

func TestNewConfig_ConstructionFaults(t *testing.T) {
	cases := []struct {
		name  string
		beta  float64
		turn  float64
		wantE error
	}{
		{"zero beta", 0, 0, ErrInvalidBeta},
		{"negative beta", -1, 0, ErrInvalidBeta},
		{"negative turn penalty", 1, -0.001, ErrInvalidTurnPenalty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewConfig(c.beta, 1000, 2, 2, c.turn)
			if !errors.Is(err, c.wantE) {
				t.Fatalf("NewConfig(%v, _, _, _, %v) = %v, want %v", c.beta, c.turn, err, c.wantE)
			}
		})
	}
}
