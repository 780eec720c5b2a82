package transition

import (
	"fmt"
	"math"
	"time"

	"github.com/corvidlabs/mapmatch/expand"
	"github.com/corvidlabs/mapmatch/geo"
	"github.com/corvidlabs/mapmatch/label"
	"github.com/corvidlabs/mapmatch/metrics"
	"github.com/corvidlabs/mapmatch/routing"
	"github.com/corvidlabs/mapmatch/trace"
)

// NoTransition is the sentinel returned by Cost when the right candidate
// was unreachable within the route's distance/time budget. Callers must
// interpret it, not treat it as a large finite cost.
const NoTransition = -1.0

// Functor is the public entry point invoked by the Viterbi driver: it
// orchestrates route-on-miss against the shortest-path expander and
// converts a reached label into a scalar transition cost.
type Functor struct {
	Config       *Config
	Reader       routing.GraphReader
	Costing      routing.Costing
	Columns      trace.ColumnGetter
	Measurements trace.MeasurementGetter
	Viterbi      IViterbiSearch

	// Mode labels every metric this Functor records (e.g. "auto", "bicycle",
	// "pedestrian"); Metrics may be nil, in which case recording is a no-op.
	Mode    string
	Metrics *metrics.Metrics
}

// Cost returns the transition cost between lhs and rhs, routing lhs on
// first access and thereafter answering from its cache. Returns
// NoTransition if rhs was unreachable within budget.
func (f *Functor) Cost(lhs, rhs trace.StateID) (float64, error) {
	leftState, err := f.stateAt(lhs)
	if err != nil {
		return 0, err
	}

	if !leftState.Routed() {
		f.Metrics.RecordCacheMiss(f.Mode)
		if err := f.UpdateRoute(lhs, rhs); err != nil {
			return 0, err
		}
	} else {
		f.Metrics.RecordCacheHit(f.Mode)
	}

	lbl, ok := leftState.LastLabel(rhs)
	if !ok {
		f.Metrics.RecordBreakage(f.Mode)
		return NoTransition, nil
	}

	leftMeas, err := f.measurementAt(lhs.Time)
	if err != nil {
		return 0, err
	}
	rightMeas, err := f.measurementAt(rhs.Time)
	if err != nil {
		return 0, err
	}

	gc := geo.GreatCircleDistance(leftMeas.Coord, rightMeas.Coord)
	clk := geo.ClockDistance(leftMeas.Epoch, rightMeas.Epoch)
	return CalculateTransitionCost(lbl.TurnCost, lbl.Cost.Cost, lbl.Cost.Secs, gc, clk, f.Config.InvBeta), nil
}

// CalculateTransitionCost is the pure formula behind Cost, split out so
// it can be tested against the worked scenarios independently of any
// routing or caching machinery.
func CalculateTransitionCost(turnCost, routeDistance, routeTime, gcDist, clkDist, invBeta float64) float64 {
	return turnCost + invBeta*(math.Abs(routeDistance-gcDist)+math.Abs(routeTime-clkDist))
}

// UpdateRoute performs a single bounded expansion from lhs, reaching
// every candidate in rhs's column that has no Viterbi predecessor yet,
// and caches the result on lhs's State. Calling it again for an lhs that
// is already routed is a no-op. Calling it before lhs's Viterbi
// predecessor (if any) has itself been routed is a programmer error and
// returns ErrPredecessorNotRouted.
func (f *Functor) UpdateRoute(lhs, rhs trace.StateID) error {
	leftState, err := f.stateAt(lhs)
	if err != nil {
		return err
	}
	if leftState.Routed() {
		return nil // idempotent: a second caller racing the same miss is a no-op
	}

	var inbound *label.Label
	predID := f.Viterbi.Predecessor(lhs)
	if predID.Valid() {
		predState, err := f.stateAt(predID)
		if err != nil {
			return err
		}
		if !predState.Routed() {
			return fmt.Errorf("transition: UpdateRoute(%s): %w", lhs, ErrPredecessorNotRouted)
		}
		l, ok := predState.LastLabel(lhs)
		if ok {
			inbound = &l
		}
	}

	rightCol, ok := f.Columns.Column(rhs.Time)
	if !ok {
		return fmt.Errorf("transition: UpdateRoute(%s): %w", lhs, ErrStateNotFound)
	}

	var destinations []trace.PathLocation
	var unreachedIDs []trace.StateID
	for _, s := range rightCol.States {
		if f.Viterbi.Predecessor(s.ID).Valid() {
			continue // already reached from some other left state; amortized away
		}
		destinations = append(destinations, s.Candidate)
		unreachedIDs = append(unreachedIDs, s.ID)
	}

	leftMeas, err := f.measurementAt(lhs.Time)
	if err != nil {
		return err
	}
	rightMeas, err := f.measurementAt(rhs.Time)
	if err != nil {
		return err
	}

	gc := geo.GreatCircleDistance(leftMeas.Coord, rightMeas.Coord)
	maxDistance := math.Min(gc*f.Config.MaxRouteDistanceFactor, f.Config.BreakageDistance)
	clk := geo.ClockDistance(leftMeas.Epoch, rightMeas.Epoch)
	maxTime := clk * f.Config.MaxRouteTimeFactor

	maxDistance = math.Ceil(maxDistance)
	maxTime = math.Ceil(maxTime)

	// NewLabelSet preallocates capacity as max(ceil(ceiling), 1) itself —
	// the "+1" guards the degenerate coincident-measurement case — while
	// still rejecting any label whose distance exceeds maxDistance exactly.
	ls := label.NewLabelSet(maxDistance)

	start := time.Now()
	results, err := expand.Expand(expand.Params{
		Reader:       f.Reader,
		Costing:      f.Costing,
		TurnTable:    f.Config.TurnTable,
		Origin:       leftState.Candidate,
		Destinations: destinations,
		LabelSet:     ls,
		SearchRadius: rightMeas.Radius,
		Inbound:      inbound,
		MaxDistance:  maxDistance,
		MaxTime:      maxTime,
	})
	f.Metrics.RecordExpansion(f.Mode, time.Since(start).Seconds())
	f.Metrics.SetLabelsHeld(ls.Len())
	if err != nil {
		return fmt.Errorf("transition: UpdateRoute(%s): %w", lhs, err)
	}

	return leftState.SetRoute(unreachedIDs, results, ls)
}

func (f *Functor) stateAt(id trace.StateID) (*trace.State, error) {
	col, ok := f.Columns.Column(id.Time)
	if !ok {
		return nil, fmt.Errorf("transition: column %d: %w", id.Time, ErrStateNotFound)
	}
	s, ok := col.StateAt(id)
	if !ok {
		return nil, fmt.Errorf("transition: state %s: %w", id, ErrStateNotFound)
	}
	return s, nil
}

func (f *Functor) measurementAt(t int) (trace.Measurement, error) {
	m, ok := f.Measurements.Measurement(t)
	if !ok {
		return trace.Measurement{}, fmt.Errorf("transition: measurement %d: %w", t, ErrStateNotFound)
	}
	return m, nil
}
