package roadnet

import (
	"math"

	"github.com/corvidlabs/mapmatch/routing"
)

// EdgeAttributes carries per-edge overrides a costing model may apply on
// top of its mode-wide defaults. SpeedKPH is optional — a nil override
// falls back to the costing's default speed — matching the optional
// override-field convention used for routing request parameters.
type EdgeAttributes struct {
	SpeedKPH *float64
	Closed   bool
}

// AutoCosting is a simple automobile cost model: cost is travel time in
// seconds (so it is directly comparable to a transition's elapsed clock
// time), at a per-edge speed that defaults to DefaultSpeedKPH unless an
// EdgeAttributes override says otherwise. TurnCost adds one flat penalty
// for any turn at or beyond HardTurnDegrees, on top of the shared
// TurnCostTable the expander already applies.
type AutoCosting struct {
	DefaultSpeedKPH float64
	Overrides       map[string]EdgeAttributes
	HardTurnDegrees float64
	HardTurnPenalty float64
}

// Allowed implements routing.Costing.
func (c AutoCosting) Allowed(e routing.Edge) bool {
	if attrs, ok := c.Overrides[e.ID]; ok {
		return !attrs.Closed
	}
	return true
}

// EdgeCost implements routing.Costing: cost and secs are both the edge's
// travel time in seconds, at the edge's effective speed.
func (c AutoCosting) EdgeCost(e routing.Edge) (cost, secs float64) {
	speed := c.DefaultSpeedKPH
	if attrs, ok := c.Overrides[e.ID]; ok && attrs.SpeedKPH != nil {
		speed = *attrs.SpeedKPH
	}
	if speed <= 0 {
		speed = c.DefaultSpeedKPH
	}
	metersPerSecond := speed * 1000 / 3600
	if metersPerSecond <= 0 {
		return 0, 0
	}
	secs = e.Length / metersPerSecond
	return secs, secs
}

// TurnCost implements routing.Costing: an additional flat penalty for
// turns of HardTurnDegrees or more, layered on top of the expander's
// own TurnCostTable lookup.
func (c AutoCosting) TurnCost(prev, next routing.Edge, angleDegrees float64) float64 {
	if c.HardTurnDegrees <= 0 {
		return 0
	}
	if math.Abs(angleDegrees) >= c.HardTurnDegrees {
		return c.HardTurnPenalty
	}
	return 0
}
