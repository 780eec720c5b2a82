package geo

import "math"

/*
TurnCostTable — angular turn penalty lookup

Description:
  A fixed-size array indexed by integer turn angle in degrees, [0,180].
  Value at index i is turn_penalty_factor * exp(-i/45): index 0 (straight
  continuation) carries the full factor, decaying exponentially as the
  folded angle grows toward 180 (a full reversal).

Construction:
  NewTurnCostTable(0) returns an all-zero table — turn penalties are
  disabled entirely, matching a zero turn_penalty_factor configuration.

Complexity: O(1) construction (181 entries), O(1) lookup.
*/
type TurnCostTable [181]float64

// NewTurnCostTable builds the 181-entry lookup table for the given
// turn_penalty_factor. factor must be >= 0; callers validate this at
// configuration time (see transition.NewConfig).
func NewTurnCostTable(factor float64) TurnCostTable {
	var table TurnCostTable
	if factor == 0 {
		return table
	}
	for i := range table {
		table[i] = factor * math.Exp(-float64(i)/45)
	}
	return table
}

// Lookup returns the table value for angle degrees, folding angle into
// [0,180] first (see FoldAngle) and rounding to the nearest integer index.
func (t TurnCostTable) Lookup(angleDegrees float64) float64 {
	folded := FoldAngle(angleDegrees)
	idx := int(math.Round(folded))
	if idx < 0 {
		idx = 0
	} else if idx > 180 {
		idx = 180
	}
	return t[idx]
}

// FoldAngle folds an arbitrary angular difference into [0,180]: negative
// angles are reflected positive, and angles beyond 180 are reflected back
// below it, so 180.4 folds to 179.6 and -0.3 folds to 0.3.
func FoldAngle(angleDegrees float64) float64 {
	a := math.Mod(angleDegrees, 360)
	if a < 0 {
		a += 360
	}
	if a > 180 {
		a = 360 - a
	}
	return a
}

// TurnAngle returns the unsigned angular difference between the bearing a
// road edge ends on and the bearing the next edge starts on, folded into
// [0,180] via FoldAngle.
func TurnAngle(prevEdgeEndBearing, nextEdgeStartBearing float64) float64 {
	return FoldAngle(nextEdgeStartBearing - prevEdgeEndBearing)
}
