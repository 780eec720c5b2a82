package transition

import "github.com/corvidlabs/mapmatch/geo"

// Config holds the five numeric knobs that parameterize the transition
// cost functor, fixed at construction. All tree-shaped configuration
// sources (YAML, flags, environment) are an external concern and must
// flatten into this struct before calling NewConfig.
type Config struct {
	Beta                   float64
	BreakageDistance       float64
	MaxRouteDistanceFactor float64
	MaxRouteTimeFactor     float64
	TurnPenaltyFactor      float64

	// InvBeta is 1/Beta, precomputed once at construction since it is
	// evaluated on every transition cost call.
	InvBeta float64

	// TurnTable is the 181-entry lookup table derived from
	// TurnPenaltyFactor, precomputed once and shared read-only by every
	// expansion this Config drives.
	TurnTable geo.TurnCostTable
}

// NewConfig validates and constructs a Config. beta <= 0 and
// turnPenaltyFactor < 0 are construction-time fatal errors.
func NewConfig(beta, breakageDistance, maxRouteDistanceFactor, maxRouteTimeFactor, turnPenaltyFactor float64) (*Config, error) {
	if beta <= 0 {
		return nil, ErrInvalidBeta
	}
	if turnPenaltyFactor < 0 {
		return nil, ErrInvalidTurnPenalty
	}
	return &Config{
		Beta:                   beta,
		BreakageDistance:       breakageDistance,
		MaxRouteDistanceFactor: maxRouteDistanceFactor,
		MaxRouteTimeFactor:     maxRouteTimeFactor,
		TurnPenaltyFactor:      turnPenaltyFactor,
		InvBeta:                1 / beta,
		TurnTable:              geo.NewTurnCostTable(turnPenaltyFactor),
	}, nil
}
