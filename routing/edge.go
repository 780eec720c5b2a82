package routing

// Edge is the expander's view of a directed road-graph edge: an
// identifier, its length in meters, and the bearings (degrees, 0-360) it
// starts and ends on — the minimum a GraphReader must expose for the
// expander to accumulate distance and compute turn angles at junctions.
type Edge struct {
	ID           string
	Length       float64
	StartBearing float64
	EndBearing   float64
}
