package trace

import "github.com/corvidlabs/mapmatch/geo"

// Measurement is a single noisy positional observation: a coordinate, the
// epoch time it was recorded at, and a search radius in meters. The
// transition functor passes the right measurement's Radius to the
// expander as Params.SearchRadius, but Expand does not read it, so the
// radius has no effect on the search. Immutable once produced.
type Measurement struct {
	Coord  geo.Point
	Epoch  int64
	Radius float64
}
