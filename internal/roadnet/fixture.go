package roadnet

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/corvidlabs/mapmatch/routing"
)

// fixtureEdge mirrors one edge entry in a graph fixture file. SpeedKPH is
// an optional per-edge speed override, encoded as a JSON-omittable
// pointer so a fixture can leave most edges at the costing's default and
// only override the ones that matter to a scenario.
type fixtureEdge struct {
	ID           string   `json:"id"`
	Length       float64  `json:"length_m"`
	StartBearing float64  `json:"start_bearing"`
	EndBearing   float64  `json:"end_bearing"`
	Successors   []string `json:"successors"`
	SpeedKPH     *float64 `json:"speed_kph,omitempty"`
	Closed       bool     `json:"closed,omitempty"`
}

type fixtureFile struct {
	Edges []fixtureEdge `json:"edges"`
}

// LoadFixture decodes a JSON graph fixture from path and returns a ready
// Graph plus an AutoCosting seeded with any per-edge overrides the
// fixture declared.
func LoadFixture(path string, defaultSpeedKPH float64) (*Graph, *AutoCosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("roadnet: reading fixture %s: %w", path, err)
	}

	var file fixtureFile
	if err := gojson.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("roadnet: decoding fixture %s: %w", path, err)
	}

	g := NewGraph(WithCapacityHint(len(file.Edges)))
	costing := &AutoCosting{
		DefaultSpeedKPH: defaultSpeedKPH,
		Overrides:       make(map[string]EdgeAttributes, len(file.Edges)),
	}

	for _, fe := range file.Edges {
		g.AddEdge(routing.Edge{
			ID:           fe.ID,
			Length:       fe.Length,
			StartBearing: fe.StartBearing,
			EndBearing:   fe.EndBearing,
		})
		if fe.SpeedKPH != nil || fe.Closed {
			costing.Overrides[fe.ID] = EdgeAttributes{SpeedKPH: fe.SpeedKPH, Closed: fe.Closed}
		}
	}
	for _, fe := range file.Edges {
		for _, succ := range fe.Successors {
			if err := g.AddSuccessor(fe.ID, succ); err != nil {
				return nil, nil, fmt.Errorf("roadnet: fixture %s: edge %s -> %s: %w", path, fe.ID, succ, err)
			}
		}
	}

	return g, costing, nil
}
