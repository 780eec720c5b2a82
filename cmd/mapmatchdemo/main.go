// Command mapmatchdemo wires configuration, a fixture road graph, metrics,
// and the transition cost functor together and runs a tiny hardcoded
// trace through them, printing the resulting transition costs while
// serving Prometheus metrics on /metrics.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/corvidlabs/mapmatch/config"
	"github.com/corvidlabs/mapmatch/geo"
	"github.com/corvidlabs/mapmatch/internal/roadnet"
	"github.com/corvidlabs/mapmatch/metrics"
	"github.com/corvidlabs/mapmatch/trace"
	"github.com/corvidlabs/mapmatch/transition"
)

func main() {
	configPath := flag.String("config", "", "path to a mapmatch YAML config file (optional)")
	fixturePath := flag.String("fixture", "internal/roadnet/testdata/straight.json", "path to a road graph fixture")
	addr := flag.String("addr", ":9090", "address to serve /metrics on")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("mapmatchdemo: loading config: %v", err)
	}

	graph, costing, err := roadnet.LoadFixture(*fixturePath, 36)
	if err != nil {
		log.Fatalf("mapmatchdemo: loading fixture: %v", err)
	}

	registry := prometheus.NewRegistry()
	met := metrics.New(registry)

	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	go func() {
		log.Printf("mapmatchdemo: serving metrics on %s/metrics", *addr)
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Printf("mapmatchdemo: metrics server stopped: %v", err)
		}
	}()

	mem := newInMemoryTrace()
	mem.addMeasurement(0, trace.Measurement{Coord: coord(0, 0), Epoch: 0, Radius: 20}, locAt("AB", 0))
	mem.addMeasurement(1, trace.Measurement{Coord: coord(100, 0), Epoch: 10, Radius: 20}, locAt("BC", 0))
	mem.addMeasurement(2, trace.Measurement{Coord: coord(200, 0), Epoch: 20, Radius: 20}, locAt("CD", 0))

	functor := &transition.Functor{
		Config:       cfg,
		Reader:       graph,
		Costing:      costing,
		Columns:      mem,
		Measurements: mem,
		Viterbi:      mem,
		Mode:         "auto",
		Metrics:      met,
	}

	for t := 0; t < 2; t++ {
		lhs := trace.StateID{Time: t, ID: 0}
		rhs := trace.StateID{Time: t + 1, ID: 0}
		cost, err := functor.Cost(lhs, rhs)
		if err != nil {
			log.Fatalf("mapmatchdemo: cost(%s, %s): %v", lhs, rhs, err)
		}
		if cost == transition.NoTransition {
			log.Printf("transition %s -> %s: no transition (breakage)", lhs, rhs)
			continue
		}
		log.Printf("transition %s -> %s: cost=%.3f", lhs, rhs, cost)
		mem.setPredecessor(rhs, lhs)
	}
}

func loadConfig(path string) (*transition.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

// coord is a crude meters-to-degrees approximation at the equator, good
// enough to drive the demo's distance/time budgets realistically.
func coord(eastMeters, northMeters float64) geo.Point {
	const metersPerDegree = 111320.0
	return geo.Point{Lng: eastMeters / metersPerDegree, Lat: northMeters / metersPerDegree}
}

func locAt(edgeID string, pct float64) trace.PathLocation {
	return trace.PathLocation{Edges: []trace.EdgeCandidate{{EdgeID: edgeID, PercentAlong: pct}}}
}
