package verification

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/graph"
)

// DependencyGraph has one node per component and one edge per connection.
func DependencyGraph(arch *domain.Architecture) *graph.Digraph {
	g := graph.New()
	for _, c := range arch.Components {
		g.AddNode(c.Name)
	}
	for _, c := range arch.Connections {
		g.AddEdge(c.Source, c.Target)
	}
	return g
}

func verifyDependencies(vc *Context) domain.VerificationResult {
	arch := vc.Architecture
	r := domain.NewVerificationResult()
	g := DependencyGraph(arch)

	cycles := g.Cycles()
	for _, comp := range cycles {
		r.AddError(domain.CodeCircularDependency,
			fmt.Sprintf("circular dependency among components: %s", strings.Join(comp, " -> ")),
			"Component: "+comp[0])
	}

	avg := 0.0
	if n := len(arch.Components); n > 0 {
		avg = float64(len(arch.Connections)) / float64(n)
	}
	if avg > vc.CouplingThreshold {
		r.AddWarning(fmt.Sprintf("high coupling detected: average %.2f connections per component", avg))
	}

	touching := map[string]int{}
	for _, c := range arch.Connections {
		touching[c.Source]++
		if c.Target != c.Source {
			touching[c.Target]++
		}
	}
	for _, c := range arch.Components {
		if n := touching[c.Name]; n > vc.BottleneckThreshold {
			r.AddWarning(fmt.Sprintf("potential bottleneck: component '%s' has %d connections", c.Name, n))
		}
	}

	r.Details["component_count"] = strconv.Itoa(len(arch.Components))
	r.Details["connection_count"] = strconv.Itoa(len(arch.Connections))
	r.Details["avg_connections_per_component"] = strconv.FormatFloat(avg, 'f', 2, 64)
	r.Details["cycles"] = strconv.Itoa(len(cycles))
	return r
}
