package modelcheck

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/graph"
)

// CheckLivenessProperty checks eventually(p) on every path from the initial
// state. A path avoids p forever if it ends in an expanded dead end or
// enters a cycle while p is false. Unexpanded states where p is false leave
// the verdict inconclusive.
func (m *ModelChecker) CheckLivenessProperty(ctx context.Context, expr string) (ModelCheckingResult, error) {
	start := time.Now()
	if err := m.built(); err != nil {
		return ModelCheckingResult{}, err
	}
	pred, err := ParseLiveness(expr)
	if err != nil {
		return ModelCheckingResult{}, err
	}

	res := ModelCheckingResult{Property: expr, Kind: domain.PropertyLiveness}
	finish := func(v Verdict, depth, visited int) (ModelCheckingResult, error) {
		res.Verdict = v
		res.PropertyHolds = v == VerdictHolds
		res.Statistics = m.statistics(depth, visited)
		res.VerificationTime = time.Since(start)
		return res, nil
	}

	// cut records the first budget that ran out; every traversal below
	// checks it per step.
	cut := ""
	exhausted := func() bool {
		if cut != "" {
			return true
		}
		if err := ctx.Err(); err != nil {
			cut = "cancelled: " + err.Error()
		} else if time.Since(start) > m.cfg.Timeout {
			cut = "timeout"
		}
		return cut != ""
	}
	interrupted := func(depth, visited int) (ModelCheckingResult, error) {
		res.Reason = cut
		return finish(VerdictInconclusive, depth, visited)
	}

	if exhausted() {
		return interrupted(0, 0)
	}
	g := m.graph()
	avoid := func(id string) bool { return !pred.Eval(m.space.States[id]) }

	// states reachable while p has not yet held
	reach := g.Reachable(m.space.Initial, func(id string) bool {
		return !exhausted() && avoid(id)
	})
	maxDepth := 0
	bad := map[string]bool{}
	for _, id := range reach {
		if exhausted() {
			return interrupted(maxDepth, len(reach))
		}
		if d := m.space.Depth[id]; d > maxDepth {
			maxDepth = d
		}
		if avoid(id) {
			bad[id] = true
		}
	}
	sub := g.Subgraph(func(id string) bool { return bad[id] })

	for _, id := range reach {
		if exhausted() {
			return interrupted(maxDepth, len(reach))
		}
		if bad[id] && m.space.Expanded[id] && len(g.Successors(id)) == 0 {
			res.Counterexample = sub.ShortestPath(m.space.Initial, id)
			return finish(VerdictViolated, maxDepth, len(reach))
		}
	}

	if exhausted() {
		return interrupted(maxDepth, len(reach))
	}
	if cycles := sub.Cycles(); len(cycles) > 0 {
		res.Counterexample = lasso(sub, m.space.Initial, cycles[0])
		return finish(VerdictViolated, maxDepth, len(reach))
	}

	for _, id := range reach {
		if exhausted() {
			return interrupted(maxDepth, len(reach))
		}
		if bad[id] && !m.space.Expanded[id] {
			res.Reason = "state space truncated: " + m.space.TruncateReason
			return finish(VerdictInconclusive, maxDepth, len(reach))
		}
	}

	for _, id := range reach {
		if !bad[id] {
			res.Witness = g.ShortestPath(m.space.Initial, id)
			break
		}
	}
	return finish(VerdictHolds, maxDepth, len(reach))
}

// lasso is the path to the cycle entry followed by one trip around it.
func lasso(g *graph.Digraph, from string, comp []string) []string {
	in := map[string]bool{}
	for _, id := range comp {
		in[id] = true
	}
	// enter at the component node closest to from
	entry := comp[0]
	for _, id := range g.Reachable(from, nil) {
		if in[id] {
			entry = id
			break
		}
	}
	prefix := g.ShortestPath(from, entry)

	cyc := g.Subgraph(func(id string) bool { return in[id] })
	for _, next := range cyc.Successors(entry) {
		loop := cyc.ShortestPath(next, entry)
		if loop != nil {
			return append(prefix, loop...)
		}
	}
	return prefix
}

// graph views the transition system as a digraph in discovery order.
func (m *ModelChecker) graph() *graph.Digraph {
	g := graph.New()
	for _, id := range m.space.Order {
		g.AddNode(id)
	}
	for _, id := range m.space.Order {
		for _, tr := range m.trans.From(id) {
			g.AddEdge(tr.Source, tr.Target)
		}
	}
	return g
}
