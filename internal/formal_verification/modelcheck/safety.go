package modelcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/graph"
)

// CheckSafetyProperty checks that expr holds in every state reachable from
// the initial state.
func (m *ModelChecker) CheckSafetyProperty(ctx context.Context, expr string) (ModelCheckingResult, error) {
	if err := m.built(); err != nil {
		return ModelCheckingResult{}, err
	}
	return m.CheckSafetyPropertyFrom(ctx, expr, m.space.Initial)
}

// CheckSafetyPropertyFrom runs the same search starting at state id. The
// counterexample is the shortest path from id to the first violating state.
func (m *ModelChecker) CheckSafetyPropertyFrom(ctx context.Context, expr, id string) (ModelCheckingResult, error) {
	start := time.Now()
	if err := m.built(); err != nil {
		return ModelCheckingResult{}, err
	}
	pred, err := ParseProperty(expr)
	if err != nil {
		return ModelCheckingResult{}, err
	}
	if _, ok := m.space.States[id]; !ok {
		return ModelCheckingResult{}, fmt.Errorf("%w: %s", ErrUnknownState, id)
	}

	res := ModelCheckingResult{Property: expr, Kind: domain.PropertySafety}

	type item struct {
		id    string
		depth int
	}
	parent := map[string]string{}
	seen := map[string]bool{id: true}
	queue := []item{{id: id}}
	maxDepth, visited := 0, 0
	violation, reason := "", ""

	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			reason = "cancelled: " + err.Error()
			break
		}
		if time.Since(start) > m.cfg.Timeout {
			reason = "timeout"
			break
		}

		cur := queue[head]
		visited++
		if cur.depth > maxDepth {
			maxDepth = cur.depth
		}
		if !pred.Eval(m.space.States[cur.id]) {
			violation = cur.id
			break
		}
		if !m.space.Expanded[cur.id] && reason == "" {
			reason = "state space truncated: " + m.space.TruncateReason
		}
		out := m.trans.From(cur.id)
		if cur.depth >= m.cfg.MaxDepth {
			if len(out) > 0 && reason == "" {
				reason = fmt.Sprintf("max_depth %d reached", m.cfg.MaxDepth)
			}
			continue
		}
		for _, tr := range out {
			if seen[tr.Target] {
				continue
			}
			seen[tr.Target] = true
			parent[tr.Target] = cur.id
			queue = append(queue, item{id: tr.Target, depth: cur.depth + 1})
		}
	}

	switch {
	case violation != "":
		res.Verdict = VerdictViolated
		res.Counterexample = graph.PathTo(parent, id, violation)
	case reason != "":
		res.Verdict = VerdictInconclusive
		res.Reason = reason
	default:
		res.Verdict = VerdictHolds
	}
	res.PropertyHolds = res.Verdict == VerdictHolds
	res.Statistics = m.statistics(maxDepth, visited)
	res.VerificationTime = time.Since(start)
	return res, nil
}
