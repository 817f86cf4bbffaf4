package modelcheck

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

type Verdict string

const (
	VerdictHolds        Verdict = "holds"
	VerdictViolated     Verdict = "violated"
	VerdictInconclusive Verdict = "inconclusive"
)

type Statistics struct {
	TotalStates      int `json:"total_states" yaml:"total_states"`
	TotalTransitions int `json:"total_transitions" yaml:"total_transitions"`
	// MaxDepth is the deepest BFS level the search reached.
	MaxDepth      int `json:"max_depth" yaml:"max_depth"`
	VisitedStates int `json:"visited_states" yaml:"visited_states"`
	// MemoryUsage is an estimate in bytes of the explored space.
	MemoryUsage int `json:"memory_usage" yaml:"memory_usage"`
}

type ModelCheckingResult struct {
	Property      string              `json:"property" yaml:"property"`
	Kind          domain.PropertyKind `json:"kind" yaml:"kind"`
	PropertyHolds bool                `json:"property_holds" yaml:"property_holds"`
	Verdict       Verdict             `json:"verdict" yaml:"verdict"`
	// Reason explains an inconclusive verdict.
	Reason           string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	Counterexample   []string      `json:"counterexample,omitempty" yaml:"counterexample,omitempty"`
	Witness          []string      `json:"witness,omitempty" yaml:"witness,omitempty"`
	Statistics       Statistics    `json:"statistics" yaml:"statistics"`
	VerificationTime time.Duration `json:"verification_time_ns" yaml:"verification_time_ns"`
}

// ViolatingState is the last state of the counterexample, or "".
func (r ModelCheckingResult) ViolatingState() string {
	if len(r.Counterexample) == 0 {
		return ""
	}
	return r.Counterexample[len(r.Counterexample)-1]
}

// Interrupted reports an inconclusive verdict caused by the wall clock or a
// cancelled context rather than by the state or depth bounds.
func (r ModelCheckingResult) Interrupted() bool {
	return r.Verdict == VerdictInconclusive && interruptedReason(r.Reason)
}

func interruptedReason(reason string) bool {
	return strings.HasSuffix(reason, "timeout") || strings.Contains(reason, "cancelled")
}

// ToVerificationResult maps a violation to exactly one error and an
// inconclusive verdict to a warning with Success=false.
func (r ModelCheckingResult) ToVerificationResult() domain.VerificationResult {
	out := domain.NewVerificationResult()

	switch r.Verdict {
	case VerdictViolated:
		code, what := domain.CodeSafetyViolated, "safety"
		if r.Kind == domain.PropertyLiveness {
			code, what = domain.CodeLivenessViolated, "liveness"
		}
		out.AddError(code,
			fmt.Sprintf("%s property '%s' violated in state '%s'", what, r.Property, r.ViolatingState()),
			r.ViolatingState())
	case VerdictInconclusive:
		out.Success = false
		out.AddWarning(fmt.Sprintf("property '%s' is inconclusive within budget: %s", r.Property, r.Reason))
	}

	out.Details["total_states"] = strconv.Itoa(r.Statistics.TotalStates)
	out.Details["total_transitions"] = strconv.Itoa(r.Statistics.TotalTransitions)
	out.Details["max_depth"] = strconv.Itoa(r.Statistics.MaxDepth)
	out.Details["memory_usage"] = strconv.Itoa(r.Statistics.MemoryUsage)
	out.Details["verification_time_ms"] = strconv.FormatInt(r.VerificationTime.Milliseconds(), 10)
	out.Details["verdict"] = string(r.Verdict)
	out.VerificationTime = r.VerificationTime
	return out
}

// Rough per-entry sizes used by the memory estimate.
const (
	stateOverhead      = 96
	mapEntryOverhead   = 16
	transitionOverhead = 64
)

// MemoryUsage estimates the bytes held by the explored space.
func (m *ModelChecker) MemoryUsage() int {
	if m.space == nil {
		return 0
	}
	total := 0
	for _, id := range m.space.Order {
		s := m.space.States[id]
		total += stateOverhead + len(s.ID)
		for name := range s.Components {
			total += mapEntryOverhead + len(name) + len(ComponentInactive)
		}
		for name, cs := range s.Connections {
			total += mapEntryOverhead + len(name) + len(ConnectionDisconnected)
			for _, tok := range cs.Queue {
				total += len(tok)
			}
		}
		for _, tr := range m.trans.From(id) {
			total += transitionOverhead + len(tr.Source) + len(tr.Target) + len(tr.Label)
		}
	}
	return total
}

func (m *ModelChecker) statistics(depth, visited int) Statistics {
	return Statistics{
		TotalStates:      m.space.Len(),
		TotalTransitions: m.trans.Count(),
		MaxDepth:         depth,
		VisitedStates:    visited,
		MemoryUsage:      m.MemoryUsage(),
	}
}
