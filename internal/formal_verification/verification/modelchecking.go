package verification

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
)

// PropertyOutcome is the per-property view of a model checking run.
// Result is nil when the property was skipped or could not be parsed.
type PropertyOutcome struct {
	Property string                          `json:"property" yaml:"property"`
	Kind     domain.PropertyKind             `json:"kind" yaml:"kind"`
	Result   *modelcheck.ModelCheckingResult `json:"result,omitempty" yaml:"result,omitempty"`
	Skipped  bool                            `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error    string                          `json:"error,omitempty" yaml:"error,omitempty"`
}

type ModelReport struct {
	Result     domain.VerificationResult `json:"result" yaml:"result"`
	Properties []PropertyOutcome         `json:"properties" yaml:"properties"`

	Space       *modelcheck.StateSpace       `json:"-" yaml:"-"`
	Transitions *modelcheck.TransitionSystem `json:"-" yaml:"-"`
}

// CheckProperties builds the state space once and checks every safety,
// invariant and liveness property in declaration order. Other property
// kinds are counted as skipped.
func CheckProperties(ctx context.Context, cfg modelcheck.Config, arch *domain.Architecture) (*ModelReport, error) {
	mc := modelcheck.New(cfg)
	if err := mc.BuildStateSpace(ctx, arch); err != nil {
		return nil, fmt.Errorf("build state space: %w", err)
	}

	r := domain.NewVerificationResult()
	outcomes := make([]PropertyOutcome, 0, len(arch.Properties))
	checked, violated, inconclusive, skipped := 0, 0, 0, 0
	maxDepth := 0
	interrupted := mc.StateSpace().Interrupted()

	for _, p := range arch.Properties {
		po := PropertyOutcome{Property: p.Name, Kind: p.Kind}
		var (
			res modelcheck.ModelCheckingResult
			err error
		)
		switch p.Kind {
		case domain.PropertySafety, domain.PropertyInvariant:
			res, err = mc.CheckSafetyProperty(ctx, p.Expression)
		case domain.PropertyLiveness:
			res, err = mc.CheckLivenessProperty(ctx, p.Expression)
		default:
			skipped++
			po.Skipped = true
			outcomes = append(outcomes, po)
			continue
		}
		loc := "Property: " + p.Name
		if errors.Is(err, modelcheck.ErrInvalidProperty) {
			r.AddError(domain.CodeInvalidProperty, fmt.Sprintf("property '%s': %v", p.Name, err), loc)
			po.Error = err.Error()
			outcomes = append(outcomes, po)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("check property %s: %w", p.Name, err)
		}

		checked++
		po.Result = &res
		outcomes = append(outcomes, po)
		if res.Statistics.MaxDepth > maxDepth {
			maxDepth = res.Statistics.MaxDepth
		}
		converted := res.ToVerificationResult()
		switch res.Verdict {
		case modelcheck.VerdictViolated:
			violated++
			for _, e := range converted.Errors {
				e.Message = fmt.Sprintf("%s (property '%s', counterexample: %v)", e.Message, p.Name, res.Counterexample)
				r.Errors = append(r.Errors, e)
			}
			r.Success = false
		case modelcheck.VerdictInconclusive:
			inconclusive++
			interrupted = interrupted || res.Interrupted()
			r.Warnings = append(r.Warnings, converted.Warnings...)
			r.Success = false
		}
	}

	if checked == 0 && len(r.Errors) == 0 {
		r.AddWarning("no safety, invariant or liveness properties to check")
	}

	space := mc.StateSpace()
	r.Details["total_states"] = strconv.Itoa(space.Len())
	r.Details["total_transitions"] = strconv.Itoa(mc.Transitions().Count())
	r.Details["max_depth"] = strconv.Itoa(maxDepth)
	r.Details["memory_usage"] = strconv.Itoa(mc.MemoryUsage())
	r.Details["truncated"] = strconv.FormatBool(space.Truncated)
	r.Details["truncate_reason"] = space.TruncateReason
	r.Details["interrupted"] = strconv.FormatBool(interrupted)
	r.Details["state_identity"] = string(mc.Config().Identity)
	r.Details["properties_checked"] = strconv.Itoa(checked)
	r.Details["properties_violated"] = strconv.Itoa(violated)
	r.Details["properties_inconclusive"] = strconv.Itoa(inconclusive)
	r.Details["properties_skipped"] = strconv.Itoa(skipped)

	return &ModelReport{
		Result:      r,
		Properties:  outcomes,
		Space:       space,
		Transitions: mc.Transitions(),
	}, nil
}

func verifyModel(ctx context.Context, vc *Context) (domain.VerificationResult, error) {
	mr, err := CheckProperties(ctx, vc.ModelCheck, vc.Architecture)
	if err != nil {
		return domain.VerificationResult{}, err
	}
	return mr.Result, nil
}
