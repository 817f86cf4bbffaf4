package verification

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

var ErrUnknownStrategy = errors.New("unknown verification strategy")

type StrategyKind string

const (
	StrategyBasic         StrategyKind = "basic"
	StrategyTypeSystem    StrategyKind = "type_system"
	StrategyModelChecking StrategyKind = "model_checking"
	StrategyDependency    StrategyKind = "dependency"
)

// Strategy is one of the fixed verification strategies.
type Strategy struct {
	Kind StrategyKind
}

var (
	Basic         = Strategy{Kind: StrategyBasic}
	TypeSystem    = Strategy{Kind: StrategyTypeSystem}
	ModelChecking = Strategy{Kind: StrategyModelChecking}
	Dependency    = Strategy{Kind: StrategyDependency}
)

var descriptions = map[StrategyKind]string{
	StrategyBasic:         "Checks names, property expressions and self-connections",
	StrategyTypeSystem:    "Checks method types and interface compatibility across connections",
	StrategyModelChecking: "Explores the activation state space and checks safety and liveness properties",
	StrategyDependency:    "Detects circular dependencies, high coupling and bottleneck components",
}

// All returns every strategy sorted by name.
func All() []Strategy {
	out := make([]Strategy, 0, len(descriptions))
	for k := range descriptions {
		out = append(out, Strategy{Kind: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func ParseStrategy(name string) (Strategy, error) {
	k := StrategyKind(name)
	if _, ok := descriptions[k]; !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return Strategy{Kind: k}, nil
}

func (s Strategy) Name() string { return string(s.Kind) }

func (s Strategy) Description() string { return descriptions[s.Kind] }

// Verify runs the strategy against vc.Architecture. The architecture must
// already be valid.
func (s Strategy) Verify(ctx context.Context, vc *Context) (domain.VerificationResult, error) {
	if vc == nil || vc.Architecture == nil {
		return domain.VerificationResult{}, fmt.Errorf("strategy %s: missing architecture", s.Name())
	}
	switch s.Kind {
	case StrategyBasic:
		return verifyBasic(vc), nil
	case StrategyTypeSystem:
		return verifyTypes(ctx, vc), nil
	case StrategyModelChecking:
		return verifyModel(ctx, vc)
	case StrategyDependency:
		return verifyDependencies(vc), nil
	default:
		return domain.VerificationResult{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, s.Kind)
	}
}
