package verification

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

// Verifier builds a fresh Context for every run from its settings.
type Verifier struct {
	Types               *typesystem.TypeSystem
	ModelCheck          modelcheck.Config
	CouplingThreshold   float64
	BottleneckThreshold int
}

func NewVerifier() *Verifier {
	return &Verifier{
		Types:               typesystem.New(),
		ModelCheck:          modelcheck.DefaultConfig(),
		CouplingThreshold:   DefaultCouplingThreshold,
		BottleneckThreshold: DefaultBottleneckThreshold,
	}
}

func (v *Verifier) context(arch *domain.Architecture, s Strategy) *Context {
	vc := NewContext(arch, s)
	if v.Types != nil {
		vc.Types = v.Types
	}
	vc.ModelCheck = v.ModelCheck
	vc.CouplingThreshold = v.CouplingThreshold
	vc.BottleneckThreshold = v.BottleneckThreshold
	return vc
}

// Verify validates arch, then runs one strategy and stamps the elapsed time.
func (v *Verifier) Verify(ctx context.Context, arch *domain.Architecture, s Strategy) (domain.VerificationResult, error) {
	if err := arch.Validate(); err != nil {
		return domain.VerificationResult{}, fmt.Errorf("invalid architecture: %w", err)
	}
	return v.run(ctx, arch, s)
}

func (v *Verifier) run(ctx context.Context, arch *domain.Architecture, s Strategy) (domain.VerificationResult, error) {
	start := time.Now()
	r, err := s.Verify(ctx, v.context(arch, s))
	if err != nil {
		return domain.VerificationResult{}, fmt.Errorf("strategy %s: %w", s.Name(), err)
	}
	r.VerificationTime = time.Since(start)
	return r, nil
}

// VerifyAll runs the strategies concurrently and returns results in the
// order given. A failing strategy yields a VERIFICATION_FAILED result
// rather than stopping the others.
func (v *Verifier) VerifyAll(ctx context.Context, arch *domain.Architecture, strategies []Strategy) ([]domain.NamedResult, error) {
	if err := arch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid architecture: %w", err)
	}
	if len(strategies) == 0 {
		strategies = All()
	}

	out := make([]domain.NamedResult, len(strategies))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range strategies {
		g.Go(func() error {
			r, err := v.run(ctx, arch, s)
			if err != nil {
				r = domain.NewVerificationResult()
				r.AddError(domain.CodeVerificationFailed, err.Error(), "")
			}
			out[i] = domain.NamedResult{Name: s.Name(), Result: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
