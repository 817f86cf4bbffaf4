package verification

import (
	"context"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typecheck"
)

func verifyTypes(ctx context.Context, vc *Context) domain.VerificationResult {
	return typecheck.New(vc.Types).CheckArchitecture(ctx, vc.Architecture)
}
