package verification

import (
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typesystem"
)

const (
	DefaultCouplingThreshold   = 5.0
	DefaultBottleneckThreshold = 10
)

// Context carries everything a strategy needs. Callers build one per run;
// there is no shared registry.
type Context struct {
	Architecture *domain.Architecture
	Types        *typesystem.TypeSystem
	ModelCheck   modelcheck.Config
	Strategy     Strategy
	Data         map[string]string

	// average connections per component above which coupling is reported
	CouplingThreshold float64
	// connections touching one component above which it is a bottleneck
	BottleneckThreshold int
}

func NewContext(arch *domain.Architecture, s Strategy) *Context {
	return &Context{
		Architecture:        arch,
		Types:               typesystem.New(),
		ModelCheck:          modelcheck.DefaultConfig(),
		Strategy:            s,
		Data:                map[string]string{},
		CouplingThreshold:   DefaultCouplingThreshold,
		BottleneckThreshold: DefaultBottleneckThreshold,
	}
}
