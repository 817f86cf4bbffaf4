package bootstrap

import (
	"github.com/GoSim-25-26J-441/go-sim-archverify/config"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
)

// ModelCheckConfig converts the env-driven settings into checker bounds.
func ModelCheckConfig(c config.ModelCheckConfig) modelcheck.Config {
	return modelcheck.Config{
		MaxStates: c.MaxStates,
		MaxDepth:  c.MaxDepth,
		Timeout:   c.Timeout,
		Parallel:  c.Parallel,
		Workers:   c.Workers,
		Identity:  modelcheck.StateIdentity(c.Identity),
	}
}

// PipelineOptions builds the pipeline options; cache and store may be nil.
func PipelineOptions(cfg *config.Config, cache service.ResultCache, store service.ReportStore) service.Options {
	return service.Options{
		ModelCheck:          ModelCheckConfig(cfg.ModelCheck),
		CouplingThreshold:   cfg.Verification.CouplingThreshold,
		BottleneckThreshold: cfg.Verification.BottleneckThreshold,
		Cache:               cache,
		Store:               store,
	}
}
