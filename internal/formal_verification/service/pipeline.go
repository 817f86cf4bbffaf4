package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/repository"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/typecheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/utils"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

var ErrNoReportStore = errors.New("report store not configured")

type ResultCache interface {
	Get(ctx context.Context, fingerprint, pass string, v any) (bool, error)
	Set(ctx context.Context, fingerprint, pass string, v any) error
}

type ReportStore interface {
	Save(ctx context.Context, rep *report.Report) error
	Get(ctx context.Context, id string) (*report.Report, error)
}

// ReportLister is the optional listing side of a ReportStore.
type ReportLister interface {
	ListByArchitecture(ctx context.Context, architecture string, limit int) ([]repository.ReportHeader, error)
}

type Options struct {
	ModelCheck          modelcheck.Config
	CouplingThreshold   float64
	BottleneckThreshold int
	// PassTimeout bounds one shared run of a pass. It defaults to four
	// times the model checking timeout.
	PassTimeout time.Duration

	// Cache and Store are optional.
	Cache ResultCache
	Store ReportStore
}

// Pipeline runs the verification passes over loaded inputs. Identical
// concurrent requests share one run, and results are cached by the
// fingerprint of the input and the pipeline settings.
type Pipeline struct {
	opts  Options
	group singleflight.Group
}

func NewPipeline(opts Options) *Pipeline {
	if opts.ModelCheck == (modelcheck.Config{}) {
		opts.ModelCheck = modelcheck.DefaultConfig()
	}
	if opts.CouplingThreshold <= 0 {
		opts.CouplingThreshold = verification.DefaultCouplingThreshold
	}
	if opts.BottleneckThreshold <= 0 {
		opts.BottleneckThreshold = verification.DefaultBottleneckThreshold
	}
	if opts.PassTimeout <= 0 {
		opts.PassTimeout = 4 * opts.ModelCheck.Timeout
	}
	return &Pipeline{opts: opts}
}

func (p *Pipeline) Options() Options { return p.opts }

func (p *Pipeline) fingerprint(in *Input) (string, error) {
	if in == nil || in.Architecture == nil {
		return "", fmt.Errorf("%w: architecture is nil", ErrInvalidInput)
	}
	if err := in.Architecture.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return utils.Fingerprint(struct {
		Architecture *domain.Architecture
		Types        []string
		ModelCheck   modelcheck.Config
		Coupling     float64
		Bottleneck   int
	}{in.Architecture, in.typeKeys(), p.opts.ModelCheck, p.opts.CouplingThreshold, p.opts.BottleneckThreshold})
}

// cached serves key from the cache or runs fn once for all concurrent
// callers. The shared run is detached from the callers' contexts and bounded
// by PassTimeout, so a caller that goes away only stops waiting. Results cut
// short by the clock or a cancellation are returned but never cached; complete
// may be nil. Cache failures are logged and never fail the pass.
func cached[T any](ctx context.Context, p *Pipeline, pass, key, fp string, fn func(context.Context) (T, error), complete func(T) bool) (T, error) {
	log := NewLogger(ctx)
	var out T
	if p.opts.Cache != nil {
		hit, err := p.opts.Cache.Get(ctx, fp, key, &out)
		switch {
		case err != nil:
			log.LogWarnf(pass, "cache read failed: %v", err)
		case hit:
			cacheRequests.WithLabelValues(pass, "hit").Inc()
			return out, nil
		default:
			cacheRequests.WithLabelValues(pass, "miss").Inc()
		}
	}

	ch := p.group.DoChan(key+":"+fp, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.opts.PassTimeout)
		defer cancel()
		v, err := fn(runCtx)
		if err != nil || p.opts.Cache == nil {
			return v, err
		}
		if runCtx.Err() != nil || (complete != nil && !complete(v)) {
			log.LogInfof(pass, "result cut short, not cached fingerprint=%s", fp[:12])
			return v, nil
		}
		if err := p.opts.Cache.Set(runCtx, fp, key, v); err != nil {
			log.LogWarnf(pass, "cache write failed: %v", err)
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return out, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return out, res.Err
		}
		if res.Shared {
			log.LogInfof(pass, "joined in-flight run fingerprint=%s", fp[:12])
		}
		return res.Val.(T), nil
	}
}

// uninterrupted is false when a model checking run hit its wall clock
// budget or was cancelled.
func uninterrupted(r domain.VerificationResult) bool {
	return r.Details["interrupted"] != "true"
}

// TypeCheck runs the type checker with the input's type catalog.
func (p *Pipeline) TypeCheck(ctx context.Context, in *Input) (r domain.VerificationResult, err error) {
	ctx, span := startPassSpan(ctx, passTypeCheck, archOf(in))
	start := time.Now()
	defer func() {
		recordPass(passTypeCheck, start, r.Success, err)
		endPassSpan(span, r.Success, err)
	}()

	fp, err := p.fingerprint(in)
	if err != nil {
		return domain.VerificationResult{}, err
	}
	r, err = cached(ctx, p, passTypeCheck, passTypeCheck, fp, func(ctx context.Context) (domain.VerificationResult, error) {
		return typecheck.New(in.Types).CheckArchitecture(ctx, in.Architecture), nil
	}, nil)
	if err == nil {
		NewLogger(ctx).LogInfof(passTypeCheck, "architecture=%s success=%t errors=%d warnings=%d",
			in.Architecture.Name, r.Success, len(r.Errors), len(r.Warnings))
	}
	return r, err
}

// ModelCheck explores the state space once and checks every checkable
// property of the architecture against it.
func (p *Pipeline) ModelCheck(ctx context.Context, in *Input) (mr *verification.ModelReport, err error) {
	ctx, span := startPassSpan(ctx, passModelCheck, archOf(in))
	start := time.Now()
	defer func() {
		ok := err == nil && mr != nil && mr.Result.Success
		recordPass(passModelCheck, start, ok, err)
		endPassSpan(span, ok, err)
	}()

	fp, err := p.fingerprint(in)
	if err != nil {
		return nil, err
	}
	mr, err = cached(ctx, p, passModelCheck, passModelCheck, fp, func(ctx context.Context) (*verification.ModelReport, error) {
		out, err := verification.CheckProperties(ctx, p.opts.ModelCheck, in.Architecture)
		if err != nil {
			return nil, err
		}
		statesExplored.Observe(float64(out.Space.Len()))
		return out, nil
	}, func(mr *verification.ModelReport) bool {
		return uninterrupted(mr.Result)
	})
	if err != nil {
		NewLogger(ctx).LogError(passModelCheck, err)
		return nil, err
	}
	NewLogger(ctx).LogInfof(passModelCheck, "architecture=%s success=%t states=%s truncated=%s",
		in.Architecture.Name, mr.Result.Success, mr.Result.Details["total_states"], mr.Result.Details["truncated"])
	return mr, nil
}

func (p *Pipeline) verifier(in *Input) *verification.Verifier {
	v := verification.NewVerifier()
	v.Types = in.Types
	v.ModelCheck = p.opts.ModelCheck
	v.CouplingThreshold = p.opts.CouplingThreshold
	v.BottleneckThreshold = p.opts.BottleneckThreshold
	return v
}

// Verify runs the strategies (all of them when none are given), builds a
// report and stores it when a store is configured.
func (p *Pipeline) Verify(ctx context.Context, in *Input, strategies []verification.Strategy) (rep *report.Report, err error) {
	ctx, span := startPassSpan(ctx, passVerify, archOf(in))
	start := time.Now()
	defer func() {
		ok := err == nil && rep != nil && rep.Passed()
		recordPass(passVerify, start, ok, err)
		endPassSpan(span, ok, err)
	}()

	fp, err := p.fingerprint(in)
	if err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		strategies = verification.All()
	}
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name()
	}
	key := passVerify + ":" + strings.Join(names, ",")

	results, err := cached(ctx, p, passVerify, key, fp, func(ctx context.Context) ([]domain.NamedResult, error) {
		return p.verifier(in).VerifyAll(ctx, in.Architecture, strategies)
	}, func(results []domain.NamedResult) bool {
		for _, nr := range results {
			if !uninterrupted(nr.Result) {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	rep = report.New(in.Architecture.Name, results)
	rep.Fingerprint = fp
	log := NewLogger(ctx)
	if p.opts.Store != nil {
		if err := p.opts.Store.Save(ctx, rep); err != nil {
			log.LogWarnf(passVerify, "report not stored: %v", err)
		}
	}
	log.LogInfof(passVerify, "architecture=%s strategies=%s passed=%t report=%s",
		in.Architecture.Name, strings.Join(names, ","), rep.Passed(), rep.ID)
	return rep, nil
}

func (p *Pipeline) Report(ctx context.Context, id string) (*report.Report, error) {
	if p.opts.Store == nil {
		return nil, ErrNoReportStore
	}
	return p.opts.Store.Get(ctx, id)
}

// Reports lists stored reports of one architecture, newest first.
func (p *Pipeline) Reports(ctx context.Context, architecture string, limit int) ([]repository.ReportHeader, error) {
	lister, ok := p.opts.Store.(ReportLister)
	if !ok {
		return nil, ErrNoReportStore
	}
	return lister.ListByArchitecture(ctx, architecture, limit)
}

func archOf(in *Input) *domain.Architecture {
	if in == nil {
		return nil
	}
	return in.Architecture
}
