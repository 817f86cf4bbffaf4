package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	passTypeCheck  = "typecheck"
	passModelCheck = "modelcheck"
	passVerify     = "verify"
)

var (
	passTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archverify_pass_total",
		Help: "Verification passes by pass and outcome",
	}, []string{"pass", "outcome"})

	passDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "archverify_pass_duration_seconds",
		Help:    "Verification pass duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16), // 0.5ms to ~16s
	}, []string{"pass"})

	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archverify_cache_requests_total",
		Help: "Result cache lookups by pass and result",
	}, []string{"pass", "result"})

	statesExplored = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "archverify_states_explored",
		Help:    "States explored per model checking run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)

func outcome(success bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case success:
		return "passed"
	default:
		return "failed"
	}
}

func recordPass(pass string, start time.Time, success bool, err error) {
	passTotal.WithLabelValues(pass, outcome(success, err)).Inc()
	passDuration.WithLabelValues(pass).Observe(time.Since(start).Seconds())
}
