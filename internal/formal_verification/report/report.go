package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
)

type Summary struct {
	TotalStrategies int           `json:"total_strategies" yaml:"total_strategies"`
	Successful      int           `json:"successful" yaml:"successful"`
	Failed          int           `json:"failed" yaml:"failed"`
	TotalErrors     int           `json:"total_errors" yaml:"total_errors"`
	TotalWarnings   int           `json:"total_warnings" yaml:"total_warnings"`
	AverageTime     time.Duration `json:"average_time_ns" yaml:"average_time_ns"`
}

type Report struct {
	ID           string               `json:"id,omitempty" yaml:"id,omitempty"`
	Architecture string               `json:"architecture" yaml:"architecture"`
	Fingerprint  string               `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Results      []domain.NamedResult `json:"results" yaml:"results"`
	Summary      Summary              `json:"summary" yaml:"summary"`
	CreatedAt    time.Time            `json:"created_at" yaml:"created_at"`
}

func New(architecture string, results []domain.NamedResult) *Report {
	if results == nil {
		results = []domain.NamedResult{}
	}
	return &Report{
		Architecture: architecture,
		Results:      results,
		Summary:      summarize(results),
		CreatedAt:    time.Now().UTC(),
	}
}

func summarize(results []domain.NamedResult) Summary {
	s := Summary{TotalStrategies: len(results)}
	var total time.Duration
	for _, nr := range results {
		if nr.Result.Success {
			s.Successful++
		} else {
			s.Failed++
		}
		s.TotalErrors += len(nr.Result.Errors)
		s.TotalWarnings += len(nr.Result.Warnings)
		total += nr.Result.VerificationTime
	}
	if len(results) > 0 {
		s.AverageTime = total / time.Duration(len(results))
	}
	return s
}

// Passed is true when every result succeeded.
func (r *Report) Passed() bool { return r.Summary.Failed == 0 }

func (r *Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Verification Report: %s\n\n", r.Architecture)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Strategies**: %d\n", r.Summary.TotalStrategies)
	fmt.Fprintf(&b, "- **Successful Verifications**: %d\n", r.Summary.Successful)
	fmt.Fprintf(&b, "- **Failed Verifications**: %d\n", r.Summary.Failed)
	fmt.Fprintf(&b, "- **Total Errors**: %d\n", r.Summary.TotalErrors)
	fmt.Fprintf(&b, "- **Total Warnings**: %d\n", r.Summary.TotalWarnings)
	fmt.Fprintf(&b, "- **Average Verification Time**: %s\n\n", r.Summary.AverageTime)

	b.WriteString("## Results\n\n")
	for _, nr := range r.Results {
		fmt.Fprintf(&b, "### %s\n\n", nr.Name)
		status := "PASSED"
		if !nr.Result.Success {
			status = "FAILED"
		}
		fmt.Fprintf(&b, "**Status**: %s\n\n", status)

		if len(nr.Result.Errors) > 0 {
			b.WriteString("**Errors**:\n")
			for _, e := range nr.Result.Errors {
				if e.Location != nil {
					fmt.Fprintf(&b, "- %s: %s (%s)\n", e.Code, e.Message, *e.Location)
				} else {
					fmt.Fprintf(&b, "- %s: %s\n", e.Code, e.Message)
				}
			}
			b.WriteString("\n")
		}

		if len(nr.Result.Warnings) > 0 {
			b.WriteString("**Warnings**:\n")
			for _, w := range nr.Result.Warnings {
				fmt.Fprintf(&b, "- %s\n", w)
			}
			b.WriteString("\n")
		}

		if len(nr.Result.Details) > 0 {
			b.WriteString("**Details**:\n")
			keys := make([]string, 0, len(nr.Result.Details))
			for k := range nr.Result.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, "- %s: %s\n", k, nr.Result.Details[k])
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
