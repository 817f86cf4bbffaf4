package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/domain"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
	warnLabel = color.New(color.FgYellow)
	dimLabel  = color.New(color.Faint)
)

func printStatus(w io.Writer, ok bool) {
	if ok {
		passLabel.Fprint(w, "PASS")
	} else {
		failLabel.Fprint(w, "FAIL")
	}
}

func printResult(w io.Writer, name string, r domain.VerificationResult) {
	printStatus(w, r.Success)
	fmt.Fprintf(w, " %s ", name)
	dimLabel.Fprintf(w, "(%s)", r.VerificationTime.Round(time.Microsecond))
	fmt.Fprintln(w)

	for _, e := range r.Errors {
		if e.Location != nil {
			fmt.Fprintf(w, "  %s: %s [%s]\n", e.Code, e.Message, *e.Location)
		} else {
			fmt.Fprintf(w, "  %s: %s\n", e.Code, e.Message)
		}
	}
	for _, msg := range r.Warnings {
		warnLabel.Fprintf(w, "  warning: %s\n", msg)
	}
}

func printOutcome(w io.Writer, po verification.PropertyOutcome) {
	switch {
	case po.Skipped:
		dimLabel.Fprintf(w, "  SKIP %s (%s)\n", po.Property, po.Kind)
		return
	case po.Result == nil:
		failLabel.Fprint(w, "  ERROR")
		fmt.Fprintf(w, " %s: %s\n", po.Property, po.Error)
		return
	}

	res := po.Result
	switch res.Verdict {
	case modelcheck.VerdictHolds:
		passLabel.Fprint(w, "  HOLDS")
	case modelcheck.VerdictViolated:
		failLabel.Fprint(w, "  VIOLATED")
	default:
		warnLabel.Fprint(w, "  INCONCLUSIVE")
	}
	fmt.Fprintf(w, " %s (%s)\n", po.Property, po.Kind)
	if len(res.Counterexample) > 0 {
		fmt.Fprintf(w, "    counterexample: %s\n", strings.Join(res.Counterexample, " -> "))
	}
	if res.Reason != "" {
		fmt.Fprintf(w, "    reason: %s\n", res.Reason)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
