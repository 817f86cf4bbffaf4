package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/modelcheck"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
)

// errVerificationFailed signals a completed run with findings. The report
// has already been printed, so only the exit code changes.
var errVerificationFailed = errors.New("verification failed")

type rootOptions struct {
	maxStates int
	maxDepth  int
	timeout   time.Duration
	parallel  bool
	workers   int
	identity  string
	noColor   bool
}

func (o *rootOptions) modelCheck() modelcheck.Config {
	return modelcheck.Config{
		MaxStates: o.maxStates,
		MaxDepth:  o.maxDepth,
		Timeout:   o.timeout,
		Parallel:  o.parallel,
		Workers:   o.workers,
		Identity:  modelcheck.StateIdentity(o.identity),
	}
}

func (o *rootOptions) pipeline() *service.Pipeline {
	return service.NewPipeline(service.Options{ModelCheck: o.modelCheck()})
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	def := modelcheck.DefaultConfig()

	root := &cobra.Command{
		Use:   "archverify",
		Short: "Formal verification for architecture descriptions",
		Long: `archverify type checks component interfaces and model checks
safety and liveness properties of architecture descriptions written in YAML or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.noColor {
				color.NoColor = true
			}
			return o.modelCheck().Validate()
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&o.maxStates, "max-states", def.MaxStates, "Maximum number of states to explore")
	pf.IntVar(&o.maxDepth, "max-depth", def.MaxDepth, "Maximum search depth for safety checks")
	pf.DurationVar(&o.timeout, "timeout", def.Timeout, "Model checking time budget")
	pf.BoolVar(&o.parallel, "parallel", false, "Expand each BFS level concurrently")
	pf.IntVar(&o.workers, "workers", 0, "Worker count for --parallel (0 uses GOMAXPROCS)")
	pf.StringVar(&o.identity, "identity", string(modelcheck.PathIdentity), "State identity: path or structural")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newTypecheckCmd(o),
		newModelcheckCmd(o),
		newVerifyCmd(o),
		newDotCmd(o),
		newWatchCmd(o),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

func failed(ok bool) error {
	if ok {
		return nil
	}
	return errVerificationFailed
}
