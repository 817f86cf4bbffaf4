package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	var (
		schedule   string
		strategies []string
	)
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-verify a file on a cron schedule",
		Long: `watch reloads and verifies the file once immediately and then on every
tick of the schedule, printing a one-line summary per run. Schedules use
standard cron syntax or descriptors such as "@every 30s".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseStrategies(strategies); err != nil {
				return err
			}
			sched, err := cron.ParseStandard(schedule)
			if err != nil {
				return fmt.Errorf("invalid schedule %q: %w", schedule, err)
			}

			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			run := func() { watchOnce(ctx, w, o, args[0], strategies) }

			run()
			fmt.Fprintf(w, "watching %s (%s), press Ctrl+C to stop\n", args[0], schedule)
			c := cron.New()
			c.Schedule(sched, cron.FuncJob(run))
			c.Start()

			<-ctx.Done()
			<-c.Stop().Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&schedule, "schedule", "@every 1m", "Cron schedule")
	cmd.Flags().StringSliceVarP(&strategies, "strategy", "s", nil, "Strategies to run")
	return cmd
}

func watchOnce(ctx context.Context, w io.Writer, o *rootOptions, path string, strategies []string) {
	ts := time.Now().Format(time.RFC3339)
	rep, err := runVerify(ctx, o, path, strategies)
	if err != nil {
		failLabel.Fprint(w, "ERROR")
		fmt.Fprintf(w, " %s %s: %v\n", ts, path, err)
		return
	}
	printStatus(w, rep.Passed())
	fmt.Fprintf(w, " %s %s: %d/%d strategies passed, %d errors, %d warnings\n",
		ts, rep.Architecture, rep.Summary.Successful, rep.Summary.TotalStrategies,
		rep.Summary.TotalErrors, rep.Summary.TotalWarnings)
}
