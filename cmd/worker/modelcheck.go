package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
)

func newModelcheckCmd(o *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "modelcheck <file>",
		Short: "Explore the state space and check safety and liveness properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := service.LoadFile(args[0])
			if err != nil {
				return err
			}
			mr, err := o.pipeline().ModelCheck(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(w, mr); err != nil {
					return err
				}
				return failed(mr.Result.Success)
			}

			fmt.Fprintf(w, "%s: %s states, %s transitions\n",
				in.Architecture.Name, mr.Result.Details["total_states"], mr.Result.Details["total_transitions"])
			for _, po := range mr.Properties {
				printOutcome(w, po)
			}
			printResult(w, "model_checking", mr.Result)
			return failed(mr.Result.Success)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}
