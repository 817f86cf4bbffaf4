package main

import (
	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
)

func newTypecheckCmd(o *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "typecheck <file>",
		Short: "Check interface and connection type compatibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := service.LoadFile(args[0])
			if err != nil {
				return err
			}
			r, err := o.pipeline().TypeCheck(cmd.Context(), in)
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			} else {
				printResult(cmd.OutOrStdout(), "type_system", r)
			}
			return failed(r.Success)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
