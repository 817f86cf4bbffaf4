package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/graph/export"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

func newDotCmd(o *rootOptions) *cobra.Command {
	var (
		stateSpace bool
		highlight  string
		title      string
		out        string
		render     string
		dotBin     string
	)
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Export the architecture or its state space as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if render != "" && out == "" {
				return fmt.Errorf("--render needs --out")
			}
			if highlight != "" && !stateSpace {
				return fmt.Errorf("--highlight needs --state-space")
			}

			in, err := service.LoadFile(args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = in.Architecture.Name
			}

			var dot string
			if stateSpace {
				mr, err := verification.CheckProperties(cmd.Context(), o.modelCheck(), in.Architecture)
				if err != nil {
					return err
				}
				path, err := counterexample(mr, highlight)
				if err != nil {
					return err
				}
				dot = export.StateSpaceDOT(mr.Space, mr.Transitions, title, path)
			} else {
				dot = export.ArchitectureDOT(in.Architecture, title)
			}

			if out == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), dot)
				return err
			}
			if err := export.WriteText(out, dot); err != nil {
				return err
			}
			if render != "" {
				img := strings.TrimSuffix(out, ".dot") + "." + render
				if err := export.RenderDOT(cmd.Context(), dot, img, render, dotBin); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rendered %s\n", img)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&stateSpace, "state-space", false, "Export the explored state space instead of the architecture")
	f.StringVar(&highlight, "highlight", "", "Highlight the counterexample of the named property")
	f.StringVar(&title, "title", "", "Graph title (defaults to the architecture name)")
	f.StringVar(&out, "out", "", "Write DOT to a file instead of stdout")
	f.StringVar(&render, "render", "", "Also render with graphviz to this format (svg, png)")
	f.StringVar(&dotBin, "dot-bin", "dot", "Graphviz binary")
	return cmd
}

func counterexample(mr *verification.ModelReport, property string) ([]string, error) {
	if property == "" {
		return nil, nil
	}
	for _, po := range mr.Properties {
		if po.Property != property {
			continue
		}
		if po.Result == nil {
			return nil, nil
		}
		return po.Result.Counterexample, nil
	}
	return nil, fmt.Errorf("unknown property %q", property)
}
