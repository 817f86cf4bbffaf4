package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/graph/export"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/report"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/service"
	"github.com/GoSim-25-26J-441/go-sim-archverify/internal/formal_verification/verification"
)

func parseStrategies(names []string) ([]verification.Strategy, error) {
	out := make([]verification.Strategy, 0, len(names))
	for _, n := range names {
		s, err := verification.ParseStrategy(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func runVerify(ctx context.Context, o *rootOptions, path string, names []string) (*report.Report, error) {
	strategies, err := parseStrategies(names)
	if err != nil {
		return nil, err
	}
	in, err := service.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return o.pipeline().Verify(ctx, in, strategies)
}

func writeReport(w io.Writer, rep *report.Report, format, out string) error {
	switch format {
	case "text":
		if out != "" {
			return fmt.Errorf("--out needs --format md, json or yaml")
		}
		fmt.Fprintf(w, "Architecture %s\n", rep.Architecture)
		for _, nr := range rep.Results {
			printResult(w, nr.Name, nr.Result)
		}
		s := rep.Summary
		fmt.Fprintf(w, "%d/%d strategies passed, %d errors, %d warnings\n",
			s.Successful, s.TotalStrategies, s.TotalErrors, s.TotalWarnings)
		return nil
	case "md", "markdown":
		if out != "" {
			return export.WriteText(out, rep.Markdown())
		}
		_, err := io.WriteString(w, rep.Markdown())
		return err
	case "json":
		if out != "" {
			return export.WriteJSON(out, rep)
		}
		return writeJSON(w, rep)
	case "yaml":
		if out != "" {
			return export.WriteYAML(out, rep)
		}
		b, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newVerifyCmd(o *rootOptions) *cobra.Command {
	var (
		strategies []string
		format     string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Run verification strategies and print a report",
		Long: `verify runs the selected strategies (all of them by default) and
prints a report as text, markdown, JSON or YAML.

Strategies: basic, dependency, model_checking, type_system.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := runVerify(cmd.Context(), o, args[0], strategies)
			if err != nil {
				return err
			}
			if err := writeReport(cmd.OutOrStdout(), rep, format, out); err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", filepath.Clean(out))
			}
			return failed(rep.Passed())
		},
	}
	cmd.Flags().StringSliceVarP(&strategies, "strategy", "s", nil, "Strategies to run (repeatable or comma separated)")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, md, json or yaml")
	cmd.Flags().StringVar(&out, "out", "", "Write the report to a file instead of stdout")
	return cmd
}
