package cli

import (
	"fmt"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/spf13/cobra"
)

func newCoverageCmd() *cobra.Command {
	var (
		jsonOutput  bool
		minCoverage float64
	)

	cmd := &cobra.Command{
		Use:   "coverage [path]",
		Short: "Report context coverage of source files",
		Long:  "Relate context cards to source files and list the files no card documents.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := application.NewCoverageService(config.New(), scanner.New())
			report, err := svc.Report(absPath)
			if err != nil {
				return fmt.Errorf("computing coverage: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCoverage(report))
			}

			if minCoverage > 0 && report.Percentage < minCoverage {
				return fmt.Errorf("coverage %.1f%% is below minimum %.1f%%", report.Percentage, minCoverage)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().Float64Var(&minCoverage, "min", 0, "Fail when coverage falls below this percentage")

	return cmd
}
