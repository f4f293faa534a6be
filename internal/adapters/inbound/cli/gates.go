package cli

import (
	"fmt"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/spf13/cobra"
)

func newGatesCmd() *cobra.Command {
	var (
		jsonOutput bool
		minScore   float64
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "gates [path]",
		Short: "Run context documentation quality gates",
		Long: "Evaluate the coverage, freshness and health gates and combine them into " +
			"an overall score suitable for CI.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := application.NewGatesService(
				config.New(),
				scanner.New(),
				docsource.New(),
				systemClock,
			)

			report, err := svc.Report(absPath)
			if err != nil {
				return fmt.Errorf("running gates: %w", err)
			}

			if outputFile != "" {
				if err := saveJSON(outputFile, report); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderGates(report))
			}

			if minScore > 0 && report.OverallScore < minScore {
				return fmt.Errorf("gates score %.1f is below minimum %.1f", report.OverallScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Fail when the overall gate score falls below this value")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write the JSON report to a file")

	return cmd
}
