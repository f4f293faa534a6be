package cli

import (
	"fmt"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/markdown"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/ccdocs/ccd/internal/domain"
	"github.com/spf13/cobra"
)

func newDriftCmd() *cobra.Command {
	var (
		jsonOutput bool
		failOn     string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "drift [path]",
		Short: "Detect drift between context cards and source",
		Long: "Compare each context card against the source file its frontmatter declares " +
			"and report cards whose source moved on without them.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := application.NewDriftService(
				config.New(),
				scanner.New(),
				docsource.New(),
				markdown.New(),
			)

			report, err := svc.Report(absPath)
			if err != nil {
				return fmt.Errorf("detecting drift: %w", err)
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
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDrift(report))
			}

			if failOn != "" && severityAtLeast(report.Severity, failOn) {
				return fmt.Errorf("drift severity %s reached fail threshold %s", report.Severity, failOn)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail when aggregate severity reaches this level (low, medium, high)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write the JSON report to a file")

	return cmd
}

var severityRank = map[string]int{
	domain.SeverityNone:   0,
	domain.SeverityLow:    1,
	domain.SeverityMedium: 2,
	domain.SeverityHigh:   3,
}

func severityAtLeast(severity, threshold string) bool {
	return severityRank[severity] >= severityRank[threshold] && severityRank[threshold] > 0
}
