package cli

import (
	"fmt"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/ccdocs/ccd/internal/domain"
	"github.com/spf13/cobra"
)

func newFreshnessCmd() *cobra.Command {
	var (
		jsonOutput     bool
		file           string
		thresholdHours int
	)

	cmd := &cobra.Command{
		Use:   "freshness [path]",
		Short: "Check context card freshness",
		Long: "Classify each context card as fresh, stale or outdated by age. " +
			"Use --file to check a single document.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := application.NewFreshnessService(
				config.New(),
				scanner.New(),
				docsource.New(),
				systemClock,
			)

			if file != "" {
				report, err := svc.CheckFile(absPath, file, thresholdHours)
				if err != nil {
					return fmt.Errorf("checking freshness: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, report)
				}
				summary := &domain.FreshnessSummary{
					Reports:    []domain.FreshnessReport{report},
					TotalCount: 1,
				}
				if report.Fresh {
					summary.FreshCount = 1
					summary.FreshnessPct = 100
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFreshness(summary))
				return nil
			}

			summary, err := svc.CheckProject(absPath, thresholdHours)
			if err != nil {
				return fmt.Errorf("checking freshness: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderFreshness(summary))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&file, "file", "", "Check a single file instead of the whole project")
	cmd.Flags().IntVar(&thresholdHours, "threshold", 0, "Freshness threshold in hours (overrides config)")

	return cmd
}
