package cli

import (
	"fmt"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/gitinfo"
	"github.com/ccdocs/ccd/internal/adapters/outbound/history"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var (
		jsonOutput  bool
		detailed    bool
		showHistory bool
		ciMode      bool
		minScore    float64
	)

	cmd := &cobra.Command{
		Use:   "health [path]",
		Short: "Score project context documentation health",
		Long: "Compute the composite context health score for a project: " +
			"coverage, freshness, module coverage and card presence, weighted into one number.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			svc := application.NewHealthService(
				config.New(),
				scanner.New(),
				docsource.New(),
				gitinfo.New(),
				history.New(),
				systemClock,
			)

			if showHistory {
				entries, err := svc.History(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				if jsonOutput {
					return renderJSON(cmd, entries)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			health, err := svc.ProjectHealth(absPath)
			if err != nil {
				return fmt.Errorf("computing health: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, health); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderProjectHealth(health, detailed))
			}

			if ciMode && health.Score < minScore {
				return fmt.Errorf("health score %.1f is below minimum %.1f", health.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show the weighted score breakdown")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show health history")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum health score for CI mode")

	return cmd
}
