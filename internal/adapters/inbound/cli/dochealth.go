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

func newDocHealthCmd() *cobra.Command {
	var (
		jsonOutput  bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "doc-health <file>",
		Short: "Score a single context document",
		Long: "Score the structural health of one context card: required sections, " +
			"size, freshness and metadata completeness.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath([]string{projectPath})
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

			report, err := svc.DocumentHealth(absPath, args[0])
			if err != nil {
				return fmt.Errorf("scoring document: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDocHealth(&report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root the document belongs to")

	return cmd
}
