package cli

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/markdown"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/adapters/outbound/tui"
	"github.com/ccdocs/ccd/internal/adapters/outbound/watcher"
	"github.com/ccdocs/ccd/internal/application"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var thresholdHours int

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Re-check freshness and drift on every change",
		Long: "Watch the project tree and rerun the freshness and drift checks whenever " +
			"a source file or context card changes. Stops on Ctrl-C.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			freshness := application.NewFreshnessService(
				config.New(), scanner.New(), docsource.New(), systemClock)
			drift := application.NewDriftService(
				config.New(), scanner.New(), docsource.New(), markdown.New())

			report := func() {
				out := cmd.OutOrStdout()
				if summary, err := freshness.CheckProject(absPath, thresholdHours); err == nil {
					fmt.Fprint(out, tui.RenderFreshness(summary))
				}
				if dr, err := drift.Report(absPath); err == nil {
					fmt.Fprint(out, tui.RenderDrift(dr))
				}
			}

			report()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watcher.Watch(ctx, absPath, func(path string) {
				// History churn under .ccd would retrigger endlessly.
				if strings.Contains(path, ".ccd") {
					return
				}
				report()
			})
		},
	}

	cmd.Flags().IntVar(&thresholdHours, "threshold", 0, "Freshness threshold in hours (0 uses the configured value)")

	return cmd
}
