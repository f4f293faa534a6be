// Package cli is the cobra command surface of ccd.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccd",
		Short: "Keep context documentation honest",
		Long: "ccd scores the health of a project's context documentation: " +
			"coverage, freshness, per-document structure and drift against the source it describes.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newFreshnessCmd())
	cmd.AddCommand(newDocHealthCmd())
	cmd.AddCommand(newCoverageCmd())
	cmd.AddCommand(newDriftCmd())
	cmd.AddCommand(newGatesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// resolvePath turns the optional positional path argument into an absolute
// project path.
func resolvePath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// saveJSON writes a report to a file for later diffing or CI artifacts.
func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func systemClock() time.Time { return time.Now() }
