package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccdocs/ccd/internal/domain"
	"github.com/spf13/cobra"
)

const configFileName = "ccd.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Set up ccd in a project",
		Long:  "Create a ccd.yaml with defaults plus the docs skeleton: context-cards, modules and a CODEMAP stub.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(args)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, configFileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig()), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			docsDir := domain.DefaultConfig().DocsDir
			for _, dir := range []string{
				filepath.Join(docsDir, "context-cards"),
				filepath.Join(docsDir, "modules"),
			} {
				if err := os.MkdirAll(filepath.Join(absPath, dir), 0755); err != nil {
					return fmt.Errorf("creating %s: %w", dir, err)
				}
			}

			codemapPath := filepath.Join(absPath, docsDir, "CODEMAP.yaml")
			if _, err := os.Stat(codemapPath); os.IsNotExist(err) {
				if err := os.WriteFile(codemapPath, []byte(generateCodemap(absPath)), 0644); err != nil {
					return fmt.Errorf("writing codemap: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s and %s/ skeleton\n", configFileName, docsDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing ccd.yaml")

	return cmd
}

func generateConfig() string {
	cfg := domain.DefaultConfig()

	result := fmt.Sprintf(`# ccd configuration

# Hours before a context card stops counting as fresh.
freshness_threshold_hours: %d

# Directory holding context documentation.
docs_dir: %s

# exclude_paths:
#   - generated
#   - third_party
`, cfg.FreshnessThresholdHours, cfg.DocsDir)

	return result
}

func generateCodemap(projectPath string) string {
	return fmt.Sprintf(`project: %s
description: ""
modules: []
`, filepath.Base(projectPath))
}
