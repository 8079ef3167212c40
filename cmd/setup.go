package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/interceptsdr/setup/internal/bootstrap"
	"github.com/interceptsdr/setup/internal/config"
	"github.com/interceptsdr/setup/internal/logger"
	"github.com/interceptsdr/setup/internal/ui"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the full environment bootstrap",
	Long: `Setup runs the complete bootstrap sequence: platform detection,
Python version gate, dependency installation with the virtual-environment
fallback, tool inventory, and remediation advice.

Example usage:
  intercept-setup setup                 # Bootstrap the current directory
  intercept-setup setup --dir /srv/app  # Bootstrap a specific directory
  intercept-setup setup --skip-install  # Inventory and advice only`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().Bool("skip-install", false, "skip dependency installation, report only")
}

func runSetup(cmd *cobra.Command, args []string) error {
	workDir, cfg, err := loadCommon(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	skipInstall, _ := cmd.Flags().GetBool("skip-install")

	uiLog := ui.NewUILogger()
	var log logger.Logger = logger.Discard{}
	if verbose {
		log = uiLog
	}

	runner := bootstrap.NewRunner(cfg, log, workDir)
	runner.SkipInstall = skipInstall

	ctx := cmd.Context()
	var summary *bootstrap.Summary
	runErr := ui.RunSpinner(ctx, "Preparing environment...", uiLog, func() error {
		var e error
		summary, e = runner.Run(ctx)
		return e
	})
	if runErr != nil {
		return runErr
	}

	fmt.Print(ui.RenderSummary(summary))
	return nil
}

// loadCommon resolves the working directory and configuration shared by
// the setup and doctor commands.
func loadCommon(cmd *cobra.Command) (string, *config.Config, error) {
	dir, _ := cmd.Flags().GetString("dir")
	workDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if _, err := os.Stat(workDir); os.IsNotExist(err) {
		return "", nil, fmt.Errorf("path does not exist: %s", workDir)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return "", nil, err
	}
	return workDir, cfg, nil
}
