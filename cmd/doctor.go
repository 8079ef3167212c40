package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interceptsdr/setup/internal/bootstrap"
	"github.com/interceptsdr/setup/internal/logger"
	"github.com/interceptsdr/setup/internal/ui"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment without installing anything",
	Long: `Doctor reports the detected platform, Python version, and tool
inventory, with remediation advice for anything missing. It never
installs dependencies or creates a virtual environment.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	workDir, cfg, err := loadCommon(cmd)
	if err != nil {
		return err
	}

	runner := bootstrap.NewRunner(cfg, logger.Discard{}, workDir)
	runner.SkipInstall = true

	summary, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderSummary(summary))
	return nil
}
