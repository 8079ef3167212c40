package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intercept-setup",
	Short: "Environment bootstrap for the INTERCEPT SDR application",
	Long: `intercept-setup prepares a host to run INTERCEPT, a Python
signal-intelligence application. It detects the operating system and
package manager, gates the Python version, installs the dependency
manifest (falling back to a virtual environment on externally-managed
systems), and checks for the external SDR, WiFi, and Bluetooth tools
INTERCEPT drives, printing install commands for anything missing.`,
	Version: Version,
	RunE:    runSetup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "application working directory")
}
