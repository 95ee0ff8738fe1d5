package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "appsweep",
	Short: "Remove applications and their leftover files",
	Long: `appsweep - Remove applications and their leftover files.

Discovers every cache, preference, container, log, and crash report an
application left behind, previews the footprint, and removes it safely
with confirmation. Works on macOS and Windows.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(leftoversCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}
