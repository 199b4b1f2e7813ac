package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/labelreader/label-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "label-api",
	Short: "Label Reader API server",
	Long: `Label Reader API - A track submission and review platform

Artists upload tracks for review; labels browse, rate, and sign them.

Features:
  • Track submission with audio storage
  • One rating per label per submission with live aggregates
  • Review lifecycle (pending, under review, approved, rejected)
  • Play tracking and artist/label/platform analytics
  • In-app notifications`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help never touch config, so they stay usable with a broken
// settings file.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
