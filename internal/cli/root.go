// Package cli provides the Cobra command structure for doctags.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doctags/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root doctags command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "doctags",
		Short: "Doc-comment and anchor tooling for source trees",
		Long: `doctags reads structured doc comments and anchor comments out of source
files. It scans trees for TODO-style anchors, reflows doc-comment blocks
to a column budget, and renders structured comments for the terminal.

Configuration comes from an optional global YAML file plus per-directory
.doctags.conf files that override individual settings.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newAnchorsCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
