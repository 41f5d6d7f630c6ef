package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "colorscan [root] [output]",
	Short: "Color usage report for a source tree",
	Long: `Scan a source tree for hex, rgb and rgba color literals and SCSS color
variables, then write a report of every color ordered by hue.`,
	Args: cobra.MaximumNArgs(2),
	// Default behavior: run scan when no subcommand is given.
	// We must call loadConfig here because PreRunE of scanCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runScan(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".colorscan.yaml", "Config file path")

	// The root command scans too, so it accepts the same flags.
	addScanFlags(rootCmd)

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
