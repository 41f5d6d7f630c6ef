package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .colorscan.yaml config file",
	Long:  `Create a .colorscan.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".colorscan.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# colorscan configuration

# Shared settings
verbose: false
quiet: false

# Scan settings
scan:
  root: src
  output: colours.html
  format: ""               # html | json | yaml | markdown (empty: from output extension)
  extensions:
    - .ts
    - .html
    - .scss
  variable-extensions:
    - .scss
  exclude-suffixes:
    - .spec.ts
  exclude: []              # glob patterns, e.g. "**/node_modules/**"
  gitignore: false
  custom-properties: false
  concurrency: 8
  skip-unreadable: false
  summary: 10              # most used colours printed after a scan, 0 = none
  watch: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
