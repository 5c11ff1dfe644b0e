package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "urpx",
	Short: "URPX converter - robot program file conversion",
	Long: `urpx converts URPX robot-program project files (JSON) into one of
two textual representations:

  - an executable robot script (.script), wrapping the project's
    embedded script body in a named function definition
  - a human-readable indented outline (.txt) of the program's
    variables and main program body

Conversions run locally via "urpx convert" or as an HTTP service via
"urpx serve".`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
