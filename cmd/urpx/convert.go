package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Sagaw22/URPXconverter/internal/convert"
)

var (
	convertOut  string
	convertMode string
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] FILE...",
	Short: "Convert URPX files to .script or .txt",
	Long: `Convert one or more URPX project files. Files are processed
sequentially in the order given. A file that fails to convert is
reported and skipped; the remaining files still run. The command exits
non-zero if any file failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", ".", "destination directory for converted files")
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", "script", "output mode: script or txt")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	mode := convert.Mode(convertMode)
	if !mode.Valid() {
		return fmt.Errorf("mode must be %q or %q, got %q", convert.ModeScript, convert.ModeText, convertMode)
	}

	var converted, failed []string
	for _, src := range args {
		out, err := convert.Convert(src, convertOut, mode)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %s", filepath.Base(src), err))
			continue
		}
		converted = append(converted, out)
		if verbose {
			fmt.Printf("converted %s -> %s\n", src, out)
		}
	}

	if len(converted) > 0 {
		fmt.Printf("Converted %d file(s):\n", len(converted))
		for _, path := range converted {
			fmt.Printf("  %s\n", path)
		}
	}
	if len(failed) > 0 {
		fmt.Printf("Failed %d file(s):\n", len(failed))
		for _, msg := range failed {
			fmt.Printf("  %s\n", msg)
		}
		return fmt.Errorf("%d of %d conversions failed", len(failed), len(args))
	}
	return nil
}
