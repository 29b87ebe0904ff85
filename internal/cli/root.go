// Package cli wires the generator's commands: generate, inspect, version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bulkcopy-generator",
	Short: "Generate PostgreSQL COPY adapters for marked structs",
	Long: `bulkcopy-generator scans Go packages for struct types marked with the
//bulkcopy:generate directive and writes one adapter file per type back
into the declaring package.

The generated adapters stream sequences or channels of model values into
PostgreSQL's COPY protocol through pgx, one row at a time, observing
context cancellation between rows and passing producer faults through
unchanged.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./bulkcopy.yaml when present)")
}

// getVerboseFlag safely retrieves the verbose flag value.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}

	return verbose
}
