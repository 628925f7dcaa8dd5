package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fxcip",
	Short: "USD/SGD FX swap implied rate calculator",
	Long: `fxcip - Covered Interest Rate Parity calculator

Calculates implied SGD interest rates from USD/SGD FX swap data
(Term SOFR, FX spot, forward points) with proper T+2 settlement and
US/SG business-day conventions.

Usage:
  go run ./cmd/fxcip [command]

Examples:
  go run ./cmd/fxcip calc input.csv output.csv --tenor 1M
  go run ./cmd/fxcip calc input.csv output.csv            (auto-detect tenor)
  go run ./cmd/fxcip sample input.csv
  go run ./cmd/fxcip holidays fetch --year 2026
  go run ./cmd/fxcip api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
