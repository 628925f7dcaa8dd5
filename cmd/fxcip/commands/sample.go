package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/fxcip/internal/loader"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample [file.csv]",
	Short: "Write a sample input file",
	Long: `Writes a sample 1M USD/SGD input file so the calculator can be tried
without a live data capture.

Example:
  go run ./cmd/fxcip sample
  go run ./cmd/fxcip sample my_input.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	path := "sample_input.csv"
	if len(args) > 0 {
		path = args[0]
	}

	if err := loader.WriteSampleFile(path); err != nil {
		return fmt.Errorf("write sample: %w", err)
	}

	fmt.Printf("Sample input written to %s\n", path)
	return nil
}
