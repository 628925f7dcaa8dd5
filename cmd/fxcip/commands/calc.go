package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/cip"
	"github.com/wonny/fxcip/internal/holidays"
	"github.com/wonny/fxcip/internal/loader"
	"github.com/wonny/fxcip/internal/tenor"
	"github.com/wonny/fxcip/pkg/config"
	"github.com/wonny/fxcip/pkg/logger"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc <input.csv> [output.csv]",
	Short: "Calculate implied SGD rates from an FX swap data file",
	Long: `Calculates implied SGD interest rates for every row of the input file
using covered interest rate parity.

The input file needs four columns: a trade date, a Term SOFR rate whose
column name carries the tenor (e.g. 1mSOFR), the USD/SGD spot rate and
the forward points in pips. Without --tenor the tenor is auto-detected
from the column names.

Example:
  go run ./cmd/fxcip calc input.csv output.csv --tenor 1M
  go run ./cmd/fxcip calc input.csv output.csv --skip-errors
  go run ./cmd/fxcip calc input.csv`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCalc,
}

var (
	calcTenor      string
	calcSkipErrors bool
	calcSummary    string
)

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcTenor, "tenor", "t", "", "tenor to calculate (1M, 3M, 6M); auto-detected when omitted")
	calcCmd.Flags().BoolVar(&calcSkipErrors, "skip-errors", false, "report failing rows and keep going instead of aborting")
	calcCmd.Flags().StringVar(&calcSummary, "summary", "", "also write summary statistics to this CSV file")
}

func runCalc(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := "swap_implied_rates_output.csv"
	if len(args) > 1 {
		outputPath = args[1]
	}

	cfg, log, err := initRuntime()
	if err != nil {
		return err
	}

	// Holiday calendar (load → freeze)
	sets, err := holidays.Load(cfg)
	if err != nil {
		return fmt.Errorf("load holiday data: %w", err)
	}
	cal := calendar.New(sets)

	catalog := tenor.Default()

	// Read input
	batch, err := loader.NewReader(catalog).ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("load observations: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"file": inputPath,
		"rows": len(batch.Observations),
	}).Info("Loaded observations")

	// Compute
	pipeline := cip.NewPipeline(catalog, cal, log)
	req := cip.BatchRequest{
		TenorID:      calcTenor,
		Columns:      batch.Columns,
		Observations: batch.Observations,
	}

	var result *cip.BatchResult
	if calcSkipErrors {
		result, err = pipeline.RunCollect(req)
	} else {
		result, err = pipeline.Run(req)
	}
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	for _, rowErr := range result.Errors {
		log.WithError(rowErr).Warn("Row skipped")
	}

	// Write output
	if err := loader.WriteResultsFile(outputPath, result.Records); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	if calcSummary != "" {
		if err := loader.WriteSummaryFile(calcSummary, result.Tenor.ID, result.Summary); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	printSummary(outputPath, result)
	return nil
}

func printSummary(outputPath string, result *cip.BatchResult) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("SUMMARY - %s TENOR\n", result.Tenor.ID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Rows processed:        %d\n", result.Summary.Count)
	if len(result.Errors) > 0 {
		fmt.Printf("Rows skipped:          %d\n", len(result.Errors))
	}
	if result.Summary.ImpliedRate != nil {
		fmt.Printf("Avg implied SGD rate:  %.4f%%\n", result.Summary.ImpliedRate.Mean)
		fmt.Printf("Implied rate range:    %.4f%% to %.4f%%\n",
			result.Summary.ImpliedRate.Min, result.Summary.ImpliedRate.Max)
	}
	if result.Summary.RateDiffBps != nil {
		fmt.Printf("Avg rate differential: %.1f bps\n", result.Summary.RateDiffBps.Mean)
	}
	fmt.Printf("Output written to:     %s\n", outputPath)
}

// initRuntime loads config and builds the logger shared by all commands.
func initRuntime() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, logger.New(cfg), nil
}
