package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/wonny/fxcip/internal/contracts"
)

// WriteResultsFile writes the result sequence to a CSV file using the
// canonical output schema.
func WriteResultsFile(path string, records []contracts.ResultRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := WriteResults(f, records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteResults writes result records in the contract column order. Numeric
// fields keep full precision; downstream consumers round for display.
func WriteResults(w io.Writer, records []contracts.ResultRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(contracts.ResultColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.TradeDate.Format("2006-01-02"),
			rec.SpotDate.Format("2006-01-02"),
			rec.ForwardDate.Format("2006-01-02"),
			strconv.Itoa(rec.ActualDays),
			formatFloat(rec.BaseRatePct),
			formatFloat(rec.SpotRate),
			formatFloat(rec.ForwardPoints),
			formatFloat(rec.ForwardRate),
			formatFloat(rec.ImpliedQuoteRate),
			formatFloat(rec.RateDiffBps),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryFile writes summary statistics as metric/value rows.
func WriteSummaryFile(path string, tenorID string, stats contracts.SummaryStats) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer f.Close()

	if err := WriteSummary(f, tenorID, stats); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSummary writes summary statistics as metric/value rows. Absent
// ranges (empty batch) emit no rows rather than zeros.
func WriteSummary(w io.Writer, tenorID string, stats contracts.SummaryStats) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"Tenor", tenorID},
		{"Rows_Processed", strconv.Itoa(stats.Count)},
	}

	if stats.ImpliedRate != nil {
		rows = append(rows,
			[]string{"Implied_Quote_Rate_Pct_Mean", formatFloat(stats.ImpliedRate.Mean)},
			[]string{"Implied_Quote_Rate_Pct_Min", formatFloat(stats.ImpliedRate.Min)},
			[]string{"Implied_Quote_Rate_Pct_Max", formatFloat(stats.ImpliedRate.Max)},
		)
	}
	if stats.RateDiffBps != nil {
		rows = append(rows,
			[]string{"Rate_Diff_bps_Mean", formatFloat(stats.RateDiffBps.Mean)},
			[]string{"Rate_Diff_bps_Min", formatFloat(stats.RateDiffBps.Min)},
			[]string{"Rate_Diff_bps_Max", formatFloat(stats.RateDiffBps.Max)},
		)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
