package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/wonny/fxcip/internal/contracts"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// sampleRows mirrors a late-January 2026 USD/SGD data capture: trade date,
// 1M Term SOFR (pct), spot, 1M forward points (pips).
var sampleRows = []contracts.Observation{
	{TradeDate: date(2026, 1, 26), BaseRatePct: 3.67120, SpotRate: 1.2701, ForwardPoints: -25.10},
	{TradeDate: date(2026, 1, 27), BaseRatePct: 3.67003, SpotRate: 1.2688, ForwardPoints: -24.95},
	{TradeDate: date(2026, 1, 28), BaseRatePct: 3.66951, SpotRate: 1.2679, ForwardPoints: -24.80},
	{TradeDate: date(2026, 1, 29), BaseRatePct: 3.66902, SpotRate: 1.2674, ForwardPoints: -24.73},
	{TradeDate: date(2026, 1, 30), BaseRatePct: 3.66877, SpotRate: 1.2669, ForwardPoints: -24.68},
}

// WriteSampleFile writes a sample 1M input file for trying the calculator
// without a data capture.
func WriteSampleFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample file: %w", err)
	}
	defer f.Close()

	if err := WriteSample(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSample writes the sample batch in the input schema the reader
// accepts (the rate column name carries the tenor token).
func WriteSample(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "1mSOFR", "USDSGD_FX", "Forward Points"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, obs := range sampleRows {
		row := []string{
			obs.TradeDate.Format("2006-01-02"),
			strconv.FormatFloat(obs.BaseRatePct, 'f', 5, 64),
			strconv.FormatFloat(obs.SpotRate, 'f', 4, 64),
			strconv.FormatFloat(obs.ForwardPoints, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write sample row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
