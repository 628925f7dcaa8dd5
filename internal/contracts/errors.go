package contracts

import (
	"fmt"
	"time"
)

// The calculation never substitutes a default for a detected problem: each
// failure carries enough context (date, field, market/year) to diagnose the
// offending input, and the affected observation yields no result record.

// ConfigError reports an unusable configuration: an unknown tenor, a failed
// tenor auto-detection or a missing canonical column.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error (%s): %s", e.Field, e.Reason)
}

// DataError reports a non-numeric or out-of-range observation field.
type DataError struct {
	Date   time.Time
	Field  string
	Value  string
	Reason string
}

func (e *DataError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("data error (%s=%s): %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("data error on %s (%s=%s): %s",
		e.Date.Format("2006-01-02"), e.Field, e.Value, e.Reason)
}

// CalendarError reports missing holiday data for a required market/year.
// Lookups outside the loaded coverage must fail rather than treat the year
// as holiday-free: an undercounted holiday corrupts the day count and with
// it the annualized rate.
type CalendarError struct {
	Market string
	Year   int
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("calendar error: no holiday data loaded for market %s year %d",
		e.Market, e.Year)
}

// ComputationError reports a non-positive day count or a non-finite formula
// result. NaN/Inf is never propagated into a ResultRecord.
type ComputationError struct {
	Date   time.Time
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error on %s: %s",
		e.Date.Format("2006-01-02"), e.Reason)
}

// RowError attaches batch position and trade date to a per-observation
// failure when the caller runs in collect-all mode.
type RowError struct {
	Index int
	Date  time.Time
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Index, e.Date.Format("2006-01-02"), e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
