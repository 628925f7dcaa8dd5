package contracts

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	date := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "config error",
			err:      &ConfigError{Field: "tenor", Reason: "unknown tenor \"2M\""},
			contains: []string{"config error", "tenor", "2M"},
		},
		{
			name:     "data error with date",
			err:      &DataError{Date: date, Field: "spot_rate", Value: "0", Reason: "spot rate must be strictly positive"},
			contains: []string{"2026-01-30", "spot_rate", "strictly positive"},
		},
		{
			name:     "data error without date",
			err:      &DataError{Field: "trade_date", Reason: "trade date is required"},
			contains: []string{"data error", "trade_date"},
		},
		{
			name:     "calendar error",
			err:      &CalendarError{Market: "SG", Year: 2027},
			contains: []string{"SG", "2027", "no holiday data"},
		},
		{
			name:     "computation error",
			err:      &ComputationError{Date: date, Reason: "non-finite result"},
			contains: []string{"2026-01-30", "non-finite"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestRowError_Unwrap(t *testing.T) {
	cause := &DataError{Field: "spot_rate", Value: "0", Reason: "spot rate must be strictly positive"}
	rowErr := &RowError{
		Index: 3,
		Date:  time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		Err:   cause,
	}

	var dataErr *DataError
	if !errors.As(rowErr, &dataErr) {
		t.Fatal("RowError must unwrap to its cause")
	}
	if dataErr != cause {
		t.Error("unwrapped error is not the original cause")
	}

	msg := rowErr.Error()
	for _, want := range []string{"row 3", "2026-01-30", "spot_rate"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
