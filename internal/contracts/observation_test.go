package contracts

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestObservation_Validate(t *testing.T) {
	valid := Observation{
		TradeDate:     time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		BaseRatePct:   3.66877,
		SpotRate:      1.2669,
		ForwardPoints: -24.68,
	}

	tests := []struct {
		name      string
		mutate    func(*Observation)
		wantField string
	}{
		{"valid", func(o *Observation) {}, ""},
		{"negative points are fine", func(o *Observation) { o.ForwardPoints = -500 }, ""},
		{"zero base rate is fine", func(o *Observation) { o.BaseRatePct = 0 }, ""},
		{"missing trade date", func(o *Observation) { o.TradeDate = time.Time{} }, "trade_date"},
		{"zero spot", func(o *Observation) { o.SpotRate = 0 }, "spot_rate"},
		{"negative spot", func(o *Observation) { o.SpotRate = -1 }, "spot_rate"},
		{"nan spot", func(o *Observation) { o.SpotRate = math.NaN() }, "spot_rate"},
		{"inf base rate", func(o *Observation) { o.BaseRatePct = math.Inf(1) }, "base_rate_pct"},
		{"nan points", func(o *Observation) { o.ForwardPoints = math.NaN() }, "forward_points_pips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := valid
			tt.mutate(&obs)

			err := obs.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var dataErr *DataError
			if !errors.As(err, &dataErr) {
				t.Fatalf("Validate() error = %T, want *DataError", err)
			}
			if dataErr.Field != tt.wantField {
				t.Errorf("DataError.Field = %s, want %s", dataErr.Field, tt.wantField)
			}
		})
	}
}
