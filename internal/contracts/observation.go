package contracts

import (
	"math"
	"strconv"
	"time"
)

// Observation is one daily market input row: a trade date, the annualized
// base-currency money-market rate (Term SOFR, percent), the FX spot rate
// (quote-currency units per base-currency unit) and the forward points in
// pips. Observations are read-only to the calculation.
type Observation struct {
	TradeDate     time.Time `json:"trade_date"`
	BaseRatePct   float64   `json:"base_rate_pct"`
	SpotRate      float64   `json:"spot_rate"`
	ForwardPoints float64   `json:"forward_points_pips"`
}

// Validate checks the observation invariants: a usable trade date, a
// strictly positive spot rate and finite numeric fields.
func (o *Observation) Validate() error {
	if o.TradeDate.IsZero() {
		return &DataError{Field: "trade_date", Value: "", Reason: "trade date is required"}
	}
	if math.IsNaN(o.SpotRate) || math.IsInf(o.SpotRate, 0) {
		return o.fieldError("spot_rate", o.SpotRate, "spot rate must be finite")
	}
	if o.SpotRate <= 0 {
		return o.fieldError("spot_rate", o.SpotRate, "spot rate must be strictly positive")
	}
	if math.IsNaN(o.BaseRatePct) || math.IsInf(o.BaseRatePct, 0) {
		return o.fieldError("base_rate_pct", o.BaseRatePct, "base rate must be finite")
	}
	if math.IsNaN(o.ForwardPoints) || math.IsInf(o.ForwardPoints, 0) {
		return o.fieldError("forward_points_pips", o.ForwardPoints, "forward points must be finite")
	}
	return nil
}

func (o *Observation) fieldError(field string, value float64, reason string) error {
	return &DataError{
		Date:   o.TradeDate,
		Field:  field,
		Value:  strconv.FormatFloat(value, 'g', -1, 64),
		Reason: reason,
	}
}
