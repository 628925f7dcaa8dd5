package contracts

import "time"

// ResultRecord is one calculated output row. Field order and names are the
// contract downstream writers depend on; every record derives from exactly
// one observation plus the resolved tenor.
type ResultRecord struct {
	TradeDate        time.Time `json:"Trade_Date"`
	SpotDate         time.Time `json:"Spot_Date"`
	ForwardDate      time.Time `json:"Forward_Date"`
	ActualDays       int       `json:"Actual_Days"`
	BaseRatePct      float64   `json:"Base_Rate_Pct"`
	SpotRate         float64   `json:"Spot_Rate"`
	ForwardPoints    float64   `json:"Forward_Points_pips"`
	ForwardRate      float64   `json:"Forward_Rate"`
	ImpliedQuoteRate float64   `json:"Implied_Quote_Rate_Pct"`
	RateDiffBps      float64   `json:"Rate_Diff_bps"`
}

// ResultColumns is the canonical output column order.
var ResultColumns = []string{
	"Trade_Date",
	"Spot_Date",
	"Forward_Date",
	"Actual_Days",
	"Base_Rate_Pct",
	"Spot_Rate",
	"Forward_Points_pips",
	"Forward_Rate",
	"Implied_Quote_Rate_Pct",
	"Rate_Diff_bps",
}

// StatRange holds mean/min/max over one result column.
type StatRange struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// SummaryStats summarizes a result sequence. The ranges are nil for an
// empty sequence: absent, never misleading zeros.
type SummaryStats struct {
	Count       int        `json:"count"`
	ImpliedRate *StatRange `json:"implied_quote_rate_pct,omitempty"`
	RateDiffBps *StatRange `json:"rate_diff_bps,omitempty"`
}
