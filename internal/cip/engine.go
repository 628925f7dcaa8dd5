package cip

import (
	"math"

	"github.com/wonny/fxcip/internal/calendar"
	"github.com/wonny/fxcip/internal/contracts"
	"github.com/wonny/fxcip/internal/tenor"
)

// pipsPerUnit converts forward points to quote-currency units: 1 pip = 0.0001.
const pipsPerUnit = 10000.0

// Engine computes implied quote-currency rates from single observations
// using covered interest rate parity:
//
//	F = S + points/10000
//	r_quote = ((F/S) × (1 + r_base × days/360) − 1) × (365/days)
//
// The engine is pure: the roller supplies all date arithmetic, and every
// detected problem aborts the observation instead of yielding NaN/Inf.
type Engine struct {
	tenor  tenor.Tenor
	roller *calendar.Roller
}

// NewEngine creates an Engine for one resolved tenor.
func NewEngine(t tenor.Tenor, roller *calendar.Roller) *Engine {
	return &Engine{tenor: t, roller: roller}
}

// Tenor returns the tenor this engine computes.
func (e *Engine) Tenor() tenor.Tenor {
	return e.tenor
}

// Compute derives exactly one result record from one observation, or fails
// with a structured error and yields no record.
func (e *Engine) Compute(obs contracts.Observation) (contracts.ResultRecord, error) {
	if err := obs.Validate(); err != nil {
		return contracts.ResultRecord{}, err
	}

	spotDate, err := e.roller.SpotDate(obs.TradeDate)
	if err != nil {
		return contracts.ResultRecord{}, err
	}

	forwardDate, err := e.roller.ForwardDate(spotDate, e.tenor.Months)
	if err != nil {
		return contracts.ResultRecord{}, err
	}

	actualDays, err := e.roller.ActualDays(spotDate, forwardDate)
	if err != nil {
		return contracts.ResultRecord{}, err
	}

	forwardRate := obs.SpotRate + obs.ForwardPoints/pipsPerUnit

	rBase := obs.BaseRatePct / 100
	baseFactor := 1 + rBase*float64(actualDays)/float64(e.tenor.BaseDayCount)
	rQuote := (forwardRate/obs.SpotRate*baseFactor - 1) *
		float64(e.tenor.QuoteDayCount) / float64(actualDays)

	impliedPct := rQuote * 100
	rateDiffBps := (impliedPct - obs.BaseRatePct) * 100

	if !isFinite(forwardRate) || !isFinite(impliedPct) || !isFinite(rateDiffBps) {
		return contracts.ResultRecord{}, &contracts.ComputationError{
			Date:   obs.TradeDate,
			Reason: "rate parity formula produced a non-finite result",
		}
	}

	return contracts.ResultRecord{
		TradeDate:        obs.TradeDate,
		SpotDate:         spotDate,
		ForwardDate:      forwardDate,
		ActualDays:       actualDays,
		BaseRatePct:      obs.BaseRatePct,
		SpotRate:         obs.SpotRate,
		ForwardPoints:    obs.ForwardPoints,
		ForwardRate:      forwardRate,
		ImpliedQuoteRate: impliedPct,
		RateDiffBps:      rateDiffBps,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
