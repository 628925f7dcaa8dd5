package calendar

import (
	"time"

	"github.com/wonny/fxcip/internal/contracts"
)

// Market identifies a holiday market.
type Market string

const (
	US Market = "US" // governs USD/SOFR settlement
	SG Market = "SG" // governs SGD settlement
)

// Markets lists the markets that must both be open for settlement.
var Markets = []Market{US, SG}

// Set is one market/year slice of holiday dates, produced by a holiday
// source (built-in data, YAML file or database).
type Set struct {
	Market Market
	Year   int
	Dates  []time.Time
}

// Calendar answers business-day queries from per-market holiday sets.
// It is frozen at construction and safe for unsynchronized concurrent
// reads. A query outside the loaded market/year coverage fails with a
// CalendarError instead of treating the year as holiday-free.
type Calendar struct {
	holidays map[Market]map[string]struct{}
	years    map[Market]map[int]struct{}
}

// New builds a Calendar from holiday sets. A set with no dates still marks
// its market/year as covered.
func New(sets []Set) *Calendar {
	cal := &Calendar{
		holidays: make(map[Market]map[string]struct{}),
		years:    make(map[Market]map[int]struct{}),
	}

	for _, m := range Markets {
		cal.holidays[m] = make(map[string]struct{})
		cal.years[m] = make(map[int]struct{})
	}

	for _, set := range sets {
		if _, ok := cal.holidays[set.Market]; !ok {
			cal.holidays[set.Market] = make(map[string]struct{})
			cal.years[set.Market] = make(map[int]struct{})
		}
		cal.years[set.Market][set.Year] = struct{}{}
		for _, d := range set.Dates {
			cal.holidays[set.Market][d.Format("2006-01-02")] = struct{}{}
		}
	}

	return cal
}

// Covers reports whether holiday data is loaded for the market/year.
func (c *Calendar) Covers(market Market, year int) bool {
	years, ok := c.years[market]
	if !ok {
		return false
	}
	_, ok = years[year]
	return ok
}

// IsBusinessDay reports whether t is a business day in the given market.
// Weekends are non-business days regardless of loaded holiday data.
func (c *Calendar) IsBusinessDay(market Market, t time.Time) (bool, error) {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false, nil
	}

	if !c.Covers(market, t.Year()) {
		return false, &contracts.CalendarError{Market: string(market), Year: t.Year()}
	}

	_, holiday := c.holidays[market][t.Format("2006-01-02")]
	return !holiday, nil
}

// IsSettlementDay reports whether t is a good settlement day: a business
// day in every market.
func (c *Calendar) IsSettlementDay(t time.Time) (bool, error) {
	for _, market := range Markets {
		ok, err := c.IsBusinessDay(market, t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
