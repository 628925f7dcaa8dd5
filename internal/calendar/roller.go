package calendar

import (
	"time"

	"github.com/wonny/fxcip/internal/contracts"
)

// Roller resolves trade date → spot date → forward date against a
// Calendar, applying T+2 settlement and the following convention.
type Roller struct {
	cal *Calendar
}

// NewRoller creates a Roller for the given calendar.
func NewRoller(cal *Calendar) *Roller {
	return &Roller{cal: cal}
}

// SpotDate walks forward from the trade date one calendar day at a time,
// counting only settlement days, and stops on the second one (T+2). Each
// counted day must itself be a settlement day; this is not "plus two
// calendar days, then roll".
func (r *Roller) SpotDate(tradeDate time.Time) (time.Time, error) {
	current := tradeDate
	counted := 0

	for counted < 2 {
		current = current.AddDate(0, 0, 1)
		ok, err := r.cal.IsSettlementDay(current)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			counted++
		}
	}

	return current, nil
}

// ForwardDate adds months to the spot date using civil month arithmetic
// (day-of-month preserved, clamped to the target month's last day), then
// rolls forward to the next settlement day if needed. It never rolls
// backward.
func (r *Roller) ForwardDate(spotDate time.Time, months int) (time.Time, error) {
	current := addMonthsClamped(spotDate, months)

	for {
		ok, err := r.cal.IsSettlementDay(current)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			return current, nil
		}
		current = current.AddDate(0, 0, 1)
	}
}

// ActualDays returns the calendar-day count between spot and forward
// dates. Only the civil date of each argument counts; any time-of-day or
// location is discarded before subtracting. A non-positive count signals
// a calendar misconfiguration.
func (r *Roller) ActualDays(spotDate, forwardDate time.Time) (int, error) {
	days := int(civilDate(forwardDate).Sub(civilDate(spotDate)) / (24 * time.Hour))
	if days <= 0 {
		return 0, &contracts.ComputationError{
			Date:   spotDate,
			Reason: "forward date does not follow spot date",
		}
	}
	return days, nil
}

// addMonthsClamped performs standard civil month addition. time.AddDate
// normalizes day overflow into the next month (Jan 31 + 1 month → Mar 3),
// so the day is clamped to the target month's length instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) + months
	for month > 12 {
		month -= 12
		year++
	}

	day := t.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, t.Location())
}

// civilDate reduces t to its calendar date at UTC midnight, so day
// subtraction is exact regardless of the input's clock or location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
