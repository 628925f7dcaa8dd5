package holidays

import (
	"time"

	"github.com/wonny/fxcip/internal/calendar"
)

// Built-in holiday data for 2026.
// US: NY SIFMA recommended banking calendar.
// SG: Ministry of Manpower official public holidays (observed dates;
// holidays falling on a Saturday carry no substitute day).

var us2026 = []string{
	"2026-01-01", // New Year's Day
	"2026-01-19", // MLK Day
	"2026-02-16", // Presidents Day
	"2026-04-03", // Good Friday
	"2026-05-25", // Memorial Day
	"2026-07-03", // Independence Day (observed)
	"2026-09-07", // Labor Day
	"2026-10-12", // Columbus Day
	"2026-11-11", // Veterans Day
	"2026-11-26", // Thanksgiving
	"2026-12-25", // Christmas
}

var sg2026 = []string{
	"2026-01-01", // New Year's Day
	"2026-02-17", // Chinese New Year
	"2026-02-18", // Chinese New Year
	"2026-04-03", // Good Friday
	"2026-05-01", // Labour Day
	"2026-05-27", // Hari Raya Haji
	"2026-06-01", // Vesak Day (observed)
	"2026-08-10", // National Day (observed)
	"2026-11-09", // Deepavali (observed)
	"2026-12-25", // Christmas Day
}

// Builtin returns the embedded holiday sets.
func Builtin() []calendar.Set {
	return []calendar.Set{
		{Market: calendar.US, Year: 2026, Dates: parseDates(us2026)},
		{Market: calendar.SG, Year: 2026, Dates: parseDates(sg2026)},
	}
}

func parseDates(dates []string) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			// Embedded data is covered by tests; a bad literal is a bug.
			panic(err)
		}
		out = append(out, t)
	}
	return out
}
