package holidays

import (
	"testing"
	"time"

	"github.com/wonny/fxcip/internal/calendar"
)

// The embedded data is the default production calendar; a bad literal
// must fail here, not at first lookup.
func TestBuiltin(t *testing.T) {
	sets := Builtin()

	byMarket := make(map[calendar.Market]calendar.Set)
	for _, set := range sets {
		byMarket[set.Market] = set
	}

	us, ok := byMarket[calendar.US]
	if !ok {
		t.Fatal("missing US set")
	}
	sg, ok := byMarket[calendar.SG]
	if !ok {
		t.Fatal("missing SG set")
	}

	if us.Year != 2026 || sg.Year != 2026 {
		t.Errorf("years = US %d, SG %d, want 2026", us.Year, sg.Year)
	}
	if len(us.Dates) != 11 {
		t.Errorf("US holiday count = %d, want 11", len(us.Dates))
	}
	if len(sg.Dates) != 10 {
		t.Errorf("SG holiday count = %d, want 10", len(sg.Dates))
	}

	for _, set := range sets {
		for _, d := range set.Dates {
			if d.Year() != set.Year {
				t.Errorf("%s date %s outside year %d", set.Market, d.Format("2006-01-02"), set.Year)
			}
		}
	}
}

func TestBuiltin_KnownHolidays(t *testing.T) {
	cal := calendar.New(Builtin())

	tests := []struct {
		market calendar.Market
		date   string
	}{
		{calendar.US, "2026-02-16"}, // Presidents Day
		{calendar.SG, "2026-02-17"}, // Chinese New Year
		{calendar.SG, "2026-02-18"},
		{calendar.US, "2026-11-26"}, // Thanksgiving
		{calendar.SG, "2026-08-10"}, // National Day (observed)
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := cal.IsBusinessDay(tt.market, d)
		if err != nil {
			t.Fatalf("IsBusinessDay(%s, %s) error = %v", tt.market, tt.date, err)
		}
		if ok {
			t.Errorf("%s must be a %s holiday", tt.date, tt.market)
		}
	}
}
