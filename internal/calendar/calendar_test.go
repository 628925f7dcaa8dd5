package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/wonny/fxcip/internal/contracts"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return d
}

// testSets2026 carries the holidays the tests exercise: US Presidents Day
// and the SG Chinese New Year pair.
func testSets2026() []Set {
	return []Set{
		{Market: US, Year: 2026, Dates: []time.Time{
			time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
		}},
		{Market: SG, Year: 2026, Dates: []time.Time{
			time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC),
		}},
	}
}

func TestCalendar_Covers(t *testing.T) {
	cal := New(testSets2026())

	if !cal.Covers(US, 2026) {
		t.Error("Covers(US, 2026) = false, want true")
	}
	if !cal.Covers(SG, 2026) {
		t.Error("Covers(SG, 2026) = false, want true")
	}
	if cal.Covers(US, 2027) {
		t.Error("Covers(US, 2027) = true, want false")
	}
}

func TestCalendar_EmptySetStillCovers(t *testing.T) {
	cal := New([]Set{{Market: US, Year: 2030, Dates: nil}})

	if !cal.Covers(US, 2030) {
		t.Fatal("a set with no dates must still mark its year as covered")
	}

	ok, err := cal.IsBusinessDay(US, mustDate(t, "2030-07-01"))
	if err != nil {
		t.Fatalf("IsBusinessDay() error = %v", err)
	}
	if !ok {
		t.Error("weekday in a covered holiday-free year should be a business day")
	}
}

func TestCalendar_IsBusinessDay(t *testing.T) {
	cal := New(testSets2026())

	tests := []struct {
		name   string
		market Market
		date   string
		want   bool
	}{
		{"regular weekday", US, "2026-02-13", true},
		{"US holiday", US, "2026-02-16", false},
		{"US open on SG holiday", US, "2026-02-17", true},
		{"SG holiday", SG, "2026-02-17", false},
		{"second SG holiday", SG, "2026-02-18", false},
		{"SG open on US holiday", SG, "2026-02-16", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.IsBusinessDay(tt.market, mustDate(t, tt.date))
			if err != nil {
				t.Fatalf("IsBusinessDay() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsBusinessDay(%s, %s) = %v, want %v", tt.market, tt.date, got, tt.want)
			}
		})
	}
}

func TestCalendar_WeekendNeedsNoCoverage(t *testing.T) {
	cal := New(testSets2026())

	// 2025 is not loaded, but Saturday is answerable without holiday data.
	ok, err := cal.IsBusinessDay(US, mustDate(t, "2025-01-04"))
	if err != nil {
		t.Fatalf("IsBusinessDay() error = %v", err)
	}
	if ok {
		t.Error("Saturday must never be a business day")
	}
}

func TestCalendar_UncoveredYearFails(t *testing.T) {
	cal := New(testSets2026())

	_, err := cal.IsBusinessDay(US, mustDate(t, "2027-01-04"))
	if err == nil {
		t.Fatal("expected CalendarError for an uncovered year")
	}

	var calErr *contracts.CalendarError
	if !errors.As(err, &calErr) {
		t.Fatalf("error = %T, want *contracts.CalendarError", err)
	}
	if calErr.Market != "US" || calErr.Year != 2027 {
		t.Errorf("CalendarError = %+v, want market US year 2027", calErr)
	}
}

func TestCalendar_IsSettlementDay(t *testing.T) {
	cal := New(testSets2026())

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"both markets open", "2026-02-13", true},
		{"US holiday blocks settlement", "2026-02-16", false},
		{"SG holiday blocks settlement", "2026-02-17", false},
		{"weekend", "2026-02-14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cal.IsSettlementDay(mustDate(t, tt.date))
			if err != nil {
				t.Fatalf("IsSettlementDay() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsSettlementDay(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
