package calendar

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekNumber_ISO(t *testing.T) {
	cases := []struct {
		day  time.Time
		want int
	}{
		{date(2024, time.January, 1), 1},   // Monday, starts ISO week 1
		{date(2023, time.January, 1), 52},  // Sunday, still week 52 of 2022
		{date(2021, time.January, 1), 53},  // Friday, week 53 of 2020
		{date(2024, time.December, 30), 1}, // Monday, week 1 of 2025
		{date(2024, time.June, 12), 24},
	}

	for _, c := range cases {
		if got := WeekNumber(c.day); got != c.want {
			t.Errorf("WeekNumber(%s) = %d, want %d", c.day.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestWeekYear_AroundNewYear(t *testing.T) {
	week, year := WeekYear(date(2024, time.December, 30))
	if week != 1 || year != 2025 {
		t.Errorf("WeekYear(2024-12-30) = (%d, %d), want (1, 2025)", week, year)
	}

	week, year = WeekYear(date(2023, time.January, 1))
	if week != 52 || year != 2022 {
		t.Errorf("WeekYear(2023-01-01) = (%d, %d), want (52, 2022)", week, year)
	}
}

func TestMondayOf(t *testing.T) {
	// 2024-06-12 is a Wednesday; its Monday is 2024-06-10.
	monday := MondayOf(date(2024, time.June, 12))
	if monday.Format("2006-01-02") != "2024-06-10" {
		t.Errorf("MondayOf = %s, want 2024-06-10", monday.Format("2006-01-02"))
	}

	// A Monday maps to itself.
	monday = MondayOf(date(2024, time.June, 10))
	if monday.Format("2006-01-02") != "2024-06-10" {
		t.Errorf("MondayOf(monday) = %s, want 2024-06-10", monday.Format("2006-01-02"))
	}
}

func TestDayRoundTrip_AllLocales(t *testing.T) {
	logger := zap.NewNop()
	for _, locale := range []string{"fr", "en", "de"} {
		for _, canonical := range Days {
			display := FromCanonicalDay(canonical, locale)
			back := ToCanonicalDay(display, locale, logger)
			if back != canonical {
				t.Errorf("locale %s: round trip %s -> %s -> %s", locale, canonical, display, back)
			}
		}
	}
}

func TestToCanonicalDay_AlreadyCanonical(t *testing.T) {
	if got := ToCanonicalDay("Mardi", "en", zap.NewNop()); got != "Mardi" {
		t.Errorf("expected canonical passthrough, got %s", got)
	}
}

func TestToCanonicalDay_CrossLocaleFallback(t *testing.T) {
	// A German name under the "en" locale still resolves through the
	// table scan.
	if got := ToCanonicalDay("Mittwoch", "en", zap.NewNop()); got != "Mercredi" {
		t.Errorf("expected Mercredi, got %s", got)
	}
}

func TestToCanonicalDay_UnknownPassthrough(t *testing.T) {
	if got := ToCanonicalDay("Zondag", "nl", zap.NewNop()); got != "Zondag" {
		t.Errorf("expected lossy passthrough, got %s", got)
	}
}

func TestFromCanonicalDay_UnknownLocaleFallsBack(t *testing.T) {
	if got := FromCanonicalDay("Jeudi", "es"); got != "Jeudi" {
		t.Errorf("expected canonical fallback, got %s", got)
	}
}
