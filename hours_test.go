package stocksim

import (
	"testing"
	"time"

	"github.com/etnz/stocksim/date"
)

func TestHours_IsOpen(t *testing.T) {
	at := func(day, hour, minute, second int) time.Time {
		return time.Date(2025, time.January, day, hour, minute, second, 0, time.UTC)
	}
	testCases := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"monday morning", at(6, 10, 0, 0), true},
		{"at opening", at(6, 9, 30, 0), true},
		{"just before opening", at(6, 9, 29, 59), false},
		{"at closing", at(6, 16, 0, 0), true},
		{"just after closing", at(6, 16, 0, 1), false},
		{"eight in the morning", at(6, 8, 0, 0), false},
		{"friday afternoon", at(10, 15, 59, 0), true},
		{"saturday noon", at(4, 12, 0, 0), false},
		{"sunday noon", at(5, 12, 0, 0), false},
		{"midnight", at(7, 0, 0, 0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := utcHours.IsOpen(tc.t); got != tc.want {
				t.Errorf("IsOpen(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestHours_IsOpenUsesMarketLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("no tz database: %v", err)
	}
	h := Hours{Open: Clock{9, 30}, Close: Clock{16, 0}, Location: ny}

	// 15:00 UTC is 10:00 in New York in winter.
	if !h.IsOpen(time.Date(2025, time.January, 6, 15, 0, 0, 0, time.UTC)) {
		t.Error("15:00 UTC should be open in New York")
	}
	// 10:00 UTC is 05:00 in New York.
	if h.IsOpen(time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)) {
		t.Error("10:00 UTC should be closed in New York")
	}
	// Saturday 02:00 UTC is still Friday 21:00 in New York, after the close.
	if h.IsOpen(time.Date(2025, time.January, 11, 2, 0, 0, 0, time.UTC)) {
		t.Error("Friday evening in New York should be closed")
	}
}

func TestHours_Holidays(t *testing.T) {
	h := utcHours
	h.Holidays = map[date.Date]bool{date.MustParse("2025-12-25"): true}

	if h.IsOpen(time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)) {
		t.Error("market should be closed on a holiday")
	}
	if !h.IsOpen(time.Date(2025, time.December, 26, 10, 0, 0, 0, time.UTC)) {
		t.Error("market should be open the day after a holiday")
	}
}

func TestHours_NextOpen(t *testing.T) {
	h := utcHours
	h.Holidays = map[date.Date]bool{date.MustParse("2025-01-06"): true}

	testCases := []struct {
		name string
		t    time.Time
		want time.Time
	}{
		{"before opening", time.Date(2025, time.January, 7, 8, 0, 0, 0, time.UTC), time.Date(2025, time.January, 7, 9, 30, 0, 0, time.UTC)},
		{"during session", time.Date(2025, time.January, 7, 10, 0, 0, 0, time.UTC), time.Date(2025, time.January, 8, 9, 30, 0, 0, time.UTC)},
		{"friday evening", time.Date(2025, time.January, 10, 17, 0, 0, 0, time.UTC), time.Date(2025, time.January, 13, 9, 30, 0, 0, time.UTC)},
		{"weekend before holiday", time.Date(2025, time.January, 4, 12, 0, 0, 0, time.UTC), time.Date(2025, time.January, 7, 9, 30, 0, 0, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.NextOpen(tc.t); !got.Equal(tc.want) {
				t.Errorf("NextOpen(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestHours_Status(t *testing.T) {
	if got, want := utcHours.Status(time.Date(2025, time.January, 6, 14, 30, 0, 0, time.UTC)), "Market Open, closes in 1h30m"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
	if got, want := utcHours.Status(time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)), "Market Closed, opens Mon 09:30 (in 30m)"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	if err != nil || c != (Clock{9, 30}) {
		t.Errorf("ParseClock(09:30) = %v, %v", c, err)
	}
	if _, err := ParseClock("9h30"); err == nil {
		t.Error("ParseClock(9h30) should fail")
	}
	if got := utcHours.Session(); got != "Mon-Fri 09:30-16:00" {
		t.Errorf("Session() = %q", got)
	}
}

func TestLedger_IsMarketOpen(t *testing.T) {
	l := newTestLedger(t)
	if !l.IsMarketOpen(mondayOpen) {
		t.Error("IsMarketOpen(monday 10:00) = false")
	}
	if l.IsMarketOpen(saturdayNoon) {
		t.Error("IsMarketOpen(saturday) = true")
	}
}
