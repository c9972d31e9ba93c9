package stocksim

import (
	"fmt"
	"time"

	"github.com/etnz/stocksim/date"
)

// Clock is a time of day with minute granularity.
type Clock struct {
	Hour, Minute int
}

// ParseClock parses a "15:04" time of day.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time of day %q want format %q: %w", s, "15:04", err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// offset is the duration since midnight.
func (c Clock) offset() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

// Hours is the trading calendar of the market: a daily session from Open to
// Close (both inclusive), Monday to Friday, in Location, except on Holidays.
type Hours struct {
	Open     Clock
	Close    Clock
	Location *time.Location
	Holidays map[date.Date]bool
}

// DefaultHours returns the 09:30-16:00 weekday session in the local time zone.
func DefaultHours() Hours {
	return Hours{
		Open:     Clock{9, 30},
		Close:    Clock{16, 0},
		Location: time.Local,
	}
}

func (h Hours) location() *time.Location {
	if h.Location == nil {
		return time.Local
	}
	return h.Location
}

// Validate checks that the session is not empty.
func (h Hours) Validate() error {
	if h.Close.offset() < h.Open.offset() {
		return fmt.Errorf("market closes at %v before it opens at %v", h.Close, h.Open)
	}
	return nil
}

// IsTradingDay reports whether the day is a weekday that is not a holiday.
func (h Hours) IsTradingDay(day date.Date) bool {
	return !day.IsWeekend() && !h.Holidays[day]
}

// IsOpen reports whether t, seen in the market location, falls in a session.
func (h Hours) IsOpen(t time.Time) bool {
	local := t.In(h.location())
	if !h.IsTradingDay(date.Of(local)) {
		return false
	}
	tod := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return tod >= h.Open.offset() && tod <= h.Close.offset()
}

// NextOpen returns the next session open strictly after t, or t's day open
// if t is before it on a trading day.
func (h Hours) NextOpen(t time.Time) time.Time {
	local := t.In(h.location())
	day := date.Of(local)
	// a year of holidays is not realistic, but it bounds the search.
	for i := 0; i < 366; i++ {
		if h.IsTradingDay(day) {
			open := day.In(h.Open.Hour, h.Open.Minute, h.location())
			if open.After(local) {
				return open
			}
		}
		day = day.Add(1)
	}
	return day.In(h.Open.Hour, h.Open.Minute, h.location())
}

// Status returns a human readable market status at t.
func (h Hours) Status(t time.Time) string {
	if h.IsOpen(t) {
		local := t.In(h.location())
		closing := date.Of(local).In(h.Close.Hour, h.Close.Minute, h.location())
		return fmt.Sprintf("Market Open, closes in %s", fmtDur(closing.Sub(local)))
	}
	next := h.NextOpen(t)
	return fmt.Sprintf("Market Closed, opens %s %s (in %s)",
		next.Weekday().String()[:3], next.Format("15:04"), fmtDur(next.Sub(t)))
}

// Session describes the trading window, e.g. "Mon-Fri 09:30-16:00".
func (h Hours) Session() string {
	return fmt.Sprintf("Mon-Fri %v-%v", h.Open, h.Close)
}

func fmtDur(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
