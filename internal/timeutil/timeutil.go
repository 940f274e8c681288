// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FormatClock renders a number of seconds as H:MM:SS when an hour or more
// remains, and MM:SS otherwise. Negative values are treated as zero.
func FormatClock(secs int) string {
	secs = max(secs, 0)

	h := secs / secondsInAnHour
	m := (secs % secondsInAnHour) / secondsInAMinute
	s := secs % secondsInAMinute

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatHours expresses minutes as hours, e.g. 90 -> "1.5h", 120 -> "2h".
func FormatHours(mins int) string {
	if mins%secondsInAMinute == 0 {
		return fmt.Sprintf("%dh", mins/secondsInAMinute)
	}

	s := fmt.Sprintf("%.1f", float64(mins)/secondsInAMinute)
	if s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}

	return s + "h"
}

// Progress returns the share of initial that has elapsed as a percentage
// clamped to [0, 100].
func Progress(initial, left int) float64 {
	if initial <= 0 {
		return 0
	}

	p := float64(initial-left) / float64(initial) * 100

	return math.Max(0, math.Min(100, p))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = val / secondsInAMinute
	mins = val % secondsInAMinute

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodStart returns the earliest time included in period relative to now.
// The zero time is returned for PeriodAllTime.
func PeriodStart(period Period, now time.Time) time.Time {
	if period == PeriodAllTime {
		return time.Time{}
	}

	return RoundToStart(now.AddDate(0, 0, Range[period]))
}

// FromStr parses natural language dates such as "yesterday" or "2 weeks ago".
func FromStr(s string) (time.Time, error) {
	return FromStrAt(s, time.Now())
}

// FromStrAt is FromStr with an explicit reference time.
func FromStrAt(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}
