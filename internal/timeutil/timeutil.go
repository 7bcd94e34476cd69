// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
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
)

// Range maps each period to its first day, relative to today.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
}

// Bounds returns the time span covered by p, relative to now. The zero start
// means no lower bound.
func (p Period) Bounds(now time.Time) (start, end time.Time, err error) {
	days, ok := Range[p]
	if !ok {
		return start, end, fmt.Errorf("unknown period %q", p)
	}

	end = RoundToEnd(now)

	switch p {
	case PeriodAllTime:
		return time.Time{}, end, nil
	case PeriodYesterday:
		end = RoundToEnd(now.AddDate(0, 0, -1))
	}

	return RoundToStart(now.AddDate(0, 0, days)), end, nil
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatSeconds renders a second count as "1h 5m 3s", omitting leading zero
// units.
func FormatSeconds(secs int) string {
	if secs < 0 {
		secs = 0
	}

	hrs, mins := MinsToHoursAndMins(secs / secondsInAMinute)
	secs %= secondsInAMinute

	var parts []string

	if hrs > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hrs))
	}

	if hrs > 0 || mins > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}

	parts = append(parts, fmt.Sprintf("%ds", secs))

	return strings.Join(parts, " ")
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

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}

// FromStr parses a human time expression such as "8:05am", "14:30" or
// "tomorrow 9am" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse time %q: %w", s, err)
	}

	return d.Time, nil
}
