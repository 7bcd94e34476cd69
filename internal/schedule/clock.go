package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesInADay = 24 * 60

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string. A single hour digit is
// accepted.
func ParseClock(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return ClockTime{}, errInvalidClock.Fmt(s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, errInvalidClock.Fmt(s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, errInvalidClock.Fmt(s)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockOf returns the time of day of t. Seconds are discarded.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// Minutes returns the number of minutes since midnight.
func (c ClockTime) Minutes() int {
	return (c.Hour*60 + c.Minute) % minutesInADay
}

// On returns the instant at which c occurs on the calendar day of t, in t's
// location.
func (c ClockTime) On(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		c.Hour,
		c.Minute,
		0,
		0,
		t.Location(),
	)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
