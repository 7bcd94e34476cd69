// Package schedule models the class timetable and resolves which class, if
// any, is in session at a given moment
package schedule

import (
	"cmp"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
)

// ClassSession is one entry of the timetable. Time and EndTime are stored as
// "HH:MM" strings and recur every day.
type ClassSession struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	EndTime string `json:"endTime"`
}

// New validates the supplied bounds and returns a session.
func New(id, subject, start, end string) (ClassSession, error) {
	s := ClassSession{
		ID:      id,
		Subject: strings.TrimSpace(subject),
		Time:    strings.TrimSpace(start),
		EndTime: strings.TrimSpace(end),
	}

	if s.Subject == "" {
		return ClassSession{}, errEmptySubject
	}

	if _, _, err := s.Window(); err != nil {
		return ClassSession{}, err
	}

	return s, nil
}

// Window parses the session bounds. Sessions that cross midnight, or whose
// start is not strictly before the end, are malformed.
func (s ClassSession) Window() (start, end ClockTime, err error) {
	start, err = ParseClock(s.Time)
	if err != nil {
		return ClockTime{}, ClockTime{}, ErrMalformedSession.Fmt(s.Subject).Wrap(err)
	}

	end, err = ParseClock(s.EndTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, ErrMalformedSession.Fmt(s.Subject).Wrap(err)
	}

	if start.Minutes() >= end.Minutes() {
		return ClockTime{}, ClockTime{}, ErrMalformedSession.Fmt(s.Subject)
	}

	return start, end, nil
}

// Contains reports whether the time of day of now lies in [start, end).
func (s ClassSession) Contains(now time.Time) bool {
	start, end, err := s.Window()
	if err != nil {
		return false
	}

	m := ClockOf(now).Minutes()

	return start.Minutes() <= m && m < end.Minutes()
}

// EndsAt returns the instant the session ends on the day of now.
func (s ClassSession) EndsAt(now time.Time) (time.Time, error) {
	_, end, err := s.Window()
	if err != nil {
		return time.Time{}, err
	}

	return end.On(now), nil
}

// Resolve returns the first session in the given order whose window contains
// the time of day of now.
func Resolve(sessions []ClassSession, now time.Time) (ClassSession, bool) {
	for _, s := range sessions {
		if s.Contains(now) {
			return s, true
		}
	}

	return ClassSession{}, false
}

// Decode parses the JSON timetable. An empty payload is an empty timetable.
func Decode(data []byte) ([]ClassSession, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var sessions []ClassSession

	err := json.Unmarshal(data, &sessions)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// Encode serialises the timetable to its JSON form.
func Encode(sessions []ClassSession) ([]byte, error) {
	if sessions == nil {
		sessions = []ClassSession{}
	}

	return json.Marshal(sessions)
}

// Sorted returns a copy of sessions ordered by start time, then subject.
// Malformed entries are placed last.
func Sorted(sessions []ClassSession) []ClassSession {
	sorted := slices.Clone(sessions)

	key := func(s ClassSession) int {
		start, _, err := s.Window()
		if err != nil {
			return minutesInADay
		}

		return start.Minutes()
	}

	slices.SortStableFunc(sorted, func(a, b ClassSession) int {
		if c := cmp.Compare(key(a), key(b)); c != 0 {
			return c
		}

		switch {
		case natural.Less(a.Subject, b.Subject):
			return -1
		case natural.Less(b.Subject, a.Subject):
			return 1
		}

		return 0
	})

	return sorted
}
