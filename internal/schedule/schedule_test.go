package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, second, 0, time.Local)
}

var timetable = []ClassSession{
	{ID: "1", Subject: "Math", Time: "08:00", EndTime: "09:00"},
	{ID: "2", Subject: "Physics", Time: "09:00", EndTime: "10:30"},
	{ID: "3", Subject: "Overlap", Time: "08:30", EndTime: "09:30"},
	{ID: "4", Subject: "Inverted", Time: "10:00", EndTime: "09:00"},
	{ID: "5", Subject: "Garbage", Time: "soon", EndTime: "later"},
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name    string
		now     time.Time
		wantID  string
		matched bool
	}{
		{"start boundary is inclusive", at(8, 0, 0), "1", true},
		{"seconds are discarded", at(8, 0, 59), "1", true},
		{"last minute of a session", at(8, 59, 59), "1", true},
		{"end boundary is exclusive", at(9, 0, 0), "2", true},
		{"overlapping entries resolve to the first", at(8, 45, 0), "1", true},
		{"inverted bounds never match", at(9, 30, 0), "2", true},
		{"before any class", at(7, 59, 59), "", false},
		{"after the last class", at(10, 30, 0), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Resolve(timetable, tc.now)

			assert.Equal(t, tc.matched, ok)
			assert.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestResolveEmptySchedule(t *testing.T) {
	_, ok := Resolve(nil, at(8, 0, 0))
	assert.False(t, ok)
}

func TestResolveMalformedOnly(t *testing.T) {
	sessions := []ClassSession{
		{Subject: "Chemistry", Time: "10:00", EndTime: "09:00"},
	}

	_, ok := Resolve(sessions, at(9, 30, 0))
	assert.False(t, ok)
}

// Resolve must agree with a direct scan over every minute of the day.
func TestResolveMatchesWindowScan(t *testing.T) {
	for m := 0; m < minutesInADay; m++ {
		now := at(0, 0, 0).Add(time.Duration(m) * time.Minute)

		var want *ClassSession

		for i := range timetable {
			start, end, err := timetable[i].Window()
			if err != nil {
				continue
			}

			if start.Minutes() <= m && m < end.Minutes() {
				want = &timetable[i]
				break
			}
		}

		got, ok := Resolve(timetable, now)
		if want == nil {
			if ok {
				t.Fatalf("%s: expected no session, got %s", now.Format("15:04"), got.ID)
			}

			continue
		}

		if !ok || got.ID != want.ID {
			t.Fatalf("%s: expected %s, got %s", now.Format("15:04"), want.ID, got.ID)
		}
	}
}

func TestWindow(t *testing.T) {
	testCases := []struct {
		session   ClassSession
		start     ClockTime
		end       ClockTime
		malformed bool
	}{
		{ClassSession{Time: "08:00", EndTime: "09:15"}, ClockTime{8, 0}, ClockTime{9, 15}, false},
		{ClassSession{Time: " 7:05", EndTime: "07:06 "}, ClockTime{7, 5}, ClockTime{7, 6}, false},
		{ClassSession{Time: "23:00", EndTime: "00:30"}, ClockTime{}, ClockTime{}, true},
		{ClassSession{Time: "09:00", EndTime: "09:00"}, ClockTime{}, ClockTime{}, true},
		{ClassSession{Time: "24:00", EndTime: "24:30"}, ClockTime{}, ClockTime{}, true},
		{ClassSession{Time: "08:60", EndTime: "09:00"}, ClockTime{}, ClockTime{}, true},
		{ClassSession{Time: "8", EndTime: "9"}, ClockTime{}, ClockTime{}, true},
		{ClassSession{Time: "", EndTime: ""}, ClockTime{}, ClockTime{}, true},
	}

	for _, tc := range testCases {
		start, end, err := tc.session.Window()
		if tc.malformed {
			assert.ErrorIs(t, err, ErrMalformedSession, "%+v", tc.session)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tc.start, start)
		assert.Equal(t, tc.end, end)
	}
}

func TestEndsAt(t *testing.T) {
	s := ClassSession{Subject: "Math", Time: "08:00", EndTime: "09:00"}

	end, err := s.EndsAt(at(8, 5, 30))
	require.NoError(t, err)
	assert.True(t, end.Equal(at(9, 0, 0)), "got %s", end)

	_, err = ClassSession{Time: "10:00", EndTime: "09:00"}.EndsAt(at(9, 0, 0))
	assert.True(t, errors.Is(err, ErrMalformedSession))
}

func TestNew(t *testing.T) {
	s, err := New("abc", "  Biology ", "13:00", "14:00")
	require.NoError(t, err)
	assert.Equal(t, ClassSession{ID: "abc", Subject: "Biology", Time: "13:00", EndTime: "14:00"}, s)

	_, err = New("abc", " ", "13:00", "14:00")
	assert.ErrorIs(t, err, errEmptySubject)

	_, err = New("abc", "Biology", "14:00", "13:00")
	assert.ErrorIs(t, err, ErrMalformedSession)
}

func TestDecode(t *testing.T) {
	data := []byte(`[
		{"id":"1700000000000","subject":"Math","time":"08:00","endTime":"09:00"},
		{"id":"1700000000001","subject":"Art","time":"11:00"}
	]`)

	got, err := Decode(data)
	require.NoError(t, err)

	want := []ClassSession{
		{ID: "1700000000000", Subject: "Math", Time: "08:00", EndTime: "09:00"},
		{ID: "1700000000001", Subject: "Art", Time: "11:00"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}

	empty, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Decode([]byte(`{"subject":`))
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	b, err = Encode([]ClassSession{{ID: "1", Subject: "Math", Time: "08:00", EndTime: "09:00"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","subject":"Math","time":"08:00","endTime":"09:00"}]`, string(b))
}

func TestSorted(t *testing.T) {
	sessions := []ClassSession{
		{Subject: "Lab 10", Time: "09:00", EndTime: "10:00"},
		{Subject: "Broken", Time: "x", EndTime: "y"},
		{Subject: "Lab 2", Time: "09:00", EndTime: "10:00"},
		{Subject: "Math", Time: "08:00", EndTime: "09:00"},
	}

	got := Sorted(sessions)

	subjects := make([]string, len(got))
	for i := range got {
		subjects[i] = got[i].Subject
	}

	assert.Equal(t, []string{"Math", "Lab 2", "Lab 10", "Broken"}, subjects)
	assert.Equal(t, "Lab 10", sessions[0].Subject, "input must not be reordered")
}
