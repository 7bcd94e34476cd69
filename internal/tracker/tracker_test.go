package tracker

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/classfocus/internal/lifecycle"
	"github.com/ayoisaiah/classfocus/internal/schedule"
)

const (
	waitFor = 2 * time.Second
	pollAt  = time.Millisecond
)

type fakeRepo struct {
	err      error
	sessions []schedule.ClassSession
	reads    atomic.Int32
}

func (r *fakeRepo) Read(context.Context) ([]schedule.ClassSession, error) {
	r.reads.Add(1)
	return r.sessions, r.err
}

type syncNotifier struct {
	sent atomic.Int32
}

func (n *syncNotifier) Send(string, string) error {
	n.sent.Add(1)
	return nil
}

type recorder struct {
	// closed to let end hooks finish, nil if they never block
	gate      chan struct{}
	snaps     []Snapshot
	summaries []Summary
	mu        sync.Mutex
}

func (r *recorder) change(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snaps = append(r.snaps, s)
}

func (r *recorder) end(s Summary) {
	if r.gate != nil {
		<-r.gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.summaries = append(r.summaries, s)
}

func (r *recorder) latest() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.snaps) == 0 {
		return Snapshot{}
	}

	return r.snaps[len(r.snaps)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snaps)
}

// lastIn returns the most recent snapshot in mode.
func (r *recorder) lastIn(mode Mode) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.snaps) - 1; i >= 0; i-- {
		if r.snaps[i].Mode == mode {
			return r.snaps[i]
		}
	}

	return Snapshot{}
}

func (r *recorder) modes() []Mode {
	r.mu.Lock()
	defer r.mu.Unlock()

	modes := make([]Mode, 0, len(r.snaps))

	for _, s := range r.snaps {
		if len(modes) == 0 || modes[len(modes)-1] != s.Mode {
			modes = append(modes, s.Mode)
		}
	}

	return modes
}

func (r *recorder) endSummaries() []Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Summary(nil), r.summaries...)
}

type harness struct {
	tracker  *Tracker
	err      error
	stopped  bool
	mock     *clock.Mock
	source   *lifecycle.Broadcaster
	repo     *fakeRepo
	notifier *syncNotifier
	rec      *recorder
	cancel   context.CancelFunc
	errc     chan error
}

func startTracker(
	t *testing.T,
	start time.Time,
	repo *fakeRepo,
	rescan time.Duration,
	initial lifecycle.Transition,
) *harness {
	t.Helper()

	return startTrackerWith(t, start, repo, rescan, initial, &recorder{})
}

func startTrackerWith(
	t *testing.T,
	start time.Time,
	repo *fakeRepo,
	rescan time.Duration,
	initial lifecycle.Transition,
	rec *recorder,
) *harness {
	t.Helper()

	h := &harness{
		mock:     clock.NewMock(),
		source:   lifecycle.NewBroadcaster(),
		repo:     repo,
		notifier: &syncNotifier{},
		rec:      rec,
		errc:     make(chan error, 1),
	}

	h.mock.Set(start)
	h.source.Publish(initial)

	tr := New(h.repo, h.source, h.notifier, Config{
		Clock:          h.mock,
		OnChange:       h.rec.change,
		OnEnd:          h.rec.end,
		Reminder:       testReminder,
		RescanInterval: rescan,
	})

	h.tracker = tr

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel

	go func() {
		h.errc <- tr.Run(ctx)
	}()

	t.Cleanup(func() {
		h.stop(t)
	})

	return h
}

// stop cancels the run and waits for Run to return.
func (h *harness) stop(t *testing.T) {
	t.Helper()

	h.cancel()

	if h.stopped {
		return
	}

	select {
	case h.err = <-h.errc:
		h.stopped = true
		assert.NoError(t, h.err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return")
	}
}

func (h *harness) waitUntil(t *testing.T, cond func(Snapshot) bool, msg string) {
	t.Helper()

	require.Eventually(t, func() bool {
		return cond(h.rec.latest())
	}, waitFor, pollAt, msg)
}

func (h *harness) waitMode(t *testing.T, mode Mode) {
	t.Helper()

	h.waitUntil(t, func(s Snapshot) bool {
		return s.Mode == mode
	}, "waiting for "+mode.String())
}

func TestTrackerRunsClassSession(t *testing.T) {
	repo := &fakeRepo{sessions: []schedule.ClassSession{mathClass}}
	h := startTracker(t, at(8, 0, 0), repo, 2*time.Hour, lifecycle.Foreground)

	h.waitMode(t, Focused)

	for i := 1; i <= 5; i++ {
		h.mock.Add(time.Second)
		h.waitUntil(t, func(s Snapshot) bool {
			return s.FocusedSeconds == i
		}, "focused seconds")
	}

	h.source.Publish(lifecycle.Background)
	h.waitMode(t, Distracted)
	assert.EqualValues(t, 1, h.notifier.sent.Load())

	for i := 1; i <= 3; i++ {
		h.mock.Add(time.Second)
		h.waitUntil(t, func(s Snapshot) bool {
			return s.DistractedSeconds == i
		}, "distracted seconds")
	}

	h.source.Publish(lifecycle.Foreground)
	h.waitMode(t, Focused)

	h.mock.Set(at(9, 0, 0))
	require.Eventually(t, func() bool {
		return slices.Contains(h.rec.modes(), Ended)
	}, waitFor, pollAt, "waiting for ended")

	snap := h.rec.lastIn(Ended)
	assert.Equal(t, NoTimer, snap.Timer)
	assert.Equal(t, 3, snap.DistractedSeconds)
	assert.GreaterOrEqual(t, snap.FocusedSeconds, 5)
	assert.EqualValues(t, 1, h.notifier.sent.Load())

	require.Eventually(t, func() bool {
		return len(h.rec.endSummaries()) == 1
	}, waitFor, pollAt)

	summary := h.rec.endSummaries()[0]
	assert.Equal(t, "Math", summary.Subject)
	assert.Equal(t, 1, summary.Reminders)
	assert.Equal(t, 3, summary.DistractedSeconds)
}

func TestTrackerFailsOpenOnUnreadableSchedule(t *testing.T) {
	repo := &fakeRepo{err: errors.New("bucket missing")}
	h := startTracker(t, at(8, 30, 0), repo, time.Minute, lifecycle.Foreground)

	require.Eventually(t, func() bool {
		return repo.reads.Load() >= 1
	}, waitFor, pollAt)

	next := lifecycle.Background

	require.Eventually(t, func() bool {
		h.source.Publish(next)

		if next == lifecycle.Background {
			next = lifecycle.Foreground
		} else {
			next = lifecycle.Background
		}

		return repo.reads.Load() >= 2
	}, waitFor, 5*pollAt, "lifecycle events while idle trigger a rescan")

	snap := h.rec.latest()
	assert.Equal(t, Idle, snap.Mode)
	assert.Equal(t, NoTimer, snap.Timer)
	assert.Zero(t, h.notifier.sent.Load())
}

func TestTrackerStartsDistractedWhenAway(t *testing.T) {
	repo := &fakeRepo{sessions: []schedule.ClassSession{mathClass}}
	h := startTracker(t, at(8, 10, 0), repo, time.Minute, lifecycle.Background)

	h.waitMode(t, Distracted)

	snap := h.rec.latest()
	assert.Equal(t, DistractionTimer, snap.Timer)
	assert.Equal(t, 1, snap.Reminders)
	assert.EqualValues(t, 1, h.notifier.sent.Load())
}

func TestTrackerRescanPicksUpNewSession(t *testing.T) {
	repo := &fakeRepo{sessions: []schedule.ClassSession{mathClass}}
	h := startTracker(t, at(7, 59, 0), repo, 30*time.Second, lifecycle.Foreground)

	require.Eventually(t, func() bool {
		return repo.reads.Load() >= 1
	}, waitFor, pollAt)
	assert.Equal(t, Idle, h.rec.latest().Mode)

	h.mock.Add(30 * time.Second)
	require.Eventually(t, func() bool {
		return repo.reads.Load() >= 2
	}, waitFor, pollAt)
	assert.Equal(t, Idle, h.rec.latest().Mode)

	h.mock.Add(30 * time.Second)
	h.waitMode(t, Focused)
	assert.Equal(t, at(9, 0, 0), h.rec.latest().EndsAt)
}

func TestTrackerEndedReturnsToIdle(t *testing.T) {
	short := schedule.ClassSession{Subject: "Quiz", Time: "08:00", EndTime: "08:01"}
	repo := &fakeRepo{sessions: []schedule.ClassSession{short}}
	h := startTracker(t, at(8, 0, 30), repo, 10*time.Second, lifecycle.Foreground)

	h.waitMode(t, Focused)

	h.mock.Set(at(8, 1, 0))
	require.Eventually(t, func() bool {
		modes := h.rec.modes()
		return len(modes) >= 3 && modes[2] == Ended
	}, waitFor, pollAt, "waiting for ended")

	h.mock.Add(10 * time.Second)
	h.waitMode(t, Idle)

	assert.Equal(t, []Mode{Idle, Focused, Ended, Idle}, h.rec.modes())
	assert.Eventually(t, func() bool {
		return len(h.rec.endSummaries()) == 1
	}, waitFor, pollAt)
}

func TestTrackerTeardownStopsTimers(t *testing.T) {
	repo := &fakeRepo{sessions: []schedule.ClassSession{mathClass}}
	h := startTracker(t, at(8, 0, 0), repo, time.Hour, lifecycle.Foreground)

	h.waitMode(t, Focused)
	h.stop(t)

	assert.Equal(t, NoTimer, h.tracker.machine.acc.Running())

	published := make(chan struct{})

	go func() {
		h.source.Publish(lifecycle.Background)
		close(published)
	}()

	select {
	case <-published:
	case <-time.After(waitFor):
		t.Fatal("publish blocked after Run returned")
	}

	before := h.rec.count()
	h.mock.Add(5 * time.Second)

	assert.Equal(t, before, h.rec.count())
	assert.Equal(t, Focused, h.tracker.machine.Mode())
	assert.Zero(t, h.notifier.sent.Load())
}

func TestTrackerWaitsForEndHooks(t *testing.T) {
	short := schedule.ClassSession{Subject: "Quiz", Time: "08:00", EndTime: "08:01"}
	repo := &fakeRepo{sessions: []schedule.ClassSession{short}}
	rec := &recorder{gate: make(chan struct{})}
	h := startTrackerWith(t, at(8, 0, 30), repo, time.Hour, lifecycle.Foreground, rec)

	h.waitMode(t, Focused)

	h.mock.Set(at(8, 1, 0))
	require.Eventually(t, func() bool {
		return slices.Contains(h.rec.modes(), Ended)
	}, waitFor, pollAt, "waiting for ended")

	h.cancel()

	select {
	case <-h.errc:
		t.Fatal("Run returned while the end hook was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(rec.gate)
	h.stop(t)

	summaries := h.rec.endSummaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, "Quiz", summaries[0].Subject)
}

func TestTrackerBackToBackClasses(t *testing.T) {
	physics := schedule.ClassSession{Subject: "Physics", Time: "09:00", EndTime: "10:00"}
	repo := &fakeRepo{sessions: []schedule.ClassSession{mathClass, physics}}

	// the rescan ticker never fires during the test
	h := startTracker(t, at(8, 59, 58), repo, 2*time.Hour, lifecycle.Foreground)

	h.waitMode(t, Focused)
	assert.Equal(t, "Math", h.rec.latest().Session.Subject)

	h.mock.Set(at(9, 0, 0))
	h.waitUntil(t, func(s Snapshot) bool {
		return s.Mode == Focused && s.Session.Subject == "Physics"
	}, "waiting for the next class")

	assert.Equal(t, []Mode{Idle, Focused, Ended, Focused}, h.rec.modes())
	assert.Equal(t, at(10, 0, 0), h.rec.latest().EndsAt)
	assert.GreaterOrEqual(t, repo.reads.Load(), int32(2))
}
