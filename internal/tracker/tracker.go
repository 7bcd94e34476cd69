package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ayoisaiah/classfocus/internal/lifecycle"
	"github.com/ayoisaiah/classfocus/internal/schedule"
)

const defaultRescanInterval = 30 * time.Second

// ScheduleRepository provides read access to the stored timetable.
type ScheduleRepository interface {
	Read(ctx context.Context) ([]schedule.ClassSession, error)
}

// Config holds the collaborators and tuning of a Tracker.
type Config struct {
	Clock          clock.Clock
	Logger         *slog.Logger
	OnChange       func(Snapshot)
	OnEnd          func(Summary)
	Reminder       Reminder
	RescanInterval time.Duration
}

// Tracker runs a Machine on a single sequential event loop.
type Tracker struct {
	repo     ScheduleRepository
	source   lifecycle.Source
	clock    clock.Clock
	machine  *Machine
	logger   *slog.Logger
	onChange func(Snapshot)
	onEnd    func(Summary)
	rescan   time.Duration
	hooks    sync.WaitGroup
}

func New(
	repo ScheduleRepository,
	source lifecycle.Source,
	notifier Notifier,
	cfg Config,
) *Tracker {
	t := &Tracker{
		repo:     repo,
		source:   source,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		onChange: cfg.OnChange,
		onEnd:    cfg.OnEnd,
		rescan:   cfg.RescanInterval,
	}

	if t.clock == nil {
		t.clock = clock.New()
	}

	if t.logger == nil {
		t.logger = slog.Default()
	}

	if t.rescan <= 0 {
		t.rescan = defaultRescanInterval
	}

	t.machine = NewMachine(
		NewAccumulator(t.clock),
		notifier,
		cfg.Reminder,
		WithLogger(t.logger),
		WithEndHook(t.ended),
	)

	return t
}

// ended hands a summary off the event loop so that recording it never delays
// tick processing. Run waits for pending hooks before it returns.
func (t *Tracker) ended(s Summary) {
	if t.onEnd == nil {
		return
	}

	t.hooks.Add(1)

	go func() {
		defer t.hooks.Done()
		t.onEnd(s)
	}()
}

// Run processes lifecycle events, accumulator ticks and schedule snapshots
// until ctx is cancelled. The machine's timers are stopped, the lifecycle
// subscription is removed and end hooks have finished before it returns.
func (t *Tracker) Run(ctx context.Context) error {
	defer t.hooks.Wait()

	done := make(chan struct{})
	defer close(done)

	events := make(chan lifecycle.Transition, 16)

	unsubscribe := t.source.Subscribe(func(tr lifecycle.Transition) {
		select {
		case events <- tr:
		case <-done:
		}
	})
	defer unsubscribe()

	defer t.machine.Close()

	snapshots := make(chan []schedule.ClassSession, 1)
	scanning := false

	requestScan := func() {
		if scanning {
			return
		}

		scanning = true

		go func() {
			sessions, err := t.repo.Read(ctx)
			if err != nil {
				t.logger.WarnContext(
					ctx,
					"schedule unavailable, treating as empty",
					"err", err,
				)

				sessions = nil
			}

			select {
			case snapshots <- sessions:
			case <-done:
			}
		}()
	}

	rescan := t.clock.Ticker(t.rescan)
	defer rescan.Stop()

	var last lifecycle.Transition

	prev := t.machine.Snapshot()
	t.publish(prev)

	requestScan()

	for {
		active := t.machine.Active()

		select {
		case <-ctx.Done():
			return nil

		case tr := <-events:
			last = tr

			if !t.machine.Active() {
				requestScan()
				continue
			}

			t.machine.HandleLifecycle(tr, t.clock.Now())

		case <-t.machine.acc.C():
			t.machine.Tick(t.clock.Now())

		case <-rescan.C:
			if t.machine.Active() {
				t.machine.Expire(t.clock.Now())
				break
			}

			requestScan()

		case sessions := <-snapshots:
			scanning = false
			now := t.clock.Now()

			wasActive := t.machine.Active()
			t.machine.Resolve(sessions, now)

			// a session that starts while the user is already away goes
			// straight to distracted
			if !wasActive && t.machine.Active() && last.Away() {
				t.machine.HandleLifecycle(last, now)
			}
		}

		// the next class may start the moment this one ends
		if active && !t.machine.Active() {
			requestScan()
		}

		if snap := t.machine.Snapshot(); snap != prev {
			prev = snap
			t.publish(snap)
		}
	}
}

func (t *Tracker) publish(s Snapshot) {
	if t.onChange != nil {
		t.onChange(s)
	}
}
