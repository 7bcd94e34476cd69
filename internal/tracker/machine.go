package tracker

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/classfocus/internal/lifecycle"
	"github.com/ayoisaiah/classfocus/internal/schedule"
)

// Mode is the tracking state.
type Mode int

const (
	Idle Mode = iota
	Focused
	Distracted
	Ended
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Focused:
		return "focused"
	case Distracted:
		return "distracted"
	case Ended:
		return "ended"
	}

	return "unknown"
}

// Notifier delivers a reminder. Implementations must not block.
type Notifier interface {
	Send(title, body string) error
}

// Reminder is the payload sent each time the user drifts away mid-class.
type Reminder struct {
	Title string
	Body  string
}

// Snapshot is a read-only view of the machine.
type Snapshot struct {
	EndsAt            time.Time
	Session           schedule.ClassSession
	Mode              Mode
	Timer             TimerKind
	FocusedSeconds    int
	DistractedSeconds int
	Reminders         int
}

// Summary describes a session that reached its end.
type Summary struct {
	Subject           string    `json:"subject"`
	Start             string    `json:"start"`
	End               string    `json:"end"`
	EndedAt           time.Time `json:"ended_at"`
	FocusedSeconds    int       `json:"focused_seconds"`
	DistractedSeconds int       `json:"distracted_seconds"`
	Reminders         int       `json:"reminders"`
}

// Machine is the class-aware focus tracking state machine. It is not safe for
// concurrent use: a single event loop owns it.
type Machine struct {
	endsAt    time.Time
	acc       *Accumulator
	notifier  Notifier
	onEnd     func(Summary)
	logger    *slog.Logger
	reminder  Reminder
	session   schedule.ClassSession
	mode      Mode
	reminders int
}

// Option configures a Machine.
type Option func(*Machine)

// WithEndHook registers fn to receive a Summary whenever a session ends.
func WithEndHook(fn func(Summary)) Option {
	return func(m *Machine) {
		m.onEnd = fn
	}
}

// WithLogger sets the machine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

func NewMachine(
	acc *Accumulator,
	notifier Notifier,
	reminder Reminder,
	opts ...Option,
) *Machine {
	m := &Machine{
		acc:      acc,
		notifier: notifier,
		reminder: reminder,
		mode:     Idle,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Active reports whether a session is being tracked.
func (m *Machine) Active() bool {
	return m.mode == Focused || m.mode == Distracted
}

func (m *Machine) Mode() Mode {
	return m.mode
}

// Resolve runs a resolution cycle against a schedule snapshot. It only has an
// effect in Idle or Ended; an active session is never replaced, but it is
// ended if its end time has passed.
func (m *Machine) Resolve(sessions []schedule.ClassSession, now time.Time) {
	if m.Active() {
		m.Expire(now)
		return
	}

	session, ok := schedule.Resolve(sessions, now)
	if !ok {
		if m.mode == Ended {
			m.mode = Idle
			m.session = schedule.ClassSession{}
			m.endsAt = time.Time{}
		}

		return
	}

	endsAt, err := session.EndsAt(now)
	if err != nil {
		// Resolve never returns a malformed session
		return
	}

	m.session = session
	m.endsAt = endsAt
	m.reminders = 0
	m.mode = Focused

	m.acc.Stop()
	m.acc.Reset()
	m.acc.StartFocused()

	m.logger.Info(
		"class session started",
		"subject", session.Subject,
		"start", session.Time,
		"end", session.EndTime,
	)
}

// HandleLifecycle applies a foreground/background transition.
func (m *Machine) HandleLifecycle(t lifecycle.Transition, now time.Time) {
	if !m.Active() {
		return
	}

	if m.checkEnd(now) {
		return
	}

	switch {
	case m.mode == Focused && t.Away():
		m.mode = Distracted
		m.acc.StartDistracted()
		m.remind()
	case m.mode == Distracted && t == lifecycle.Foreground:
		m.mode = Focused
		m.acc.StartFocused()
	}
}

// Tick processes one accumulator tick.
func (m *Machine) Tick(now time.Time) {
	if !m.Active() {
		return
	}

	if m.checkEnd(now) {
		return
	}

	m.acc.Advance()
}

// Expire ends an active session whose end time has passed. It reports
// whether the session ended.
func (m *Machine) Expire(now time.Time) bool {
	if !m.Active() {
		return false
	}

	return m.checkEnd(now)
}

// Close stops any running timer.
func (m *Machine) Close() {
	m.acc.Stop()
}

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:              m.mode,
		Timer:             m.acc.Running(),
		FocusedSeconds:    m.acc.Focused(),
		DistractedSeconds: m.acc.Distracted(),
		Reminders:         m.reminders,
		EndsAt:            m.endsAt,
	}

	if m.mode != Idle {
		s.Session = m.session
	}

	return s
}

// checkEnd moves an active session to Ended once now reaches its end.
func (m *Machine) checkEnd(now time.Time) bool {
	if now.Before(m.endsAt) {
		return false
	}

	m.acc.Stop()
	m.mode = Ended

	m.logger.Info(
		"class session ended",
		"subject", m.session.Subject,
		"focused_seconds", m.acc.Focused(),
		"distracted_seconds", m.acc.Distracted(),
		"reminders", m.reminders,
	)

	if m.onEnd != nil {
		m.onEnd(Summary{
			Subject:           m.session.Subject,
			Start:             m.session.Time,
			End:               m.session.EndTime,
			EndedAt:           now,
			FocusedSeconds:    m.acc.Focused(),
			DistractedSeconds: m.acc.Distracted(),
			Reminders:         m.reminders,
		})
	}

	return true
}

func (m *Machine) remind() {
	m.reminders++

	err := m.notifier.Send(m.reminder.Title, m.reminder.Body)
	if err != nil {
		m.logger.Warn("reminder not delivered", "err", err)
	}
}
