package tracker

import (
	"time"

	"github.com/benbjohnson/clock"
)

// TimerKind identifies which accumulation timer is running.
type TimerKind int

const (
	NoTimer TimerKind = iota
	FocusTimer
	DistractionTimer
)

func (k TimerKind) String() string {
	switch k {
	case FocusTimer:
		return "focus"
	case DistractionTimer:
		return "distraction"
	}

	return "none"
}

// Accumulator counts focused and distracted seconds. It owns at most one
// one-second ticker; switching or stopping always stops the previous ticker
// first, so no stale tick stream survives a mode change.
type Accumulator struct {
	clock      clock.Clock
	ticker     *clock.Ticker
	running    TimerKind
	focused    int
	distracted int
}

func NewAccumulator(clk clock.Clock) *Accumulator {
	if clk == nil {
		clk = clock.New()
	}

	return &Accumulator{clock: clk}
}

// StartFocused switches to the focus timer. It is a no-op if the focus timer
// is already running.
func (a *Accumulator) StartFocused() {
	a.start(FocusTimer)
}

// StartDistracted switches to the distraction timer. It is a no-op if the
// distraction timer is already running.
func (a *Accumulator) StartDistracted() {
	a.start(DistractionTimer)
}

// Stop cancels the running timer, if any.
func (a *Accumulator) Stop() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}

	a.running = NoTimer
}

func (a *Accumulator) start(kind TimerKind) {
	if a.running == kind {
		return
	}

	a.Stop()

	a.ticker = a.clock.Ticker(time.Second)
	a.running = kind
}

// C delivers one value per elapsed second while a timer runs. It is nil when
// stopped, which blocks forever in a select.
func (a *Accumulator) C() <-chan time.Time {
	if a.ticker == nil {
		return nil
	}

	return a.ticker.C
}

// Advance records one elapsed second against the running timer.
func (a *Accumulator) Advance() {
	switch a.running {
	case FocusTimer:
		a.focused++
	case DistractionTimer:
		a.distracted++
	}
}

// Reset zeroes both counters.
func (a *Accumulator) Reset() {
	a.focused = 0
	a.distracted = 0
}

func (a *Accumulator) Running() TimerKind {
	return a.running
}

func (a *Accumulator) Focused() int {
	return a.focused
}

func (a *Accumulator) Distracted() int {
	return a.distracted
}
