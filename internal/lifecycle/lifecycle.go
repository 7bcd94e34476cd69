// Package lifecycle turns host signals (terminal focus, desktop idleness,
// scripted input) into foreground/background transitions
package lifecycle

import (
	"strings"
	"sync"

	"github.com/ayoisaiah/classfocus/internal/apperr"
)

// Transition is a change in the host application's visibility.
type Transition int

const (
	Foreground Transition = iota + 1
	Background
	Inactive
)

var errUnknownTransition = &apperr.Error{
	Message: "unknown lifecycle transition %q (expected foreground, background or inactive)",
}

func (t Transition) String() string {
	switch t {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	case Inactive:
		return "inactive"
	}

	return "unknown"
}

// Away reports whether the transition moves the user away from the app.
func (t Transition) Away() bool {
	return t == Background || t == Inactive
}

// Parse converts a textual transition. "active" is accepted as an alias for
// foreground.
func Parse(s string) (Transition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foreground", "fg", "active":
		return Foreground, nil
	case "background", "bg":
		return Background, nil
	case "inactive":
		return Inactive, nil
	}

	return 0, errUnknownTransition.Fmt(s)
}

// Handler receives transitions.
type Handler func(Transition)

// Source emits lifecycle transitions to its subscribers.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Broadcaster is a Source that fans published transitions out to every
// subscriber. Repeats of the last transition are dropped, and a new
// subscriber is immediately told the current state when one is known.
type Broadcaster struct {
	handlers map[int]Handler
	current  Transition
	nextID   int
	mu       sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers h and returns a function that removes it.
func (b *Broadcaster) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	current := b.current
	b.mu.Unlock()

	if current != 0 {
		h(current)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers t to all subscribers unless it repeats the current state.
func (b *Broadcaster) Publish(t Transition) {
	b.mu.Lock()
	if t == b.current {
		b.mu.Unlock()
		return
	}

	b.current = t

	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(t)
	}
}

// Current returns the last published transition, or 0 if none.
func (b *Broadcaster) Current() Transition {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.current
}
