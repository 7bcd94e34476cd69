package lifecycle

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got []Transition
	mu  sync.Mutex
}

func (r *recorder) handle(t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.got = append(r.got, t)
}

func (r *recorder) transitions() []Transition {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Transition(nil), r.got...)
}

func TestParse(t *testing.T) {
	testCases := map[string]Transition{
		"foreground": Foreground,
		" Active ":   Foreground,
		"fg":         Foreground,
		"BACKGROUND": Background,
		"bg":         Background,
		"inactive":   Inactive,
	}

	for input, want := range testCases {
		got, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := Parse("minimised")
	assert.ErrorIs(t, err, errUnknownTransition)
}

func TestTransitionAway(t *testing.T) {
	assert.False(t, Foreground.Away())
	assert.True(t, Background.Away())
	assert.True(t, Inactive.Away())
}

func TestBroadcasterDropsRepeats(t *testing.T) {
	b := NewBroadcaster()
	r := &recorder{}

	unsubscribe := b.Subscribe(r.handle)
	defer unsubscribe()

	b.Publish(Foreground)
	b.Publish(Foreground)
	b.Publish(Background)
	b.Publish(Inactive)
	b.Publish(Inactive)
	b.Publish(Foreground)

	assert.Equal(t, []Transition{Foreground, Background, Inactive, Foreground}, r.transitions())
}

func TestBroadcasterReplaysCurrentState(t *testing.T) {
	b := NewBroadcaster()
	b.Publish(Background)

	r := &recorder{}
	unsubscribe := b.Subscribe(r.handle)
	defer unsubscribe()

	assert.Equal(t, []Transition{Background}, r.transitions())
	assert.Equal(t, Background, b.Current())
}

func TestBroadcasterUnsubscribe(t *testing.T) {
	b := NewBroadcaster()
	r := &recorder{}

	unsubscribe := b.Subscribe(r.handle)
	b.Publish(Foreground)

	unsubscribe()
	unsubscribe()

	b.Publish(Background)

	assert.Equal(t, []Transition{Foreground}, r.transitions())
}

func TestReaderSource(t *testing.T) {
	input := strings.NewReader("# scripted run\nforeground\n\nbackground\nsideways\nbackground\nactive\n")

	s := NewReaderSource(input)
	r := &recorder{}

	unsubscribe := s.Subscribe(r.handle)
	defer unsubscribe()

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []Transition{Foreground, Background, Foreground}, r.transitions())
}

type fakeIdle struct {
	err  error
	idle time.Duration
}

func (f *fakeIdle) IdleDuration() (time.Duration, error) {
	return f.idle, f.err
}

func TestIdleSourcePoll(t *testing.T) {
	provider := &fakeIdle{}
	s := NewIdleSource(provider, clock.NewMock(), 2*time.Minute, time.Second)
	r := &recorder{}

	unsubscribe := s.Subscribe(r.handle)
	defer unsubscribe()

	ctx := context.Background()

	provider.idle = 10 * time.Second
	require.NoError(t, s.poll(ctx))

	provider.idle = 3 * time.Minute
	require.NoError(t, s.poll(ctx))

	provider.err = errors.New("xprintidle: exit status 1")
	require.NoError(t, s.poll(ctx), "transient failures are not fatal")

	provider.err = nil
	provider.idle = 0
	require.NoError(t, s.poll(ctx))

	assert.Equal(t, []Transition{Foreground, Inactive, Foreground}, r.transitions())
}

func TestIdleSourceUnsupported(t *testing.T) {
	s := NewIdleSource(
		&fakeIdle{err: ErrIdleUnsupported},
		clock.NewMock(),
		time.Minute,
		time.Second,
	)

	err := s.Run(context.Background())
	assert.ErrorIs(t, err, ErrIdleUnsupported)
}

func TestIdleSourceStopsOnCancel(t *testing.T) {
	s := NewIdleSource(&fakeIdle{}, clock.NewMock(), time.Minute, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
	assert.Equal(t, Foreground, s.Current())
}
