package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

// IdleSource treats a desktop that has seen no input for Threshold as
// inactive, and any fresh input as a return to the foreground.
type IdleSource struct {
	*Broadcaster
	provider  IdleProvider
	clock     clock.Clock
	threshold time.Duration
	interval  time.Duration
}

func NewIdleSource(
	provider IdleProvider,
	clk clock.Clock,
	threshold, interval time.Duration,
) *IdleSource {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &IdleSource{
		Broadcaster: NewBroadcaster(),
		provider:    provider,
		clock:       clk,
		threshold:   threshold,
		interval:    interval,
	}
}

// Run polls the provider until ctx is cancelled. It returns
// ErrIdleUnsupported straight away when the platform cannot report idleness.
func (s *IdleSource) Run(ctx context.Context) error {
	if err := s.poll(ctx); err != nil {
		return err
	}

	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.poll(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *IdleSource) poll(ctx context.Context) error {
	idle, err := s.provider.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			return err
		}

		slog.DebugContext(ctx, "idle check failed", "err", err)

		return nil
	}

	if idle >= s.threshold {
		s.Publish(Inactive)
	} else {
		s.Publish(Foreground)
	}

	return nil
}
