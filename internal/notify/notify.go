// Package notify delivers distraction reminders as desktop notifications and
// optional alert sounds.
package notify

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// Notifier sends a reminder.
type Notifier interface {
	Send(title, body string) error
}

// Options configures the notifier built by New.
type Options struct {
	Logger  *slog.Logger
	Icon    string
	Sound   string
	Enabled bool
}

// New returns the notifier described by opts. Disabled notifications yield a
// notifier that drops every reminder. Otherwise delivery happens in the
// background and failures are only logged.
func New(opts Options) *Async {
	if !opts.Enabled {
		return NewAsync(Nop{}, opts.Logger)
	}

	var n Notifier = NewDesktop(opts.Icon)

	if opts.Sound != "" {
		n = Multi{n, Sound{Path: opts.Sound}}
	}

	return NewAsync(n, opts.Logger)
}

// Desktop shows a desktop notification.
type Desktop struct {
	send func(title, message, icon string) error
	icon string
}

func NewDesktop(icon string) Desktop {
	return Desktop{
		send: beeep.Notify,
		icon: icon,
	}
}

func (d Desktop) Send(title, body string) error {
	err := d.send(title, body, d.icon)
	if err != nil {
		return errNotificationFailed.Wrap(err)
	}

	return nil
}

// Nop discards reminders.
type Nop struct{}

func (Nop) Send(string, string) error {
	return nil
}

// Multi sends to each notifier in order and joins their errors.
type Multi []Notifier

func (m Multi) Send(title, body string) error {
	var errs []error

	for _, n := range m {
		if err := n.Send(title, body); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Async delivers reminders without blocking the caller. Delivery errors are
// logged and never returned.
type Async struct {
	next   Notifier
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewAsync(next Notifier, logger *slog.Logger) *Async {
	if logger == nil {
		logger = slog.Default()
	}

	return &Async{
		next:   next,
		logger: logger,
	}
}

func (a *Async) Send(title, body string) error {
	a.wg.Add(1)

	go func() {
		defer a.wg.Done()

		if err := a.next.Send(title, body); err != nil {
			a.logger.Warn("unable to deliver reminder", "err", err)
		}
	}()

	return nil
}

// Wait blocks until every pending reminder has been delivered or has failed.
func (a *Async) Wait() {
	a.wg.Wait()
}
