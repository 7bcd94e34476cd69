package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/classfocus/internal/config"
	"github.com/ayoisaiah/classfocus/internal/lifecycle"
	"github.com/ayoisaiah/classfocus/internal/logging"
	"github.com/ayoisaiah/classfocus/internal/notify"
	"github.com/ayoisaiah/classfocus/internal/static"
	"github.com/ayoisaiah/classfocus/internal/tracker"
	"github.com/ayoisaiah/classfocus/internal/ui"
	"github.com/ayoisaiah/classfocus/store"
)

// runner is a lifecycle source that produces events until ctx is cancelled.
type runner interface {
	lifecycle.Source
	Run(ctx context.Context) error
}

// trackAction handles the track command, the default, which follows the
// timetable and tracks focus while a class is in session.
func trackAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(config.LogFilePath(), cfg.CLI.Debug)
	if err != nil {
		return err
	}

	defer logFile.Close()

	if !cfg.Tracking.Enabled {
		return errTrackingDisabled
	}

	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	var repo tracker.ScheduleRepository = client

	if cfg.Tracking.ScheduleCacheTTL > 0 {
		repo = store.NewCachedSchedule(client, cfg.Tracking.ScheduleCacheTTL)
	}

	err = static.Install(config.Dir())
	if err != nil {
		slog.WarnContext(ctx.Context, "unable to install static files", "err", err)
	}

	notifier := notify.New(notify.Options{
		Enabled: cfg.Notifications.Enabled,
		Icon:    static.IconPath(config.Dir()),
		Sound:   cfg.Notifications.Sound,
		Logger:  slog.Default(),
	})
	defer notifier.Wait()

	runCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	trackerCfg := tracker.Config{
		Clock:          clock.New(),
		Logger:         slog.Default(),
		RescanInterval: cfg.Tracking.RescanInterval,
		Reminder: tracker.Reminder{
			Title: cfg.Notifications.Title,
			Body:  cfg.Notifications.Body,
		},
		OnEnd: sessionEnded(runCtx, client, cfg.Settings.Cmd),
	}

	slog.InfoContext(
		runCtx,
		"tracking started",
		"source", cfg.Tracking.Source,
		"notifications", cfg.Notifications.Enabled,
	)

	if cfg.Tracking.Source == config.SourceTerminal {
		return trackInTerminal(runCtx, cfg, repo, notifier, trackerCfg)
	}

	var src runner

	switch cfg.Tracking.Source {
	case config.SourceIdle:
		src = lifecycle.NewIdleSource(
			lifecycle.NewIdleProvider(),
			trackerCfg.Clock,
			cfg.Tracking.IdleThreshold,
			cfg.Tracking.IdlePollInterval,
		)
	default:
		src = lifecycle.NewReaderSource(config.Stdin)
	}

	printer := ui.NewStatusPrinter(config.Stdout, cfg.Display.TwentyFourHour)
	trackerCfg.OnChange = printer.Print

	return trackHeadless(runCtx, src, repo, notifier, trackerCfg)
}

// trackHeadless runs the tracker and its lifecycle source until either one
// fails or ctx is cancelled.
func trackHeadless(
	ctx context.Context,
	src runner,
	repo tracker.ScheduleRepository,
	notifier tracker.Notifier,
	cfg tracker.Config,
) error {
	t := tracker.New(repo, src, notifier, cfg)

	g, gctx := errgroup.WithContext(ctx)

	notifyService(ctx, daemon.SdNotifyReady)
	defer notifyService(ctx, daemon.SdNotifyStopping)

	g.Go(func() error {
		return t.Run(gctx)
	})

	g.Go(func() error {
		return src.Run(gctx)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// notifyService reports the tracker's state when it runs as a systemd unit.
// Outside systemd this does nothing.
func notifyService(ctx context.Context, state string) {
	_, err := daemon.SdNotify(false, state)
	if err != nil {
		slog.WarnContext(ctx, "unable to notify systemd", "state", state, "err", err)
	}
}

// trackInTerminal shows the tracking view. Leaving the terminal window counts
// as a distraction.
func trackInTerminal(
	ctx context.Context,
	cfg *config.Config,
	repo tracker.ScheduleRepository,
	notifier tracker.Notifier,
	trackerCfg tracker.Config,
) error {
	source := lifecycle.NewBroadcaster()

	// the view has focus when it starts
	source.Publish(lifecycle.Foreground)

	model := ui.NewModel(
		source,
		cfg.Display.DarkTheme,
		cfg.Display.TwentyFourHour,
	)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := append(ui.ProgramOptions(), tea.WithContext(runCtx))
	p := tea.NewProgram(model, opts...)

	trackerCfg.OnChange = func(s tracker.Snapshot) {
		p.Send(ui.SnapshotMsg(s))
	}

	t := tracker.New(repo, source, notifier, trackerCfg)

	done := make(chan error, 1)

	go func() {
		done <- t.Run(runCtx)
	}()

	_, err := p.Run()

	cancel()

	trackErr := <-done

	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}

	return errors.Join(err, trackErr)
}
