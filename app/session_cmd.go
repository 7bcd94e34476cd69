package app

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/classfocus/internal/tracker"
	"github.com/ayoisaiah/classfocus/store"
)

// sessionEndTimeout bounds the end hook once tracking has been stopped.
const sessionEndTimeout = 30 * time.Second

// summaryRecorder persists finished class sessions.
type summaryRecorder interface {
	SaveSummary(ctx context.Context, s tracker.Summary) error
}

// sessionEnded returns the hook run once per finished class session. It
// records the summary and then runs the configured command, if any. The hook
// outlives the cancellation of ctx so a session that ends during shutdown is
// still recorded.
func sessionEnded(
	runCtx context.Context,
	recorder summaryRecorder,
	cmd string,
) func(tracker.Summary) {
	return func(s tracker.Summary) {
		ctx, cancel := context.WithTimeout(
			context.WithoutCancel(runCtx),
			sessionEndTimeout,
		)
		defer cancel()

		err := recorder.SaveSummary(ctx, s)
		if err != nil {
			slog.ErrorContext(
				ctx,
				"unable to save class session",
				"subject", s.Subject,
				"err", err,
			)
		}

		if cmd == "" {
			return
		}

		out, err := runSessionCmd(ctx, cmd)
		if err != nil {
			slog.ErrorContext(ctx, "session command failed", "err", err)
			return
		}

		slog.InfoContext(ctx, "session command finished", "output", string(out))
	}
}

// runSessionCmd executes a shell-style command line without a shell and
// returns its combined output.
func runSessionCmd(ctx context.Context, cmdStr string) ([]byte, error) {
	args, err := shellquote.Split(cmdStr)
	if err != nil {
		return nil, errSessionCmd.Fmt(cmdStr).Wrap(err)
	}

	if len(args) == 0 {
		return nil, nil
	}

	//nolint:gosec // the command comes from the user's own config
	out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
	if err != nil {
		return out, errSessionCmd.Fmt(cmdStr).Wrap(err)
	}

	return out, nil
}

var _ summaryRecorder = (*store.Client)(nil)
