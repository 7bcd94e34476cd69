package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/classfocus/internal/timeutil"
	"github.com/ayoisaiah/classfocus/internal/tracker"
)

// TimeFormat returns the layout used to print clock times.
func TimeFormat(twentyFourHour bool) string {
	if twentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// StatusPrinter writes one line per mode change. It backs headless tracking.
type StatusPrinter struct {
	w              io.Writer
	last           tracker.Mode
	started        bool
	twentyFourHour bool
}

func NewStatusPrinter(w io.Writer, twentyFourHour bool) *StatusPrinter {
	return &StatusPrinter{
		w:              w,
		twentyFourHour: twentyFourHour,
	}
}

// Print reports s if its mode differs from the last one printed.
func (p *StatusPrinter) Print(s tracker.Snapshot) {
	if p.started && s.Mode == p.last {
		return
	}

	p.started = true
	p.last = s.Mode

	fmt.Fprintln(p.w, StatusLine(s, p.twentyFourHour))
}

// StatusLine summarises a snapshot on a single line.
func StatusLine(s tracker.Snapshot, twentyFourHour bool) string {
	prefix := pterm.Sprintf("[%s]", time.Now().Format(TimeFormat(twentyFourHour)))

	switch s.Mode {
	case tracker.Idle:
		return pterm.Sprintf("%s %s: no class in session", prefix, Mode(s.Mode))
	case tracker.Ended:
		return pterm.Sprintf(
			"%s %s: %s finished (focused %s, distracted %s, %d reminders)",
			prefix,
			Mode(s.Mode),
			Highlight(s.Session.Subject),
			timeutil.FormatSeconds(s.FocusedSeconds),
			timeutil.FormatSeconds(s.DistractedSeconds),
			s.Reminders,
		)
	}

	return pterm.Sprintf(
		"%s %s: %s until %s (focused %s, distracted %s)",
		prefix,
		Mode(s.Mode),
		Highlight(s.Session.Subject),
		s.EndsAt.Format(TimeFormat(twentyFourHour)),
		timeutil.FormatSeconds(s.FocusedSeconds),
		timeutil.FormatSeconds(s.DistractedSeconds),
	)
}
