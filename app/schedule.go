package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/classfocus/internal/config"
	"github.com/ayoisaiah/classfocus/internal/schedule"
	"github.com/ayoisaiah/classfocus/internal/timeutil"
	"github.com/ayoisaiah/classfocus/internal/ui"
	"github.com/ayoisaiah/classfocus/report"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// sessionRows builds the timetable table. Malformed entries are still listed
// so they can be fixed or removed, but they never resolve.
func sessionRows(sessions []schedule.ClassSession) [][]string {
	data := [][]string{{"#", "ID", "SUBJECT", "START", "END", "STATUS"}}

	for i, s := range schedule.Sorted(sessions) {
		status := ui.Green("ok")

		if _, _, err := s.Window(); err != nil {
			status = ui.Red("malformed")
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.ID,
			s.Subject,
			s.Time,
			s.EndTime,
			status,
		})
	}

	return data
}

// scheduleListAction prints the stored timetable sorted by start time.
func scheduleListAction(ctx *cli.Context) error {
	_, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	sessions, err := client.Read(ctx.Context)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		sorted := schedule.Sorted(sessions)
		if sorted == nil {
			sorted = []schedule.ClassSession{}
		}

		return printJSON(config.Stdout, sorted)
	}

	if len(sessions) == 0 {
		report.Info("The timetable is empty. Add a class with 'classfocus schedule add'")

		return nil
	}

	ui.PrintTable(sessionRows(sessions), config.Stdout)

	return nil
}

// sessionInput holds the values of a class session being added or edited.
type sessionInput struct {
	Subject string
	Start   string
	End     string
}

func validateClock(s string) error {
	_, err := schedule.ParseClock(s)
	return err
}

// promptSession asks for the fields of in that are still empty.
func promptSession(in *sessionInput) error {
	var fields []huh.Field

	if in.Subject == "" {
		fields = append(fields, huh.NewInput().
			Title("Subject").
			Value(&in.Subject))
	}

	if in.Start == "" {
		fields = append(fields, huh.NewInput().
			Title("Start time (HH:MM)").
			Placeholder("08:00").
			Validate(validateClock).
			Value(&in.Start))
	}

	if in.End == "" {
		fields = append(fields, huh.NewInput().
			Title("End time (HH:MM)").
			Placeholder("09:00").
			Validate(validateClock).
			Value(&in.End))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// completeSession fills the missing values of in, prompting for them when
// a terminal is attached.
func completeSession(in *sessionInput) error {
	if interactive() {
		err := promptSession(in)
		if err != nil {
			return err
		}
	}

	switch {
	case in.Subject == "":
		return errMissingValue.Fmt("subject")
	case in.Start == "":
		return errMissingValue.Fmt("start")
	case in.End == "":
		return errMissingValue.Fmt("end")
	}

	return nil
}

// scheduleAddAction adds a class session to the timetable.
func scheduleAddAction(ctx *cli.Context) error {
	_, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	in := sessionInput{
		Subject: ctx.String("subject"),
		Start:   ctx.String("start"),
		End:     ctx.String("end"),
	}

	err = completeSession(&in)
	if err != nil {
		return err
	}

	s, err := schedule.New("", in.Subject, in.Start, in.End)
	if err != nil {
		return err
	}

	s, err = client.Add(ctx.Context, s)
	if err != nil {
		return err
	}

	report.Success(
		"Added %s from %s to %s (%s)",
		s.Subject,
		s.Time,
		s.EndTime,
		s.ID,
	)

	return nil
}

// scheduleEditAction changes the supplied fields of a class session.
func scheduleEditAction(ctx *cli.Context) error {
	ref := ctx.Args().First()
	if ref == "" {
		return errMissingRef
	}

	_, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	s, err := client.Update(
		ctx.Context,
		ref,
		func(s schedule.ClassSession) (schedule.ClassSession, error) {
			subject := firstNonEmptyString(ctx.String("subject"), s.Subject)
			start := firstNonEmptyString(ctx.String("start"), s.Time)
			end := firstNonEmptyString(ctx.String("end"), s.EndTime)

			return schedule.New(s.ID, subject, start, end)
		},
	)
	if err != nil {
		return err
	}

	report.Success(
		"Updated %s: %s to %s",
		s.Subject,
		s.Time,
		s.EndTime,
	)

	return nil
}

// scheduleRemoveAction removes a class session. It requests confirmation
// unless --yes is set.
func scheduleRemoveAction(ctx *cli.Context) error {
	ref := ctx.Args().First()
	if ref == "" {
		return errMissingRef
	}

	_, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		sessions, err := client.Read(ctx.Context)
		if err != nil {
			return err
		}

		ui.PrintTable(sessionRows(sessions), config.Stdout)

		warning := pterm.Warning.Sprintf(
			"Class session %s will be removed from the timetable. Press ENTER to proceed",
			ref,
		)

		fmt.Fprint(config.Stdout, warning)

		reader := bufio.NewReader(config.Stdin)

		_, _ = reader.ReadString('\n')
	}

	removed, err := client.Remove(ctx.Context, ref)
	if err != nil {
		return err
	}

	report.Success("Removed %s (%s)", removed.Subject, removed.ID)

	return nil
}

// scheduleActiveAction reports the class in session at the given time.
func scheduleActiveAction(ctx *cli.Context) error {
	cfg, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	now := time.Now()

	if at := ctx.String("at"); at != "" {
		now, err = timeutil.FromStr(at, now)
		if err != nil {
			return err
		}
	}

	sessions, err := client.Read(ctx.Context)
	if err != nil {
		return err
	}

	s, ok := schedule.Resolve(sessions, now)
	if !ok {
		fmt.Fprintln(
			config.Stdout,
			"No class in session at",
			now.Format(ui.TimeFormat(cfg.Display.TwentyFourHour)),
		)

		return nil
	}

	endsAt, err := s.EndsAt(now)
	if err != nil {
		return err
	}

	fmt.Fprintf(
		config.Stdout,
		"%s until %s\n",
		ui.Highlight(s.Subject),
		endsAt.Format(ui.TimeFormat(cfg.Display.TwentyFourHour)),
	)

	return nil
}
