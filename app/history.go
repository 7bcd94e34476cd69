package app

import (
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/classfocus/internal/config"
	"github.com/ayoisaiah/classfocus/internal/timeutil"
	"github.com/ayoisaiah/classfocus/internal/tracker"
	"github.com/ayoisaiah/classfocus/internal/ui"
	"github.com/ayoisaiah/classfocus/report"
)

// historyRows builds the history table with a closing totals row.
func historyRows(
	summaries []tracker.Summary,
	twentyFourHour bool,
) [][]string {
	data := [][]string{
		{"#", "DATE", "SUBJECT", "CLASS", "FOCUSED", "DISTRACTED", "REMINDERS"},
	}

	var focused, distracted, reminders int

	for i, s := range summaries {
		focused += s.FocusedSeconds
		distracted += s.DistractedSeconds
		reminders += s.Reminders

		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.EndedAt.Local().Format("Mon, Jan 02 2006 " + ui.TimeFormat(twentyFourHour)),
			s.Subject,
			s.Start + " - " + s.End,
			ui.Green(timeutil.FormatSeconds(s.FocusedSeconds)),
			ui.Red(timeutil.FormatSeconds(s.DistractedSeconds)),
			strconv.Itoa(s.Reminders),
		})
	}

	data = append(data, []string{
		"",
		"",
		"",
		ui.Highlight("TOTAL"),
		ui.Green(timeutil.FormatSeconds(focused)),
		ui.Red(timeutil.FormatSeconds(distracted)),
		strconv.Itoa(reminders),
	})

	return data
}

// historyAction lists the class sessions that ended within the chosen period.
func historyAction(ctx *cli.Context) error {
	cfg, client, err := openStore(ctx)
	if err != nil {
		return err
	}

	start, end, err := timeutil.Period(ctx.String("period")).Bounds(time.Now())
	if err != nil {
		return err
	}

	summaries, err := client.History(ctx.Context, start, end)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		if summaries == nil {
			summaries = []tracker.Summary{}
		}

		return printJSON(config.Stdout, summaries)
	}

	if len(summaries) == 0 {
		report.Info("No class sessions found for the period")
		return nil
	}

	ui.PrintTable(historyRows(summaries, cfg.Display.TwentyFourHour), config.Stdout)

	return nil
}
